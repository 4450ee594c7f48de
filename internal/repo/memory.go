package repo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/yourname/upload_pipeline/internal/models"
)

// MemoryStore хранит журнал только в оперативной памяти; удобно для тестов и локального запуска.
type MemoryStore struct {
	mu      sync.RWMutex
	uploads map[string]models.Upload
}

// NewMemoryStore создаёт пустой in-memory журнал.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{uploads: map[string]models.Upload{}}
}

// Save добавляет (или перезаписывает) запись по stored name.
func (s *MemoryStore) Save(_ context.Context, u models.Upload) error {
	if strings.TrimSpace(u.StoredName) == "" {
		return errEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[u.StoredName] = u
	return nil
}

// List возвращает не более limit записей, новые первыми.
func (s *MemoryStore) List(_ context.Context, limit int) ([]models.Upload, error) {
	s.mu.RLock()
	out := make([]models.Upload, 0, len(s.uploads))
	for _, u := range s.uploads {
		out = append(out, u)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].RelayedAt.Equal(out[j].RelayedAt) {
			return out[i].StoredName < out[j].StoredName
		}
		return out[i].RelayedAt.After(out[j].RelayedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) Close() {}
