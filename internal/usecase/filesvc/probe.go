package filesvc

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yourname/upload_pipeline/internal/models"
	"github.com/yourname/upload_pipeline/pkg/storageproto"
)

var probePayload = []byte("healthcheck")

// Probe проверяет, что каталог доступен на запись: пишет и сразу удаляет уникальный файл.
func (s *Files) Probe(_ context.Context) error {
	path := filepath.Join(s.Dir, storageproto.ProbePrefix+s.NewID())
	if err := os.WriteFile(path, probePayload, 0o644); err != nil {
		return models.Fault("write probe", err)
	}

	return models.Fault("remove probe", os.Remove(path))
}

// SweepProbes удаляет забытые probe-файлы старше ttl и возвращает их число.
// Сохранённые файлы не трогаются.
func (s *Files) SweepProbes(ctx context.Context, ttl time.Duration) (int, error) {
	now := s.Now()
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return 0, models.Fault("read storage root", err)
	}

	removed := 0
	for _, e := range entries {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if e.IsDir() || !strings.HasPrefix(e.Name(), storageproto.ProbePrefix) {
			continue
		}

		fi, err := e.Info()
		if err != nil {
			continue
		}
		if now.Sub(fi.ModTime()) < ttl {
			continue
		}

		if err = os.Remove(filepath.Join(s.Dir, e.Name())); err == nil {
			removed++
		}
	}

	return removed, nil
}
