package relaysvc

import (
	"context"
	"time"

	"github.com/yourname/upload_pipeline/internal/models"
	"github.com/yourname/upload_pipeline/pkg/storageclient"
)

type (
	// Journal хранилище записей о ретранслированных загрузках
	Journal interface {
		Save(ctx context.Context, u models.Upload) error
		List(ctx context.Context, limit int) ([]models.Upload, error)
	}

	// Prober проверяет доступность storage-сервиса.
	Prober interface {
		Reachable(ctx context.Context, base string) bool
	}

	// Service объединяет операции gateway.
	Service interface {
		Upload(ctx context.Context, up storageclient.Upload) (storageclient.Response, error)
		StorageReachable(ctx context.Context) bool
		Recent(ctx context.Context, limit int) ([]models.Upload, error)
	}
)

type Deps struct {
	StorageURL string
	StorageCli storageclient.Client
	Prober     Prober
	Journal    Journal
	Now        func() time.Time
}

type Relay struct {
	Deps
}

// New конструирует gateway-сервис с заданными зависимостями.
func New(deps Deps) *Relay {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &Relay{Deps: deps}
}

var _ Service = (*Relay)(nil)

// StorageReachable проверяет storage-сервис; ошибки превращаются в false.
func (s *Relay) StorageReachable(ctx context.Context) bool {
	if s.Prober == nil {
		return false
	}

	return s.Prober.Reachable(ctx, s.StorageURL)
}

// Recent возвращает последние записи журнала.
func (s *Relay) Recent(ctx context.Context, limit int) ([]models.Upload, error) {
	if s.Journal == nil {
		return []models.Upload{}, nil
	}

	return s.Journal.List(ctx, limit)
}
