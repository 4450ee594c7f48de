package filesvc

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/upload_pipeline/internal/models"
)

// Service объединяет операции storage-сервиса над плоским каталогом.
type Service interface {
	Store(ctx context.Context, name, contentType string, r io.Reader) (models.StoredFile, error)
	List(ctx context.Context) (models.Listing, error)
	Info(ctx context.Context, name string) (models.FileInfo, error)
	Probe(ctx context.Context) error
	SweepProbes(ctx context.Context, ttl time.Duration) (int, error)
	Root() string
}

type Deps struct {
	// Dir каталог хранения, создаётся при необходимости.
	Dir   string
	NewID func() string
	Now   func() time.Time
}

type Files struct {
	Deps
}

// New конструирует сервис и гарантирует наличие каталога хранения.
func New(deps Deps) (*Files, error) {
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if err := os.MkdirAll(deps.Dir, 0o755); err != nil {
		return nil, models.Fault("create storage root", err)
	}

	return &Files{Deps: deps}, nil
}

var _ Service = (*Files)(nil)

// Root возвращает путь каталога хранения.
func (s *Files) Root() string { return s.Dir }
