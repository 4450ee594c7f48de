// Package repo хранит журнал загрузок, прошедших через gateway.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yourname/upload_pipeline/internal/models"
)

var errEmptyName = errors.New("stored name is empty")

// Store общий интерфейс журналов
type Store interface {
	Save(ctx context.Context, u models.Upload) error
	List(ctx context.Context, limit int) ([]models.Upload, error)
	Close()
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*PGStore)(nil)
)

// Open выбирает реализацию журнала по DSN: пустой или memory:// хранит в памяти, postgres:// в Postgres.
func Open(ctx context.Context, dsn string) (Store, error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "" || strings.HasPrefix(dsn, "memory://"):
		return NewMemoryStore(), nil
	case IsPostgres(dsn):
		return NewPGStore(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported journal dsn %q", dsn)
	}
}

// IsPostgres сообщает, указывает ли DSN на Postgres.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
