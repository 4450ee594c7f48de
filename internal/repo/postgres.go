package repo

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourname/upload_pipeline/internal/models"
)

const uploadsTable = "uploads"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PGStore сохраняет журнал загрузок в Postgres.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore создаёт пул подключений к Postgres. Схему создаёт cmd/migrate.
func NewPGStore(ctx context.Context, dsn string) (*PGStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("journal dsn is empty")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	return &PGStore{pool: pool}, nil
}

// Save записывает (или обновляет) запись журнала.
func (s *PGStore) Save(ctx context.Context, u models.Upload) error {
	if strings.TrimSpace(u.StoredName) == "" {
		return errEmptyName
	}

	sqlStr, args, err := psql.
		Insert(uploadsTable).
		Columns("stored_name", "original_filename", "content_type", "size", "stored_at", "relayed_at").
		Values(u.StoredName, u.OriginalFilename, u.ContentType, u.Size, u.StoredAt, u.RelayedAt).
		Suffix(`
			ON CONFLICT (stored_name) DO UPDATE
			SET original_filename = EXCLUDED.original_filename,
				content_type      = EXCLUDED.content_type,
				size              = EXCLUDED.size,
				stored_at         = EXCLUDED.stored_at,
				relayed_at        = EXCLUDED.relayed_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert sql: %w", err)
	}

	if _, err := s.pool.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("exec upsert: %w", err)
	}

	return nil
}

// List возвращает не более limit записей, новые первыми.
func (s *PGStore) List(ctx context.Context, limit int) ([]models.Upload, error) {
	q := psql.
		Select("stored_name", "original_filename", "content_type", "size", "stored_at", "relayed_at").
		From(uploadsTable).
		OrderBy("relayed_at DESC", "stored_name")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := s.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query uploads: %w", err)
	}
	defer rows.Close()

	out := make([]models.Upload, 0)
	for rows.Next() {
		var u models.Upload
		if err := rows.Scan(&u.StoredName, &u.OriginalFilename, &u.ContentType, &u.Size, &u.StoredAt, &u.RelayedAt); err != nil {
			return nil, fmt.Errorf("scan upload row: %w", err)
		}
		out = append(out, u)
	}

	return out, rows.Err()
}

// Close освобождает подключения пула.
func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
