package filesvc

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yourname/upload_pipeline/internal/models"
)

// Store записывает содержимое под новым именем {uuid}-{name} и возвращает метаданные.
// Повторный вызов с теми же данными создаёт ещё один файл.
func (s *Files) Store(ctx context.Context, name, contentType string, r io.Reader) (models.StoredFile, error) {
	if !validName(name) {
		return models.StoredFile{}, fmt.Errorf("%w: %q", models.ErrInvalidName, name)
	}
	if err := ctx.Err(); err != nil {
		return models.StoredFile{}, err
	}

	stored := storedName(s.NewID(), name)
	path := filepath.Join(s.Dir, stored)

	if err := writeFile(path, r); err != nil {
		return models.StoredFile{}, err
	}

	// Размер берём с диска, а не из заголовков клиента.
	info, err := os.Stat(path)
	if err != nil {
		return models.StoredFile{}, models.Fault("stat stored file", err)
	}

	return models.StoredFile{
		Name:             stored,
		OriginalFilename: name,
		ContentType:      contentType,
		Size:             info.Size(),
		Timestamp:        s.Now(),
	}, nil
}

// writeFile пишет поток целиком; при ошибке недописанный файл удаляется.
func writeFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return models.Fault("create file", err)
	}

	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return models.Fault("write file", err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return models.Fault("close file", err)
	}

	return nil
}
