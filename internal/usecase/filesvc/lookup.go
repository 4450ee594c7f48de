package filesvc

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/yourname/upload_pipeline/internal/models"
)

// List возвращает сырой листинг каталога, включая служебные файлы.
func (s *Files) List(_ context.Context) (models.Listing, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return models.Listing{}, models.Fault("read storage root", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return models.Listing{
		Files: names,
		Count: len(names),
		Path:  s.Dir,
	}, nil
}

// Info читает метаданные файла по stored name.
func (s *Files) Info(_ context.Context, name string) (models.FileInfo, error) {
	path, err := s.pathFor(name)
	if err != nil {
		return models.FileInfo{}, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.FileInfo{}, models.ErrNotFound
		}
		return models.FileInfo{}, models.Fault("stat file", err)
	}

	return models.FileInfo{
		Filename: name,
		Path:     path,
		Size:     fi.Size(),
		Created:  changeTime(fi),
		Modified: fi.ModTime(),
	}, nil
}
