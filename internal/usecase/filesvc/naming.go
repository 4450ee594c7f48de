package filesvc

import (
	"path/filepath"
	"strings"

	"github.com/yourname/upload_pipeline/internal/models"
)

// storedName склеивает идентификатор и исходное имя: {uuid}-{name}.
func storedName(id, original string) string {
	return id + "-" + original
}

// validName проверяет, что имя является ровно одним элемент пути внутри каталога.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}

	return filepath.Base(name) == name
}

// pathFor возвращает путь файла в каталоге или ErrNotFound для недопустимого имени.
func (s *Files) pathFor(name string) (string, error) {
	if !validName(name) {
		return "", models.ErrNotFound
	}

	return filepath.Join(s.Dir, name), nil
}
