package storagehttp

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/yourname/upload_pipeline/internal/models"
	"github.com/yourname/upload_pipeline/pkg/httperrors"
)

// listFiles отдаёт листинг каталога; при ошибке чтения 500 с текстом причины.
func (a *Server) listFiles(w http.ResponseWriter, r *http.Request) {
	listing, err := a.Files.List(r.Context())
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

// fileInfo отдаёт метаданные файла по stored name.
func (a *Server) fileInfo(w http.ResponseWriter, r *http.Request) {
	name, ok := storedNameParam(r)
	if !ok {
		httperrors.Write(w, models.ErrNotFound)
		return
	}

	info, err := a.Files.Info(r.Context(), name)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// storedNameParam достаёт {name} из пути. Chi маршрутизирует по RawPath, если он задан,
// и тогда параметр приходит в экранированном виде.
func storedNameParam(r *http.Request) (string, bool) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, name != ""
	}

	unescaped, err := url.PathUnescape(name)
	if err != nil {
		return "", false
	}

	return unescaped, unescaped != ""
}
