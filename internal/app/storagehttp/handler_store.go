package storagehttp

import (
	"fmt"
	"net/http"

	"github.com/yourname/upload_pipeline/internal/models"
	"github.com/yourname/upload_pipeline/pkg/httperrors"
	"github.com/yourname/upload_pipeline/pkg/storageproto"
)

// storeResp тело ответа с метаданными сохранённого файла.
type storeResp struct {
	Message string `json:"message"`
	models.StoredFile
}

// store принимает multipart-загрузку и полностью делегирует запись сервису файлов.
func (a *Server) store(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		httperrors.Write(w, fmt.Errorf("%w: %v", models.ErrMissingFile, err))
		return
	}

	file, hdr, err := r.FormFile(storageproto.FormField)
	if err != nil {
		httperrors.Write(w, fmt.Errorf("%w: %v", models.ErrMissingFile, err))
		return
	}
	defer file.Close()

	res, err := a.Files.Store(r.Context(), hdr.Filename, hdr.Header.Get("Content-Type"), file)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, storeResp{
		Message:    "File stored successfully",
		StoredFile: res,
	})
}
