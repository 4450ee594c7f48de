package resthttp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/yourname/upload_pipeline/internal/models"
	"github.com/yourname/upload_pipeline/pkg/httperrors"
	"github.com/yourname/upload_pipeline/pkg/storageclient"
	"github.com/yourname/upload_pipeline/pkg/storageproto"
)

// upload читает файл целиком и пересылает его в storage; ответ storage отдаётся как есть.
func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
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

	data, err := io.ReadAll(file)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	resp, err := s.Relay.Upload(r.Context(), storageclient.Upload{
		FileName:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
	})
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}
