package resthttp

import (
	"net/http"
	"strconv"

	"github.com/yourname/upload_pipeline/internal/models"
	"github.com/yourname/upload_pipeline/pkg/httperrors"
)

const (
	defaultUploadsLimit = 50
	maxUploadsLimit     = 500
)

type uploadsResp struct {
	Uploads []models.Upload `json:"uploads"`
	Count   int             `json:"count"`
}

// uploads отдаёт последние записи журнала загрузок.
func (s *Server) uploads(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"))

	list, err := s.Relay.Recent(r.Context(), limit)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadsResp{
		Uploads: list,
		Count:   len(list),
	})
}

func parseLimit(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultUploadsLimit
	}

	return min(n, maxUploadsLimit)
}
