package storagehttp

import (
	"log"
	"net/http"
	"time"

	"github.com/yourname/upload_pipeline/pkg/storageproto"
)

// healthResp payload ответа /health
type healthResp struct {
	Status          string    `json:"status"`
	Service         string    `json:"service"`
	Timestamp       time.Time `json:"timestamp"`
	StoragePath     string    `json:"storage_path,omitempty"`
	StorageWritable bool      `json:"storage_writable,omitempty"`
	Error           string    `json:"error,omitempty"`
}

// health проверяет каталог реальной записью и удалением probe-файла.
func (a *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := a.Files.Probe(r.Context()); err != nil {
		log.Printf("storage health probe failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResp{
			Status:    "unhealthy",
			Service:   storageproto.ServiceName,
			Timestamp: time.Now(),
			Error:     err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResp{
		Status:          "healthy",
		Service:         storageproto.ServiceName,
		Timestamp:       time.Now(),
		StoragePath:     a.Files.Root(),
		StorageWritable: true,
	})
}
