package storagehttp

import (
	"net/http"
	"time"
)

type rootResp struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
	Timestamp time.Time         `json:"timestamp"`
}

var endpoints = map[string]string{
	"GET /":             "This info",
	"GET /health":       "Health check",
	"POST /store":       "Upload file",
	"GET /files":        "List stored files",
	"GET /files/{name}": "Stored file info",
	"POST /admin/gc":    "Remove stale health-check files",
}

// root описывает сервис, чтобы по нему можно было убедиться, что он запущен.
func (a *Server) root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, rootResp{
		Message:   "Storage Service API",
		Endpoints: endpoints,
		Timestamp: time.Now(),
	})
}
