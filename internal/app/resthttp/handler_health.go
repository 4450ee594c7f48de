package resthttp

import "net/http"

type healthResp struct {
	Status         string `json:"status"`
	StorageService string `json:"storage_service"`
}

// health всегда отвечает 200/ok; доступность storage отражается только во вложенном поле.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	state := "unreachable"
	if s.Relay.StorageReachable(r.Context()) {
		state = "reachable"
	}

	writeJSON(w, http.StatusOK, healthResp{
		Status:         "ok",
		StorageService: state,
	})
}
