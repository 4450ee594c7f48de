package resthttp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yourname/upload_pipeline/internal/config"
	"github.com/yourname/upload_pipeline/internal/repo"
	"github.com/yourname/upload_pipeline/internal/usecase/relaysvc"
	adapters "github.com/yourname/upload_pipeline/internal/usecase/relaysvc/adapters/storage"
	"github.com/yourname/upload_pipeline/pkg/storageclient"
	"github.com/yourname/upload_pipeline/pkg/storageproto"
)

const maxFormMemory = 32 << 20

type Server struct {
	Relay   relaysvc.Service
	Cfg     *config.Config
	journal repo.Store
}

// NewServer конструктор
func NewServer(ctx context.Context, cfg *config.Config) (http.Handler, *Server, error) {
	journal, err := repo.Open(ctx, cfg.JournalDSN)
	if err != nil {
		return nil, nil, err
	}

	srv := &Server{
		Relay: relaysvc.New(relaysvc.Deps{
			StorageURL: cfg.StorageServiceURL,
			StorageCli: storageclient.New(),
			Prober:     adapters.NewHealthAdapter(adapters.ProbeTimeout),
			Journal:    journal,
		}),
		Cfg:     cfg,
		journal: journal,
	}

	rtr := chi.NewRouter()
	rtr.Use(middleware.RequestID, middleware.Logger, middleware.Recoverer)
	rtr.Post(storageproto.PathUpload, srv.upload)
	rtr.Get(storageproto.PathHealth, srv.health)
	rtr.Get("/uploads", srv.uploads)

	return rtr, srv, nil
}

// Close освобождает журнал.
func (s *Server) Close() {
	if s.journal != nil {
		s.journal.Close()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
