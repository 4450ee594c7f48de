package storagehttp

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yourname/upload_pipeline/internal/config"
	"github.com/yourname/upload_pipeline/internal/usecase/filesvc"
	"github.com/yourname/upload_pipeline/pkg/storageproto"
)

// maxFormMemory: сколько байт формы держим в памяти, остальное net/http сбрасывает во временные файлы.
const maxFormMemory = 32 << 20

// Server serves the storage service HTTP API on top of the local filesystem.
type Server struct {
	Files filesvc.Service
	Cfg   *config.Config
}

// NewServer конструктор: создаёт каталог хранения и собирает роутер.
func NewServer(cfg *config.Config) (http.Handler, *Server, error) {
	files, err := filesvc.New(filesvc.Deps{Dir: cfg.StoragePath})
	if err != nil {
		return nil, nil, err
	}

	srv := &Server{
		Files: files,
		Cfg:   cfg,
	}

	return srv.routes(), srv, nil
}

// routes регистрирует обработчики файлов, здоровья и GC.
func (a *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Logger, middleware.Recoverer)

	r.Get("/", a.root)
	r.Get(storageproto.PathHealth, a.health)
	r.Post(storageproto.PathStore, a.store)
	r.Get(storageproto.PathFiles, a.listFiles)
	r.Get(storageproto.PathFiles+"/{name}", a.fileInfo)
	r.Post("/admin/gc", a.gcOnce)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
