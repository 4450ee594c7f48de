package storagehttp

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/yourname/upload_pipeline/internal/config"
	"github.com/yourname/upload_pipeline/internal/usecase/filesvc"
)

// gcOnce вручную запускает удаление забытых probe-файлов.
func (a *Server) gcOnce(w http.ResponseWriter, r *http.Request) {
	ttl := a.Cfg.GCTTL
	if ttl <= 0 {
		ttl = config.DefaultGCTTL
	}

	n, err := a.Files.SweepProbes(r.Context(), ttl)
	if err != nil {
		log.Printf("manual gc: %v", err)
	} else if n > 0 {
		log.Printf("manual gc: removed %d stale probe files", n)
	}

	w.WriteHeader(http.StatusNoContent)
}

// StartGC стартует периодическую очистку каталога от probe-файлов старше ttl.
func StartGC(files filesvc.Service, ttl time.Duration, every time.Duration) func() {
	if every <= 0 || ttl <= 0 {
		return func() {}
	}

	ticker := time.NewTicker(every)
	ctx, cancel := context.WithCancel(context.Background())
	var once sync.Once
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n, err := files.SweepProbes(ctx, ttl); err != nil {
					log.Printf("gc: %v", err)
				} else if n > 0 {
					log.Printf("gc: removed %d stale probe files", n)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		once.Do(cancel)
	}
}
