package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yourname/upload_pipeline/internal/app/storagehttp"
	"github.com/yourname/upload_pipeline/internal/config"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	handler, srv, err := storagehttp.NewServer(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Фоновая уборка зависших health-проб.
	stopGC := storagehttp.StartGC(srv.Files, cfg.GCTTL, cfg.GCInterval)
	defer stopGC()

	server := &http.Server{
		Addr:              cfg.StorageAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("STORAGE listening on %s (STORAGE_PATH=%s, GC ttl=%s, every=%s)",
			cfg.StorageAddr, srv.Files.Root(), cfg.GCTTL, cfg.GCInterval)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("STORAGE shutdown error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		stopGC()
		log.Fatal(err)
	}
	log.Println("STORAGE stopped")
}
