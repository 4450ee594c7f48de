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

	"github.com/yourname/upload_pipeline/internal/app/resthttp"
	"github.com/yourname/upload_pipeline/internal/config"
)

const shutdownTimeout = 15 * time.Second

// main поднимает gateway и корректно завершает его по SIGINT/SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, srv, err := resthttp.NewServer(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer srv.Close()

	server := &http.Server{
		Addr:              cfg.GatewayAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("GATEWAY listening on %s (storage=%s)", cfg.GatewayAddr, cfg.StorageServiceURL)
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
			log.Printf("GATEWAY shutdown error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("GATEWAY stopped: %v", err)
		srv.Close()
		os.Exit(1)
	}
	log.Println("GATEWAY stopped")
}
