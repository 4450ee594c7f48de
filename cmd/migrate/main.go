package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/yourname/upload_pipeline/internal/config"
	"github.com/yourname/upload_pipeline/internal/repo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dsn := strings.TrimSpace(cfg.JournalDSN)
	if dsn == "" {
		log.Fatal("JOURNAL_DSN is not configured")
	}
	if !repo.IsPostgres(dsn) {
		log.Println("in-memory upload journal selected, skipping migrations")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repo.ApplyMigrations(ctx, dsn); err != nil {
		log.Fatal(err)
	}

	log.Println("migrations applied")
}
