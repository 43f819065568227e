package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	httpadapter "urltrust/internal/adapters/http"
	pg "urltrust/internal/adapters/postgres"
	"urltrust/internal/adapters/safebrowsing"
	"urltrust/internal/config"
	"urltrust/internal/ports"
	"urltrust/internal/services/checker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("warning: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for the result store")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	// Wire the repository to the service (ports)
	var _ ports.CheckRepository = db

	if cfg.SafeBrowsingKey == "" {
		log.Printf("SAFE_BROWSING_API_KEY not set; external threat lookups disabled")
	}
	oracle := safebrowsing.New(cfg.SafeBrowsingKey)
	checks := checker.New(db, oracle, cfg.OracleTimeout)

	srv := httpadapter.New(checks, db)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
	log.Printf("listening on %s", cfg.ListenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
		cancel()
		time.Sleep(300 * time.Millisecond)
	case err := <-errCh:
		log.Fatal(fmt.Errorf("server error: %w", err))
	}
}
