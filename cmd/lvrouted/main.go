// Command lvrouted serves shortest-path queries over HTTP.
//
// Configuration comes from LVROUTE_* environment variables, optionally set
// through a .env file in the working directory.
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

	"github.com/katalvlaran/lvroute/internal/api"
	"github.com/katalvlaran/lvroute/internal/config"
)

const shutdownGrace = 10 * time.Second

func main() {
	if _, err := os.Stat(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	log.Println("Loading graph...")
	start := time.Now()
	g, err := cfg.LoadGraph()
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}
	log.Printf("Graph loaded: %d nodes, %d edges in %s", g.Len(), g.EdgeCount(), time.Since(start).Round(time.Millisecond))

	h, err := cfg.SearchHeuristic()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	srv, err := api.New(g, api.WithHeuristic(h), api.WithLogger(log.Default()))
	if err != nil {
		log.Fatalf("Failed to prepare server: %v", err)
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("lvrouted listening on %s (heuristic %s)", cfg.Addr, cfg.Heuristic)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
}
