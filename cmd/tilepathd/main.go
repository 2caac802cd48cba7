// Command tilepathd serves the tile path API over HTTP.
//
// Settings come from the environment, optionally seeded from a .env file:
// TILEPATH_ADDR, TILEPATH_MAX_CELLS, TILEPATH_MAX_EXPANSIONS and
// TILEPATH_READ_TIMEOUT.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/tilepath/server"
)

const shutdownTimeout = 5 * time.Second

func main() {
	envFile := flag.String("env", ".env", "optional env file to load")
	flag.Parse()

	logger := log.New(os.Stderr, "tilepathd: ", log.LstdFlags)

	cfg, err := server.LoadConfig(*envFile)
	if err != nil {
		logger.Fatal(err)
	}

	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     server.NewRouter(server.NewHandler(cfg, logger)),
		ReadTimeout: cfg.ReadTimeout,
		ErrorLog:    logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s (max cells %d, max expansions %d)", cfg.Addr, cfg.MaxCells, cfg.MaxExpansions)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(err)
		}
	case <-ctx.Done():
		logger.Print("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}
}
