package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/parth/tourdates/internal/logger"
	"github.com/parth/tourdates/internal/storage"
	"github.com/parth/tourdates/internal/tourdate"
	"github.com/parth/tourdates/internal/web"
)

var (
	addr     = flag.String("addr", envOr("TOURDATES_ADDR", ":8090"), "HTTP listen address (or env: TOURDATES_ADDR)")
	dbPath   = flag.String("db", envOr("TOURDATES_DB", storage.DefaultPath), "Path to the SQLite database (or env: TOURDATES_DB)")
	season   = flag.String("season", envOr("TOURDATES_SEASON", tourdate.DefaultSeason), "Season served by the site (or env: TOURDATES_SEASON)")
	logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	flag.Parse()

	level, ok := parseLevel(*logLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown log level %q (want debug, info, warn, or error)\n", *logLevel)
		os.Exit(1)
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	store, err := storage.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	server, err := web.NewServer(store, *season)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building server: %v\n", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         *addr,
		Handler:      server.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info("Serving tour date calendar", logger.Fields{
			"addr":   *addr,
			"db":     *dbPath,
			"season": *season,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "Error serving: %v\n", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error shutting down: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Server stopped")
}

// parseLevel maps a flag value onto a logger level.
func parseLevel(s string) (logger.Level, bool) {
	switch s {
	case "debug":
		return logger.LevelDebug, true
	case "info":
		return logger.LevelInfo, true
	case "warn":
		return logger.LevelWarn, true
	case "error":
		return logger.LevelError, true
	}
	return logger.LevelInfo, false
}

// envOr reads an environment variable, falling back when unset or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
