package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fre-insights/internal/config"
	"fre-insights/internal/database"
	"fre-insights/internal/server"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// app is what every data command needs: config, logger, database and services
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	db        *database.DB
	container *server.Container
}

// openApp loads everything a command needs. Metrics go to reg; only serve exposes them.
func openApp(reg prometheus.Registerer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	container, err := server.NewContainer(cfg, db.DB, reg, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, db: db, container: container}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", "error", err)
	}
}

// newLogger returns a JSON handler in production and a text handler everywhere else
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("--user must be a non-nil UUID, got %q", raw)
	}
	return id, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
