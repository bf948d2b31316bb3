// Package bootstrap wires configuration, logging and storage for the
// herosheet binaries.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"herosheet/internal/adapters/export"
	"herosheet/internal/adapters/filesystem"
	"herosheet/internal/adapters/roster"
	"herosheet/internal/adapters/sqlite"
	"herosheet/internal/config"
	"herosheet/internal/observability"
	"herosheet/internal/ports"
)

// Mode selects where log output goes
type Mode int

const (
	// ModeConsole logs to stderr unless a log file is configured
	ModeConsole Mode = iota
	// ModeFullScreen logs only to a configured file
	ModeFullScreen
)

// Env holds everything a binary needs to run commands
type Env struct {
	Config   config.Config
	Logger   *zap.Logger
	Store    ports.KeyValueStore
	Repo     *roster.Repository
	Exporter *export.MarkdownExporter
}

// Open loads .env and the configuration, builds the logger, opens the
// configured store and loads the character collection. A collection that
// cannot be loaded is logged and left empty; only setup failures are returned.
func Open(ctx context.Context, configPath string, mode Mode) (*Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	var logger *zap.Logger
	if mode == ModeFullScreen {
		logger, err = observability.NewTUILogger(cfg.Logging)
	} else {
		logger, err = observability.NewLogger(cfg.Logging)
	}
	if err != nil {
		return nil, err
	}

	store, err := OpenStore(cfg.Storage)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	repo := roster.NewRepository(store, cfg.Storage.Key, logger)
	if err := repo.LoadAll(ctx); err != nil {
		logger.Warn("starting with an empty collection", zap.Error(err))
	}

	return &Env{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Repo:     repo,
		Exporter: export.NewMarkdownExporter(cfg.Export.Dir, logger),
	}, nil
}

// OpenStore opens the key-value backend named by cfg.Backend
func OpenStore(cfg config.StorageConfig) (ports.KeyValueStore, error) {
	switch cfg.Backend {
	case "sqlite":
		return sqlite.Open(cfg.Path)
	case "file":
		return filesystem.NewStore(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Close releases the store and flushes the logger
func (e *Env) Close() error {
	err := e.Store.Close()
	_ = e.Logger.Sync()
	return err
}
