package app

import (
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	dbPath string
	store  database.BoardStore
	ids    board.IDGenerator
	logger *slog.Logger
}

// WithDBPath persists the board in the SQLite file at path
func WithDBPath(path string) Option {
	return func(cfg *appConfig) {
		cfg.dbPath = path
	}
}

// WithMemoryStore keeps the board in memory for the lifetime of the App
func WithMemoryStore() Option {
	return func(cfg *appConfig) {
		cfg.store = database.NewMemoryStore()
	}
}

// WithStore uses an already constructed store; it wins over WithDBPath
func WithStore(store database.BoardStore) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithIDGenerator replaces the default UUID generator
func WithIDGenerator(ids board.IDGenerator) Option {
	return func(cfg *appConfig) {
		cfg.ids = ids
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
