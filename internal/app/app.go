package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/database"
	itemservice "github.com/thenoetrevino/lanes/internal/services/item"
)

// ErrNoStorage is returned when neither a store nor a database path is configured
var ErrNoStorage = errors.New("no storage configured: set a database path or use the memory store")

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// db is nil for memory-backed apps
	db     *sql.DB
	store  database.BoardStore
	logger *slog.Logger

	// Service layer (business logic)
	ItemService itemservice.Service
}

// New creates the App, opens its storage and loads the board.
// This is the single entry point for creating the application container.
func New(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &appConfig{
		ids:    board.UUIDGenerator{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	a := &App{logger: cfg.logger}

	switch {
	case cfg.store != nil:
		a.store = cfg.store
	case cfg.dbPath != "":
		db, err := database.InitDB(ctx, cfg.dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.db = db
		a.store = database.NewSQLiteStore(db)
	default:
		return nil, ErrNoStorage
	}

	a.ItemService = itemservice.NewService(a.store, cfg.ids, itemservice.WithLogger(cfg.logger))
	if err := a.ItemService.Reload(ctx); err != nil {
		if closeErr := a.Close(); closeErr != nil {
			a.logger.Error("error closing app", "error", closeErr)
		}
		return nil, err
	}

	a.logger.Debug("app initialized", "persistent", a.db != nil)
	return a, nil
}

// Persistent reports whether the board survives the process
func (a *App) Persistent() bool {
	return a.db != nil
}

// Close releases the database, if any
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
