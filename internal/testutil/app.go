package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
)

// IDPrefix prefixes every id generated by apps built here: the first new
// id is "new-1"
const IDPrefix = "new-"

// NewMemoryApp returns an App over a memory store seeded with b
func NewMemoryApp(t *testing.T, b models.Board) *app.App {
	t.Helper()

	store := database.NewMemoryStore()
	if err := store.SaveBoard(context.Background(), b); err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}
	return NewAppWithStore(t, store)
}

// NewAppWithStore returns an App over store with deterministic ids
func NewAppWithStore(t *testing.T, store database.BoardStore) *app.App {
	t.Helper()

	a, err := app.New(context.Background(),
		app.WithStore(store),
		app.WithIDGenerator(board.NewSequenceGenerator(IDPrefix)),
	)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// NewSQLiteApp returns an App over a fresh SQLite file seeded with b
func NewSQLiteApp(t *testing.T, b models.Board) *app.App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "board.db")
	db, err := database.InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := database.NewSQLiteStore(db).SaveBoard(context.Background(), b); err != nil {
		t.Fatalf("Failed to seed database: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close seed database: %v", err)
	}

	a, err := app.New(context.Background(),
		app.WithDBPath(path),
		app.WithIDGenerator(board.NewSequenceGenerator(IDPrefix)),
	)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}
