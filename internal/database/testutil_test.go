package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/lanes/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// setupTestDBPath returns a database path inside a per-test temp dir
func setupTestDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "board.db")
}

// ============================================================================
// FIXTURES
// ============================================================================

func sampleBoard() models.Board {
	return models.Board{Columns: []models.Column{
		{ID: "col-1", Items: []models.Item{
			{ID: "item-1", Content: "buy milk"},
			{ID: "item-2", Content: "walk dog"},
		}},
		{ID: "col-2", Items: []models.Item{
			{ID: "item-3", Content: "write report"},
		}},
	}}
}
