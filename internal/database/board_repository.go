package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/models"
)

// dbtx is the part of *sql.DB and *sql.Tx the board queries need
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// SQLiteStore stores the board in the columns and items tables.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps a database opened with InitDB
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// LoadBoard reads the board in column and item order
func (s *SQLiteStore) LoadBoard(ctx context.Context) (models.Board, error) {
	return loadBoard(ctx, s.db)
}

// SaveBoard replaces the stored board with b in a single transaction
func (s *SQLiteStore) SaveBoard(ctx context.Context, b models.Board) error {
	if err := board.Validate(b); err != nil {
		return fmt.Errorf("refusing to save invalid board: %w", err)
	}

	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		return writeBoard(ctx, tx, b)
	})
}

// UpdateBoard loads, transforms and rewrites the board inside one
// transaction. InitDB opens transactions with BEGIN IMMEDIATE, so a second
// process waits for this one instead of writing over it.
func (s *SQLiteStore) UpdateBoard(ctx context.Context, fn UpdateFunc) (models.Board, bool, error) {
	var result models.Board
	var changed bool

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		current, err := loadBoard(ctx, tx)
		if err != nil {
			return err
		}

		next, ok, err := fn(current)
		if err != nil {
			return err
		}
		if !ok {
			result = current
			return nil
		}

		if err := board.Validate(next); err != nil {
			return fmt.Errorf("refusing to save invalid board: %w", err)
		}
		if err := writeBoard(ctx, tx, next); err != nil {
			return err
		}
		result, changed = next, true
		return nil
	})
	if err != nil {
		return models.Board{}, false, err
	}
	return result, changed, nil
}

func loadBoard(ctx context.Context, q dbtx) (models.Board, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT c.id, i.id, i.content
		FROM columns c
		JOIN items i ON i.column_id = c.id
		ORDER BY c.position, i.position
	`)
	if err != nil {
		return models.Board{}, fmt.Errorf("failed to query board: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var b models.Board
	for rows.Next() {
		var columnID string
		var it models.Item
		if err := rows.Scan(&columnID, &it.ID, &it.Content); err != nil {
			return models.Board{}, fmt.Errorf("failed to scan item: %w", err)
		}

		last := len(b.Columns) - 1
		if last < 0 || b.Columns[last].ID != columnID {
			b.Columns = append(b.Columns, models.Column{ID: columnID})
			last++
		}
		b.Columns[last].Items = append(b.Columns[last].Items, it)
	}
	if err := rows.Err(); err != nil {
		return models.Board{}, fmt.Errorf("failed to read items: %w", err)
	}

	if err := board.Validate(b); err != nil {
		return models.Board{}, fmt.Errorf("stored board is invalid: %w", err)
	}
	return b, nil
}

// writeBoard replaces every stored row with b
func writeBoard(ctx context.Context, q dbtx, b models.Board) error {
	if _, err := q.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	if _, err := q.ExecContext(ctx, "DELETE FROM columns"); err != nil {
		return fmt.Errorf("failed to clear columns: %w", err)
	}

	insertColumn, err := q.PrepareContext(ctx, "INSERT INTO columns (id, position) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare column insert: %w", err)
	}
	defer func() {
		_ = insertColumn.Close()
	}()

	insertItem, err := q.PrepareContext(ctx, "INSERT INTO items (id, column_id, position, content) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare item insert: %w", err)
	}
	defer func() {
		_ = insertItem.Close()
	}()

	for c, col := range b.Columns {
		if _, err := insertColumn.ExecContext(ctx, col.ID, c); err != nil {
			return fmt.Errorf("failed to insert column %s: %w", col.ID, err)
		}
		for i, it := range col.Items {
			if _, err := insertItem.ExecContext(ctx, it.ID, col.ID, i, it.Content); err != nil {
				return fmt.Errorf("failed to insert item %s: %w", it.ID, err)
			}
		}
	}
	return nil
}
