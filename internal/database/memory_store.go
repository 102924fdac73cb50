package database

import (
	"context"
	"sync"

	"github.com/thenoetrevino/lanes/internal/models"
)

// MemoryStore keeps the board for the lifetime of the process only.
type MemoryStore struct {
	mu    sync.Mutex
	board models.Board
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadBoard returns a copy of the stored board
func (s *MemoryStore) LoadBoard(_ context.Context) (models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone(), nil
}

// SaveBoard replaces the stored board with a copy of b
func (s *MemoryStore) SaveBoard(ctx context.Context, b models.Board) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = b.Clone()
	return nil
}

// UpdateBoard applies fn to a copy of the stored board under the store lock
func (s *MemoryStore) UpdateBoard(ctx context.Context, fn UpdateFunc) (models.Board, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Board{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed, err := fn(s.board.Clone())
	if err != nil {
		return models.Board{}, false, err
	}
	if !changed {
		return s.board.Clone(), false, nil
	}
	s.board = next.Clone()
	return next, true, nil
}
