package database

import (
	"context"

	"github.com/thenoetrevino/lanes/internal/models"
)

// UpdateFunc derives the next board from the stored one. Returning
// changed=false leaves the store untouched.
type UpdateFunc func(current models.Board) (next models.Board, changed bool, err error)

// BoardStore persists whole board snapshots.
// Implementations must return boards that satisfy the board invariants.
type BoardStore interface {
	LoadBoard(ctx context.Context) (models.Board, error)
	SaveBoard(ctx context.Context, b models.Board) error

	// UpdateBoard reads the stored board, applies fn and saves the result as
	// one atomic step. It returns the stored board afterwards, so writes made
	// by another process since the caller last loaded are never lost.
	UpdateBoard(ctx context.Context, fn UpdateFunc) (models.Board, bool, error)
}
