package board

import "errors"

// Errors returned by the board transformer
var (
	// Addressing errors
	ErrColumnOutOfRange = errors.New("column index out of range")
	ErrIndexOutOfRange  = errors.New("item index out of range")

	// Invariant violations reported by Validate
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrEmptyColumn   = errors.New("column has no items")
	ErrEmptyItemID   = errors.New("item id cannot be empty")
	ErrEmptyColumnID = errors.New("column id cannot be empty")
)
