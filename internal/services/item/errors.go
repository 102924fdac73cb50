package item

import "errors"

// Item-related errors
var (
	// Validation errors
	ErrInvalidItemID = errors.New("invalid item ID")

	// Business logic errors
	ErrItemNotFound = errors.New("item not found")
)

// ErrBoardChanged is returned when a drag refers to a column that another
// writer removed since the board was last loaded
var ErrBoardChanged = errors.New("board changed since it was loaded")
