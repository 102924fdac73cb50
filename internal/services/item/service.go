package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
)

// Service owns the current board and applies every change through the
// board transformer. Each change is applied to the stored board, not the
// cached one, and saved before it becomes visible; a failed save leaves the
// board untouched.
type Service interface {
	// Read operations
	Board() models.Board
	FindItem(id string) (models.Item, models.Location, bool)
	Reload(ctx context.Context) error

	// Write operations. The bool result reports whether the board changed.
	AddItem(ctx context.Context, text string) (models.Item, bool, error)
	EditItem(ctx context.Context, id string, text string) (bool, error)
	DeleteItem(ctx context.Context, id string) (bool, error)

	// Item movements
	Drop(ctx context.Context, result models.DropResult) (bool, error)
	MoveItem(ctx context.Context, id string, to models.Location) (bool, error)
}

// Option configures a Service
type Option func(*service)

// WithLogger sets the logger mutations are reported to
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// service implements Service interface
type service struct {
	mu     sync.Mutex
	store  database.BoardStore
	ids    board.IDGenerator
	logger *slog.Logger
	board  models.Board
}

// NewService creates a new item service over store. The board starts empty;
// call Reload to read the stored board.
func NewService(store database.BoardStore, ids board.IDGenerator, opts ...Option) Service {
	s := &service{
		store:  store,
		ids:    ids,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns the current board. The returned value is a snapshot and is
// never modified by later operations.
func (s *service) Board() models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// FindItem looks up an item and its current location
func (s *service) FindItem(id string) (models.Item, models.Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, ok := s.board.Find(id)
	if !ok {
		return models.Item{}, models.Location{}, false
	}
	it, _ := s.board.ItemAt(loc)
	return it, loc, true
}

// Reload replaces the current board with the stored one
func (s *service) Reload(ctx context.Context) error {
	b, err := s.store.LoadBoard(ctx)
	if err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = b
	s.logger.Debug("board loaded", "columns", len(b.Columns), "items", b.ItemCount())
	return nil
}

// AddItem appends an item with text to the first column. Blank text is
// ignored.
func (s *service) AddItem(ctx context.Context, text string) (models.Item, bool, error) {
	if strings.TrimSpace(text) == "" {
		return models.Item{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var added models.Item
	changed, err := s.update(ctx, func(current models.Board) (models.Board, bool, error) {
		next, it, ok := board.Add(current, text, s.ids)
		added = it
		return next, ok, nil
	})
	if err != nil {
		return models.Item{}, false, fmt.Errorf("failed to add item: %w", err)
	}
	if !changed {
		return models.Item{}, false, nil
	}

	s.logger.Debug("item added", "item_id", added.ID)
	return added, true, nil
}

// EditItem replaces an item's content. Unknown ids are ignored.
func (s *service) EditItem(ctx context.Context, id string, text string) (bool, error) {
	if err := validateItemID(id); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed, err := s.update(ctx, func(current models.Board) (models.Board, bool, error) {
		next, ok := board.Edit(current, id, text)
		return next, ok, nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to edit item: %w", err)
	}

	if changed {
		s.logger.Debug("item edited", "item_id", id)
	}
	return changed, nil
}

// DeleteItem removes an item and prunes its column if it becomes empty.
// Unknown ids are ignored.
func (s *service) DeleteItem(ctx context.Context, id string) (bool, error) {
	if err := validateItemID(id); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed, err := s.update(ctx, func(current models.Board) (models.Board, bool, error) {
		next, ok := board.Delete(current, id)
		return next, ok, nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete item: %w", err)
	}

	if changed {
		s.logger.Debug("item deleted", "item_id", id)
	}
	return changed, nil
}

// Drop applies a drag result. Its locations refer to the board returned by
// Board; they are carried over to the stored board by item and column id.
func (s *service) Drop(ctx context.Context, result models.DropResult) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result.Destination == nil || *result.Destination == result.Source {
		return false, nil
	}

	// Range errors are reported against the board the caller saw
	if _, _, err := board.Drop(s.board, result, previewIDs{}); err != nil {
		return false, err
	}

	itemID := s.board.Columns[result.Source.Column].Items[result.Source.Index].ID
	dst := *result.Destination
	newColumn := dst.Column == len(s.board.Columns)
	var columnID string
	if !newColumn {
		columnID = s.board.Columns[dst.Column].ID
	}

	return s.move(ctx, itemID, func(current models.Board) (models.Location, error) {
		if newColumn {
			return models.Location{Column: len(current.Columns), Index: 0}, nil
		}
		for c, col := range current.Columns {
			if col.ID == columnID {
				return models.Location{Column: c, Index: dst.Index}, nil
			}
		}
		return models.Location{}, fmt.Errorf("%w: column %s no longer exists", ErrBoardChanged, columnID)
	})
}

// MoveItem moves the item with id to the given location. The location is
// resolved against the stored board at the moment of the call.
func (s *service) MoveItem(ctx context.Context, id string, to models.Location) (bool, error) {
	if err := validateItemID(id); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.move(ctx, id, func(models.Board) (models.Location, error) {
		return to, nil
	})
}

// move relocates the item with id to the location dest picks on the stored
// board. Must be called with s.mu held.
func (s *service) move(ctx context.Context, id string, dest func(models.Board) (models.Location, error)) (bool, error) {
	var from, to models.Location
	changed, err := s.update(ctx, func(current models.Board) (models.Board, bool, error) {
		var ok bool
		from, ok = current.Find(id)
		if !ok {
			return current, false, fmt.Errorf("%w: %s", ErrItemNotFound, id)
		}

		var err error
		to, err = dest(current)
		if err != nil {
			return current, false, err
		}
		return board.Drop(current, models.DropResult{Source: from, Destination: &to}, s.ids)
	})
	if err != nil {
		return false, fmt.Errorf("failed to move item: %w", err)
	}

	if changed {
		s.logger.Debug("item moved",
			"item_id", id,
			"from_column", from.Column,
			"from_index", from.Index,
			"to_column", to.Column,
			"to_index", to.Index,
		)
	}
	return changed, nil
}

// update applies fn to the stored board and adopts the stored result,
// picking up writes made by other processes along the way.
// Must be called with s.mu held.
func (s *service) update(ctx context.Context, fn database.UpdateFunc) (bool, error) {
	stored, changed, err := s.store.UpdateBoard(ctx, fn)
	if err != nil {
		return false, err
	}
	s.board = stored
	return changed, nil
}

// previewIDs stands in for the real generator when a drop is only checked
type previewIDs struct{}

func (previewIDs) NewID() string { return "preview" }

func validateItemID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidItemID
	}
	return nil
}
