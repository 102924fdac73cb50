package state

import "github.com/thenoetrevino/lanes/internal/models"

// DragState tracks an item picked up with the keyboard. The target is the
// slot the item would land in if dropped now; column len(board.Columns) is
// the "new column" slot.
type DragState struct {
	active bool
	itemID string
	source models.Location
	target models.Location
}

// NewDragState creates an idle DragState.
func NewDragState() *DragState {
	return &DragState{}
}

// Start picks up the item at source
func (s *DragState) Start(itemID string, source models.Location) {
	s.active = true
	s.itemID = itemID
	s.source = source
	s.target = source
}

// Active reports whether an item is picked up
func (s *DragState) Active() bool {
	return s.active
}

// ItemID returns the id of the item being moved
func (s *DragState) ItemID() string {
	return s.itemID
}

// Source returns where the item was picked up
func (s *DragState) Source() models.Location {
	return s.source
}

// Target returns the current landing slot
func (s *DragState) Target() models.Location {
	return s.target
}

// Clear drops all drag state
func (s *DragState) Clear() {
	*s = DragState{}
}

// Result builds the drop event. A cancelled drag has no destination.
func (s *DragState) Result(cancelled bool) models.DropResult {
	if cancelled {
		return models.DropResult{Source: s.source}
	}
	target := s.target
	return models.DropResult{Source: s.source, Destination: &target}
}

// MoveTargetColumn shifts the target by delta columns, stopping at the first
// column and at the new-column slot. Returns false if the target did not move.
func (s *DragState) MoveTargetColumn(delta int, b models.Board) bool {
	next := clamp(s.target.Column+delta, 0, len(b.Columns))
	if next == s.target.Column {
		return false
	}
	s.target.Column = next
	// keep the same row where possible
	s.target.Index = clamp(s.target.Index, 0, s.maxIndex(b))
	return true
}

// MoveTargetIndex shifts the target by delta rows within its column.
// Returns false if the target did not move.
func (s *DragState) MoveTargetIndex(delta int, b models.Board) bool {
	next := clamp(s.target.Index+delta, 0, s.maxIndex(b))
	if next == s.target.Index {
		return false
	}
	s.target.Index = next
	return true
}

// OnNewColumn reports whether the target is the slot after the last column
func (s *DragState) OnNewColumn(b models.Board) bool {
	return s.target.Column == len(b.Columns)
}

// maxIndex is the last valid landing index in the target column. Within the
// source column the item only swaps places; elsewhere it may also land
// after the last item.
func (s *DragState) maxIndex(b models.Board) int {
	if s.target.Column >= len(b.Columns) {
		return 0
	}
	n := len(b.Columns[s.target.Column].Items)
	if s.target.Column == s.source.Column {
		return n - 1
	}
	return n
}
