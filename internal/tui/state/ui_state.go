package state

import "github.com/thenoetrevino/lanes/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	AddMode                // Typing a new item
	EditMode               // Edit dialog is open
	DragMode               // An item is picked up and being moved
	HelpMode               // Displaying help screen
)

// reservedHeight is the space used by the header, add line and status bar
const reservedHeight = 6

// UIState manages the user interface state.
// This includes the cursor (column/item selection), terminal dimensions,
// and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the column holding the cursor
	selectedColumn int

	// selectedItem is the index of the cursor within the selected column
	selectedItem int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedItem returns the index of the currently selected item.
func (s *UIState) SelectedItem() int {
	return s.selectedItem
}

// SetSelectedItem updates the selected item index.
func (s *UIState) SetSelectedItem(index int) {
	s.selectedItem = index
}

// Select moves the cursor to loc
func (s *UIState) Select(loc models.Location) {
	s.selectedColumn = loc.Column
	s.selectedItem = loc.Index
}

// Selection returns the cursor as a board location
func (s *UIState) Selection() models.Location {
	return models.Location{Column: s.selectedColumn, Index: s.selectedItem}
}

// ClampSelection keeps the cursor on an existing item after the board
// changed underneath it. On an empty board the cursor rests at 0,0.
func (s *UIState) ClampSelection(b models.Board) {
	if len(b.Columns) == 0 {
		s.selectedColumn, s.selectedItem = 0, 0
		return
	}
	s.selectedColumn = clamp(s.selectedColumn, 0, len(b.Columns)-1)
	s.selectedItem = clamp(s.selectedItem, 0, len(b.Columns[s.selectedColumn].Items)-1)
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize records new terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ContentHeight returns the height available for columns.
func (s *UIState) ContentHeight() int {
	return max(s.height-reservedHeight, 0)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
