package state

import (
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/lanes/internal/models"
)

// EditState is the edit dialog: whether it is open, which item it edits,
// and the content being typed. Content is bound to the dialog's form, so
// the EditState must not be copied while the dialog is open.
type EditState struct {
	open    bool
	item    models.Item
	Content string
	Form    *huh.Form
}

// NewEditState creates a closed EditState.
func NewEditState() *EditState {
	return &EditState{}
}

// Open starts editing item; Content is seeded with its current text
func (s *EditState) Open(item models.Item) {
	s.open = true
	s.item = item
	s.Content = item.Content
}

// IsOpen reports whether the dialog is showing
func (s *EditState) IsOpen() bool {
	return s.open
}

// Item returns the item being edited
func (s *EditState) Item() models.Item {
	return s.item
}

// Changed reports whether Content differs from the item's text
func (s *EditState) Changed() bool {
	return s.Content != s.item.Content
}

// Close hides the dialog and forgets the item
func (s *EditState) Close() {
	s.open = false
	s.item = models.Item{}
	s.Content = ""
	s.Form = nil
}
