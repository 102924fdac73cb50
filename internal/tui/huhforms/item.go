package huhforms

import "github.com/charmbracelet/huh"

// editFormWidth matches the edit dialog's inner width
const editFormWidth = 48

// CreateItemForm creates a huh form for editing an item's text.
// The form contains a single input field bound to content.
// No confirmation field is used - the form saves on completion.
func CreateItemForm(content *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("content").
			Title("Edit Item").
			Placeholder("Enter item text...").
			Value(content),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithShowHelp(false).
		WithWidth(editFormWidth)
}
