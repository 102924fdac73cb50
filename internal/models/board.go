package models

// Board is the full ordered collection of columns.
type Board struct {
	Columns []Column `json:"columns"`
}

// Location addresses a slot on the board by column index and item index.
type Location struct {
	Column int `json:"column"`
	Index  int `json:"index"`
}

// DropResult is the outcome of a drag gesture.
// Destination is nil when the drag was cancelled outside any column.
type DropResult struct {
	Source      Location  `json:"source"`
	Destination *Location `json:"destination,omitempty"`
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	if b.Columns == nil {
		return Board{}
	}
	columns := make([]Column, len(b.Columns))
	for i, col := range b.Columns {
		columns[i] = col.Clone()
	}
	return Board{Columns: columns}
}

// ItemCount returns the number of items across every column
func (b Board) ItemCount() int {
	count := 0
	for _, col := range b.Columns {
		count += len(col.Items)
	}
	return count
}

// IsEmpty reports whether the board holds no columns
func (b Board) IsEmpty() bool {
	return len(b.Columns) == 0
}

// Find returns the location of the item with the given id
func (b Board) Find(id string) (Location, bool) {
	for c, col := range b.Columns {
		for i, item := range col.Items {
			if item.ID == id {
				return Location{Column: c, Index: i}, true
			}
		}
	}
	return Location{}, false
}

// ItemAt returns the item at loc, or false if loc does not address an item
func (b Board) ItemAt(loc Location) (Item, bool) {
	if loc.Column < 0 || loc.Column >= len(b.Columns) {
		return Item{}, false
	}
	items := b.Columns[loc.Column].Items
	if loc.Index < 0 || loc.Index >= len(items) {
		return Item{}, false
	}
	return items[loc.Index], true
}
