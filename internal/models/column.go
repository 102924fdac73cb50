package models

// Column is an ordered list of items.
// ID is stable for the column's lifetime, but operations address columns by
// their current index on the board. Columns never persist while empty.
type Column struct {
	ID    string `json:"id"`
	Items []Item `json:"items"`
}

// Len returns the number of items in the column
func (c Column) Len() int {
	return len(c.Items)
}

// Clone returns a copy of the column that shares no backing array with c
func (c Column) Clone() Column {
	if c.Items == nil {
		return Column{ID: c.ID}
	}
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return Column{ID: c.ID, Items: items}
}
