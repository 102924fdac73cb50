package components

const (
	ItemCardHeight   = 4  // ItemCardHeight is the fixed height of an item card (2 text lines + borders)
	ColumnWidth      = 34 // outer width of a column, borders included
	itemCardWidth    = 28 // inner width of an item card
	itemContentLines = 2  // lines of content shown before truncation

	// ColumnOverhead is header + top indicator + bottom indicator + borders
	ColumnOverhead = 6
)
