// Package board implements the list-state transformations of a board:
// adding, editing, deleting, reordering and moving items.
//
// Every function is pure. The input board is never modified; any column whose
// items change is rebuilt with a fresh backing array, so callers may keep the
// previous board value as a snapshot.
package board

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/lanes/internal/models"
)

// Add appends a new item holding text to the first column, creating that
// column when the board is empty. Blank text (after trimming) is a no-op and
// reports false. The content is stored exactly as given.
func Add(b models.Board, text string, ids IDGenerator) (models.Board, models.Item, bool) {
	if strings.TrimSpace(text) == "" {
		return b, models.Item{}, false
	}

	item := models.Item{ID: ids.NewID(), Content: text}

	next := copyColumns(b)
	if len(next.Columns) == 0 {
		next.Columns = append(next.Columns, models.Column{ID: ids.NewID()})
	}
	next.Columns[0].Items = insertAt(next.Columns[0].Items, len(next.Columns[0].Items), item)

	return next, item, true
}

// Edit replaces the content of the item with the given id. An unknown id is
// silently ignored and reports false.
func Edit(b models.Board, id string, text string) (models.Board, bool) {
	next := copyColumns(b)
	changed := false

	for c, col := range b.Columns {
		cloned := false
		for i, item := range col.Items {
			if item.ID != id {
				continue
			}
			if !cloned {
				next.Columns[c].Items = cloneItems(col.Items)
				cloned = true
			}
			next.Columns[c].Items[i].Content = text
			changed = true
		}
	}

	if !changed {
		return b, false
	}
	return next, true
}

// Delete removes the item with the given id and prunes any column left
// empty. An unknown id is silently ignored and reports false.
func Delete(b models.Board, id string) (models.Board, bool) {
	loc, ok := b.Find(id)
	if !ok {
		return b, false
	}

	next := copyColumns(b)
	next.Columns[loc.Column].Items = removeAt(b.Columns[loc.Column].Items, loc.Index)

	return Prune(next), true
}

// Reorder moves the item at index from to index to within one column.
// Equal indices produce a new column with identical contents.
func Reorder(col models.Column, from, to int) (models.Column, error) {
	n := len(col.Items)
	if from < 0 || from >= n {
		return col, fmt.Errorf("%w: source index %d, column has %d items", ErrIndexOutOfRange, from, n)
	}
	if to < 0 || to >= n {
		return col, fmt.Errorf("%w: destination index %d, column has %d items", ErrIndexOutOfRange, to, n)
	}

	item := col.Items[from]
	items := insertAt(removeAt(col.Items, from), to, item)

	return models.Column{ID: col.ID, Items: items}, nil
}

// Move relocates the item at src to dst and prunes empty columns afterwards.
//
// When both locations share a column the call is a Reorder. A destination
// column equal to the number of columns appends a new column, with an id
// taken from ids, that holds only the moved item. The destination index may
// equal the destination column's length to append at the end.
func Move(b models.Board, src, dst models.Location, ids IDGenerator) (models.Board, error) {
	if src.Column < 0 || src.Column >= len(b.Columns) {
		return b, fmt.Errorf("%w: source column %d, board has %d columns", ErrColumnOutOfRange, src.Column, len(b.Columns))
	}
	srcItems := b.Columns[src.Column].Items
	if src.Index < 0 || src.Index >= len(srcItems) {
		return b, fmt.Errorf("%w: source index %d, column has %d items", ErrIndexOutOfRange, src.Index, len(srcItems))
	}

	if src.Column == dst.Column {
		col, err := Reorder(b.Columns[src.Column], src.Index, dst.Index)
		if err != nil {
			return b, err
		}
		next := copyColumns(b)
		next.Columns[src.Column] = col
		return next, nil
	}

	if dst.Column < 0 || dst.Column > len(b.Columns) {
		return b, fmt.Errorf("%w: destination column %d, board has %d columns", ErrColumnOutOfRange, dst.Column, len(b.Columns))
	}

	next := copyColumns(b)
	if dst.Column == len(b.Columns) {
		next.Columns = append(next.Columns, models.Column{ID: ids.NewID()})
	}

	dstItems := next.Columns[dst.Column].Items
	if dst.Index < 0 || dst.Index > len(dstItems) {
		return b, fmt.Errorf("%w: destination index %d, column has %d items", ErrIndexOutOfRange, dst.Index, len(dstItems))
	}

	item := srcItems[src.Index]
	next.Columns[src.Column].Items = removeAt(srcItems, src.Index)
	next.Columns[dst.Column].Items = insertAt(dstItems, dst.Index, item)

	return Prune(next), nil
}

// Drop applies the result of a drag gesture. A cancelled drag (nil
// destination) or a drop back onto the source slot leaves the board
// unchanged and reports false.
func Drop(b models.Board, result models.DropResult, ids IDGenerator) (models.Board, bool, error) {
	if result.Destination == nil {
		return b, false, nil
	}
	if *result.Destination == result.Source {
		return b, false, nil
	}

	next, err := Move(b, result.Source, *result.Destination, ids)
	if err != nil {
		return b, false, err
	}
	return next, true, nil
}

// Prune returns the board without its empty columns
func Prune(b models.Board) models.Board {
	columns := make([]models.Column, 0, len(b.Columns))
	for _, col := range b.Columns {
		if len(col.Items) > 0 {
			columns = append(columns, col)
		}
	}
	return models.Board{Columns: columns}
}

// Validate checks the board invariants: every column and item has an id,
// ids are unique, and no column is empty.
func Validate(b models.Board) error {
	seen := make(map[string]struct{}, b.ItemCount()+len(b.Columns))

	for c, col := range b.Columns {
		if col.ID == "" {
			return fmt.Errorf("%w: column %d", ErrEmptyColumnID, c)
		}
		if _, dup := seen[col.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, col.ID)
		}
		seen[col.ID] = struct{}{}

		if len(col.Items) == 0 {
			return fmt.Errorf("%w: column %d (%s)", ErrEmptyColumn, c, col.ID)
		}
		for i, item := range col.Items {
			if item.ID == "" {
				return fmt.Errorf("%w: column %d index %d", ErrEmptyItemID, c, i)
			}
			if _, dup := seen[item.ID]; dup {
				return fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
			}
			seen[item.ID] = struct{}{}
		}
	}
	return nil
}

// copyColumns copies the column slice. Item slices are still shared, so
// callers must replace, never write into, a column's Items.
func copyColumns(b models.Board) models.Board {
	columns := make([]models.Column, len(b.Columns), len(b.Columns)+1)
	copy(columns, b.Columns)
	return models.Board{Columns: columns}
}

func cloneItems(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)
	return out
}

func removeAt(items []models.Item, i int) []models.Item {
	out := make([]models.Item, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func insertAt(items []models.Item, i int, item models.Item) []models.Item {
	out := make([]models.Item, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, item)
	return append(out, items[i:]...)
}
