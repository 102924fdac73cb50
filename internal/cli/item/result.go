package item

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/thenoetrevino/lanes/internal/models"
)

// itemResult is the output of the single-item commands. Column and
// Position are 1-based, matching the command flags.
type itemResult struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Column   int    `json:"column"`
	Position int    `json:"position"`
	Changed  bool   `json:"changed"`

	action string
}

func newItemResult(action string, it models.Item, loc models.Location, changed bool) itemResult {
	return itemResult{
		ID:       it.ID,
		Content:  it.Content,
		Column:   loc.Column + 1,
		Position: loc.Index + 1,
		Changed:  changed,
		action:   action,
	}
}

func (r itemResult) GetID() string {
	return r.ID
}

func (r itemResult) String() string {
	if !r.Changed {
		return fmt.Sprintf("Item %s unchanged", r.ID)
	}
	return fmt.Sprintf("✓ Item %s %s: %q (column %d, position %d)", r.ID, r.action, r.Content, r.Column, r.Position)
}

// deleteResult is the output of delete
type deleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (r deleteResult) GetID() string {
	return r.ID
}

func (r deleteResult) String() string {
	return fmt.Sprintf("✓ Item %s deleted", r.ID)
}

// boardResult is the output of list
type boardResult struct {
	Columns []columnResult `json:"columns"`
}

type columnResult struct {
	ID    string        `json:"id"`
	Items []models.Item `json:"items"`
}

func newBoardResult(b models.Board) boardResult {
	out := boardResult{Columns: make([]columnResult, 0, len(b.Columns))}
	for _, col := range b.Columns {
		out.Columns = append(out.Columns, columnResult{ID: col.ID, Items: col.Items})
	}
	return out
}

func (r boardResult) GetIDs() []string {
	var ids []string
	for _, col := range r.Columns {
		for _, it := range col.Items {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// String renders the board as a table, one row per item
func (r boardResult) String() string {
	if len(r.Columns) == 0 {
		return "No items yet"
	}

	var rows [][]string
	for c, col := range r.Columns {
		for i, it := range col.Items {
			rows = append(rows, []string{
				fmt.Sprint(c + 1),
				fmt.Sprint(i + 1),
				it.ID,
				strings.ReplaceAll(it.Content, "\n", " "),
			})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("COLUMN", "POS", "ID", "CONTENT").
		Rows(rows...)
	return t.String()
}
