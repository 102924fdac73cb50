// Package testutil holds fixtures shared by the tests of the command line
// and terminal UI layers.
package testutil

import "github.com/thenoetrevino/lanes/internal/models"

// SampleBoard returns two columns: col-1[item-1 item-2 item-3] and col-2[item-4]
func SampleBoard() models.Board {
	return models.Board{Columns: []models.Column{
		{ID: "col-1", Items: []models.Item{
			{ID: "item-1", Content: "buy milk"},
			{ID: "item-2", Content: "walk dog"},
			{ID: "item-3", Content: "write report"},
		}},
		{ID: "col-2", Items: []models.Item{
			{ID: "item-4", Content: "call mom"},
		}},
	}}
}

// Contents lists item contents column by column
func Contents(b models.Board) [][]string {
	out := make([][]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		texts := make([]string, 0, len(col.Items))
		for _, it := range col.Items {
			texts = append(texts, it.Content)
		}
		out = append(out, texts)
	}
	return out
}
