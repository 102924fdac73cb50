package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/models"
)

func init() {
	InitStyles(config.DefaultColorScheme())
}

func testItems(contents ...string) []models.Item {
	items := make([]models.Item, len(contents))
	for i, c := range contents {
		items[i] = models.Item{ID: c, Content: c}
	}
	return items
}

func TestRenderColumnHeader(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		count    int
		wantText string
	}{
		{"empty column", "Column 1", 0, "Column 1 (0)"},
		{"single item", "Column 2", 1, "Column 2 (1)"},
		{"many items", "Column 3", 42, "Column 3 (42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := renderColumnHeader(tt.title, tt.count)
			if !strings.Contains(result, tt.wantText) {
				t.Errorf("renderColumnHeader() = %q, want to contain %q", result, tt.wantText)
			}
		})
	}
}

func TestRenderColumn_ShowsItems(t *testing.T) {
	out := RenderColumn(ColumnProps{
		Title:       "Column 1",
		Items:       testItems("buy milk", "walk dog"),
		Focused:     true,
		CursorIndex: 1,
	})

	for _, want := range []string{"Column 1 (2)", "buy milk", "walk dog"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderColumn() missing %q:\n%s", want, out)
		}
	}
}

func TestRenderColumn_FixedHeight(t *testing.T) {
	out := RenderColumn(ColumnProps{
		Title:       "Column 1",
		Items:       testItems("a", "b", "c", "d", "e", "f", "g", "h"),
		CursorIndex: 0,
		Height:      20,
	})

	if h := lipgloss.Height(out); h != 20 {
		t.Errorf("column height = %d, want 20", h)
	}
	if !strings.Contains(out, "more below") {
		t.Errorf("expected a more-below indicator:\n%s", out)
	}
}

func TestRenderColumn_ScrollsToCursor(t *testing.T) {
	items := testItems("i0", "i1", "i2", "i3", "i4", "i5", "i6", "i7")
	out := RenderColumn(ColumnProps{
		Title:       "Column 1",
		Items:       items,
		Focused:     true,
		CursorIndex: 7,
		Height:      20,
	})

	if !strings.Contains(out, "i7") {
		t.Errorf("selected item i7 not visible:\n%s", out)
	}
	if strings.Contains(out, "i0") {
		t.Errorf("item i0 should be scrolled out:\n%s", out)
	}
	if !strings.Contains(out, "more above") {
		t.Errorf("expected a more-above indicator:\n%s", out)
	}
}

func TestRenderColumn_Empty(t *testing.T) {
	out := RenderColumn(ColumnProps{Title: "Column 1", CursorIndex: -1})
	if !strings.Contains(out, "drop here") {
		t.Errorf("empty column should invite a drop:\n%s", out)
	}
}

func TestRenderItem_TruncatesLongContent(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out := RenderItem(models.Item{ID: "x", Content: long}, ItemIdle)

	if h := lipgloss.Height(out); h != ItemCardHeight {
		t.Errorf("card height = %d, want %d", h, ItemCardHeight)
	}
	if !strings.Contains(out, "…") {
		t.Errorf("long content should end with an ellipsis:\n%s", out)
	}
}

func TestRenderItem_UnbrokenWordIsCut(t *testing.T) {
	out := RenderItem(models.Item{ID: "x", Content: strings.Repeat("A", 200)}, ItemSelected)

	if h := lipgloss.Height(out); h != ItemCardHeight {
		t.Errorf("card height = %d, want %d", h, ItemCardHeight)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > itemCardWidth+2 {
			t.Errorf("card line width = %d, want <= %d", w, itemCardWidth+2)
		}
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		focus, count, maxVisible, want int
	}{
		{0, 3, 5, 0},
		{4, 10, 5, 0},
		{5, 10, 5, 1},
		{9, 10, 5, 5},
		{20, 10, 5, 5},
	}

	for _, tt := range tests {
		if got := ScrollOffset(tt.focus, tt.count, tt.maxVisible); got != tt.want {
			t.Errorf("ScrollOffset(%d, %d, %d) = %d, want %d", tt.focus, tt.count, tt.maxVisible, got, tt.want)
		}
	}
}

func TestRenderStatusBar_FillsWidth(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 60, Left: "lanes", Right: "? help"})

	if w := lipgloss.Width(out); w != 60 {
		t.Errorf("status bar width = %d, want 60", w)
	}
}
