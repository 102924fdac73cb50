package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// ColumnProps carries everything RenderColumn needs
type ColumnProps struct {
	Title string
	Items []models.Item
	// Focused marks the column holding the cursor or the drag target
	Focused bool
	// CursorIndex is the highlighted item, -1 for none
	CursorIndex int
	// DraggingID marks the item being moved, "" when not dragging
	DraggingID string
	// Height is the fixed outer height of the column (0 for auto)
	Height int
}

// RenderColumn renders a complete column with its title and items
//
// Layout:
//
//	{Title} ({count})
//	▲ (if scrolled down)
//	{Item 1}
//	{Item 2}
//	...
//	▼ (if more items below)
func RenderColumn(props ColumnProps) string {
	content := renderColumnHeader(props.Title, len(props.Items)) + "\n"

	if len(props.Items) == 0 {
		content += SubtleStyle.Padding(1, 0).Render("drop here")
	} else {
		maxVisible := MaxVisibleItems(props.Height)
		focus := props.CursorIndex
		if props.DraggingID != "" {
			for i, it := range props.Items {
				if it.ID == props.DraggingID {
					focus = i
				}
			}
		}
		offset := ScrollOffset(focus, len(props.Items), maxVisible)
		end := min(offset+maxVisible, len(props.Items))

		// Always reserve space for top indicator
		if offset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		cards := make([]string, 0, end-offset)
		for i := offset; i < end; i++ {
			it := props.Items[i]
			st := ItemIdle
			switch {
			case it.ID == props.DraggingID && props.DraggingID != "":
				st = ItemDragging
			case props.Focused && i == props.CursorIndex && props.DraggingID == "":
				st = ItemSelected
			}
			cards = append(cards, RenderItem(it, st))
		}
		content += lipgloss.JoinVertical(lipgloss.Left, cards...)

		if end < len(props.Items) {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if props.Focused {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets content area height
		style = style.Height(props.Height - 2)
	}

	return style.Render(content)
}

// MaxVisibleItems returns how many cards fit in a column of the given outer height
func MaxVisibleItems(height int) int {
	if height <= 0 {
		return 1 << 30
	}
	return max((height-ColumnOverhead)/ItemCardHeight, 1)
}

// ScrollOffset returns the first visible index that keeps focus on screen
func ScrollOffset(focus, count, maxVisible int) int {
	if count <= maxVisible || focus < maxVisible {
		return 0
	}
	return min(focus-maxVisible+1, count-maxVisible)
}

func renderColumnHeader(title string, count int) string {
	return TitleStyle.Render(fmt.Sprintf("%s (%d)", title, count))
}

// ColumnTitle names a column by its position, since columns carry no name
func ColumnTitle(index int) string {
	return fmt.Sprintf("Column %d", index+1)
}

// NewColumnPlaceholder renders the empty drop slot after the last column
func NewColumnPlaceholder(focused bool, height int) string {
	style := ColumnStyle.BorderStyle(lipgloss.NormalBorder())
	border := theme.Subtle
	if focused {
		border = theme.DropTarget
	}
	style = style.BorderForeground(lipgloss.Color(border))
	if height > 0 {
		style = style.Height(height - 2)
	}
	return style.Render(SubtleStyle.Render(strings.Join([]string{"+ new column", "", "drop here to start", "a new column"}, "\n")))
}
