package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// ItemState selects how a card is highlighted
type ItemState int

const (
	ItemIdle     ItemState = iota
	ItemSelected           // cursor is on the card
	ItemDragging           // card is being moved; drawn at its landing slot
)

// RenderItem renders a single item as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {content line 1}           ┃
//	┃ {content line 2}…          ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
//
// The card has a fixed height; long content is wrapped then truncated.
func RenderItem(item models.Item, st ItemState) string {
	bg := theme.ItemBg
	border := theme.Subtle
	switch st {
	case ItemSelected:
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	case ItemDragging:
		bg = theme.SelectedBg
		border = theme.DropTarget
	}

	style := ItemStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))

	return style.Render(cardLines(item.Content))
}

// cardLines wraps content to the card width and keeps the first
// itemContentLines lines, marking cut text with an ellipsis.
func cardLines(content string) string {
	width := itemCardWidth - 2 // one space either side
	flat := strings.Join(strings.Fields(content), " ")
	if flat == "" {
		return padLines([]string{SubtleStyle.Render("(empty)")})
	}

	lines := strings.Split(wordwrap.String(flat, width), "\n")
	// wordwrap never breaks inside a word; hard-cut anything still too wide
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = truncate.StringWithTail(line, uint(width), "…")
		}
	}

	if len(lines) > itemContentLines {
		last := lines[itemContentLines-1]
		lines = lines[:itemContentLines]
		lines[itemContentLines-1] = truncate.StringWithTail(last+" …", uint(width), "…")
	}

	return padLines(lines)
}

func padLines(lines []string) string {
	for len(lines) < itemContentLines {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = " " + line
	}
	return strings.Join(lines, "\n")
}
