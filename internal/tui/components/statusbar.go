package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	Left  string
	Right string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(props.Left)
	rightRendered := style.Render(props.Right)

	// Calculate space between left and right text
	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}

	return leftRendered + strings.Repeat(" ", gapWidth) + rightRendered
}
