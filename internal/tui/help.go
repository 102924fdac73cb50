package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/tui/components"
)

// helpMarkdown builds the help screen from the active key mappings
func helpMarkdown(km config.KeyMappings) string {
	var sb strings.Builder
	sb.WriteString("# lanes\n\n")
	sb.WriteString("Items are added to the first column. Pick an item up and drop it ")
	sb.WriteString("anywhere on the board, or past the last column to start a new one. ")
	sb.WriteString("Columns disappear when their last item leaves.\n\n")

	row := func(key, action string) {
		fmt.Fprintf(&sb, "| `%s` | %s |\n", keyLabel(key), action)
	}

	sb.WriteString("## Board\n\n| key | action |\n|---|---|\n")
	row(km.PrevColumn+" "+km.NextColumn, "previous / next column")
	row(km.PrevItem+" "+km.NextItem, "previous / next item")
	row(km.AddItem, "add items (enter adds, esc closes)")
	row(km.EditItem, "edit the selected item")
	row(km.DeleteItem, "delete the selected item")
	row(km.PickUpItem, "pick up the selected item")
	row(km.Reload, "reload the board from storage")
	row(km.ShowHelp, "toggle this help")
	row(km.Quit, "quit")

	sb.WriteString("\n## Moving an item\n\n| key | action |\n|---|---|\n")
	row(km.PrevColumn+" "+km.NextColumn, "target column")
	row(km.PrevItem+" "+km.NextItem, "target position")
	row(km.PickUpItem, "drop (enter works too)")
	row(km.CancelDrag, "cancel")

	return sb.String()
}

// viewHelp renders the help markdown in a centered box
func (m Model) viewHelp() string {
	width := max(min(m.UiState.Width()-4, 80), 20)

	content := helpMarkdown(m.Config.KeyMappings)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width-4),
	)
	if err == nil {
		if out, renderErr := renderer.Render(content); renderErr == nil {
			content = out
		} else {
			slog.Error("failed to render help", "error", renderErr)
		}
	} else {
		slog.Error("failed to create help renderer", "error", err)
	}

	box := components.HelpBoxStyle.Width(width).Render(strings.TrimSpace(content))
	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
