package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// editDialogWidth is the outer width of the edit dialog
const editDialogWidth = 56

// previewIDs names the column a drag preview would create. The id never
// reaches the service.
type previewIDs struct{}

func (previewIDs) NewID() string { return "preview" }

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		return "Loading..."
	}

	switch m.UiState.Mode() {
	case state.HelpMode:
		return m.viewHelp()
	case state.EditMode:
		if m.EditState.Form != nil {
			return m.viewEditDialog()
		}
	}

	sections := []string{m.viewHeader(), m.viewBoard()}
	if m.UiState.Mode() == state.AddMode {
		sections = append(sections, components.AddInputBoxStyle.Render(m.addInput.View()))
	}
	for _, n := range m.NotificationState.All() {
		sections = append(sections, renderNotification(n))
	}
	sections = append(sections, m.viewStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	where := "in-memory session"
	if m.App.Persistent() {
		where = "saved"
	}
	return components.TitleStyle.Render("lanes") + " " + components.SubtleStyle.Render(where)
}

// viewBoard lays the columns out side by side. While dragging, the board is
// drawn as it would look if the item were dropped at its current target.
func (m Model) viewBoard() string {
	b := m.board()
	focus := m.UiState.Selection()
	dragging := m.DragState.Active()

	if dragging {
		preview, _, err := board.Drop(b, m.DragState.Result(false), previewIDs{})
		if err == nil {
			b = preview
		}
		if loc, ok := b.Find(m.DragState.ItemID()); ok {
			focus = loc
		}
	}

	if b.IsEmpty() {
		return components.SubtleStyle.Padding(1, 2).Render(
			fmt.Sprintf("No items yet. Press %s to add one.", keyLabel(m.Config.KeyMappings.AddItem)))
	}

	height := m.UiState.ContentHeight()
	rendered := make([]string, 0, len(b.Columns)+1)
	for i, col := range b.Columns {
		props := components.ColumnProps{
			Title:       components.ColumnTitle(i),
			Items:       col.Items,
			Focused:     i == focus.Column,
			CursorIndex: -1,
			Height:      height,
		}
		if i == focus.Column {
			props.CursorIndex = focus.Index
		}
		if dragging {
			props.DraggingID = m.DragState.ItemID()
		}
		rendered = append(rendered, components.RenderColumn(props))
	}
	if dragging && !m.DragState.OnNewColumn(m.board()) {
		rendered = append(rendered, components.NewColumnPlaceholder(false, height))
	}

	perScreen := max(m.UiState.Width()/components.ColumnWidth, 1)
	offset := components.ScrollOffset(focus.Column, len(rendered), perScreen)
	end := min(offset+perScreen, len(rendered))

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered[offset:end]...)
}

func (m Model) viewEditDialog() string {
	box := components.EditDialogBoxStyle.
		Width(editDialogWidth).
		Render(m.EditState.Form.View())

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

func (m Model) viewStatusBar() string {
	km := m.Config.KeyMappings
	var hints []string

	switch m.UiState.Mode() {
	case state.AddMode:
		hints = []string{"enter add", "esc done"}
	case state.DragMode:
		hints = []string{
			km.PrevColumn + "/" + km.NextColumn + " column",
			km.PrevItem + "/" + km.NextItem + " position",
			keyLabel(km.PickUpItem) + " drop",
			keyLabel(km.CancelDrag) + " cancel",
		}
	default:
		hints = []string{
			km.AddItem + " add",
			km.EditItem + " edit",
			km.DeleteItem + " delete",
			keyLabel(km.PickUpItem) + " move",
			km.ShowHelp + " help",
			km.Quit + " quit",
		}
	}

	b := m.board()
	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  strings.Join(hints, " · "),
		Right: fmt.Sprintf("%d items · %d columns", b.ItemCount(), len(b.Columns)),
	})
}

func renderNotification(n state.Notification) string {
	if n.Level == state.LevelError {
		return components.ErrorBannerStyle.Render(n.Message)
	}
	return components.InfoBannerStyle.Render(n.Message)
}

// keyLabel spells out keys that render as whitespace
func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

