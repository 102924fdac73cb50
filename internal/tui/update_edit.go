package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// updateEditDialog routes messages to the edit form and handles its completion
func (m Model) updateEditDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.EditState.Form == nil {
		return m.closeEditDialog()
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		return m.closeEditDialog()
	}

	model, cmd := m.EditState.Form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.EditState.Form = f
	}

	switch m.EditState.Form.State {
	case huh.StateCompleted:
		return m.submitEditItem()
	case huh.StateAborted:
		return m.closeEditDialog()
	}
	return m, cmd
}

// submitEditItem saves the dialog content. Empty text is saved as typed.
func (m Model) submitEditItem() (tea.Model, tea.Cmd) {
	item := m.EditState.Item()
	if m.EditState.Changed() {
		ctx, cancel := m.DbContext()
		defer cancel()
		if _, err := m.App.ItemService.EditItem(ctx, item.ID, m.EditState.Content); err != nil {
			m.handleError("Failed to save item", err)
		}
	}
	return m.closeEditDialog()
}

func (m Model) closeEditDialog() (tea.Model, tea.Cmd) {
	m.EditState.Close()
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}
