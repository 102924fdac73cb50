package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.addInput.Width = max(min(msg.Width-8, addInputWidth), 10)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Modes with an embedded bubble receive every message, not just keys
	switch m.UiState.Mode() {
	case state.AddMode:
		return m.updateAddMode(msg)
	case state.EditMode:
		return m.updateEditDialog(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.DragMode:
		return m.handleDragMode(keyMsg)
	case state.HelpMode:
		return m.handleHelpMode(keyMsg)
	default:
		return m.handleNormalMode(keyMsg)
	}
}
