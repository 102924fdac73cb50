package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// addInputWidth is the widest the add line grows
const addInputWidth = 60

// updateAddMode feeds the add line. Enter adds the typed text to the first
// column and keeps the line open; esc closes it.
func (m Model) updateAddMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.addInput.Blur()
			m.addInput.Reset()
			m.UiState.SetMode(state.NormalMode)
			return m, nil
		case "enter":
			return m.submitAddItem()
		}
		m.NotificationState.Clear()
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m Model) submitAddItem() (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	ctx, cancel := m.DbContext()
	defer cancel()

	item, added, err := m.App.ItemService.AddItem(ctx, m.addInput.Value())
	if err != nil {
		m.handleError("Failed to add item", err)
		return m, nil
	}
	if !added {
		m.NotificationState.Add(state.LevelInfo, "Nothing to add: type some text first")
		return m, nil
	}

	m.addInput.Reset()
	m.selectItem(item.ID)
	return m, nil
}
