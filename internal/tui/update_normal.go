package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/lanes/internal/tui/huhforms"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit:
		return m.handleQuit()
	case km.ShowHelp:
		return m.handleShowHelp()
	case km.AddItem:
		return m.handleAddItem()
	case km.EditItem:
		return m.handleEditItem()
	case km.DeleteItem:
		return m.handleDeleteItem()
	case km.PickUpItem:
		return m.handlePickUpItem()
	case km.Reload:
		return m.handleReload()
	case km.PrevColumn, "left":
		return m.handleNavigateColumn(-1)
	case km.NextColumn, "right":
		return m.handleNavigateColumn(1)
	case km.PrevItem, "up":
		return m.handleNavigateItem(-1)
	case km.NextItem, "down":
		return m.handleNavigateItem(1)
	}

	return m, nil
}

func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.HelpMode)
	return m, nil
}

// handleAddItem opens the add line. The line stays open after each add so
// several items can be entered in a row.
func (m Model) handleAddItem() (tea.Model, tea.Cmd) {
	m.addInput.Reset()
	cmd := m.addInput.Focus()
	m.UiState.SetMode(state.AddMode)
	return m, cmd
}

// handleEditItem opens the edit dialog for the item under the cursor
func (m Model) handleEditItem() (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No item selected")
		return m, nil
	}

	m.EditState.Open(item)
	m.EditState.Form = huhforms.CreateItemForm(&m.EditState.Content)
	m.UiState.SetMode(state.EditMode)
	return m, m.EditState.Form.Init()
}

func (m Model) handleDeleteItem() (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No item selected")
		return m, nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	if _, err := m.App.ItemService.DeleteItem(ctx, item.ID); err != nil {
		m.handleError("Failed to delete item", err)
		return m, nil
	}

	m.UiState.ClampSelection(m.board())
	return m, nil
}

// handlePickUpItem starts a keyboard drag of the item under the cursor
func (m Model) handlePickUpItem() (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No item selected")
		return m, nil
	}

	m.DragState.Start(item.ID, m.UiState.Selection())
	m.UiState.SetMode(state.DragMode)
	slog.Debug("drag started", "item_id", item.ID)
	return m, nil
}

// handleReload re-reads the board from storage, picking up changes made by
// the command line while the TUI is open
func (m Model) handleReload() (tea.Model, tea.Cmd) {
	ctx, cancel := m.DbContext()
	defer cancel()

	selected, hadSelection := m.currentItem()
	if err := m.App.ItemService.Reload(ctx); err != nil {
		m.handleError("Failed to reload board", err)
		return m, nil
	}

	if hadSelection {
		m.selectItem(selected.ID)
	} else {
		m.UiState.ClampSelection(m.board())
	}
	m.NotificationState.Add(state.LevelInfo, "Board reloaded")
	return m, nil
}

func (m Model) handleNavigateColumn(delta int) (tea.Model, tea.Cmd) {
	m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + delta)
	m.UiState.ClampSelection(m.board())
	return m, nil
}

func (m Model) handleNavigateItem(delta int) (tea.Model, tea.Cmd) {
	m.UiState.SetSelectedItem(m.UiState.SelectedItem() + delta)
	m.UiState.ClampSelection(m.board())
	return m, nil
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", " ":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
