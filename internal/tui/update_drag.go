package tui

import (
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	itemservice "github.com/thenoetrevino/lanes/internal/services/item"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// handleDragMode moves the landing slot of a picked-up item. The pick-up
// key or enter drops it; the cancel key ends the drag with no destination.
func (m Model) handleDragMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	km := m.Config.KeyMappings
	b := m.board()

	switch key {
	case km.PrevColumn, "left":
		m.DragState.MoveTargetColumn(-1, b)
	case km.NextColumn, "right":
		m.DragState.MoveTargetColumn(1, b)
	case km.PrevItem, "up":
		m.DragState.MoveTargetIndex(-1, b)
	case km.NextItem, "down":
		m.DragState.MoveTargetIndex(1, b)
	case km.PickUpItem, "enter":
		return m.finishDrag(false)
	case km.CancelDrag:
		return m.finishDrag(true)
	}
	return m, nil
}

// finishDrag hands the drag result to the service and follows the item
func (m Model) finishDrag(cancelled bool) (tea.Model, tea.Cmd) {
	itemID := m.DragState.ItemID()
	result := m.DragState.Result(cancelled)
	m.DragState.Clear()
	m.UiState.SetMode(state.NormalMode)

	ctx, cancel := m.DbContext()
	defer cancel()

	changed, err := m.App.ItemService.Drop(ctx, result)
	switch {
	case errors.Is(err, itemservice.ErrBoardChanged):
		if reloadErr := m.App.ItemService.Reload(ctx); reloadErr != nil {
			m.handleError("Failed to reload board", reloadErr)
		} else {
			m.NotificationState.Add(state.LevelInfo, "The board changed elsewhere and was reloaded; move the item again")
		}
	case err != nil:
		m.handleError("Failed to move item", err)
	}
	slog.Debug("drag finished", "item_id", itemID, "cancelled", cancelled, "changed", changed)

	m.selectItem(itemID)
	return m, nil
}
