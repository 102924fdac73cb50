package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// dbTimeout bounds every storage call made from a key handler
const dbTimeout = 5 * time.Second

// addInputLimit caps the length of a new item
const addInputLimit = 500

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	DragState         *state.DragState
	EditState         *state.EditState
	NotificationState *state.NotificationState

	addInput textinput.Model
}

// InitialModel creates the TUI model over an initialized App
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "What needs doing?"
	input.CharLimit = addInputLimit

	m := Model{
		ctx:               ctx,
		App:               a,
		Config:            cfg,
		UiState:           state.NewUIState(),
		DragState:         state.NewDragState(),
		EditState:         state.NewEditState(),
		NotificationState: state.NewNotificationState(),
		addInput:          input,
	}
	if !a.Persistent() {
		m.NotificationState.Add(state.LevelInfo, "In-memory session: changes are lost on exit")
	}
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// DbContext returns a context for one storage round trip
func (m Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.ctx, dbTimeout)
}

// board returns the current board snapshot
func (m Model) board() models.Board {
	return m.App.ItemService.Board()
}

// currentItem returns the item under the cursor
func (m Model) currentItem() (models.Item, bool) {
	return m.board().ItemAt(m.UiState.Selection())
}

// selectItem moves the cursor onto the item with id, if it still exists
func (m Model) selectItem(id string) {
	if _, loc, ok := m.App.ItemService.FindItem(id); ok {
		m.UiState.Select(loc)
	}
	m.UiState.ClampSelection(m.board())
}

// handleError logs err and shows message to the user
func (m Model) handleError(message string, err error) {
	slog.Error(message, "error", err)
	m.NotificationState.Add(state.LevelError, message+": "+err.Error())
}
