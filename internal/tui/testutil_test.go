package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/testutil"
)

var errSaveFailed = errors.New("disk full")

// failingStore loads normally but refuses every save
type failingStore struct {
	*database.MemoryStore
}

func (failingStore) SaveBoard(context.Context, models.Board) error {
	return errSaveFailed
}

func (failingStore) UpdateBoard(context.Context, database.UpdateFunc) (models.Board, bool, error) {
	return models.Board{}, false, errSaveFailed
}

// setupTestModel builds a sized Model over a memory store seeded with b
func setupTestModel(t *testing.T, b models.Board) Model {
	t.Helper()
	return newSizedModel(t, testutil.NewMemoryApp(t, b))
}

func setupTestModelWithStore(t *testing.T, store database.BoardStore) Model {
	t.Helper()
	return newSizedModel(t, testutil.NewAppWithStore(t, store))
}

func newSizedModel(t *testing.T, a *app.App) Model {
	t.Helper()

	m := InitialModel(context.Background(), a, config.Default())
	m.NotificationState.Clear()
	return send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

// send runs one message through Update and returns the new model
func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

// press sends a sequence of keys
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m = send(m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}
