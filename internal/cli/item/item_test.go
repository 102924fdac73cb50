package item

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/testutil"
)

// seedBoard is c1[a b] c2[c]
func seedBoard() models.Board {
	return models.Board{Columns: []models.Column{
		{ID: "c1", Items: []models.Item{
			{ID: "a", Content: "buy milk"},
			{ID: "b", Content: "walk dog"},
		}},
		{ID: "c2", Items: []models.Item{
			{ID: "c", Content: "write report"},
		}},
	}}
}

// setupCLI returns a session over a memory store seeded with b
func setupCLI(t *testing.T, b models.Board) *cli.CLI {
	t.Helper()
	return &cli.CLI{App: testutil.NewMemoryApp(t, b), Config: config.Default()}
}

// run executes cmd with args against session and returns stdout, stderr
func run(t *testing.T, session *cli.CLI, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	return testutil.ExecuteCommand(t, cli.WithCLI(context.Background(), session), cmd, args...)
}

func TestAdd_JoinsArgs(t *testing.T) {
	session := setupCLI(t, seedBoard())

	out, _, err := run(t, session, AddCmd(), "pay", "rent", "--quiet")
	require.NoError(t, err)

	assert.Equal(t, testutil.IDPrefix + "1\n", out)
	assert.Equal(t, []string{"buy milk", "walk dog", "pay rent"}, testutil.Contents(session.App.ItemService.Board())[0])
}

func TestAdd_JSON(t *testing.T) {
	session := setupCLI(t, models.Board{})

	out, _, err := run(t, session, AddCmd(), "first", "--json")
	require.NoError(t, err)

	var result struct {
		Success bool       `json:"success"`
		Data    itemResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "first", result.Data.Content)
	assert.Equal(t, 1, result.Data.Column)
	assert.Equal(t, 1, result.Data.Position)
}

func TestAdd_BlankText(t *testing.T) {
	session := setupCLI(t, seedBoard())

	_, stderr, err := run(t, session, AddCmd(), "   ")

	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, stderr, "blank")
	assert.Equal(t, 3, session.App.ItemService.Board().ItemCount())
}

func TestAdd_MissingArgs(t *testing.T) {
	session := setupCLI(t, seedBoard())

	_, _, err := run(t, session, AddCmd())

	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestEdit(t *testing.T) {
	session := setupCLI(t, seedBoard())

	out, _, err := run(t, session, EditCmd(), "b", "walk the dog")
	require.NoError(t, err)
	assert.Contains(t, out, "walk the dog")

	it, _, _ := session.App.ItemService.FindItem("b")
	assert.Equal(t, "walk the dog", it.Content)
}

func TestEdit_UnknownID(t *testing.T) {
	session := setupCLI(t, seedBoard())

	_, stderr, err := run(t, session, EditCmd(), "nope", "text")

	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Contains(t, stderr, "lanes list")
}

func TestDelete_PrunesColumn(t *testing.T) {
	session := setupCLI(t, seedBoard())

	out, _, err := run(t, session, DeleteCmd(), "c")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")

	assert.Len(t, session.App.ItemService.Board().Columns, 1)
}

func TestDelete_UnknownID(t *testing.T) {
	session := setupCLI(t, seedBoard())

	_, _, err := run(t, session, DeleteCmd(), "nope", "--json")

	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want [][]string
	}{
		{
			name: "end of other column",
			args: []string{"a", "--column", "2"},
			want: [][]string{{"walk dog"}, {"write report", "buy milk"}},
		},
		{
			name: "top of other column",
			args: []string{"a", "--column", "2", "--position", "1"},
			want: [][]string{{"walk dog"}, {"buy milk", "write report"}},
		},
		{
			name: "end of own column",
			args: []string{"a", "--column", "1"},
			want: [][]string{{"walk dog", "buy milk"}, {"write report"}},
		},
		{
			name: "new column prunes source",
			args: []string{"c", "--column", "3"},
			want: [][]string{{"buy milk", "walk dog"}, {"write report"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := setupCLI(t, seedBoard())

			_, _, err := run(t, session, MoveCmd(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, testutil.Contents(session.App.ItemService.Board()))
		})
	}
}

func TestMove_NewColumnGetsFreshID(t *testing.T) {
	session := setupCLI(t, seedBoard())

	_, _, err := run(t, session, MoveCmd(), "a", "--column", "3")
	require.NoError(t, err)

	b := session.App.ItemService.Board()
	require.Len(t, b.Columns, 3)
	assert.Equal(t, testutil.IDPrefix+"1", b.Columns[2].ID)
}

func TestMove_OutOfRange(t *testing.T) {
	session := setupCLI(t, seedBoard())
	before := session.App.ItemService.Board()

	_, _, err := run(t, session, MoveCmd(), "a", "--column", "5")

	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Equal(t, before, session.App.ItemService.Board())
}

func TestMove_PositionCountsFromOne(t *testing.T) {
	for _, column := range []string{"1", "2"} {
		t.Run("column "+column, func(t *testing.T) {
			session := setupCLI(t, seedBoard())
			before := session.App.ItemService.Board()

			_, _, err := run(t, session, MoveCmd(), "a", "--column", column, "--position", "0")

			require.Error(t, err)
			assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
			assert.Equal(t, before, session.App.ItemService.Board())
		})
	}
}

func TestMove_RequiresColumn(t *testing.T) {
	session := setupCLI(t, seedBoard())

	_, _, err := run(t, session, MoveCmd(), "a")

	require.Error(t, err)
}

func TestList(t *testing.T) {
	session := setupCLI(t, seedBoard())

	t.Run("human", func(t *testing.T) {
		out, _, err := run(t, session, ListCmd())
		require.NoError(t, err)
		for _, want := range []string{"COLUMN", "buy milk", "write report"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("quiet", func(t *testing.T) {
		out, _, err := run(t, session, ListCmd(), "--quiet")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, strings.Fields(out))
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := run(t, session, ListCmd(), "--json")
		require.NoError(t, err)

		var result struct {
			Data boardResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.Len(t, result.Data.Columns, 2)
		assert.Equal(t, "c2", result.Data.Columns[1].ID)
	})
}

func TestList_Empty(t *testing.T) {
	session := setupCLI(t, models.Board{})

	out, _, err := run(t, session, ListCmd())
	require.NoError(t, err)
	assert.Equal(t, "No items yet\n", out)
}

func TestCommands_WithoutSession(t *testing.T) {
	cmd := ListCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(context.Background())

	require.ErrorIs(t, err, cli.ErrNoCLI)
}

// TestMove_SQLiteRoundTrip ensures a move survives a reload from disk.
func TestMove_SQLiteRoundTrip(t *testing.T) {
	session := &cli.CLI{App: testutil.NewSQLiteApp(t, seedBoard()), Config: config.Default()}

	_, _, err := run(t, session, MoveCmd(), "c", "--column", "1", "--position", "2")
	require.NoError(t, err)

	require.NoError(t, session.App.ItemService.Reload(context.Background()))
	assert.Equal(t, [][]string{{"buy milk", "write report", "walk dog"}}, testutil.Contents(session.App.ItemService.Board()))
}
