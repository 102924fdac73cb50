package database

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/models"
)

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t))

	b, err := store.LoadBoard(context.Background())

	require.NoError(t, err)
	assert.Empty(t, b.Columns)
}

func TestSQLiteStore_SaveAndLoadPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupTestDB(t))
	want := sampleBoard()

	require.NoError(t, store.SaveBoard(ctx, want))

	got, err := store.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestSQLiteStore_SaveReplacesPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupTestDB(t))
	ids := board.NewSequenceGenerator("gen-")

	first := sampleBoard()
	require.NoError(t, store.SaveBoard(ctx, first))

	// Move item-3 to the front of col-1, which prunes col-2
	second, err := board.Move(first, models.Location{Column: 1, Index: 0}, models.Location{Column: 0, Index: 0}, ids)
	require.NoError(t, err)
	second, _ = board.Edit(second, "item-1", "buy oat milk")
	require.NoError(t, store.SaveBoard(ctx, second))

	got, err := store.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(second, got))

	var columnCount int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM columns").Scan(&columnCount))
	assert.Equal(t, 1, columnCount)
}

func TestSQLiteStore_SaveEmptyBoardClearsTables(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupTestDB(t))

	require.NoError(t, store.SaveBoard(ctx, sampleBoard()))
	require.NoError(t, store.SaveBoard(ctx, models.Board{}))

	got, err := store.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Columns)
}

func TestSQLiteStore_RejectsInvalidBoard(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupTestDB(t))
	require.NoError(t, store.SaveBoard(ctx, sampleBoard()))

	invalid := models.Board{Columns: []models.Column{
		{ID: "col-1", Items: []models.Item{{ID: "dup"}, {ID: "dup"}}},
	}}

	err := store.SaveBoard(ctx, invalid)
	assert.ErrorIs(t, err, board.ErrDuplicateID)

	// previous snapshot must survive the rejected save
	got, err := store.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(sampleBoard(), got))
}

func TestSQLiteStore_LoadRejectsDuplicateColumnIDsInItems(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	store := NewSQLiteStore(db)

	// An item id equal to a column id breaks id uniqueness across the board
	_, err := db.Exec("INSERT INTO columns (id, position) VALUES ('x', 0)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO items (id, column_id, position, content) VALUES ('x', 'x', 0, 'clash')")
	require.NoError(t, err)

	_, err = store.LoadBoard(ctx)
	assert.ErrorIs(t, err, board.ErrDuplicateID)
}

func TestInitDB_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := setupTestDBPath(t)

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).SaveBoard(ctx, sampleBoard()))
	require.NoError(t, db.Close())

	reopened, err := InitDB(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := NewSQLiteStore(reopened).LoadBoard(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(sampleBoard(), got))
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := sampleBoard()
	require.NoError(t, store.SaveBoard(ctx, original))
	original.Columns[0].Items[0].Content = "mutated after save"

	loaded, err := store.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", loaded.Columns[0].Items[0].Content)

	loaded.Columns[0].Items[0].Content = "mutated after load"
	again, err := store.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", again.Columns[0].Items[0].Content)
}

func TestMemoryStore_HonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewMemoryStore().SaveBoard(ctx, sampleBoard())
	assert.ErrorIs(t, err, context.Canceled)
}

// ============================================================================
// UPDATE BOARD
// ============================================================================

func TestUpdateBoard(t *testing.T) {
	errRejected := errors.New("rejected")

	stores := map[string]func(t *testing.T) BoardStore{
		"sqlite": func(t *testing.T) BoardStore { return NewSQLiteStore(setupTestDB(t)) },
		"memory": func(*testing.T) BoardStore { return NewMemoryStore() },
	}

	for name, newStore := range stores {
		t.Run(name+"/applies fn to the stored board", func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)
			require.NoError(t, store.SaveBoard(ctx, sampleBoard()))

			got, changed, err := store.UpdateBoard(ctx, func(current models.Board) (models.Board, bool, error) {
				next, ok := board.Delete(current, "item-3")
				return next, ok, nil
			})
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Len(t, got.Columns, 1)

			loaded, err := store.LoadBoard(ctx)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(got, loaded))
		})

		t.Run(name+"/unchanged returns the stored board", func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)
			require.NoError(t, store.SaveBoard(ctx, sampleBoard()))

			got, changed, err := store.UpdateBoard(ctx, func(current models.Board) (models.Board, bool, error) {
				return models.Board{}, false, nil
			})
			require.NoError(t, err)
			assert.False(t, changed)
			assert.Empty(t, cmp.Diff(sampleBoard(), got))
		})

		t.Run(name+"/error leaves the store untouched", func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)
			require.NoError(t, store.SaveBoard(ctx, sampleBoard()))

			_, _, err := store.UpdateBoard(ctx, func(current models.Board) (models.Board, bool, error) {
				return models.Board{}, true, errRejected
			})
			assert.ErrorIs(t, err, errRejected)

			loaded, err := store.LoadBoard(ctx)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(sampleBoard(), loaded))
		})
	}
}

func TestSQLiteStore_UpdateBoardSeesOtherConnections(t *testing.T) {
	ctx := context.Background()
	path := setupTestDBPath(t)

	first, err := InitDB(ctx, path)
	require.NoError(t, err)
	defer first.Close()
	second, err := InitDB(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, NewSQLiteStore(first).SaveBoard(ctx, sampleBoard()))

	ids := board.NewSequenceGenerator("gen-")
	got, _, err := NewSQLiteStore(second).UpdateBoard(ctx, func(current models.Board) (models.Board, bool, error) {
		next, _, ok := board.Add(current, "call mom", ids)
		return next, ok, nil
	})
	require.NoError(t, err)

	require.Len(t, got.Columns, 2)
	assert.Len(t, got.Columns[0].Items, 3)
}
