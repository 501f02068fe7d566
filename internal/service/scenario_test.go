// ABOUTME: End-to-end tests of the note rules against a real SQLite store.
// ABOUTME: Walks the create, list, filter, update, and delete lifecycle.

package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/harper/litenotes/internal/db"
	"github.com/harper/litenotes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestServices(t *testing.T, seed ...string) (*NoteService, *CategoryService) {
	t.Helper()
	log := zaptest.NewLogger(t)
	gw, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), db.Options{
		SeedCategories: seed,
		Logger:         log,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = gw.Close() })

	categories := db.NewCategoryStore(gw)
	return NewNoteService(db.NewNoteStore(gw), categories, true, log), NewCategoryService(categories)
}

func TestNoteLifecycle(t *testing.T) {
	ctx := context.Background()
	notes, categories := newTestServices(t, "Work")

	all, err := categories.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	work := all[0]
	assert.Equal(t, int64(1), work.ID)

	id, err := notes.Create(ctx, models.NewNote("Buy milk", "", work))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	listed, err := notes.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(1), listed[0].ID)
	assert.Equal(t, "Buy milk", listed[0].Title)
	assert.Equal(t, "Work", listed[0].CategoryName())

	filtered, err := notes.ListByCategory(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, filtered)

	note := listed[0]
	note.Title = "Buy oat milk"
	require.NoError(t, notes.Update(ctx, note))

	listed, err = notes.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Buy oat milk", listed[0].Title)
	assert.Equal(t, int64(1), listed[0].ID)

	require.NoError(t, notes.Delete(ctx, 1))
	listed, err = notes.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	require.NoError(t, notes.Delete(ctx, 1), "deleting a missing note is idempotent")
}

func TestRoundTripPreservesFields(t *testing.T) {
	ctx := context.Background()
	notes, _ := newTestServices(t, "Work", "Personal")

	submitted := models.NewNote("Groceries", "eggs\nbread", &models.Category{ID: 2})
	id, err := notes.Create(ctx, submitted)
	require.NoError(t, err)

	got, err := notes.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
	assert.Equal(t, "eggs\nbread", got.Content)
	assert.Equal(t, int64(2), got.CategoryID())
	assert.Equal(t, "Personal", got.CategoryName())
}

func TestBlankTitleWritesNothing(t *testing.T) {
	ctx := context.Background()
	notes, _ := newTestServices(t, "Work")

	_, err := notes.Create(ctx, models.NewNote("   ", "body", &models.Category{ID: 1}))
	require.ErrorIs(t, err, ErrValidation)

	listed, err := notes.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
