// ABOUTME: Tests for note business rules.
// ABOUTME: Covers validation, category requirement, and store delegation.

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/harper/litenotes/internal/db"
	"github.com/harper/litenotes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type noteStoreMock struct {
	CreateFunc func(ctx context.Context, note *models.Note) (int64, error)
	UpdateFunc func(ctx context.Context, note *models.Note) error

	createCalls int
	updateCalls int
}

func (m *noteStoreMock) ListAll(ctx context.Context) ([]*models.Note, error) {
	return nil, nil
}

func (m *noteStoreMock) ListByCategory(ctx context.Context, categoryID int64) ([]*models.Note, error) {
	return nil, nil
}

func (m *noteStoreMock) Get(ctx context.Context, id int64) (*models.Note, error) {
	return nil, db.ErrNoteNotFound
}

func (m *noteStoreMock) Create(ctx context.Context, note *models.Note) (int64, error) {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, note)
	}
	return 1, nil
}

func (m *noteStoreMock) Update(ctx context.Context, note *models.Note) error {
	m.updateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, note)
	}
	return nil
}

func (m *noteStoreMock) Delete(ctx context.Context, id int64) error {
	return nil
}

type categoryLookupMock map[int64]string

func (m categoryLookupMock) Get(ctx context.Context, id int64) (*models.Category, error) {
	name, ok := m[id]
	if !ok {
		return nil, db.ErrCategoryNotFound
	}
	return &models.Category{ID: id, Name: name}, nil
}

func TestCreateNote_Success(t *testing.T) {
	store := &noteStoreMock{
		CreateFunc: func(ctx context.Context, note *models.Note) (int64, error) {
			note.ID = 7
			return 7, nil
		},
	}
	svc := NewNoteService(store, categoryLookupMock{1: "Work"}, true, zaptest.NewLogger(t))

	note := models.NewNote("Buy milk", "", &models.Category{ID: 1})
	id, err := svc.Create(context.Background(), note)

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "Work", note.CategoryName(), "category should be resolved from the lookup")
	assert.Equal(t, 1, store.createCalls)
}

func TestCreateNote_BlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		store := &noteStoreMock{}
		svc := NewNoteService(store, categoryLookupMock{1: "Work"}, true, zaptest.NewLogger(t))

		_, err := svc.Create(context.Background(), models.NewNote(title, "content", &models.Category{ID: 1}))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "title %q", title)
		assert.True(t, verr.Has("title"))
		assert.ErrorIs(t, err, ErrValidation)
		assert.Zero(t, store.createCalls, "no storage write on validation failure")
	}
}

func TestCreateNote_MissingRequiredCategory(t *testing.T) {
	store := &noteStoreMock{}
	svc := NewNoteService(store, categoryLookupMock{}, true, zaptest.NewLogger(t))

	_, err := svc.Create(context.Background(), models.NewNote("Title", "", nil))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("category"))
	assert.Zero(t, store.createCalls)
}

func TestCreateNote_CollectsAllFieldErrors(t *testing.T) {
	svc := NewNoteService(&noteStoreMock{}, categoryLookupMock{}, true, zaptest.NewLogger(t))

	_, err := svc.Create(context.Background(), models.NewNote(" ", "", nil))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 2)
	assert.True(t, verr.Has("title"))
	assert.True(t, verr.Has("category"))
}

func TestCreateNote_UnknownCategory(t *testing.T) {
	store := &noteStoreMock{}
	svc := NewNoteService(store, categoryLookupMock{1: "Work"}, false, zaptest.NewLogger(t))

	_, err := svc.Create(context.Background(), models.NewNote("Title", "", &models.Category{ID: 5}))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("category"))
	assert.Zero(t, store.createCalls)
}

func TestCreateNote_OptionalCategory(t *testing.T) {
	var stored *models.Note
	store := &noteStoreMock{
		CreateFunc: func(ctx context.Context, note *models.Note) (int64, error) {
			stored = note
			return 1, nil
		},
	}
	svc := NewNoteService(store, categoryLookupMock{}, false, zaptest.NewLogger(t))
	assert.False(t, svc.RequiresCategory())

	_, err := svc.Create(context.Background(), models.NewNote("Title", "", &models.Category{ID: 0}))

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Nil(t, stored.Category, "sentinel category 0 should be stored as unassigned")
}

func TestCreateNote_StorageErrorPropagates(t *testing.T) {
	storageErr := &db.StorageError{Op: "create note", Err: errors.New("disk full")}
	store := &noteStoreMock{
		CreateFunc: func(ctx context.Context, note *models.Note) (int64, error) {
			return 0, storageErr
		},
	}
	svc := NewNoteService(store, categoryLookupMock{1: "Work"}, true, zaptest.NewLogger(t))

	_, err := svc.Create(context.Background(), models.NewNote("Title", "", &models.Category{ID: 1}))

	require.Error(t, err)
	assert.True(t, db.IsStorageError(err))
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestUpdateNote_Validation(t *testing.T) {
	store := &noteStoreMock{}
	svc := NewNoteService(store, categoryLookupMock{1: "Work"}, true, zaptest.NewLogger(t))
	ctx := context.Background()

	err := svc.Update(ctx, &models.Note{ID: 3, Title: "  ", Category: &models.Category{ID: 1}})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Update(ctx, &models.Note{ID: 3, Title: "Fine"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Update(ctx, &models.Note{Title: "No id", Category: &models.Category{ID: 1}})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Zero(t, store.updateCalls)

	err = svc.Update(ctx, &models.Note{ID: 3, Title: "Fine", Category: &models.Category{ID: 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, store.updateCalls)
}

func TestNilNoteIsValidationError(t *testing.T) {
	svc := NewNoteService(&noteStoreMock{}, categoryLookupMock{}, true, nil)

	_, err := svc.Create(context.Background(), nil)
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Update(context.Background(), nil)
	assert.ErrorIs(t, err, ErrValidation)
}
