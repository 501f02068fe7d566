// ABOUTME: Note business rules applied before storage writes.
// ABOUTME: Validates title and category, then delegates to the note store.

package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/harper/litenotes/internal/db"
	"github.com/harper/litenotes/internal/models"
	"go.uber.org/zap"
)

type noteStore interface {
	ListAll(ctx context.Context) ([]*models.Note, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*models.Note, error)
	Get(ctx context.Context, id int64) (*models.Note, error)
	Create(ctx context.Context, note *models.Note) (int64, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id int64) error
}

type categoryLookup interface {
	Get(ctx context.Context, id int64) (*models.Category, error)
}

// noteFields is the validated view of a note.
type noteFields struct {
	Title      string `json:"title" validate:"notblank"`
	CategoryID int64  `json:"category" validate:"required"`
}

var fieldMessages = map[string]string{
	"notblank": "cannot be empty",
	"required": "is required",
}

type NoteService struct {
	notes           noteStore
	categories      categoryLookup
	requireCategory bool
	validate        *validator.Validate
	log             *zap.Logger
}

// NewNoteService builds the note rules. requireCategory is fixed for the
// lifetime of the service.
func NewNoteService(notes noteStore, categories categoryLookup, requireCategory bool, log *zap.Logger) *NoteService {
	if log == nil {
		log = zap.NewNop()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})

	return &NoteService{
		notes:           notes,
		categories:      categories,
		requireCategory: requireCategory,
		validate:        v,
		log:             log.Named("notes"),
	}
}

// RequiresCategory reports whether notes must be assigned a category.
func (s *NoteService) RequiresCategory() bool {
	return s.requireCategory
}

func (s *NoteService) Create(ctx context.Context, note *models.Note) (int64, error) {
	if err := s.check(ctx, note); err != nil {
		return 0, err
	}

	id, err := s.notes.Create(ctx, note)
	if err != nil {
		return 0, fmt.Errorf("create note: %w", err)
	}

	s.log.Info("note created", zap.Int64("id", id), zap.Int64("category_id", note.CategoryID()))
	return id, nil
}

func (s *NoteService) Update(ctx context.Context, note *models.Note) error {
	if note != nil && note.ID <= 0 {
		return NewValidationError("id", "is required")
	}
	if err := s.check(ctx, note); err != nil {
		return err
	}

	if err := s.notes.Update(ctx, note); err != nil {
		return fmt.Errorf("update note: %w", err)
	}

	s.log.Info("note updated", zap.Int64("id", note.ID))
	return nil
}

func (s *NoteService) ListAll(ctx context.Context) ([]*models.Note, error) {
	return s.notes.ListAll(ctx)
}

func (s *NoteService) ListByCategory(ctx context.Context, categoryID int64) ([]*models.Note, error) {
	return s.notes.ListByCategory(ctx, categoryID)
}

func (s *NoteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	return s.notes.Get(ctx, id)
}

func (s *NoteService) Delete(ctx context.Context, id int64) error {
	return s.notes.Delete(ctx, id)
}

// check runs field rules first, then confirms a supplied category exists.
func (s *NoteService) check(ctx context.Context, note *models.Note) error {
	if note == nil {
		return NewValidationError("note", "is required")
	}

	fields := noteFields{
		Title:      note.Title,
		CategoryID: note.CategoryID(),
	}

	var err error
	if s.requireCategory {
		err = s.validate.Struct(fields)
	} else {
		err = s.validate.StructExcept(fields, "CategoryID")
	}
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate note: %w", err)
		}
		out := &ValidationError{}
		for _, fe := range verrs {
			out.Errors = append(out.Errors, FieldError{
				Field:   fe.Field(),
				Message: fieldMessages[fe.Tag()],
			})
		}
		return out
	}

	if note.Category == nil {
		return nil
	}
	if note.Category.ID <= 0 {
		if s.requireCategory {
			return NewValidationError("category", "is required")
		}
		note.Category = nil
		return nil
	}

	category, err := s.categories.Get(ctx, note.Category.ID)
	if errors.Is(err, db.ErrCategoryNotFound) {
		return NewValidationError("category", fmt.Sprintf("%d does not exist", note.Category.ID))
	}
	if err != nil {
		return fmt.Errorf("look up category: %w", err)
	}
	note.Category = category
	return nil
}
