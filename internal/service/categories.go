// ABOUTME: Category business rules.
// ABOUTME: Passthrough listing plus id-or-name resolution for callers.

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/harper/litenotes/internal/db"
	"github.com/harper/litenotes/internal/models"
)

type categoryStore interface {
	ListAll(ctx context.Context) ([]*models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
}

type CategoryService struct {
	categories categoryStore
}

func NewCategoryService(categories categoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) ListAll(ctx context.Context) ([]*models.Category, error) {
	return s.categories.ListAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return s.categories.Get(ctx, id)
}

// Resolve finds a category from a numeric id or a case-insensitive name.
func (s *CategoryService) Resolve(ctx context.Context, ref string) (*models.Category, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, NewValidationError("category", "is required")
	}

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		category, err := s.categories.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("category %d: %w", id, err)
		}
		return category, nil
	}

	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	for _, c := range categories {
		if c.Matches(ref) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("category %q: %w", ref, db.ErrCategoryNotFound)
}
