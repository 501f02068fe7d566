// ABOUTME: Database operations for categories.
// ABOUTME: Read-only access to the category lookup table.

package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/harper/litenotes/internal/models"
)

type CategoryStore struct {
	gw *Gateway
}

func NewCategoryStore(gw *Gateway) *CategoryStore {
	return &CategoryStore{gw: gw}
}

// ListAll returns every category ordered by name. An empty table yields an
// empty slice, a failed read a *StorageError.
func (s *CategoryStore) ListAll(ctx context.Context) ([]*models.Category, error) {
	const op = "list categories"

	stmt, args, err := squirrel.Select("id", "name").
		From("categories").
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, s.gw.fail(op, err)
	}

	categories := []*models.Category{}
	err = s.gw.withConn(ctx, op, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, stmt, args...)
		if err != nil {
			return err
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var (
				id   int64
				name string
			)
			if err := rows.Scan(&id, &name); err != nil {
				return err
			}
			categories = append(categories, models.NewCategory(id, name))
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) Get(ctx context.Context, id int64) (*models.Category, error) {
	const op = "get category"

	stmt, args, err := squirrel.Select("id", "name").
		From("categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, s.gw.fail(op, err)
	}

	var category *models.Category
	err = s.gw.withConn(ctx, op, func(conn *sql.Conn) error {
		c := &models.Category{}
		err := conn.QueryRowContext(ctx, stmt, args...).Scan(&c.ID, &c.Name)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		category = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
