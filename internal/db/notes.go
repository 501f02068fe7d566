// ABOUTME: Database operations for notes.
// ABOUTME: Provides CRUD plus category-joined listing and filtering.

package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/harper/litenotes/internal/models"
	"go.uber.org/zap"
)

type NoteStore struct {
	gw *Gateway
}

func NewNoteStore(gw *Gateway) *NoteStore {
	return &NoteStore{gw: gw}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// selectNotes joins each note with its category name. The left join keeps
// notes whose category is unset or no longer exists.
func selectNotes() squirrel.SelectBuilder {
	return squirrel.Select("n.id", "n.title", "n.content", "n.category_id", "c.name").
		From("notes n").
		LeftJoin("categories c ON n.category_id = c.id")
}

func scanNote(row rowScanner) (*models.Note, error) {
	var (
		note         models.Note
		content      sql.NullString
		categoryID   sql.NullInt64
		categoryName sql.NullString
	)
	if err := row.Scan(&note.ID, &note.Title, &content, &categoryID, &categoryName); err != nil {
		return nil, err
	}
	note.Content = content.String
	if categoryID.Valid {
		note.Category = &models.Category{
			ID:   categoryID.Int64,
			Name: categoryName.String,
		}
	}
	return &note, nil
}

func categoryArg(note *models.Note) sql.NullInt64 {
	if note.Category == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: note.Category.ID, Valid: true}
}

// ListAll returns every note, newest (highest id) first.
func (s *NoteStore) ListAll(ctx context.Context) ([]*models.Note, error) {
	return s.list(ctx, "list notes", selectNotes().OrderBy("n.id DESC"))
}

// ListByCategory returns the notes whose category id equals categoryID,
// newest first.
func (s *NoteStore) ListByCategory(ctx context.Context, categoryID int64) ([]*models.Note, error) {
	query := selectNotes().
		Where(squirrel.Eq{"n.category_id": categoryID}).
		OrderBy("n.id DESC")
	return s.list(ctx, "list notes by category", query)
}

func (s *NoteStore) list(ctx context.Context, op string, query squirrel.SelectBuilder) ([]*models.Note, error) {
	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, s.gw.fail(op, err)
	}

	notes := []*models.Note{}
	err = s.gw.withConn(ctx, op, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, stmt, args...)
		if err != nil {
			return err
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			note, err := scanNote(rows)
			if err != nil {
				return err
			}
			notes = append(notes, note)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteStore) Get(ctx context.Context, id int64) (*models.Note, error) {
	const op = "get note"

	stmt, args, err := selectNotes().Where(squirrel.Eq{"n.id": id}).ToSql()
	if err != nil {
		return nil, s.gw.fail(op, err)
	}

	var note *models.Note
	err = s.gw.withConn(ctx, op, func(conn *sql.Conn) error {
		n, err := scanNote(conn.QueryRowContext(ctx, stmt, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		note = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// Create inserts the note and returns the id assigned by the database. The
// id is also written back to note.ID.
func (s *NoteStore) Create(ctx context.Context, note *models.Note) (int64, error) {
	const op = "create note"

	stmt, args, err := squirrel.Insert("notes").
		Columns("title", "content", "category_id").
		Values(note.Title, note.Content, categoryArg(note)).
		ToSql()
	if err != nil {
		return 0, s.gw.fail(op, err)
	}

	var id int64
	err = s.gw.withConn(ctx, op, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, stmt, args...)
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}

	note.ID = id
	s.gw.log.Debug("note created", zap.Int64("id", id))
	return id, nil
}

// Update overwrites title, content and category of the row with note.ID.
// A missing row is not an error.
func (s *NoteStore) Update(ctx context.Context, note *models.Note) error {
	const op = "update note"

	stmt, args, err := squirrel.Update("notes").
		Set("title", note.Title).
		Set("content", note.Content).
		Set("category_id", categoryArg(note)).
		Where(squirrel.Eq{"id": note.ID}).
		ToSql()
	if err != nil {
		return s.gw.fail(op, err)
	}

	return s.exec(ctx, op, note.ID, stmt, args)
}

// Delete removes the row with id. A missing row is not an error.
func (s *NoteStore) Delete(ctx context.Context, id int64) error {
	const op = "delete note"

	stmt, args, err := squirrel.Delete("notes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return s.gw.fail(op, err)
	}

	return s.exec(ctx, op, id, stmt, args)
}

func (s *NoteStore) exec(ctx context.Context, op string, id int64, stmt string, args []any) error {
	return s.gw.withConn(ctx, op, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, stmt, args...)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			s.gw.log.Debug("no matching note", zap.String("op", op), zap.Int64("id", id))
		}
		return nil
	})
}
