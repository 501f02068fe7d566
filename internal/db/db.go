// ABOUTME: Storage gateway for the litenotes SQLite database.
// ABOUTME: Handles XDG paths, driver selection, schema setup, and scoped connections.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	// DriverPure is the pure-Go modernc.org/sqlite driver.
	DriverPure = "sqlite"
	// DriverCgo is the cgo-based mattn/go-sqlite3 driver.
	DriverCgo = "sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    content TEXT,
    category_id INTEGER
);

CREATE INDEX IF NOT EXISTS idx_notes_category ON notes(category_id);
`

// Options configures Open. The zero value uses the pure-Go driver, a single
// connection, no seeding and a no-op logger.
type Options struct {
	Driver         string
	MaxOpenConns   int
	SeedCategories []string
	Logger         *zap.Logger
}

// Gateway owns the database handle. Every store operation borrows one
// connection through withConn and returns it before the call completes.
type Gateway struct {
	db  *sql.DB
	log *zap.Logger
}

func Open(ctx context.Context, path string, opts Options) (*Gateway, error) {
	if opts.Driver == "" {
		opts.Driver = DriverPure
	}
	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = 1
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	sqlDB, err := sql.Open(opts.Driver, path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)

	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	g := &Gateway{
		db:  sqlDB,
		log: opts.Logger.Named("db"),
	}

	if err := g.seedCategories(ctx, opts.SeedCategories); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("seed categories: %w", err)
	}

	g.log.Debug("database opened",
		zap.String("path", path),
		zap.String("driver", opts.Driver),
	)
	return g, nil
}

func (g *Gateway) Close() error {
	return g.db.Close()
}

// withConn runs fn on a dedicated connection. Failures are logged and
// returned as *StorageError; the connection is released on every path.
func (g *Gateway) withConn(ctx context.Context, op string, fn func(conn *sql.Conn) error) error {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		return g.fail(op, fmt.Errorf("acquire connection: %w", err))
	}
	defer func() { _ = conn.Close() }()

	if err := fn(conn); err != nil {
		return g.fail(op, err)
	}
	return nil
}

func (g *Gateway) fail(op string, err error) error {
	g.log.Error("storage operation failed", zap.String("op", op), zap.Error(err))
	return &StorageError{Op: op, Err: err}
}

// seedCategories inserts names only into an empty categories table, so user
// data is never touched on later opens.
func (g *Gateway) seedCategories(ctx context.Context, names []string) error {
	var clean []string
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			clean = append(clean, name)
		}
	}
	if len(clean) == 0 {
		return nil
	}

	var count int
	if err := g.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	insert := squirrel.Insert("categories").Columns("name")
	for _, name := range clean {
		insert = insert.Values(name)
	}
	stmt, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	if _, err := g.db.ExecContext(ctx, stmt, args...); err != nil {
		return err
	}

	g.log.Info("seeded default categories", zap.Strings("names", clean))
	return nil
}

func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "litenotes", "litenotes.db")
}
