// ABOUTME: Wires configuration, storage, and business rules into one App.
// ABOUTME: Shared by the CLI and the MCP server.

package app

import (
	"context"
	"fmt"

	"github.com/harper/litenotes/internal/config"
	"github.com/harper/litenotes/internal/db"
	"github.com/harper/litenotes/internal/service"
	"go.uber.org/zap"
)

// App holds the services one process works against.
type App struct {
	Notes      *service.NoteService
	Categories *service.CategoryService
	Log        *zap.Logger

	gw *db.Gateway
}

// New opens the database described by cfg and builds the services on top of
// it. Callers must Close the App.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	gw, err := db.Open(ctx, cfg.Database.Path, db.Options{
		Driver:         cfg.Database.Driver,
		MaxOpenConns:   cfg.Database.MaxOpenConns,
		SeedCategories: cfg.Database.SeedCategories,
		Logger:         log,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	categories := db.NewCategoryStore(gw)
	a := &App{
		Notes:      service.NewNoteService(db.NewNoteStore(gw), categories, cfg.Notes.RequireCategory, log),
		Categories: service.NewCategoryService(categories),
		Log:        log,
		gw:         gw,
	}

	log.Info("litenotes started",
		zap.String("version", BuildVersion()),
		zap.String("db", cfg.Database.Path),
		zap.Bool("require_category", cfg.Notes.RequireCategory),
	)
	return a, nil
}

func (a *App) Close() error {
	_ = a.Log.Sync()
	return a.gw.Close()
}
