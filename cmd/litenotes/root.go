// ABOUTME: Root command and shared application lifecycle.
// ABOUTME: Loads config, builds the logger, and opens the app before each command.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/harper/litenotes/internal/app"
	"github.com/harper/litenotes/internal/config"
	"github.com/harper/litenotes/internal/db"
	"github.com/harper/litenotes/internal/logging"
	"github.com/harper/litenotes/internal/models"
	"github.com/harper/litenotes/internal/ui"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string

	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "litenotes",
	Short: "Categorized notes in a local SQLite database",
	Long: `litenotes keeps short notes, each filed under a category,
in a single SQLite file. Notes can be listed, filtered by category,
edited, exported, and served to AI agents over MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipsApp(cmd) {
			return nil
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.Database.Path = dbPath
		}

		log, err := logging.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}

		application, err = app.New(cmd.Context(), cfg, log)
		return err
	},
}

// skipAppAnnotation marks commands that never touch the database.
const skipAppAnnotation = "litenotes/skip-app"

// skipsApp reports whether cmd, or a command above it, needs no app. This
// covers version plus cobra's help and shell completion commands.
func skipsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipAppAnnotation]; ok {
			return true
		}
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

// Execute runs the CLI and closes the app whatever the outcome.
func Execute(ctx context.Context) error {
	defer closeApp()
	return rootCmd.ExecuteContext(ctx)
}

func closeApp() {
	if application != nil {
		_ = application.Close()
		application = nil
	}
}

// resolveCategory turns a --category flag into a category. Empty means none.
func resolveCategory(ctx context.Context, ref string) (*models.Category, error) {
	if ref == "" {
		return nil, nil
	}
	category, err := application.Categories.Resolve(ctx, ref)
	if errors.Is(err, db.ErrCategoryNotFound) {
		return nil, fmt.Errorf("unknown category %q (see 'litenotes categories')", ref)
	}
	return category, err
}

// printNotes re-reads storage and prints the list, optionally filtered.
func printNotes(cmd *cobra.Command, filter *models.Category) error {
	ctx := cmd.Context()

	var (
		notes []*models.Note
		err   error
	)
	if ui.IsAllCategories(filter) {
		notes, err = application.Notes.ListAll(ctx)
	} else {
		notes, err = application.Notes.ListByCategory(ctx, filter.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.FormatNoteList(notes))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default $XDG_DATA_HOME/litenotes/litenotes.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/litenotes/config.yaml)")
}
