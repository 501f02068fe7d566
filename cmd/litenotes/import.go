// ABOUTME: Import command for restoring notes from backup.
// ABOUTME: Supports JSON files and directories of markdown files.

package main

import (
	"fmt"
	"os"

	"github.com/harper/litenotes/internal/export"
	"github.com/harper/litenotes/internal/ui"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import notes",
	Long:  `Import notes from a JSON export or a directory of markdown files.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat path: %w", err)
		}

		var doc *export.Document
		if info.IsDir() {
			doc, err = export.ReadMarkdownDir(path)
		} else {
			doc, err = readJSONFile(path)
		}
		if err != nil {
			return err
		}

		result, err := export.Import(cmd.Context(), doc, application.Notes, application.Categories)
		if err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		errOut := cmd.ErrOrStderr()
		for _, f := range result.Failures {
			fmt.Fprintf(errOut, "Warning: failed to import %q: %v\n", f.Title, f.Err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Imported %d notes", result.Imported)))
		return nil
	},
}

func readJSONFile(path string) (*export.Document, error) {
	f, err := os.Open(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return export.ReadJSON(f)
}

func init() {
	rootCmd.AddCommand(importCmd)
}
