// ABOUTME: Add command for creating new notes.
// ABOUTME: Supports inline content or file input, filed under a category.

package main

import (
	"fmt"
	"os"

	"github.com/harper/litenotes/internal/models"
	"github.com/harper/litenotes/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new note",
	Long:  `Create a new note with the given title. Content can be provided via --content or --file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		contentFlag, _ := cmd.Flags().GetString("content")
		fileFlag, _ := cmd.Flags().GetString("file")
		categoryFlag, _ := cmd.Flags().GetString("category")

		content := contentFlag
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			content = string(data)
		}

		category, err := resolveCategory(cmd.Context(), categoryFlag)
		if err != nil {
			return err
		}

		note := models.NewNote(title, content, category)
		id, err := application.Notes.Create(cmd.Context(), note)
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Created note %d", id)))
		return printNotes(cmd, ui.AllCategories)
	},
}

func init() {
	addCmd.Flags().StringP("content", "c", "", "note content (inline)")
	addCmd.Flags().String("file", "", "read content from file")
	addCmd.Flags().StringP("category", "k", "", "category ID or name")
	addCmd.MarkFlagsMutuallyExclusive("content", "file")
	rootCmd.AddCommand(addCmd)
}
