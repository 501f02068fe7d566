// ABOUTME: Edit command for modifying existing notes.
// ABOUTME: Applies flag changes, or opens content in $EDITOR when none are given.

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/harper/litenotes/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note",
	Long:  `Change a note's title, content or category. Without flags the content opens in $EDITOR.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		note, err := application.Notes.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		flags := cmd.Flags()
		if !flags.Changed("title") && !flags.Changed("content") && !flags.Changed("category") {
			newContent, err := openEditor(note.Content)
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
			if newContent == note.Content {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes made.")
				return nil
			}
			note.Content = newContent
		}

		if flags.Changed("title") {
			note.Title, _ = flags.GetString("title")
		}
		if flags.Changed("content") {
			note.Content, _ = flags.GetString("content")
		}
		if flags.Changed("category") {
			ref, _ := flags.GetString("category")
			note.Category, err = resolveCategory(cmd.Context(), ref)
			if err != nil {
				return err
			}
		}

		if err := application.Notes.Update(cmd.Context(), note); err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Updated note %d", note.ID)))
		return printNotes(cmd, ui.AllCategories)
	},
}

func openEditor(initial string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	tmpFile, err := os.CreateTemp("", "litenotes-*.md")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(tmpFile.Name())
	}()

	if initial != "" {
		if _, err := tmpFile.WriteString(initial); err != nil {
			_ = tmpFile.Close()
			return "", fmt.Errorf("failed to write initial content: %w", err)
		}
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command(editor, tmpFile.Name()) //nolint:gosec // Launching $EDITOR is expected CLI behavior
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func init() {
	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().StringP("content", "c", "", "new content")
	editCmd.Flags().StringP("category", "k", "", "new category ID or name")
	rootCmd.AddCommand(editCmd)
}
