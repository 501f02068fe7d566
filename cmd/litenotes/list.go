// ABOUTME: List command for displaying notes.
// ABOUTME: Shows all notes newest first or only one category.

package main

import (
	"github.com/harper/litenotes/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notes",
	Long:    `List notes newest first. Use --category to show one category; 0 shows all.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryFlag, _ := cmd.Flags().GetString("category")

		filter := ui.AllCategories
		if categoryFlag != "" && categoryFlag != "0" {
			category, err := resolveCategory(cmd.Context(), categoryFlag)
			if err != nil {
				return err
			}
			filter = category
		}

		return printNotes(cmd, filter)
	},
}

func init() {
	listCmd.Flags().StringP("category", "k", "", "filter by category ID or name")
	rootCmd.AddCommand(listCmd)
}
