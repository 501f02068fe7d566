// ABOUTME: Categories command for listing the category lookup table.

package main

import (
	"fmt"

	"github.com/harper/litenotes/internal/ui"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := application.Categories.ListAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.FormatCategoryList(categories))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
