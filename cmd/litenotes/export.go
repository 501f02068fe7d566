// ABOUTME: Export command for backing up notes.
// ABOUTME: Supports JSON and markdown export formats.

package main

import (
	"fmt"
	"os"

	"github.com/harper/litenotes/internal/export"
	"github.com/harper/litenotes/internal/ui"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes",
	Long:  `Export notes to JSON or markdown format.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")
		categoryFlag, _ := cmd.Flags().GetString("category")

		var categoryID int64
		if categoryFlag != "" && categoryFlag != "0" {
			category, err := resolveCategory(cmd.Context(), categoryFlag)
			if err != nil {
				return err
			}
			categoryID = category.ID
		}

		doc, err := export.Build(cmd.Context(), application.Notes, application.Categories, categoryID)
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		switch format {
		case "json":
			if outputPath == "" || outputPath == "-" {
				return export.WriteJSON(cmd.OutOrStdout(), doc)
			}
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outputPath, err)
			}
			defer func() { _ = f.Close() }()
			if err := export.WriteJSON(f, doc); err != nil {
				return err
			}
		case "md":
			if outputPath == "" {
				outputPath = "export"
			}
			if _, err := export.WriteMarkdown(outputPath, doc); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Exported %d notes to %s", len(doc.Notes), outputPath)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format (json|md)")
	exportCmd.Flags().StringP("output", "o", "", "output path")
	exportCmd.Flags().StringP("category", "k", "", "only export this category")
	rootCmd.AddCommand(exportCmd)
}
