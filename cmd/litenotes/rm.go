// ABOUTME: Remove command for deleting notes.
// ABOUTME: Asks for confirmation when attached to a terminal.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/harper/litenotes/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a note",
	Long:  `Delete a note. Removing a note that does not exist is not an error.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		out := cmd.OutOrStdout()

		if !force && term.IsTerminal(int(os.Stdin.Fd())) {
			label := fmt.Sprint(id)
			if note, err := application.Notes.Get(cmd.Context(), id); err == nil {
				label = fmt.Sprintf("%q (%d)", ui.NoteLabel(note), id)
			}

			fmt.Fprintf(out, "Delete note %s? [y/N] ", label)
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
		}

		if err := application.Notes.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}

		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Deleted note %d", id)))
		return printNotes(cmd, ui.AllCategories)
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
