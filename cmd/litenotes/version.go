// ABOUTME: Version command.

package main

import (
	"fmt"

	"github.com/harper/litenotes/internal/app"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "litenotes %s\n", app.BuildVersion())
	},
}

func init() {
	versionCmd.Annotations = map[string]string{skipAppAnnotation: "true"}
	rootCmd.AddCommand(versionCmd)
}
