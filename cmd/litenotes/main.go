// ABOUTME: Entry point for litenotes CLI application.
// ABOUTME: Initializes and executes the root command.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harper/litenotes/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		stop()
		os.Exit(1)
	}
}
