// File: cmd/seedctl/main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/vedslabs/seedctl/cmd"
	"github.com/vedslabs/seedctl/internal/observability"
)

// Allows mocking os.Exit in tests.
var osExit = os.Exit

// main is the entry point of the application.
func main() {
	// Listen for interrupt signals (SIGINT, SIGTERM) for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	observability.Sync()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			osExit(0) // Exit cleanly on graceful shutdown.
		} else {
			osExit(1) // Config or usage errors; store failures never reach here.
		}
	}
}
