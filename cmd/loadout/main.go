// Package main is the entry point for the loadout tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.loadout.dev/loadout/cmd/loadout/commands"
	"go.loadout.dev/loadout/internal/core/domain"
	_ "go.loadout.dev/loadout/internal/wiring"

	"go.loadout.dev/loadout/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrNoSelections) {
			components.Logger.Error(err)
			return 2
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
