// Package main is the entry point for the preflight CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.ledgerline.dev/preflight/cmd/preflight/commands"
	"go.ledgerline.dev/preflight/internal/app"
	"go.ledgerline.dev/preflight/internal/core/domain"
	_ "go.ledgerline.dev/preflight/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Ctrl-C cancels the context, which kills any running child process.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Flush buffered gate progress before the process exits.
	defer func() { _ = components.Tracer.Close() }()

	cli := commands.New(components.App, components.ConfigLoader)

	if err := cli.Execute(ctx); err != nil {
		if domain.IsGateFailure(err) {
			// zerr prints a report with the gate identity, attached child
			// output, and metadata when formatted with %+v.
			_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
