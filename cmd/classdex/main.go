// Package main is the entry point for the classdex indexing tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/classdex/cmd/classdex/commands"
	"go.trai.ch/classdex/internal/app"
	_ "go.trai.ch/classdex/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App, components.Logger)

	if err := cli.Execute(ctx); err != nil {
		// zerr prints a full error report with stack trace and metadata for %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
