// Package app implements the application layer for classdex.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/classdex/internal/core/ports"
	"go.trai.ch/classdex/internal/engine/indexer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.DescriptorLoader
	creator *indexer.Creator
	logger  ports.Logger
}

// New creates a new App instance.
func New(loader ports.DescriptorLoader, creator *indexer.Creator, logger ports.Logger) *App {
	return &App{
		loader:  loader,
		creator: creator,
		logger:  logger,
	}
}

// RunOptions carries per-invocation overrides on top of the descriptor.
type RunOptions struct {
	// DisableDependencies restricts indexing to the module's own output,
	// regardless of what the descriptor says.
	DisableDependencies bool
}

// Run loads the module descriptor and builds its composite class index.
func (a *App) Run(ctx context.Context, descriptorPath string, opts RunOptions) error {
	module, err := a.loader.Load(descriptorPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load module descriptor")
	}

	if opts.DisableDependencies {
		module.Scan.DisableDependencies = true
	}

	result, err := a.creator.CreateIndex(ctx, module)
	if err != nil {
		return zerr.Wrap(err, "indexing failed")
	}

	a.logger.Info(fmt.Sprintf(
		"%s: %d classes from %d artifacts (%d skipped, %d unreadable)",
		module.Name, result.Index.NumClasses(), result.Indexed, result.Skipped, len(result.Failed),
	))
	return nil
}
