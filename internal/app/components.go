package app

import (
	"go.trai.ch/classdex/internal/core/ports"
)

// Components bundles the wired application objects the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}
