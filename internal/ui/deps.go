// Package ui provides the GTK4 presentation layer for the pane wall.
package ui

import (
	"context"

	"github.com/bnema/panewall/internal/config"
	"github.com/bnema/panewall/internal/logging"
	"github.com/bnema/panewall/internal/ui/layout"
)

// Toolkit is the windowing toolkit the app runs on.
// webkit.Application is the production implementation.
type Toolkit interface {
	// Run enters the main loop, calling onActivate once the toolkit is ready,
	// and returns the toolkit exit status.
	Run(args []string, onActivate func(layout.WidgetFactory)) int
	// AddCSSProvider installs an application stylesheet.
	AddCSSProvider(css string) error
}

// Dependencies holds all injected dependencies for the UI layer.
type Dependencies struct {
	Ctx     context.Context
	Config  *config.Config
	Toolkit Toolkit
	Trace   *logging.StartupTrace // optional
}

// Validate checks that required dependencies are set.
func (d *Dependencies) Validate() error {
	if d == nil {
		return ErrMissingDependency("Dependencies")
	}
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.Toolkit == nil {
		return ErrMissingDependency("Toolkit")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
