// Package window provides the top-level application window.
package window

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/panewall/internal/logging"
	"github.com/bnema/panewall/internal/ui/component"
	"github.com/bnema/panewall/internal/ui/layout"
)

// Title is the fixed window title.
const Title = "Modular Multi-Touch Dual-Website Browser"

// MainWindow hosts the pane row as its only content. It has no menus,
// toolbars or status bar.
type MainWindow struct {
	window layout.WindowWidget
	row    *component.PaneRow
	logger zerolog.Logger
}

// New creates the main window around row.
func New(ctx context.Context, factory layout.WidgetFactory, row *component.PaneRow) (*MainWindow, error) {
	if factory == nil {
		return nil, component.ErrNoFactory
	}
	if row == nil {
		return nil, ErrWidgetCreationFailed("pane row")
	}

	log := logging.FromContext(ctx)

	win, err := factory.NewWindow()
	if err != nil {
		log.Error().Err(err).Msg("failed to create application window")
		return nil, fmt.Errorf("%w: %w", ErrWindowCreationFailed, err)
	}
	if win == nil {
		return nil, ErrWindowCreationFailed
	}

	win.SetTitle(Title)
	win.SetChild(row.Widget())

	return &MainWindow{
		window: win,
		row:    row,
		logger: log.With().Str("component", "main-window").Logger(),
	}, nil
}

// Show maximizes the window and makes it visible.
func (mw *MainWindow) Show() {
	mw.window.Maximize()
	mw.window.Present()
	mw.logger.Debug().Int("panes", len(mw.row.Panes())).Msg("window shown maximized")
}

// PaneRow returns the window content.
func (mw *MainWindow) PaneRow() *component.PaneRow {
	return mw.row
}

// WindowError represents a window-related error.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

// Error constants.
var (
	ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
)

// ErrWidgetCreationFailed creates an error for widget creation failure.
func ErrWidgetCreationFailed(name string) error {
	return WindowError{Message: "failed to create widget: " + name}
}
