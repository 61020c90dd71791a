package ui

import (
	"context"
	"fmt"

	"github.com/bnema/panewall/internal/logging"
	"github.com/bnema/panewall/internal/ui/component"
	"github.com/bnema/panewall/internal/ui/layout"
	"github.com/bnema/panewall/internal/ui/theme"
	"github.com/bnema/panewall/internal/ui/window"
)

// AppID is the application identifier for GTK.
const AppID = "io.github.bnema.panewall"

// Stage is a point in the application lifecycle.
type Stage int

const (
	StageStart Stage = iota
	StageConfigLoaded
	StageWindowShown
	StageRunning
	StageTerminated
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageConfigLoaded:
		return "config-loaded"
	case StageWindowShown:
		return "window-shown"
	case StageRunning:
		return "running"
	case StageTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// App drives the pane wall from activation to shutdown.
type App struct {
	deps        *Dependencies
	mainWindow  *window.MainWindow
	stage       Stage
	activateErr error
}

// New creates a new App with the given dependencies.
// The configuration is already loaded at this point.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	a := &App{deps: deps}
	a.setStage(StageConfigLoaded)
	return a, nil
}

// Run starts the toolkit and blocks until it exits.
// Returns the exit code: 1 when the window could not be built, otherwise the
// toolkit's own status.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Str("app_id", AppID).Msg("starting toolkit main loop")

	code := a.deps.Toolkit.Run(args, func(factory layout.WidgetFactory) {
		a.onActivate(ctx, factory)
	})
	a.setStage(StageTerminated)

	if a.activateErr != nil {
		log.Error().Err(a.activateErr).Msg("activation failed")
		return 1
	}
	log.Debug().Int("code", code).Msg("toolkit main loop exited")
	return code
}

// Stage reports the current lifecycle stage.
func (a *App) Stage() Stage {
	return a.stage
}

// MainWindow returns the window built on activation, or nil before that.
func (a *App) MainWindow() *window.MainWindow {
	return a.mainWindow
}

func (a *App) onActivate(ctx context.Context, factory layout.WidgetFactory) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("application activated")

	// Activation can be delivered again by the toolkit; one wall per process.
	if a.mainWindow != nil {
		a.mainWindow.Show()
		return
	}

	if err := a.deps.Toolkit.AddCSSProvider(theme.GenerateCSS()); err != nil {
		log.Warn().Err(err).Msg("failed to install stylesheet")
	}

	if err := a.createMainWindow(ctx, factory); err != nil {
		a.activateErr = err
		log.Error().Err(err).Msg("failed to create main window")
		return
	}

	a.mainWindow.Show()
	a.setStage(StageWindowShown)
	log.Info().
		Int("panes", len(a.mainWindow.PaneRow().Panes())).
		Str("url", a.deps.Config.URL).
		Msg("pane wall shown")
	a.setStage(StageRunning)
	a.deps.Trace.Finish()
}

func (a *App) setStage(s Stage) {
	a.stage = s
	a.deps.Trace.Mark(s.String())
}

func (a *App) createMainWindow(ctx context.Context, factory layout.WidgetFactory) error {
	row, err := component.NewPaneRow(ctx, factory, a.deps.Config)
	if err != nil {
		return fmt.Errorf("failed to build pane row: %w", err)
	}

	win, err := window.New(ctx, factory, row)
	if err != nil {
		return fmt.Errorf("failed to build main window: %w", err)
	}
	a.mainWindow = win
	return nil
}
