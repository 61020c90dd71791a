package main

import (
	"context"
	"os"
	"runtime"

	"github.com/bnema/panewall/internal/build"
	"github.com/bnema/panewall/internal/cli/cmd"
	"github.com/bnema/panewall/internal/config"
	"github.com/bnema/panewall/internal/logging"
	"github.com/bnema/panewall/internal/ui"
	"github.com/bnema/panewall/pkg/webkit"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	ctx := logging.WithContext(context.Background(), logging.NewFromEnv())

	cmd.SetBuildInfo(build.New(version, commit, buildDate))
	cmd.SetGUIRunner(runGUI)

	os.Exit(cmd.Execute(ctx, os.Args[1:]))
}

// runGUI loads the configuration and runs the pane wall until its window closes.
func runGUI(ctx context.Context) int {
	runtime.LockOSThread()

	log := logging.FromContext(ctx)
	trace := logging.NewStartupTrace(log)
	trace.Mark(ui.StageStart.String())
	logCoreDumpLimits(ctx)

	path, err := config.FilePath()
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve config path")
		return 1
	}

	cfg, err := config.LoadOrCreate(ctx, path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to load configuration")
		return 1
	}
	log.Info().
		Int("number_of_windows", cfg.NumberOfWindows).
		Str("url", cfg.URL).
		Str("path", path).
		Msg("configuration loaded")

	app, err := ui.New(&ui.Dependencies{
		Ctx:     ctx,
		Config:  cfg,
		Toolkit: webkit.NewApplication(ui.AppID),
		Trace:   trace,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}

	// The toolkit only sees the program name.
	return app.Run(ctx, os.Args[:1])
}
