// Package cmd provides Cobra CLI commands for panewall.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/panewall/internal/build"
	"github.com/bnema/panewall/internal/cli/styles"
)

// GUIRunner launches the pane wall and returns the process exit code.
type GUIRunner func(ctx context.Context) int

var (
	buildInfo build.Info
	guiRunner GUIRunner
	exitCode  int
	theme     = styles.NewTheme()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "panewall",
		Short: "Side-by-side web panes for multi-touch kiosk displays",
		Long: `Panewall - one to four embedded web browser panes on a single maximized window.

Every pane loads the URL from config.json, which lives next to the executable
and is created with defaults on first run.

Run without arguments to launch the pane wall.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if guiRunner == nil {
				return fmt.Errorf("no GUI runner configured")
			}
			exitCode = guiRunner(cmd.Context())
			return nil
		},
	}

	root.AddCommand(newConfigCmd(), newVersionCmd())
	return root
}

// Execute runs the root command with args and returns the process exit code.
// ctx should carry the logger.
func Execute(ctx context.Context, args []string) int {
	return execute(ctx, args, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	exitCode = 0
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return exitCode
}

// SetBuildInfo sets the build information (called from main before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// SetGUIRunner sets the function the bare command runs.
func SetGUIRunner(run GUIRunner) {
	guiRunner = run
}
