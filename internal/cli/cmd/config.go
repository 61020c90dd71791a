package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/panewall/internal/cli/styles"
	"github.com/bnema/panewall/internal/config"
)

// configPath is swapped in tests.
var configPath = config.FilePath

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
		Long:  `Show where config.json lives, what it resolves to, and its JSON Schema.`,
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Args:  cobra.NoArgs,
			RunE:  runConfigPath,
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			Long: `Load config.json the way the pane wall does and print the result.

A missing file is created with defaults, exactly as on a normal launch.`,
			Args: cobra.NoArgs,
			RunE: runConfigShow,
		},
		&cobra.Command{
			Use:   "schema",
			Short: "Print the JSON Schema of config.json",
			Args:  cobra.NoArgs,
			RunE:  runConfigSchema,
		},
	)
	return configCmd
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := configPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(theme)
	out := cmd.OutOrStdout()

	path, err := configPath()
	if err != nil {
		fmt.Fprint(out, renderer.RenderError(err))
		return fmt.Errorf("resolve config path: %w", err)
	}

	_, statErr := os.Stat(path)
	existed := !errors.Is(statErr, os.ErrNotExist)

	cfg, err := config.LoadOrCreate(cmd.Context(), path)
	if err != nil {
		fmt.Fprint(out, renderer.RenderError(err))
		return err
	}

	if !existed {
		fmt.Fprint(out, renderer.RenderCreated(path))
	}
	fmt.Fprint(out, renderer.RenderConfig(path, cfg))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.SchemaJSON()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
