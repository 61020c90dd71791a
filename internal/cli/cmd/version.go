package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/panewall/internal/cli/styles"
)

func newVersionCmd() *cobra.Command {
	var short bool

	versionCmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"about"},
		Short:   "Show version and build information",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), buildInfo.Version)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(theme).Render(buildInfo))
			return nil
		},
	}
	versionCmd.Flags().BoolVarP(&short, "short", "s", false, "print only the version")
	return versionCmd
}
