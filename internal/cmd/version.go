package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rampx/cli/internal/cmdtypes"
	"github.com/rampx/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var short bool

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show rpx version information.

Displays:
  - rpx version, commit, and build date
  - the git, Node.js, npm, PHP, Composer and Flutter tools found in PATH`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.Get()
			if short {
				fmt.Fprintln(c.OutOrStdout(), info.Short())
				return nil
			}
			fmt.Fprintln(c.OutOrStdout(), version.FullVersionString(info, version.DetectTools(c.Context())))
			return nil
		},
	}

	c.Flags().BoolVar(&short, "short", false, "Print only the version number")

	return c
}
