// Package cmd provides CLI command implementations.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rampx/cli/internal/cmdtypes"
	"github.com/rampx/cli/internal/config"
	oerrors "github.com/rampx/cli/internal/errors"
	"github.com/rampx/cli/internal/output"
	"github.com/rampx/cli/internal/version"
)

const tagline = "scaffold Flutter, Laravel and Node.js projects from curated patterns"

// NewRootCmd creates the root command for the rpx CLI.
func NewRootCmd() *cobra.Command {
	g := &cmdtypes.GlobalConfig{}
	var showVersion, timestamps bool

	rootCmd := &cobra.Command{
		Use:   "rpx",
		Short: "RampX project scaffolding",
		Long: `rpx creates new Flutter, Laravel and Node.js projects from a catalog of
architectural patterns, then initializes git and installs dependencies.

Examples:
  # Pick a pattern interactively
  rpx init node my-api

  # Choose the pattern up front and skip every prompt
  rpx init laravel shop --pattern=ddd --yes

  # See what patterns a framework offers
  rpx patterns flutter`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, g, timestamps)
		},
		RunE: func(c *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Fprintln(c.OutOrStdout(), version.Get().Short())
				return nil
			}
			return c.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "Path to config file (env: RPX_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestamps, "timestamps", false, "Show timestamps in log output (env: RPX_LOG_TIMESTAMPS)")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "Print the version and exit")

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		fmt.Fprintln(c.OutOrStdout(), output.FormatBanner("rpx", tagline))
		fmt.Fprintln(c.OutOrStdout())
		defaultHelp(c, args)
	})
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c.CommandPath(), err)
	})

	rootCmd.AddCommand(NewInitCmd(g))
	rootCmd.AddCommand(NewPatternsCmd(g))
	rootCmd.AddCommand(NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd(g))

	return rootCmd
}

// Execute runs the CLI with args. Failures come back as *errors.ExitError
// carrying the process exit code.
func Execute(ctx context.Context, args []string) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)

	err := AnnotateError(rootCmd.ExecuteContext(ctx))
	if err == nil {
		return nil
	}
	return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(c *cobra.Command, g *cmdtypes.GlobalConfig, timestamps bool) error {
	output.SetupLogging(output.LogConfig{Verbose: g.Verbose})

	cfg, err := config.NewLoader().Load(g.ConfigPath)
	if err != nil {
		// Commands still work on defaults; config vet reports the problem.
		output.Warn("could not load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	g.Config = cfg

	output.SetupLogging(logConfig(g.Verbose, c.Flags().Changed("timestamps"), timestamps, cfg))

	output.Debug("initializing CLI",
		"command", c.CommandPath(),
		"config", g.ConfigPath,
		"git", cfg.Git.Enabled,
		"backend", cfg.Git.Backend,
		"install", cfg.Install.Enabled,
		"templates", cfg.Templates.Dir,
	)
	return nil
}

// logConfig resolves timestamps: flag (if explicitly set) > config > off.
func logConfig(verbose, flagSet, flagValue bool, cfg *config.Config) output.LogConfig {
	lc := output.LogConfig{Verbose: verbose}
	switch {
	case flagSet:
		lc.Timestamps = output.BoolPtr(flagValue)
	case cfg != nil && cfg.Log.Timestamps != nil:
		lc.Timestamps = cfg.Log.Timestamps
	}
	return lc
}

// usageError attaches the help hint to argument and flag errors raised by
// cobra before a command runs.
func usageError(path string, err error) error {
	return &oerrors.DetailError{
		Type:    "invalid usage",
		Message: err.Error(),
		Hint:    fmt.Sprintf("Run '%s --help' for usage.", path),
		Cause:   oerrors.ErrValidation,
	}
}

// AnnotateError turns cobra's unknown-command error into a usage error with
// the help hint. Other errors are returned unchanged.
func AnnotateError(err error) error {
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), "unknown command") {
		return usageError("rpx", err)
	}
	return err
}
