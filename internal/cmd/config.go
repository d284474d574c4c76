package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rampx/cli/internal/cmdtypes"
	"github.com/rampx/cli/internal/config"
	oerrors "github.com/rampx/cli/internal/errors"
	"github.com/rampx/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the rpx CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(g))
	c.AddCommand(NewConfigVetCmd(g))

	return c
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default rpx configuration.

The file is created at ~/.rpx/config.yaml unless --config or RPX_CONFIG
names another location. It contains:
  - git and dependency install toggles
  - the git backend (exec or builtin)
  - default dependency versions per project type

Examples:
  # Initialize configuration
  rpx config init

  # Overwrite existing configuration
  rpx config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, g, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, g *cmdtypes.GlobalConfig, force bool) error {
	path, err := config.ResolveConfigFile(g.ConfigPath)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := config.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	output.Debug("wrote config", "path", path, "bytes", len(data))
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+path))
	fmt.Fprintln(c.OutOrStdout(), "Validate with: rpx config vet")
	return nil
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the rpx configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. git.backend is known and templates.dir exists
  4. Dependency versions are valid semver constraints

The config path is resolved using precedence:
  --config flag > RPX_CONFIG env > ~/.rpx/config.yaml

Examples:
  # Validate default configuration
  rpx config vet

  # Validate custom config path
  rpx config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, g)
		},
	}
}

func runConfigVet(c *cobra.Command, g *cmdtypes.GlobalConfig) error {
	path, err := config.ResolveConfigFile(g.ConfigPath)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}

	output.Debug("validating config", "path", path)

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return oerrors.NewNotFoundError("configuration file not found", path,
			"Run 'rpx config init' to create default configuration")
	}

	if _, err := config.ValidateFile(path); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			return &oerrors.DetailError{
				Type:     "validation failed",
				Message:  verrs.Error(),
				Location: path,
				Cause:    oerrors.ErrValidation,
			}
		}
		return &oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  err.Error(),
			Location: path,
			Cause:    oerrors.ErrValidation,
		}
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+path))
	return nil
}
