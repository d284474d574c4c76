// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and packages that need the resolved CLI state.
package cmdtypes

import (
	"github.com/rampx/cli/internal/config"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded configuration. Never nil after PersistentPreRunE.
	Config *config.Config

	// ConfigPath is the raw --config flag value.
	ConfigPath string

	// Verbose is the --verbose flag value.
	Verbose bool
}

// Settings returns the loaded configuration, or the defaults when none was
// loaded.
func (g *GlobalConfig) Settings() *config.Config {
	if g == nil || g.Config == nil {
		return config.DefaultConfig()
	}
	return g.Config
}
