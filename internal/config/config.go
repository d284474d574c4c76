// Package config provides configuration loading and management.
package config

import (
	"maps"

	"github.com/rampx/cli/internal/patterns"
	"github.com/rampx/cli/internal/templates"
	"github.com/rampx/cli/internal/vcs"
)

// GitConfig controls version control initialization.
type GitConfig struct {
	// Enabled runs git init after generation.
	// Env: RPX_GIT_ENABLED, Default: true
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`

	// Backend selects how the repository is created: "exec" or "builtin".
	// Env: RPX_GIT_BACKEND, Default: exec
	Backend string `mapstructure:"backend" yaml:"backend" json:"backend"`
}

// InstallConfig controls dependency installation.
type InstallConfig struct {
	// Enabled runs the ecosystem installer after generation.
	// Env: RPX_INSTALL_ENABLED, Default: true
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: off. --verbose always turns them on.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// TemplatesConfig points at user-supplied overlay files.
type TemplatesConfig struct {
	// Dir holds overlays laid out as <type>/<pattern>/.
	// Env: RPX_TEMPLATES_DIR
	Dir string `mapstructure:"dir" yaml:"dir,omitempty" json:"dir,omitempty"`
}

// Config represents the rpx CLI configuration, loaded from
// ~/.rpx/config.yaml and RPX_* environment variables.
type Config struct {
	Git       GitConfig       `mapstructure:"git" yaml:"git" json:"git"`
	Install   InstallConfig   `mapstructure:"install" yaml:"install" json:"install"`
	Log       LogConfig       `mapstructure:"log" yaml:"log" json:"log"`
	Templates TemplatesConfig `mapstructure:"templates" yaml:"templates" json:"templates"`

	// Dependencies overrides manifest version constraints, keyed by project
	// type then package name.
	Dependencies map[string]map[string]string `mapstructure:"dependencies" yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `rpx config init` to generate the initial config file.
func DefaultConfig() *Config {
	deps := make(map[string]map[string]string, len(patterns.Types()))
	for _, t := range patterns.Types() {
		deps[t.String()] = templates.DefaultDependencies(t)
	}

	return &Config{
		Git: GitConfig{
			Enabled: true,
			Backend: vcs.BackendExec,
		},
		Install: InstallConfig{
			Enabled: true,
		},
		Dependencies: deps,
	}
}

// DependenciesFor returns a copy of the overrides configured for t.
func (c *Config) DependenciesFor(t patterns.ProjectType) map[string]string {
	out := make(map[string]string)
	if c == nil {
		return out
	}
	maps.Copy(out, c.Dependencies[t.String()])
	return out
}
