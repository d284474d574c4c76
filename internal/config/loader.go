package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rampx/cli/internal/output"
)

// Environment variable prefix for rpx configuration.
const envPrefix = "RPX"

// keyDelimiter separates nested keys. Dependency package names may contain
// dots (e.g. socket.io), so viper's default "." cannot be used.
const keyDelimiter = "::"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader with defaults and RPX_*
// environment bindings in place.
func NewLoader() *Loader {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault(key("git", "enabled"), defaults.Git.Enabled)
	v.SetDefault(key("git", "backend"), defaults.Git.Backend)
	v.SetDefault(key("install", "enabled"), defaults.Install.Enabled)
	v.SetDefault(key("templates", "dir"), "")

	// Optional keys have no default; bind them so env vars are seen.
	_ = v.BindEnv(key("log", "timestamps"))

	return &Loader{v: v}
}

func key(parts ...string) string {
	return strings.Join(parts, keyDelimiter)
}

// Load loads configuration from the given file path. If configFile is empty
// the default path is used. A missing file is not an error. Environment
// variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	path, err := ResolveConfigFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("getting config file path: %w", err)
	}

	l.v.SetConfigFile(path)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		output.Debug("no config file, using defaults", "path", path)
	} else {
		output.Debug("loaded config", "path", path)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	path, err := ResolveConfigFile(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Marshal renders cfg as the YAML written by `rpx config init`.
func Marshal(cfg *Config) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# rpx configuration\n")
	b.WriteString("# Environment variables (RPX_GIT_ENABLED, RPX_GIT_BACKEND, RPX_INSTALL_ENABLED,\n")
	b.WriteString("# RPX_TEMPLATES_DIR, RPX_LOG_TIMESTAMPS) override values in this file.\n\n")

	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return []byte(b.String()), nil
}
