package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for rpx.
type Paths struct {
	// ConfigFile is the path to the config file (~/.rpx/config.yaml).
	ConfigFile string

	// HomeDir is the rpx home directory (~/.rpx).
	HomeDir string
}

// DefaultPaths returns the default paths for rpx.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	rpxHome := filepath.Join(homeDir, ".rpx")

	return &Paths{
		ConfigFile: filepath.Join(rpxHome, "config.yaml"),
		HomeDir:    rpxHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If RPX_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("RPX_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ResolveConfigFile picks the config file: the --config flag if set,
// otherwise RPX_CONFIG, otherwise the default. The result has ~ expanded.
func ResolveConfigFile(flagValue string) (string, error) {
	path := flagValue
	if path == "" {
		var err error
		path, err = GetConfigFile()
		if err != nil {
			return "", err
		}
	}
	return ExpandTilde(path), nil
}

// ExpandTilde expands a leading ~ or ~/ to the user's home directory.
// ~username forms are returned unchanged.
func ExpandTilde(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
