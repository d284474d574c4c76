package config

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/rampx/cli/internal/patterns"
	"github.com/rampx/cli/internal/templates"
	"github.com/rampx/cli/internal/vcs"
)

// ValidationError is a problem with one configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks a loaded configuration. All problems are reported at once.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if !slices.Contains(vcs.Backends(), cfg.Git.Backend) {
		errs = append(errs, ValidationError{
			Field:   "git.backend",
			Message: fmt.Sprintf("unknown backend %q (valid: %s)", cfg.Git.Backend, strings.Join(vcs.Backends(), ", ")),
		})
	}

	if dir := cfg.Templates.Dir; dir != "" {
		info, err := os.Stat(ExpandTilde(dir))
		switch {
		case err != nil:
			errs = append(errs, ValidationError{Field: "templates.dir", Message: "directory does not exist: " + dir})
		case !info.IsDir():
			errs = append(errs, ValidationError{Field: "templates.dir", Message: "not a directory: " + dir})
		}
	}

	typeNames := make([]string, 0, len(cfg.Dependencies))
	for name := range cfg.Dependencies {
		typeNames = append(typeNames, name)
	}
	sort.Strings(typeNames)

	for _, typeName := range typeNames {
		if !patterns.ProjectType(typeName).IsValid() {
			errs = append(errs, ValidationError{
				Field:   "dependencies." + typeName,
				Message: "unknown project type (valid: " + strings.Join(patterns.TypeNames(), ", ") + ")",
			})
			continue
		}

		deps := cfg.Dependencies[typeName]
		pkgs := make([]string, 0, len(deps))
		for pkg := range deps {
			pkgs = append(pkgs, pkg)
		}
		sort.Strings(pkgs)

		for _, pkg := range pkgs {
			if err := templates.ValidateConstraint(pkg, deps[pkg]); err != nil {
				errs = append(errs, ValidationError{
					Field:   "dependencies." + typeName + "." + pkg,
					Message: fmt.Sprintf("invalid version constraint %q", deps[pkg]),
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateFile loads and validates the configuration file at path.
func ValidateFile(path string) (*Config, error) {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, Validate(cfg)
}
