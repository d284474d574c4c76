package templates

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/rampx/cli/internal/errors"
)

// projectNameRegex restricts names to lowercase letters, digits, hyphens and
// underscores so they are safe as directory and package names everywhere.
var projectNameRegex = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ValidateProjectName checks a project name before anything touches disk.
func ValidateProjectName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("project name cannot be empty", "name",
			"Use lowercase letters, numbers, hyphens and underscores (e.g. my-app).")
	}

	if !projectNameRegex.MatchString(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid project name %q", name),
			"name",
			"Project name must contain only lowercase letters, numbers, hyphens and underscores.",
		)
	}

	return nil
}

// DartPackageName converts a project name to a valid pub package name.
func DartPackageName(name string) string {
	result := strings.ReplaceAll(name, "-", "_")
	if result != "" && result[0] >= '0' && result[0] <= '9' {
		result = "app_" + result
	}
	return result
}

// ComposerPackageName returns the vendor/package name composer requires.
func ComposerPackageName(name string) string {
	return "app/" + name
}
