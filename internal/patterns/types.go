// Package patterns provides the static registry of project types and the
// structure patterns offered for each of them.
package patterns

import (
	"fmt"
	"sort"
	"strings"

	oerrors "github.com/rampx/cli/internal/errors"
)

// ProjectType identifies the framework a project is scaffolded for.
type ProjectType string

const (
	// Laravel is a PHP project managed with composer.
	Laravel ProjectType = "laravel"

	// Flutter is a Dart/Flutter mobile project managed with pub.
	Flutter ProjectType = "flutter"

	// Node is a Node.js HTTP API managed with npm.
	Node ProjectType = "node"
)

// allTypes lists project types in registry order.
var allTypes = []ProjectType{Laravel, Flutter, Node}

// Types returns all project types in registry order.
func Types() []ProjectType {
	out := make([]ProjectType, len(allTypes))
	copy(out, allTypes)
	return out
}

// TypeNames returns the project type names sorted alphabetically, for help
// and error output.
func TypeNames() []string {
	names := make([]string, 0, len(allTypes))
	for _, t := range allTypes {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// String returns the type name.
func (t ProjectType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the known project types.
func (t ProjectType) IsValid() bool {
	switch t {
	case Laravel, Flutter, Node:
		return true
	default:
		return false
	}
}

// ParseType converts a command-line argument into a ProjectType.
func ParseType(s string) (ProjectType, error) {
	t := ProjectType(s)
	if !t.IsValid() {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("invalid project type %q", s),
			"type",
			"Valid types: "+strings.Join(TypeNames(), ", "),
		)
	}
	return t, nil
}

// Pattern is a named directory layout convention for one project type.
type Pattern struct {
	// Type is the project type the pattern belongs to.
	Type ProjectType `json:"type" yaml:"type"`

	// Key identifies the pattern within its type (e.g. "clean").
	Key string `json:"key" yaml:"key"`

	// Label is the human-readable name.
	Label string `json:"label" yaml:"label"`

	// Description is the one-line summary shown in listings.
	Description string `json:"description" yaml:"description"`

	// Structure is the longer note written to the generated README.
	Structure string `json:"structure" yaml:"structure"`

	// Recommended marks the suggested default for the type.
	Recommended bool `json:"recommended" yaml:"recommended"`
}
