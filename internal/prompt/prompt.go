// Package prompt asks the user to choose between options during scaffolding.
package prompt

import (
	"context"
	"fmt"

	"github.com/rampx/cli/internal/patterns"
)

// ConflictAction is the user's answer when the target directory exists.
type ConflictAction int

const (
	// Abort leaves the existing directory untouched and stops.
	Abort ConflictAction = iota

	// Overwrite removes the existing directory and continues.
	Overwrite
)

// String returns the action name.
func (a ConflictAction) String() string {
	switch a {
	case Abort:
		return "abort"
	case Overwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("ConflictAction(%d)", int(a))
	}
}

// Chooser resolves the choices the orchestrator cannot make alone.
type Chooser interface {
	// SelectPattern asks for one of options, with preselected highlighted.
	SelectPattern(ctx context.Context, t patterns.ProjectType, options []patterns.Pattern, preselected string) (patterns.Pattern, error)

	// ResolveConflict asks what to do about an existing target directory.
	ResolveConflict(ctx context.Context, path string) (ConflictAction, error)
}

// Static is a non-interactive Chooser. It answers pattern selection with the
// preselected pattern (or a fixed key) and always aborts on conflicts unless
// told otherwise.
type Static struct {
	// PatternKey, when set, is returned instead of the preselected pattern.
	PatternKey string

	// Conflict is the answer to ResolveConflict.
	Conflict ConflictAction

	// Asked records the prompts that were answered.
	Asked []string
}

// SelectPattern returns the configured or preselected pattern.
func (s *Static) SelectPattern(_ context.Context, t patterns.ProjectType, options []patterns.Pattern, preselected string) (patterns.Pattern, error) {
	s.Asked = append(s.Asked, "pattern")

	want := preselected
	if s.PatternKey != "" {
		want = s.PatternKey
	}
	for _, p := range options {
		if p.Key == want {
			return p, nil
		}
	}
	if len(options) == 0 {
		return patterns.Pattern{}, fmt.Errorf("no patterns available for %s", t)
	}
	return options[0], nil
}

// ResolveConflict returns the configured action.
func (s *Static) ResolveConflict(_ context.Context, _ string) (ConflictAction, error) {
	s.Asked = append(s.Asked, "conflict")
	return s.Conflict, nil
}
