// Package scaffold drives one project creation from a validated request to
// a finished tree: pattern resolution, generation, version control and
// dependency installation.
package scaffold

import (
	"github.com/rampx/cli/internal/patterns"
)

// Request is what the user asked for on the command line.
type Request struct {
	// Type is the project type.
	Type patterns.ProjectType

	// Name is the project name and target directory name.
	Name string

	// PatternKey is the --pattern value. Empty means choose.
	PatternKey string

	// ParentDir is where the project directory is created. Empty means the
	// working directory.
	ParentDir string

	// SkipGit disables version control initialization.
	SkipGit bool

	// SkipInstall disables dependency installation.
	SkipInstall bool

	// AssumeYes skips prompts and takes the first pattern in registry order.
	AssumeYes bool

	// Force removes an existing target directory without asking.
	Force bool
}

// Stage is a state of the scaffolding state machine.
type Stage int

const (
	StageValidating Stage = iota
	StageResolvingPattern
	StageGenerating
	StageVersionControl
	StageDependencyInstall
	StageDone
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageValidating:
		return "validating"
	case StageResolvingPattern:
		return "resolving-pattern"
	case StageGenerating:
		return "generating"
	case StageVersionControl:
		return "version-control"
	case StageDependencyInstall:
		return "dependency-install"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Result reports a completed run.
type Result struct {
	Type      patterns.ProjectType `json:"type" yaml:"type"`
	Name      string               `json:"name" yaml:"name"`
	Pattern   patterns.Pattern     `json:"pattern" yaml:"pattern"`
	TargetDir string               `json:"targetDir" yaml:"targetDir"`

	// Dirs and Files are relative to TargetDir.
	Dirs  []string `json:"dirs" yaml:"dirs"`
	Files []string `json:"files" yaml:"files"`

	GitInitialized bool `json:"gitInitialized" yaml:"gitInitialized"`
	Installed      bool `json:"installed" yaml:"installed"`

	// GitSkipped and InstallSkipped report stages that were not attempted.
	GitSkipped     bool `json:"gitSkipped" yaml:"gitSkipped"`
	InstallSkipped bool `json:"installSkipped" yaml:"installSkipped"`

	// Warnings collects non-fatal tool failures.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// NextSteps lists the commands the user should run next.
	NextSteps []string `json:"nextSteps" yaml:"nextSteps"`
}
