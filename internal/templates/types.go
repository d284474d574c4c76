// Package templates generates the on-disk skeleton of a new project: the
// directory layout of a pattern, the ecosystem manifest, entry-point stubs,
// the README and environment files.
package templates

import "github.com/rampx/cli/internal/patterns"

// Token placeholders replaced in generated text files.
const (
	TokenProjectName = "{{PROJECT_NAME}}"
	TokenProjectType = "{{PROJECT_TYPE}}"
)

// Options configures a single generation run.
type Options struct {
	// TargetDir is the absolute project root. It is created if missing.
	TargetDir string

	// Type is the project type to generate.
	Type patterns.ProjectType

	// Pattern is the resolved structure pattern.
	Pattern patterns.Pattern

	// ProjectName is the validated project name.
	ProjectName string

	// Dependencies overrides manifest dependency constraints by package name.
	// Packages not already in the manifest are added as runtime dependencies.
	Dependencies map[string]string

	// OverlayDir, when set, is a directory laid out as <type>/<pattern>/
	// whose files are copied over the generated tree.
	OverlayDir string
}

// Result describes what a generation run produced.
type Result struct {
	// TargetDir is the project root.
	TargetDir string

	// Dirs lists the layout directories created, relative to TargetDir.
	Dirs []string

	// Files lists the files written, relative to TargetDir, in write order.
	Files []string
}

// TemplateData holds the values available to rendered templates.
type TemplateData struct {
	// ProjectName is the project name as typed by the user.
	ProjectName string

	// TypeName is the project type name (e.g. "node").
	TypeName string

	// Pattern is the resolved structure pattern.
	Pattern patterns.Pattern
}
