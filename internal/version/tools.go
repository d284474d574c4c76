package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches version strings such as "v20.11.0", "8.3.1" or
// "3.24.3-0.0.pre".
var versionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// Tool describes an external program rpx can drive.
type Tool struct {
	// Name is the binary name looked up in PATH.
	Name string

	// Args prints the tool's version.
	Args []string

	// Constraint is the supported version range. Empty means any.
	Constraint string
}

// KnownTools lists the tools used by the supported project types.
func KnownTools() []Tool {
	return []Tool{
		{Name: "git", Args: []string{"--version"}},
		{Name: "node", Args: []string{"--version"}, Constraint: ">=18.0.0"},
		{Name: "npm", Args: []string{"--version"}},
		{Name: "php", Args: []string{"--version"}, Constraint: ">=8.2.0"},
		{Name: "composer", Args: []string{"--version"}},
		{Name: "flutter", Args: []string{"--version"}, Constraint: ">=3.22.0"},
	}
}

// ToolInfo is the detection result for one tool.
type ToolInfo struct {
	// Name is the tool name.
	Name string `json:"name" yaml:"name"`

	// Version is the detected version, with a "v" prefix.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Path is the resolved binary path.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Found indicates the binary is in PATH.
	Found bool `json:"found" yaml:"found"`

	// Compatible indicates the version satisfies the tool's constraint.
	Compatible bool `json:"compatible" yaml:"compatible"`

	// Message provides additional information about compatibility.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// String returns a one-line summary.
func (t ToolInfo) String() string {
	if !t.Found {
		return fmt.Sprintf("  %-9s not found", t.Name+":")
	}
	status := "ok"
	if !t.Compatible {
		status = t.Message
	}
	return fmt.Sprintf("  %-9s %s (%s) %s", t.Name+":", t.Version, status, t.Path)
}

// Lookups are swapped in tests.
var (
	lookPath   = exec.LookPath
	runVersion = func(ctx context.Context, path string, args ...string) (string, error) {
		cmd := exec.CommandContext(ctx, path, args...)
		var out bytes.Buffer
		cmd.Stdout = &out
		cmd.Stderr = &out
		if err := cmd.Run(); err != nil {
			return "", err
		}
		return out.String(), nil
	}
)

// DetectTools detects every known tool.
func DetectTools(ctx context.Context) []ToolInfo {
	tools := KnownTools()
	out := make([]ToolInfo, 0, len(tools))
	for _, t := range tools {
		out = append(out, DetectTool(ctx, t))
	}
	return out
}

// DetectTool finds a tool in PATH and checks its version.
func DetectTool(ctx context.Context, t Tool) ToolInfo {
	path, err := lookPath(t.Name)
	if err != nil {
		return ToolInfo{
			Name:    t.Name,
			Message: t.Name + " not found in PATH",
		}
	}

	raw, err := runVersion(ctx, path, t.Args...)
	if err != nil {
		return ToolInfo{
			Name:    t.Name,
			Path:    path,
			Found:   true,
			Message: "failed to get version: " + err.Error(),
		}
	}

	version, err := extractVersion(raw)
	if err != nil {
		return ToolInfo{
			Name:    t.Name,
			Path:    path,
			Found:   true,
			Message: err.Error(),
		}
	}

	compatible, message := checkConstraint(t.Constraint, version)
	return ToolInfo{
		Name:       t.Name,
		Version:    version,
		Path:       path,
		Found:      true,
		Compatible: compatible,
		Message:    message,
	}
}

// checkConstraint reports whether version satisfies constraint.
func checkConstraint(constraint, version string) (bool, string) {
	if constraint == "" {
		return true, "compatible"
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, "invalid constraint " + constraint
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, "invalid version format"
	}

	// Prerelease builds are checked against their release version.
	if v.Prerelease() != "" {
		release, err := v.SetPrerelease("")
		if err == nil {
			v = &release
		}
	}

	if !c.Check(v) {
		return false, "incompatible - requires " + constraint
	}
	return true, "compatible"
}

// extractVersion pulls the first version number out of a tool's output.
func extractVersion(output string) (string, error) {
	match := versionRegex.FindString(output)
	if match == "" {
		return "", &versionParseError{output: strings.TrimSpace(output)}
	}

	if !strings.HasPrefix(match, "v") {
		match = "v" + match
	}
	return match, nil
}

// versionParseError indicates failure to parse a tool's version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse version from output: " + e.output
}
