// Package toolchain runs the external ecosystem tools a generated project
// depends on: package installers and version control.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	oerrors "github.com/rampx/cli/internal/errors"
	"github.com/rampx/cli/internal/output"
)

// Runner executes an external command in a working directory.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands with os/exec. Command output is discarded; only
// the exit status matters.
type ExecRunner struct {
	// Stdout and Stderr receive command output. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args in dir. A missing binary or non-zero exit is
// reported as ErrToolUnavailable.
func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = discardIfNil(r.Stdout)
	cmd.Stderr = discardIfNil(r.Stderr)

	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	output.Debug("running command", "cmd", line, "dir", dir)

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s not found in PATH", oerrors.ErrToolUnavailable, name)
		}
		return fmt.Errorf("%w: %s: %w", oerrors.ErrToolUnavailable, line, err)
	}
	return nil
}

func discardIfNil(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
