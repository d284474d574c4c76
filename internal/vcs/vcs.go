// Package vcs initializes version control in a freshly generated project.
package vcs

import (
	"context"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"

	oerrors "github.com/rampx/cli/internal/errors"
	"github.com/rampx/cli/internal/toolchain"
)

// Backend names accepted by the git.backend configuration key.
const (
	// BackendExec shells out to the git binary.
	BackendExec = "exec"

	// BackendBuiltin uses the pure-Go go-git implementation and needs no
	// git binary.
	BackendBuiltin = "builtin"
)

// Backends returns the valid backend names.
func Backends() []string {
	return []string{BackendExec, BackendBuiltin}
}

// Initializer creates an empty repository in a directory.
type Initializer interface {
	Init(ctx context.Context, dir string) error
}

// New returns the initializer for backend. The runner is used by the exec
// backend; nil means toolchain.ExecRunner.
func New(backend string, runner toolchain.Runner) (Initializer, error) {
	switch backend {
	case "", BackendExec:
		if runner == nil {
			runner = toolchain.ExecRunner{}
		}
		return &ExecGit{runner: runner}, nil
	case BackendBuiltin:
		return &BuiltinGit{}, nil
	default:
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("unknown git backend %q", backend),
			"git.backend",
			"Valid backends: "+strings.Join(Backends(), ", "),
		)
	}
}

// ExecGit runs "git init" through a toolchain runner.
type ExecGit struct {
	runner toolchain.Runner
}

// Init runs git init in dir.
func (g *ExecGit) Init(ctx context.Context, dir string) error {
	return g.runner.Run(ctx, dir, "git", "init")
}

// BuiltinGit initializes repositories with go-git.
type BuiltinGit struct{}

// Init creates a non-bare repository in dir.
func (g *BuiltinGit) Init(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := git.PlainInit(dir, false); err != nil {
		return fmt.Errorf("%w: git init %s: %w", oerrors.ErrToolUnavailable, dir, err)
	}
	return nil
}
