package toolchain

import (
	"context"
	"strings"

	"github.com/rampx/cli/internal/patterns"
)

// Command is an external command line.
type Command struct {
	Name string
	Args []string
}

// String returns the command as a user would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// InstallCommand returns the dependency installer for a project type.
func InstallCommand(t patterns.ProjectType) Command {
	switch t {
	case patterns.Node:
		return Command{Name: "npm", Args: []string{"install"}}
	case patterns.Laravel:
		return Command{Name: "composer", Args: []string{"install"}}
	case patterns.Flutter:
		return Command{Name: "flutter", Args: []string{"pub", "get"}}
	default:
		return Command{}
	}
}

// DevCommand returns the command that starts a project in development.
func DevCommand(t patterns.ProjectType) Command {
	switch t {
	case patterns.Node:
		return Command{Name: "npm", Args: []string{"run", "dev"}}
	case patterns.Laravel:
		return Command{Name: "php", Args: []string{"artisan", "serve"}}
	case patterns.Flutter:
		return Command{Name: "flutter", Args: []string{"run"}}
	default:
		return Command{}
	}
}

// Installer runs a project's dependency installer.
type Installer struct {
	runner Runner
}

// NewInstaller creates an installer. A nil runner uses ExecRunner.
func NewInstaller(r Runner) *Installer {
	if r == nil {
		r = ExecRunner{}
	}
	return &Installer{runner: r}
}

// Install runs the installer for t in dir.
func (i *Installer) Install(ctx context.Context, t patterns.ProjectType, dir string) error {
	cmd := InstallCommand(t)
	return i.runner.Run(ctx, dir, cmd.Name, cmd.Args...)
}
