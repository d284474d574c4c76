package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	oerrors "github.com/rampx/cli/internal/errors"
	"github.com/rampx/cli/internal/output"
	"github.com/rampx/cli/internal/patterns"
	"github.com/rampx/cli/internal/prompt"
	"github.com/rampx/cli/internal/templates"
	"github.com/rampx/cli/internal/toolchain"
	"github.com/rampx/cli/internal/vcs"
)

// StepFunc runs one long-running action, typically under a spinner.
type StepFunc func(title string, action func() error) error

// Options wires the orchestrator's collaborators.
type Options struct {
	// Fs is the filesystem projects are written to. Nil means the host.
	Fs afero.Fs

	// Registry is the pattern registry. Nil means patterns.Default().
	Registry *patterns.Registry

	// Chooser answers interactive questions. Nil means a Static chooser.
	Chooser prompt.Chooser

	// VCS initializes repositories. Nil disables version control.
	VCS vcs.Initializer

	// Installer runs dependency installers. Nil disables installation.
	Installer *toolchain.Installer

	// Step wraps long-running actions. Nil runs them directly.
	Step StepFunc

	// Dependencies returns manifest overrides for a project type.
	Dependencies func(patterns.ProjectType) map[string]string

	// OverlayDir is passed to the generator.
	OverlayDir string
}

// Orchestrator runs scaffolding requests.
type Orchestrator struct {
	fs        afero.Fs
	registry  *patterns.Registry
	generator *templates.Generator
	chooser   prompt.Chooser
	vcs       vcs.Initializer
	installer *toolchain.Installer
	step      StepFunc
	deps      func(patterns.ProjectType) map[string]string
	overlay   string
}

// New creates an orchestrator, filling unset options with defaults.
func New(opts Options) *Orchestrator {
	o := &Orchestrator{
		fs:        opts.Fs,
		registry:  opts.Registry,
		chooser:   opts.Chooser,
		vcs:       opts.VCS,
		installer: opts.Installer,
		step:      opts.Step,
		deps:      opts.Dependencies,
		overlay:   opts.OverlayDir,
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.registry == nil {
		o.registry = patterns.Default()
	}
	if o.chooser == nil {
		o.chooser = &prompt.Static{}
	}
	if o.step == nil {
		o.step = func(_ string, action func() error) error { return action() }
	}
	if o.deps == nil {
		o.deps = func(patterns.ProjectType) map[string]string { return nil }
	}
	o.generator = templates.NewGenerator(o.fs)
	return o
}

// run carries the state of one request through the stages.
type run struct {
	req    Request
	stage  Stage
	target string
	cdPath string
	log    *log.Logger
	result *Result
}

func (r *run) enter(s Stage) {
	r.stage = s
	r.log.Debug("stage", "state", s)
}

func (r *run) warn(msg string, err error) {
	r.log.Warn(msg, "err", err)
	r.result.Warnings = append(r.result.Warnings, fmt.Sprintf("%s: %v", msg, err))
}

// Run executes req. Validation, conflict and generation failures are
// returned; version control and install failures become warnings.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	r := &run{
		req:    req,
		log:    output.ProjectLogger(req.Name),
		result: &Result{Type: req.Type, Name: req.Name},
	}

	r.enter(StageValidating)
	if err := o.validate(r); err != nil {
		return nil, err
	}

	r.enter(StageResolvingPattern)
	pattern, err := o.resolvePattern(ctx, req)
	if err != nil {
		return nil, err
	}
	r.result.Pattern = pattern
	r.log.Debug("resolved pattern", "pattern", pattern.Key)

	// Nothing is removed until every input is known.
	if err := o.checkConflict(ctx, r); err != nil {
		return nil, err
	}

	r.enter(StageGenerating)
	if err := o.generate(ctx, r); err != nil {
		return nil, err
	}

	if !req.SkipGit && o.vcs != nil {
		r.enter(StageVersionControl)
		o.initVCS(ctx, r)
	} else {
		r.result.GitSkipped = true
		r.log.Info("skipping git initialization")
	}

	if !req.SkipInstall && o.installer != nil {
		r.enter(StageDependencyInstall)
		o.install(ctx, r)
	} else {
		r.result.InstallSkipped = true
		r.log.Info("skipping dependency installation")
	}

	r.enter(StageDone)
	r.result.NextSteps = NextSteps(req.Type, r.cdPath, r.result.Installed)
	return r.result, nil
}

func (o *Orchestrator) validate(r *run) error {
	if !r.req.Type.IsValid() {
		_, err := patterns.ParseType(string(r.req.Type))
		return err
	}
	if err := templates.ValidateProjectName(r.req.Name); err != nil {
		return err
	}
	if r.req.PatternKey != "" {
		if _, err := o.registry.Lookup(r.req.Type, r.req.PatternKey); err != nil {
			return err
		}
	}

	if err := templates.ValidateDependencies(r.req.Type, o.deps(r.req.Type)); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	parent := r.req.ParentDir
	if parent == "" {
		parent = wd
	}
	abs, err := filepath.Abs(filepath.Join(parent, r.req.Name))
	if err != nil {
		return fmt.Errorf("resolving target path: %w", err)
	}
	r.target = abs
	r.result.TargetDir = abs
	r.cdPath = cdPath(wd, abs)
	return nil
}

// cdPath is how the user reaches target from wd: a relative path when
// target is below wd, the absolute path otherwise.
func cdPath(wd, target string) string {
	rel, err := filepath.Rel(wd, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return target
	}
	return rel
}

// checkConflict ensures the target does not exist, removing it only when
// forced or confirmed.
func (o *Orchestrator) checkConflict(ctx context.Context, r *run) error {
	exists, err := afero.Exists(o.fs, r.target)
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}
	if !exists {
		return nil
	}

	if !r.req.Force {
		action, err := o.chooser.ResolveConflict(ctx, r.target)
		if err != nil {
			return err
		}
		if action != prompt.Overwrite {
			return oerrors.NewConflictError(r.target)
		}
	}

	r.log.Warn("removing existing directory", "path", r.target)
	if err := o.fs.RemoveAll(r.target); err != nil {
		return oerrors.NewGenerationError(r.target, err)
	}
	return nil
}

func (o *Orchestrator) resolvePattern(ctx context.Context, req Request) (patterns.Pattern, error) {
	if req.PatternKey != "" {
		return o.registry.Lookup(req.Type, req.PatternKey)
	}

	if req.AssumeYes {
		p, ok := o.registry.First(req.Type)
		if !ok {
			return patterns.Pattern{}, fmt.Errorf("no patterns registered for %s", req.Type)
		}
		return p, nil
	}

	preselected, _ := o.registry.Recommended(req.Type)
	return o.chooser.SelectPattern(ctx, req.Type, o.registry.List(req.Type), preselected.Key)
}

func (o *Orchestrator) generate(ctx context.Context, r *run) error {
	opts := templates.Options{
		TargetDir:    r.target,
		Type:         r.req.Type,
		Pattern:      r.result.Pattern,
		ProjectName:  r.req.Name,
		Dependencies: o.deps(r.req.Type),
		OverlayDir:   o.overlay,
	}

	var res *templates.Result
	err := o.step("Generating project structure...", func() error {
		var err error
		res, err = o.generator.Generate(ctx, opts)
		return err
	})
	if err != nil {
		return err
	}

	r.result.Dirs = res.Dirs
	r.result.Files = res.Files
	r.log.Info("project structure created", "dirs", len(res.Dirs), "files", len(res.Files))
	return nil
}

func (o *Orchestrator) initVCS(ctx context.Context, r *run) {
	err := o.step("Initializing git repository...", func() error {
		return o.vcs.Init(ctx, r.target)
	})
	if err != nil {
		r.warn("failed to initialize git repository", err)
		return
	}

	if err := o.generator.WriteGitignore(r.target); err != nil {
		r.warn("failed to write .gitignore", err)
		return
	}
	r.result.GitInitialized = true
	r.result.Files = append(r.result.Files, ".gitignore")
	r.log.Info("git repository initialized")
}

func (o *Orchestrator) install(ctx context.Context, r *run) {
	cmd := toolchain.InstallCommand(r.req.Type)
	err := o.step(fmt.Sprintf("Installing dependencies (%s)...", cmd), func() error {
		return o.installer.Install(ctx, r.req.Type, r.target)
	})
	if err != nil {
		r.warn(fmt.Sprintf("failed to install dependencies, run %q manually", cmd.String()), err)
		return
	}
	r.result.Installed = true
	r.log.Info("dependencies installed")
}

// NextSteps lists the commands to run after creation, starting with a cd
// into dir. The install command comes first when dependencies were not
// installed.
func NextSteps(t patterns.ProjectType, dir string, installed bool) []string {
	steps := []string{"cd " + dir}
	if !installed {
		steps = append(steps, toolchain.InstallCommand(t).String())
	}
	return append(steps, toolchain.DevCommand(t).String())
}
