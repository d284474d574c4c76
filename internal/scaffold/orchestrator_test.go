package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/rampx/cli/internal/errors"
	"github.com/rampx/cli/internal/patterns"
	"github.com/rampx/cli/internal/prompt"
	"github.com/rampx/cli/internal/toolchain"
)

const parent = "/work"

type fakeVCS struct {
	dirs []string
	err  error
}

func (f *fakeVCS) Init(_ context.Context, dir string) error {
	f.dirs = append(f.dirs, dir)
	return f.err
}

type cancellingChooser struct{}

func (cancellingChooser) SelectPattern(context.Context, patterns.ProjectType, []patterns.Pattern, string) (patterns.Pattern, error) {
	return patterns.Pattern{}, oerrors.Wrap(oerrors.ErrCancelled, "prompt cancelled")
}

func (cancellingChooser) ResolveConflict(context.Context, string) (prompt.ConflictAction, error) {
	return prompt.Abort, oerrors.Wrap(oerrors.ErrCancelled, "prompt cancelled")
}

type fixture struct {
	fs      afero.Fs
	chooser *prompt.Static
	vcs     *fakeVCS
	runner  *toolchain.RecordingRunner
	steps   []string
	orch    *Orchestrator
}

func newFixture(t *testing.T, mutate ...func(*Options)) *fixture {
	t.Helper()
	f := &fixture{
		fs:      afero.NewMemMapFs(),
		chooser: &prompt.Static{},
		vcs:     &fakeVCS{},
		runner:  &toolchain.RecordingRunner{},
	}
	opts := Options{
		Fs:        f.fs,
		Chooser:   f.chooser,
		VCS:       f.vcs,
		Installer: toolchain.NewInstaller(f.runner),
		Step: func(title string, action func() error) error {
			f.steps = append(f.steps, title)
			return action()
		},
	}
	for _, m := range mutate {
		m(&opts)
	}
	f.orch = New(opts)
	return f
}

func (f *fixture) exists(t *testing.T, rel string) bool {
	t.Helper()
	ok, err := afero.Exists(f.fs, filepath.Join(parent, rel))
	require.NoError(t, err)
	return ok
}

func (f *fixture) read(t *testing.T, rel string) string {
	t.Helper()
	b, err := afero.ReadFile(f.fs, filepath.Join(parent, rel))
	require.NoError(t, err)
	return string(b)
}

func TestRun_NodeSimpleNoGitNoInstall(t *testing.T) {
	f := newFixture(t)

	res, err := f.orch.Run(context.Background(), Request{
		Type:        patterns.Node,
		Name:        "my-api",
		PatternKey:  "simple",
		ParentDir:   parent,
		AssumeYes:   true,
		SkipGit:     true,
		SkipInstall: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "/work/my-api", res.TargetDir)
	assert.Equal(t, "simple", res.Pattern.Key)
	assert.Contains(t, f.read(t, "my-api/package.json"), `"name": "my-api"`)
	assert.Contains(t, f.read(t, "my-api/src/index.js"), "app.listen(PORT")
	assert.Contains(t, f.read(t, "my-api/README.md"), "simple")
	assert.False(t, f.exists(t, "my-api/.git"))
	assert.False(t, f.exists(t, "my-api/.gitignore"))

	assert.Empty(t, f.vcs.dirs)
	assert.Empty(t, f.runner.Calls)
	assert.Empty(t, f.chooser.Asked)
	assert.Equal(t, []string{"cd /work/my-api", "npm install", "npm run dev"}, res.NextSteps)
}

func TestRun_AssumeYesPicksFirstPattern(t *testing.T) {
	tests := []struct {
		typ  patterns.ProjectType
		want string
	}{
		{patterns.Laravel, "standard"},
		{patterns.Flutter, "layered"},
		{patterns.Node, "simple"},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			f := newFixture(t)
			res, err := f.orch.Run(context.Background(), Request{
				Type: tt.typ, Name: "app", ParentDir: parent, AssumeYes: true,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Pattern.Key)
			assert.Empty(t, f.chooser.Asked)
		})
	}
}

func TestRun_PromptsWithRecommendedPreselected(t *testing.T) {
	f := newFixture(t)

	res, err := f.orch.Run(context.Background(), Request{
		Type: patterns.Laravel, Name: "shop", ParentDir: parent,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"pattern"}, f.chooser.Asked)
	assert.Equal(t, "feature", res.Pattern.Key)
	assert.True(t, f.exists(t, "shop/app/Features/Auth"))
}

func TestRun_PromptCancelled(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.Chooser = cancellingChooser{} })

	_, err := f.orch.Run(context.Background(), Request{
		Type: patterns.Node, Name: "api", ParentDir: parent,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrCancelled))
	assert.False(t, f.exists(t, "api"))
}

func TestRun_ValidationFailuresTouchNothing(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"unknown type", Request{Type: "rails", Name: "app"}},
		{"uppercase name", Request{Type: patterns.Node, Name: "MyApp"}},
		{"name with slash", Request{Type: patterns.Node, Name: "a/b"}},
		{"unknown pattern", Request{Type: patterns.Node, Name: "app", PatternKey: "ddd", Force: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			require.NoError(t, afero.WriteFile(f.fs, "/work/app/keep.txt", []byte("keep"), 0o644))

			tt.req.ParentDir = parent
			_, err := f.orch.Run(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			assert.Equal(t, "keep", f.read(t, "app/keep.txt"))
			assert.Empty(t, f.steps)
		})
	}
}

func TestRun_Conflict(t *testing.T) {
	t.Run("abort", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, afero.WriteFile(f.fs, "/work/app/keep.txt", []byte("keep"), 0o644))

		_, err := f.orch.Run(context.Background(), Request{
			Type: patterns.Node, Name: "app", ParentDir: parent, AssumeYes: true,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrConflict))
		assert.Equal(t, []string{"conflict"}, f.chooser.Asked)
		assert.Equal(t, "keep", f.read(t, "app/keep.txt"))
		assert.False(t, f.exists(t, "app/package.json"))
	})

	t.Run("overwrite confirmed", func(t *testing.T) {
		f := newFixture(t)
		f.chooser.Conflict = prompt.Overwrite
		require.NoError(t, afero.WriteFile(f.fs, "/work/app/keep.txt", []byte("keep"), 0o644))

		_, err := f.orch.Run(context.Background(), Request{
			Type: patterns.Node, Name: "app", ParentDir: parent, AssumeYes: true,
		})
		require.NoError(t, err)
		assert.False(t, f.exists(t, "app/keep.txt"))
		assert.True(t, f.exists(t, "app/package.json"))
	})

	t.Run("force skips the prompt", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, afero.WriteFile(f.fs, "/work/app/keep.txt", []byte("keep"), 0o644))

		_, err := f.orch.Run(context.Background(), Request{
			Type: patterns.Node, Name: "app", ParentDir: parent, AssumeYes: true, Force: true,
		})
		require.NoError(t, err)
		assert.Empty(t, f.chooser.Asked)
		assert.False(t, f.exists(t, "app/keep.txt"))
	})

	t.Run("prompt cancelled", func(t *testing.T) {
		f := newFixture(t, func(o *Options) { o.Chooser = cancellingChooser{} })
		require.NoError(t, afero.WriteFile(f.fs, "/work/app/keep.txt", []byte("keep"), 0o644))

		_, err := f.orch.Run(context.Background(), Request{
			Type: patterns.Node, Name: "app", PatternKey: "simple", ParentDir: parent,
		})
		assert.True(t, errors.Is(err, oerrors.ErrCancelled))
		assert.Equal(t, "keep", f.read(t, "app/keep.txt"))
	})
}

func TestRun_VersionControl(t *testing.T) {
	t.Run("success writes gitignore", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.orch.Run(context.Background(), Request{
			Type: patterns.Flutter, Name: "mobile", ParentDir: parent, AssumeYes: true, SkipInstall: true,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"/work/mobile"}, f.vcs.dirs)
		assert.True(t, res.GitInitialized)
		assert.Contains(t, res.Files, ".gitignore")
		assert.Contains(t, f.read(t, "mobile/.gitignore"), ".pub-cache/")
		assert.Empty(t, res.Warnings)
	})

	t.Run("failure is a warning", func(t *testing.T) {
		f := newFixture(t)
		f.vcs.err = oerrors.Wrap(oerrors.ErrToolUnavailable, "git not found in PATH")

		res, err := f.orch.Run(context.Background(), Request{
			Type: patterns.Flutter, Name: "mobile", ParentDir: parent, AssumeYes: true, SkipInstall: true,
		})
		require.NoError(t, err)

		assert.False(t, res.GitInitialized)
		assert.False(t, f.exists(t, "mobile/.gitignore"))
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "git repository")
	})

	t.Run("nil initializer disables git", func(t *testing.T) {
		f := newFixture(t, func(o *Options) { o.VCS = nil })
		res, err := f.orch.Run(context.Background(), Request{
			Type: patterns.Node, Name: "api", ParentDir: parent, AssumeYes: true, SkipInstall: true,
		})
		require.NoError(t, err)
		assert.False(t, res.GitInitialized)
		assert.Empty(t, res.Warnings)
	})
}

func TestRun_DependencyInstall(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.orch.Run(context.Background(), Request{
			Type: patterns.Laravel, Name: "shop", ParentDir: parent, AssumeYes: true, SkipGit: true,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"composer install"}, f.runner.Lines())
		assert.Equal(t, "/work/shop", f.runner.Calls[0].Dir)
		assert.True(t, res.Installed)
		assert.Equal(t, []string{"cd /work/shop", "php artisan serve"}, res.NextSteps)
	})

	t.Run("failure is a warning and keeps the install step", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Errors = map[string]error{"composer": oerrors.Wrap(oerrors.ErrToolUnavailable, "composer not found in PATH")}

		res, err := f.orch.Run(context.Background(), Request{
			Type: patterns.Laravel, Name: "shop", ParentDir: parent, AssumeYes: true, SkipGit: true,
		})
		require.NoError(t, err)

		assert.False(t, res.Installed)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], `"composer install"`)
		assert.Equal(t, []string{"cd /work/shop", "composer install", "php artisan serve"}, res.NextSteps)
	})
}

func TestRun_StepTitles(t *testing.T) {
	f := newFixture(t)
	_, err := f.orch.Run(context.Background(), Request{
		Type: patterns.Node, Name: "api", ParentDir: parent, AssumeYes: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Generating project structure...",
		"Initializing git repository...",
		"Installing dependencies (npm install)...",
	}, f.steps)
}

func TestRun_DependencyOverrides(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.Dependencies = func(t patterns.ProjectType) map[string]string {
			if t == patterns.Node {
				return map[string]string{"express": "^5.0.0"}
			}
			return nil
		}
	})

	_, err := f.orch.Run(context.Background(), Request{
		Type: patterns.Node, Name: "api", ParentDir: parent, AssumeYes: true, SkipGit: true, SkipInstall: true,
	})
	require.NoError(t, err)
	assert.Contains(t, f.read(t, "api/package.json"), `"express": "^5.0.0"`)
}

func TestRun_GenerationFailure(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.Fs = afero.NewReadOnlyFs(afero.NewMemMapFs()) })

	_, err := f.orch.Run(context.Background(), Request{
		Type: patterns.Node, Name: "api", ParentDir: parent, AssumeYes: true,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrGeneration))
	assert.Empty(t, f.vcs.dirs)
	assert.Empty(t, f.runner.Calls)
}

func TestNextSteps(t *testing.T) {
	tests := []struct {
		typ       patterns.ProjectType
		installed bool
		want      []string
	}{
		{patterns.Node, true, []string{"cd app", "npm run dev"}},
		{patterns.Node, false, []string{"cd app", "npm install", "npm run dev"}},
		{patterns.Laravel, false, []string{"cd app", "composer install", "php artisan serve"}},
		{patterns.Flutter, true, []string{"cd app", "flutter run"}},
		{patterns.Flutter, false, []string{"cd app", "flutter pub get", "flutter run"}},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, NextSteps(tt.typ, "app", tt.installed))
		})
	}
}

func TestRun_NextStepsRelativeToWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name      string
		parentDir string
		want      string
	}{
		{"no parent dir", "", "cd app"},
		{"parent is working dir", wd, "cd app"},
		{"parent below working dir", filepath.Join(wd, "projects"), "cd " + filepath.Join("projects", "app")},
		{"parent outside working dir", "/elsewhere", "cd /elsewhere/app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			res, err := f.orch.Run(context.Background(), Request{
				Type: patterns.Node, Name: "app", ParentDir: tt.parentDir,
				AssumeYes: true, SkipGit: true, SkipInstall: true,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.NextSteps[0])
		})
	}
}

func TestRun_BadDependencyOverrideTouchesNothing(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.Dependencies = func(patterns.ProjectType) map[string]string {
			return map[string]string{"express": "latest"}
		}
	})
	require.NoError(t, afero.WriteFile(f.fs, "/work/app/keep.txt", []byte("keep"), 0o644))

	_, err := f.orch.Run(context.Background(), Request{
		Type: patterns.Node, Name: "app", ParentDir: parent, AssumeYes: true, Force: true,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Equal(t, "keep", f.read(t, "app/keep.txt"))
	assert.False(t, f.exists(t, "app/src"))
	assert.Empty(t, f.steps)

	_, err = f.orch.Run(context.Background(), Request{
		Type: patterns.Node, Name: "fresh", ParentDir: parent, AssumeYes: true,
	})
	require.Error(t, err)
	assert.False(t, f.exists(t, "fresh"))
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "validating", StageValidating.String())
	assert.Equal(t, "done", StageDone.String())
	assert.Equal(t, "unknown", Stage(99).String())
}
