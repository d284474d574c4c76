package templates

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/rampx/cli/internal/errors"
	"github.com/rampx/cli/internal/output"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Generator writes project skeletons to a filesystem.
type Generator struct {
	fs afero.Fs
}

// NewGenerator creates a generator backed by fs. A nil fs means the host
// filesystem.
func NewGenerator(fs afero.Fs) *Generator {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Generator{fs: fs}
}

// Generate creates the project described by opts. The first failure aborts
// the run; whatever was written before it stays on disk.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	if !opts.Type.IsValid() {
		return nil, fmt.Errorf("unknown project type: %s", opts.Type)
	}

	res := &Result{TargetDir: opts.TargetDir}

	output.Debug("generating project",
		"type", opts.Type,
		"pattern", opts.Pattern.Key,
		"name", opts.ProjectName,
		"target", opts.TargetDir)

	// Bad overrides must fail before the layout step creates directories.
	if err := ValidateDependencies(opts.Type, opts.Dependencies); err != nil {
		return res, err
	}

	steps := []struct {
		name string
		fn   func(Options, *Result) error
	}{
		{"layout", g.writeLayout},
		{"manifest", g.writeManifest},
		{"stubs", g.writeStubs},
		{"readme", g.writeREADME},
		{"env", g.writeEnv},
		{"overlay", g.copyOverlay},
		{"substitute", g.substituteTokens},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := step.fn(opts, res); err != nil {
			output.Debug("generation step failed", "step", step.name, "err", err)
			return res, err
		}
	}

	return res, nil
}

// WriteGitignore writes the standard .gitignore into targetDir.
func (g *Generator) WriteGitignore(targetDir string) error {
	path := filepath.Join(targetDir, ".gitignore")
	if err := afero.WriteFile(g.fs, path, Gitignore(), filePerm); err != nil {
		return oerrors.NewGenerationError(path, err)
	}
	output.Debug("created file", "path", ".gitignore")
	return nil
}

func (g *Generator) writeLayout(opts Options, res *Result) error {
	dirs, err := Layout(opts.Type, opts.Pattern.Key)
	if err != nil {
		return oerrors.NewGenerationError(opts.TargetDir, err)
	}

	if err := g.fs.MkdirAll(opts.TargetDir, dirPerm); err != nil {
		return oerrors.NewGenerationError(opts.TargetDir, err)
	}

	for _, dir := range dirs {
		path := filepath.Join(opts.TargetDir, filepath.FromSlash(dir))
		if err := g.fs.MkdirAll(path, dirPerm); err != nil {
			return oerrors.NewGenerationError(path, err)
		}
		res.Dirs = append(res.Dirs, dir)
	}

	output.Debug("created layout", "dirs", len(dirs))
	return nil
}

func (g *Generator) writeManifest(opts Options, res *Result) error {
	name, content, err := RenderManifest(opts)
	if err != nil {
		return err
	}
	return g.writeFile(opts.TargetDir, name, content, res)
}

func (g *Generator) writeStubs(opts Options, res *Result) error {
	stubs, err := Stubs(opts.Type)
	if err != nil {
		return oerrors.NewGenerationError(opts.TargetDir, err)
	}
	for _, stub := range stubs {
		if err := g.writeFile(opts.TargetDir, stub.Path, stub.Content, res); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeREADME(opts Options, res *Result) error {
	renderer := NewRenderer(TemplateData{
		ProjectName: opts.ProjectName,
		TypeName:    opts.Type.String(),
		Pattern:     opts.Pattern,
	})

	content, err := renderer.RenderREADME()
	if err != nil {
		return oerrors.NewGenerationError(filepath.Join(opts.TargetDir, "README.md"), err)
	}
	return g.writeFile(opts.TargetDir, "README.md", content, res)
}

func (g *Generator) writeEnv(opts Options, res *Result) error {
	body, err := EnvBody(opts.Type)
	if err != nil {
		return oerrors.NewGenerationError(opts.TargetDir, err)
	}
	for _, name := range []string{".env", ".env.example"} {
		if err := g.writeFile(opts.TargetDir, name, body, res); err != nil {
			return err
		}
	}
	return nil
}

// writeFile writes content to the slash-separated rel path under root,
// creating parent directories, and records it in res.
func (g *Generator) writeFile(root, rel string, content []byte, res *Result) error {
	path := filepath.Join(root, filepath.FromSlash(rel))

	if err := g.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return oerrors.NewGenerationError(filepath.Dir(path), err)
	}
	if err := afero.WriteFile(g.fs, path, content, filePerm); err != nil {
		return oerrors.NewGenerationError(path, err)
	}

	res.addFile(rel)
	output.Debug("created file", "path", rel)
	return nil
}

func (r *Result) addFile(rel string) {
	for _, f := range r.Files {
		if f == rel {
			return
		}
	}
	r.Files = append(r.Files, rel)
}
