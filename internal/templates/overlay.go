package templates

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/rampx/cli/internal/errors"
	"github.com/rampx/cli/internal/output"
)

// OverlayPath returns the directory holding overlay files for a pattern.
func OverlayPath(opts Options) string {
	return filepath.Join(opts.OverlayDir, opts.Type.String(), opts.Pattern.Key)
}

// copyOverlay copies user-supplied files over the generated tree. A missing
// overlay directory is not an error.
func (g *Generator) copyOverlay(opts Options, res *Result) error {
	if opts.OverlayDir == "" {
		return nil
	}

	src := OverlayPath(opts)
	exists, err := afero.DirExists(g.fs, src)
	if err != nil {
		return oerrors.NewGenerationError(src, err)
	}
	if !exists {
		output.Debug("no overlay for pattern", "dir", src)
		return nil
	}

	output.Debug("applying overlay", "dir", src)

	return afero.Walk(g.fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return oerrors.NewGenerationError(path, err)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return oerrors.NewGenerationError(path, err)
		}
		if rel == "." {
			return nil
		}

		if info.IsDir() {
			target := filepath.Join(opts.TargetDir, rel)
			if err := g.fs.MkdirAll(target, dirPerm); err != nil {
				return oerrors.NewGenerationError(target, err)
			}
			return nil
		}

		content, err := afero.ReadFile(g.fs, path)
		if err != nil {
			return oerrors.NewGenerationError(path, err)
		}
		return g.writeFile(opts.TargetDir, filepath.ToSlash(rel), content, res)
	})
}
