package templates

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/rampx/cli/internal/errors"
	"github.com/rampx/cli/internal/output"
)

// substitutable lists the file extensions whose contents get token
// replacement.
var substitutable = map[string]bool{
	".json": true,
	".md":   true,
	".yaml": true,
}

// Substitute replaces every {{PROJECT_NAME}} and {{PROJECT_TYPE}} token in
// content. Replacement is literal and single-pass.
func Substitute(content []byte, name, typeName string) []byte {
	out := bytes.ReplaceAll(content, []byte(TokenProjectName), []byte(name))
	return bytes.ReplaceAll(out, []byte(TokenProjectType), []byte(typeName))
}

func (g *Generator) substituteTokens(opts Options, _ *Result) error {
	replaced := 0

	err := afero.Walk(g.fs, opts.TargetDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return oerrors.NewGenerationError(path, err)
		}
		if info.IsDir() || !substitutable[filepath.Ext(path)] {
			return nil
		}

		content, err := afero.ReadFile(g.fs, path)
		if err != nil {
			return oerrors.NewGenerationError(path, err)
		}

		updated := Substitute(content, opts.ProjectName, opts.Type.String())
		if bytes.Equal(updated, content) {
			return nil
		}

		if err := afero.WriteFile(g.fs, path, updated, info.Mode().Perm()); err != nil {
			return oerrors.NewGenerationError(path, err)
		}
		replaced++
		return nil
	})
	if err != nil {
		return err
	}

	output.Debug("substituted tokens", "files", replaced)
	return nil
}
