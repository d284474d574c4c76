package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/rampx/cli/internal/patterns"
)

//go:embed all:files
var filesFS embed.FS

const (
	stubsRoot      = "files/stubs"
	envRoot        = "files/env"
	readmeTemplate = "files/README.md.tmpl"
	gitignoreFile  = "files/gitignore"
)

// StubFile is an embedded file destined for a project-relative path.
type StubFile struct {
	// Path is the slash-separated target path relative to the project root.
	Path string

	// Content is the file body.
	Content []byte
}

// Stubs returns the entry-point files for a project type, sorted by path.
func Stubs(t patterns.ProjectType) ([]StubFile, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("unknown project type: %s", t)
	}

	root := path.Join(stubsRoot, string(t))
	var files []StubFile

	err := fs.WalkDir(filesFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(filesFS, p)
		if err != nil {
			return fmt.Errorf("reading stub %s: %w", p, err)
		}

		files = append(files, StubFile{
			Path:    strings.TrimPrefix(p, root+"/"),
			Content: content,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing stubs for %s: %w", t, err)
	}

	return files, nil
}

// EnvBody returns the .env body for a project type.
func EnvBody(t patterns.ProjectType) ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("unknown project type: %s", t)
	}
	return filesFS.ReadFile(path.Join(envRoot, string(t)+".env"))
}

// Gitignore returns the .gitignore written after version control is
// initialized. The body is the same for every project type.
func Gitignore() []byte {
	b, err := filesFS.ReadFile(gitignoreFile)
	if err != nil {
		panic(fmt.Sprintf("templates: embedded gitignore missing: %v", err))
	}
	return b
}
