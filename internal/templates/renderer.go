package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// Templates use [[ ]] delimiters so the {{TOKEN}} placeholders pass through
// rendering untouched and are replaced by the substitution pass.
const (
	leftDelim  = "[["
	rightDelim = "]]"
)

// Renderer renders embedded templates with project data.
type Renderer struct {
	data TemplateData
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data TemplateData) *Renderer {
	return &Renderer{data: data}
}

// RenderFile renders a single template body and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).
		Delims(leftDelim, rightDelim).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// RenderREADME renders the project README.
func (r *Renderer) RenderREADME() ([]byte, error) {
	content, err := filesFS.ReadFile(readmeTemplate)
	if err != nil {
		return nil, fmt.Errorf("reading README template: %w", err)
	}
	return r.RenderFile("README.md", content)
}
