// Package render provides the template backend for flavor name expansion.
package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Engine renders flavor name templates with Go template syntax and the full
// sprig function map. It satisfies the manifest package's Renderer interface.
//
// Rendering is strict: a template that references a binding key that was not
// supplied fails instead of emitting "<no value>".
type Engine struct {
	funcs template.FuncMap
}

// New returns an Engine with the sprig text functions installed.
func New() *Engine {
	return &Engine{funcs: sprig.TxtFuncMap()}
}

// Render compiles the template and executes it against the bindings.
func (e *Engine) Render(tmpl string, bindings map[string]string) (string, error) {
	parsed, err := template.New("flavor").
		Funcs(e.funcs).
		Option("missingkey=error").
		Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("compile template: %w", err)
	}

	var out strings.Builder
	if err := parsed.Execute(&out, bindings); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return out.String(), nil
}
