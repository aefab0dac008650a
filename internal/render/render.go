// Package render produces pages and fragments from the embedded templates.
package render

import (
	"bytes"
	"html/template"

	"github.com/shopkit/adminpanel/web"
)

// Renderer executes the embedded admin templates
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Fragment renders the named template into a markup string
func (r *Renderer) Fragment(name string, data any) (string, error) {
	buf := bytes.Buffer{}
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Page renders the named template and wraps it into the layout
func (r *Renderer) Page(name string, data any) (string, error) {
	content, err := r.Fragment(name, data)
	if err != nil {
		return "", err
	}

	return r.Fragment("layout", struct {
		ContentForLayout template.HTML
	}{
		ContentForLayout: template.HTML(content),
	})
}
