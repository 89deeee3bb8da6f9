// Package view renders the server-side HTML templates.
//
// Templates are embedded in the binary. Each page template is parsed
// together with the base layout into its own template set, so pages can
// freely redefine the "content" block.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	layoutPath = "templates/layouts/base.html"
	pagesRoot  = "templates/pages"
)

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page template against the base layout.
// Page names are their path under templates/pages without the .html
// suffix, e.g. "campgrounds/show".
func NewRenderer() (*Renderer, error) {
	pages := map[string]*template.Template{}

	err := fs.WalkDir(templateFS, pagesRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		name := strings.TrimSuffix(strings.TrimPrefix(path, pagesRoot+"/"), ".html")

		tmpl, err := template.New("base.html").
			Funcs(sprig.HtmlFuncMap()).
			ParseFS(templateFS, layoutPath, path)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}

		pages[name] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Renderer{pages: pages}, nil
}

// Render writes the named page into w. It satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template: %s", name)
	}
	return tmpl.ExecuteTemplate(w, "base.html", data)
}

// StaticFS returns the embedded static assets rooted at static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
