// Package views renders the HTML listing page and serves its static assets.
package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/sbilibin2017/gw-users/internal/models"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed public
var public embed.FS

// Renderer renders the index page.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

type indexData struct {
	Users []models.User
}

// Render writes the listing page for users to w.
// Nothing is written once ctx is done.
func (r *Renderer) Render(ctx context.Context, w io.Writer, users []models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "index.html", indexData{Users: users})
}

// Static serves the embedded assets. Mount it under /public/.
func Static() http.Handler {
	sub, err := fs.Sub(public, "public")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return http.StripPrefix("/public/", http.FileServer(http.FS(sub)))
}
