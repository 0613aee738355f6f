package handler

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// StatusTemplate is the name of the status page template.
const StatusTemplate = "status.html"

//go:embed templates/*.html
var templateFS embed.FS

// Renderer adapts html/template to echo.Renderer.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates. It panics on a malformed
// template since they are compiled into the binary.
func NewRenderer() *Renderer {
	return &Renderer{templates: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
