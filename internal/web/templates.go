// Package web holds the embedded HTML templates for the server-rendered
// views. The views are deliberately thin: they collect input and render
// whatever the credit service returned.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
