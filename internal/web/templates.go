package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type navData struct {
	Page Page
	Item NavItem
}

type tagData struct {
	Page   Page
	Link   Link
	Active bool
	Label  string
}

var funcs = template.FuncMap{
	"year": func() int { return time.Now().Year() },
	"navArgs": func(p Page, item NavItem) navData {
		return navData{Page: p, Item: item}
	},
	"tagArgs": func(p Page, link Link, active bool, label string) tagData {
		return tagData{Page: p, Link: link, Active: active, Label: label}
	},
}

// parseTemplates parses the embedded views. The named templates are
// "page" (full document), "tab" (the #main fragment) and "error".
func parseTemplates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return t, nil
}

// staticFiles returns the embedded assets rooted at static/.
func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
