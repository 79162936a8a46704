// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

// Package render provides HTML page rendering over templates embedded
// in the binary. Each page template is paired with the base layout.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"kronika/internal/flash"
	"kronika/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title   string         // page title for the <title> tag
	IsAdmin bool           // whether the caller holds the admin role
	Flashes []flash.Notice // one-time notices drained from the channel
	Data    map[string]any // page-specific data
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	flashes   *flash.Store
}

// New creates a Renderer by parsing all embedded page templates
// against the base layout. The flash store may be nil, in which case
// no notices are surfaced.
func New(flashes *flash.Store) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		flashes:   flashes,
	}

	funcMap := template.FuncMap{
		"date": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
		"fieldError": func(errors map[string]string, field string) string {
			if errors == nil {
				return ""
			}
			return errors[field]
		},
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		r.templates[name[:len(name)-len(".html")]] = tmpl
	}

	return r, nil
}

// Page renders a full page. The caller's role and any queued flash
// notices are injected from the request before execution.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	data.IsAdmin = middleware.CallerFromCtx(r.Context()).IsAdmin()

	if rn.flashes != nil {
		notices, err := rn.flashes.Take(r.Context(), r)
		if err == nil {
			data.Flashes = notices
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
