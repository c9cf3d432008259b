// Package web provides infrastructure for serving server-rendered pages.
// Templates are parsed once at startup, one clone of the layouts per view,
// so requests never parse templates and a broken template fails the process
// before it starts listening.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef declares a view: its route pattern, template file, title, and asset bundle.
type ViewDef struct {
	Route    string
	Template string
	Title    string
	Bundle   string
}

// ViewData is the data passed to layout and view templates.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Header   template.HTML
	Data     any
}

// DataFunc derives per-request view data.
type DataFunc func(r *http.Request) any

// TemplateSet holds pre-parsed templates keyed by view template name.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
	header   template.HTML
}

// NewTemplateSet parses the layouts matched by layoutGlob and clones them for
// each view, parsing the view template from viewSubdir into the clone.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, fmt.Errorf("view dir %s: %w", viewSubdir, err)
	}

	parsed := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		parsed[v.Template] = t
	}

	return &TemplateSet{
		views:    parsed,
		basePath: basePath,
	}, nil
}

// SetHeader sets pre-rendered markup included in every ViewData.
func (ts *TemplateSet) SetHeader(header template.HTML) {
	ts.header = header
}

// PageHandler returns a handler that renders view with status 200.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef) http.HandlerFunc {
	return ts.handler(layout, view, http.StatusOK, nil)
}

// ErrorHandler returns a handler that renders view with the given status.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return ts.handler(layout, view, status, nil)
}

// ErrorHandlerWithData is ErrorHandler with per-request data from fn.
func (ts *TemplateSet) ErrorHandlerWithData(layout string, view ViewDef, status int, fn DataFunc) http.HandlerFunc {
	return ts.handler(layout, view, status, fn)
}

func (ts *TemplateSet) handler(layout string, view ViewDef, status int, fn DataFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ViewData{
			Title:    view.Title,
			Bundle:   view.Bundle,
			BasePath: ts.basePath,
			Header:   ts.header,
		}
		if fn != nil {
			data.Data = fn(r)
		}
		if err := ts.RenderStatus(w, status, layout, view.Template, data); err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// Render executes layoutName for the view template with status 200.
func (ts *TemplateSet) Render(w http.ResponseWriter, layoutName, viewTemplate string, data ViewData) error {
	return ts.RenderStatus(w, http.StatusOK, layoutName, viewTemplate, data)
}

// RenderStatus executes the template into a buffer and writes it with status.
// Nothing is written to w when execution fails.
func (ts *TemplateSet) RenderStatus(w http.ResponseWriter, status int, layoutName, viewTemplate string, data ViewData) error {
	t, ok := ts.views[viewTemplate]
	if !ok {
		return fmt.Errorf("template not found: %s", viewTemplate)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return fmt.Errorf("execute %s: %w", viewTemplate, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
