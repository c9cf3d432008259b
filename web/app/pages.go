package app

import (
	"log/slog"
	"net/http"

	"github.com/gukin-han/portfolio/internal/site"
	"github.com/gukin-han/portfolio/pkg/web"
)

// NotFound is the view data for the fallback page.
type NotFound struct {
	Path       string
	Suggestion *Suggestion
}

// Suggestion points at the closest existing page.
type Suggestion struct {
	Href  string
	Title string
}

// pages resolves the request path against the route table and renders the
// matching page, or the not-found page when nothing matches. The current page
// is derived from the path on every request and never stored.
type pages struct {
	table    *site.Table
	handlers map[string]http.HandlerFunc
	notFound http.HandlerFunc
}

func newPages(ts *web.TemplateSet, table *site.Table, basePath string, logger *slog.Logger) *pages {
	p := &pages{
		table:    table,
		handlers: make(map[string]http.HandlerFunc, table.Len()),
	}

	for _, route := range table.Routes() {
		p.handlers[route.Path] = ts.PageHandler(layout, viewFor(route))
	}

	p.notFound = ts.ErrorHandlerWithData(layout, notFoundView, http.StatusNotFound, func(r *http.Request) any {
		data := NotFound{Path: site.Link(basePath, r.URL.Path)}
		if route, ok := table.Suggest(r.URL.Path); ok {
			data.Suggestion = &Suggestion{
				Href:  site.Link(basePath, route.Path),
				Title: route.Page.Title,
			}
		}
		logger.Debug("route not found", "path", r.URL.Path, "suggested", data.Suggestion != nil)
		return data
	})

	return p
}

func (p *pages) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	route, ok := p.table.Resolve(r.URL.Path)
	if !ok {
		p.notFound(w, r)
		return
	}
	p.handlers[route.Path](w, r)
}

func viewFor(route site.Route) web.ViewDef {
	return web.ViewDef{
		Route:    route.Path,
		Template: route.Page.Template,
		Title:    route.Page.Title,
		Bundle:   bundle,
	}
}
