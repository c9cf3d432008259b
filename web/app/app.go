// Package app provides the portfolio web module: embedded templates, static
// assets, and the page dispatcher built from the site route table.
package app

import (
	"embed"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gukin-han/portfolio/internal/config"
	"github.com/gukin-han/portfolio/internal/site"
	"github.com/gukin-han/portfolio/pkg/module"
	"github.com/gukin-han/portfolio/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const (
	layout = "app.html"
	bundle = "app"
)

var publicFiles = []string{
	"favicon.svg",
	"robots.txt",
	"site.webmanifest",
}

var notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: bundle}

// NewModule creates the site module mounted at cfg.BasePath.
func NewModule(cfg *config.SiteConfig, logger *slog.Logger) (*module.Module, error) {
	handler, err := NewHandler(cfg, site.Routes(), logger)
	if err != nil {
		return nil, err
	}
	return module.New(cfg.BasePath, handler), nil
}

// NewHandler builds the site handler for table. Paths it receives are
// relative to cfg.BasePath.
func NewHandler(cfg *config.SiteConfig, table *site.Table, logger *slog.Logger) (http.Handler, error) {
	logger = logger.With("system", "app")

	// Templates join paths as {{ .BasePath }}/x, so the root mount is "".
	basePath := strings.TrimSuffix(cfg.BasePath, "/")

	views := []web.ViewDef{notFoundView}
	for _, route := range table.Routes() {
		views = append(views, viewFor(route))
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		views,
	)
	if err != nil {
		return nil, err
	}

	header := site.NewHeader(cfg.Title, cfg.BasePath)
	ts.SetHeader(header.Render())

	logger.Info("site templates parsed", "views", len(views), "base_path", cfg.BasePath)

	return buildRouter(ts, table, cfg, logger), nil
}

func buildRouter(ts *web.TemplateSet, table *site.Table, cfg *config.SiteConfig, logger *slog.Logger) http.Handler {
	r := web.NewRouter()
	r.SetFallback(newPages(ts, table, cfg.BasePath, logger).ServeHTTP)

	cache := web.CacheControl(cfg.CacheMaxAgeDuration())

	r.Handle("GET /dist/", cache(web.DistServer(distFS, "dist", "/dist/")))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.Handle(route.Method+" "+route.Pattern, cache(route.Handler))
	}

	return r
}
