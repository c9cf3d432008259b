package main

import (
	"github.com/gukin-han/portfolio/internal/config"
	"github.com/gukin-han/portfolio/internal/infrastructure"
	"github.com/gukin-han/portfolio/pkg/middleware"
)

// buildMiddleware creates the top-level stack applied to every request.
func buildMiddleware(infra *infrastructure.Infrastructure, cfg *config.Config) middleware.System {
	mw := middleware.New()
	mw.Use(middleware.RequestID())
	mw.Use(middleware.Logger(infra.Logger))
	mw.Use(middleware.TrimSlash())
	mw.Use(middleware.CORS(&cfg.CORS))
	return mw
}
