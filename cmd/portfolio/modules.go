package main

import (
	"net/http"

	"github.com/gukin-han/portfolio/internal/config"
	"github.com/gukin-han/portfolio/internal/infrastructure"
	"github.com/gukin-han/portfolio/pkg/lifecycle"
	"github.com/gukin-han/portfolio/pkg/module"
	"github.com/gukin-han/portfolio/web/app"
)

type Modules struct {
	Site *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	siteModule, err := app.NewModule(&cfg.Site, infra.Logger)
	if err != nil {
		return nil, err
	}

	return &Modules{
		Site: siteModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.Site)
}

func buildRouter(readiness lifecycle.ReadinessChecker) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !readiness.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
