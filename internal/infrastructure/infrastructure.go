// Package infrastructure provides core service initialization for application startup.
// It assembles the systems every module depends on: lifecycle coordination and logging.
package infrastructure

import (
	"log/slog"

	"github.com/gukin-han/portfolio/internal/config"
	"github.com/gukin-han/portfolio/pkg/lifecycle"
	"github.com/gukin-han/portfolio/pkg/logging"
)

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
}

// New creates an Infrastructure from the application configuration.
func New(cfg *config.Config) *Infrastructure {
	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging),
	}
}

// Ready reports whether every registered startup hook has completed.
func (i *Infrastructure) Ready() bool {
	return i.Lifecycle.Ready()
}
