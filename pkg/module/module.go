// Package module mounts self-contained HTTP handlers under URL prefixes.
// A Module owns its own middleware stack; a Router dispatches requests to the
// module with the longest matching prefix after native routes are checked.
package module

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gukin-han/portfolio/pkg/middleware"
)

// Module is an HTTP handler mounted at a fixed prefix.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System

	once    sync.Once
	wrapped http.Handler
}

// New creates a Module for prefix. It panics when prefix is empty, lacks a
// leading slash, or ends with a slash (the root prefix "/" is allowed).
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module stack. Middleware added after the
// first call to Handler or Serve has no effect.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the module handler wrapped in its middleware. The stack is
// applied once.
func (m *Module) Handler() http.Handler {
	m.once.Do(func() {
		m.wrapped = m.middleware.Apply(m.handler)
	})
	return m.wrapped
}

// Serve strips the module prefix from the request path and serves it.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := m.strip(r.URL.Path)

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""

	m.Handler().ServeHTTP(w, r2)
}

func (m *Module) matches(path string) bool {
	if m.prefix == "/" {
		return true
	}
	return path == m.prefix || strings.HasPrefix(path, m.prefix+"/")
}

func (m *Module) strip(path string) string {
	if m.prefix == "/" {
		return path
	}
	stripped := strings.TrimPrefix(path, m.prefix)
	if stripped == "" {
		return "/"
	}
	return stripped
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %q", prefix)
	}
	if prefix != "/" && strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("module prefix must not end with /: %q", prefix)
	}
	return nil
}
