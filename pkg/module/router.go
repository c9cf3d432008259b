package module

import (
	"net/http"
	"sort"
)

// Router dispatches to native handlers first, then to mounted modules by
// longest prefix. Requests claimed by neither receive a plain 404.
type Router struct {
	native  *http.ServeMux
	modules []*Module
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{native: http.NewServeMux()}
}

// HandleNative registers an infrastructure handler (health checks, probes)
// that is matched before any module.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount adds m to the router.
func (r *Router) Mount(m *Module) {
	r.modules = append(r.modules, m)
	sort.SliceStable(r.modules, func(i, j int) bool {
		return len(r.modules[i].prefix) > len(r.modules[j].prefix)
	})
}

// Modules returns the mounted modules, longest prefix first.
func (r *Router) Modules() []*Module {
	return r.modules
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h, pattern := r.native.Handler(req); pattern != "" {
		h.ServeHTTP(w, req)
		return
	}

	for _, m := range r.modules {
		if m.matches(req.URL.Path) {
			m.Serve(w, req)
			return
		}
	}

	http.NotFound(w, req)
}
