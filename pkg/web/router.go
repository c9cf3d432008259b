package web

import "net/http"

// Router wraps http.ServeMux with a fallback for requests no pattern matches.
type Router struct {
	mux      *http.ServeMux
	fallback http.HandlerFunc
}

// NewRouter creates a Router without a fallback.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// SetFallback sets the handler for unmatched paths. Without one the mux
// default 404 is used.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	r.fallback = handler
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.fallback == nil {
		r.mux.ServeHTTP(w, req)
		return
	}

	if _, pattern := r.mux.Handler(req); pattern != "" || r.methodMismatch(req) {
		r.mux.ServeHTTP(w, req)
		return
	}

	r.fallback(w, req)
}

// methodMismatch reports whether req's path is registered for GET while req
// uses another method, so the mux can answer 405 instead of the fallback.
func (r *Router) methodMismatch(req *http.Request) bool {
	if req.Method == http.MethodGet || req.Method == http.MethodHead {
		return false
	}
	probe := req.Clone(req.Context())
	probe.Method = http.MethodGet
	_, pattern := r.mux.Handler(probe)
	return pattern != ""
}
