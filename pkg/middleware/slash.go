package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash redirects paths ending in "/" to the same path without it. The
// root path "/" passes through. Leading slashes and backslashes collapse to a
// single "/" so the Location always stays on this host.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) <= 1 || !strings.HasSuffix(r.URL.Path, "/") {
				next.ServeHTTP(w, r)
				return
			}

			target := canonicalPath(r.URL.Path)
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
		})
	}
}

func canonicalPath(p string) string {
	return "/" + strings.TrimLeft(strings.TrimSuffix(p, "/"), `/\`)
}
