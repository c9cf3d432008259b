// Package site defines what the portfolio serves: the route table mapping
// URL paths to pages, and the header rendered above every page.
package site

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrInvalidPath indicates a route path that is empty or lacks a leading slash.
	ErrInvalidPath = errors.New("site: invalid route path")

	// ErrDuplicatePath indicates two routes share a path.
	ErrDuplicatePath = errors.New("site: duplicate route path")
)

// SuggestThreshold is the largest edit distance Suggest will accept.
const SuggestThreshold = 3

// Page identifies a renderable page and the template that renders it.
type Page struct {
	Name     string
	Template string
	Title    string
}

// Route associates a URL path with a page.
type Route struct {
	Path string
	Page Page
}

const (
	HomePath   = "/"
	ResumePath = "/resume"
)

var (
	Home   = Page{Name: "home", Template: "home.html", Title: "Home"}
	Resume = Page{Name: "resume", Template: "resume.html", Title: "Resume"}
)

var routes = mustTable(
	Route{Path: HomePath, Page: Home},
	Route{Path: ResumePath, Page: Resume},
)

// Routes returns the route table served by the site.
func Routes() *Table {
	return routes
}

// Table is an immutable, ordered set of routes with unique paths.
type Table struct {
	entries []Route
}

// NewTable validates routes and returns a Table holding a copy of them.
func NewTable(routes ...Route) (*Table, error) {
	seen := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		if r.Path == "" || !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, r.Path)
		}
		if _, ok := seen[r.Path]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePath, r.Path)
		}
		seen[r.Path] = struct{}{}
	}

	entries := make([]Route, len(routes))
	copy(entries, routes)
	return &Table{entries: entries}, nil
}

func mustTable(routes ...Route) *Table {
	t, err := NewTable(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the first route whose path equals path exactly.
func (t *Table) Resolve(path string) (Route, bool) {
	for _, r := range t.entries {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Routes returns a copy of the table entries in order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.entries)
}

// Suggest returns the route closest to path by edit distance, when that
// distance is within SuggestThreshold. Ties go to the earlier route.
func (t *Table) Suggest(path string) (Route, bool) {
	best := -1
	bestDist := SuggestThreshold + 1

	for i, r := range t.entries {
		d := levenshtein.ComputeDistance(strings.ToLower(path), r.Path)
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	if best < 0 {
		return Route{}, false
	}
	return t.entries[best], true
}
