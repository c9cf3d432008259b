package site

import (
	"html/template"
	"strings"

	"github.com/gukin-han/portfolio/pkg/web"
)

// DefaultTitle is the header title when none is configured.
const DefaultTitle = "Gukin Han"

// NavItem is a header navigation entry. Items without an Href render as
// plain text.
type NavItem struct {
	Label string
	Href  string
}

// Header is the banner rendered above every page.
type Header struct {
	Title string
	Nav   []NavItem
}

// NewHeader builds the site header. Only Resume links anywhere; About and
// Portfolio are placeholders until those pages exist.
func NewHeader(title, basePath string) Header {
	if title == "" {
		title = DefaultTitle
	}
	return Header{
		Title: title,
		Nav: []NavItem{
			{Label: "About"},
			{Label: "Resume", Href: Link(basePath, ResumePath)},
			{Label: "Portfolio"},
		},
	}
}

// Links returns the navigation items that carry an href.
func (h Header) Links() []NavItem {
	var links []NavItem
	for _, item := range h.Nav {
		if item.Href != "" {
			links = append(links, item)
		}
	}
	return links
}

// Markup returns the header as a node tree.
func (h Header) Markup() web.Node {
	items := make([]web.Node, 0, len(h.Nav))
	for _, item := range h.Nav {
		var content web.Node
		if item.Href != "" {
			content = web.Element("a", map[string]string{"href": item.Href}, web.Text(item.Label))
		} else {
			content = web.Text(item.Label)
		}
		items = append(items, web.Element("li", nil, content))
	}

	return web.Element("header", map[string]string{"class": "site-header"},
		web.Element("h1", map[string]string{"class": "site-title"}, web.Text(h.Title)),
		web.Element("nav", nil,
			web.Element("ul", map[string]string{"class": "site-nav"}, items...),
		),
	)
}

// Render returns the header as HTML.
func (h Header) Render() template.HTML {
	return h.Markup().Render()
}

// Link joins a site-relative path onto basePath.
func Link(basePath, path string) string {
	base := strings.TrimSuffix(basePath, "/")
	if path == "/" {
		if base == "" {
			return "/"
		}
		return base
	}
	return base + path
}
