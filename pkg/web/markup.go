package web

import (
	"html/template"
	"sort"
	"strings"
)

// Node is a piece of markup expressed as data: an element with attributes and
// children, or a text node when Tag is empty.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []Node
	Text     string
}

// Element builds an element node.
func Element(tag string, attrs map[string]string, children ...Node) Node {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

// Text builds a text node.
func Text(s string) Node {
	return Node{Text: s}
}

// Render returns the node as escaped HTML. Attributes are written in key order.
func (n Node) Render() template.HTML {
	var b strings.Builder
	n.write(&b)
	return template.HTML(b.String())
}

func (n Node) write(b *strings.Builder) {
	if n.Tag == "" {
		b.WriteString(template.HTMLEscapeString(n.Text))
		return
	}

	b.WriteString("<")
	b.WriteString(n.Tag)

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(template.HTMLEscapeString(n.Attrs[k]))
		b.WriteString(`"`)
	}
	b.WriteString(">")

	for _, c := range n.Children {
		c.write(b)
	}

	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">")
}
