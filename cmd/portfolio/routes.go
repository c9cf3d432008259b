package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gukin-han/portfolio/internal/config"
	"github.com/gukin-han/portfolio/internal/site"
	"github.com/spf13/cobra"
)

var (
	colorPath    = lipgloss.Color("#89b4fa")
	colorPage    = lipgloss.Color("#a6e3a1")
	colorMuted   = lipgloss.Color("#7f849c")
	colorMissing = lipgloss.Color("#f38ba8")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4"))
	pathStyle    = lipgloss.NewStyle().Foreground(colorPath)
	pageStyle    = lipgloss.NewStyle().Foreground(colorPage)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	missingStyle = lipgloss.NewStyle().Foreground(colorMissing)
)

func newRoutesCmd(configPath *string) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the site route table",
		Long: `Print the site route table.

With --resolve, print the page a path renders, or the not-found page and
the closest existing route when nothing matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(*configPath)
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("resolve") {
				return printResolve(out, site.Routes(), cfg.Site.BasePath, target)
			}
			header := site.NewHeader(cfg.Site.Title, cfg.Site.BasePath)
			return printRoutes(out, site.Routes(), header, cfg.Site.BasePath)
		},
	}

	cmd.Flags().StringVarP(&target, "resolve", "r", "", "resolve a request path against the table")

	return cmd
}

func printRoutes(w io.Writer, table *site.Table, header site.Header, basePath string) error {
	entries := table.Routes()

	pathWidth := len("PATH")
	for _, route := range entries {
		pathWidth = max(pathWidth, len(site.Link(basePath, route.Path)))
	}
	pathCol := lipgloss.NewStyle().Width(pathWidth + 2)
	pageCol := lipgloss.NewStyle().Width(10)

	var b strings.Builder
	b.WriteString(headingStyle.Render(pathCol.Render("PATH") + pageCol.Render("PAGE") + "TEMPLATE"))
	b.WriteString("\n")

	for _, route := range entries {
		b.WriteString(pathCol.Render(pathStyle.Render(site.Link(basePath, route.Path))))
		b.WriteString(pageCol.Render(pageStyle.Render(route.Page.Title)))
		b.WriteString(mutedStyle.Render(route.Page.Template))
		b.WriteString("\n")
	}

	b.WriteString(pathCol.Render(mutedStyle.Render("*")))
	b.WriteString(pageCol.Render(missingStyle.Render("Not Found")))
	b.WriteString(mutedStyle.Render("404.html"))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render(pathCol.Render("NAV") + "HREF"))
	b.WriteString("\n")
	for _, link := range header.Links() {
		b.WriteString(pathCol.Render(pageStyle.Render(link.Label)))
		b.WriteString(pathStyle.Render(link.Href))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func printResolve(w io.Writer, table *site.Table, basePath, target string) error {
	path, ok := relativePath(basePath, target)
	if ok {
		if route, found := table.Resolve(path); found {
			_, err := fmt.Fprintf(w, "%s -> %s (%s)\n",
				pathStyle.Render(target),
				pageStyle.Render(route.Page.Title),
				mutedStyle.Render(route.Page.Template),
			)
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s -> %s\n", pathStyle.Render(target), missingStyle.Render("404 Not Found")); err != nil {
		return err
	}

	if !ok {
		return nil
	}
	if route, found := table.Suggest(path); found {
		_, err := fmt.Fprintf(w, "did you mean %s (%s)?\n",
			pathStyle.Render(site.Link(basePath, route.Path)),
			pageStyle.Render(route.Page.Title),
		)
		return err
	}
	return nil
}

// relativePath strips basePath from target. It reports false when target is
// outside the site mount.
func relativePath(basePath, target string) (string, bool) {
	if basePath == "/" {
		return target, true
	}
	if target == basePath {
		return "/", true
	}
	if rest, ok := strings.CutPrefix(target, basePath+"/"); ok {
		return "/" + rest, true
	}
	return "", false
}
