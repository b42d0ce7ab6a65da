package http

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
)

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

// IntrospectHandler renders the dependency graph of the running app along
// with the config keys that were left at their defaults.
func (api CatalogServer) IntrospectHandler(w http.ResponseWriter, r *http.Request) {
	mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}
	// Defaults are optional.
	defaults, err := depend.ResolveNamed[[]string]("introspection-config-defaults")
	if err != nil && !isNotRegistered(err) {
		api.Logger.Printf("Error resolving config defaults: %v", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := tmpl.Execute(w, struct {
		Graph    string
		Title    string
		Defaults []string
	}{
		Title:    "Catalog Introspection Graph",
		Graph:    mermaidGraph,
		Defaults: defaults,
	}); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
	}
}

// isNotRegistered reports whether err is depend's error for a dependency
// that was never registered. depend has no sentinel for it.
func isNotRegistered(err error) bool {
	return strings.Contains(err.Error(), "was not registered")
}
