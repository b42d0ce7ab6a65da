package app

import (
	"context"
	"sort"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

const (
	// GraphDependencyName is the container name of the rendered mermaid graph.
	GraphDependencyName = "introspection-graph-mermaid"
	// DefaultedConfigsDependencyName is the container name of the sorted config
	// keys that fell back to their defaults.
	DefaultedConfigsDependencyName = "introspection-config-defaults"
)

// MermaidGraphIntrospector renders the catalog's dependency graph as mermaid
// and records which config keys were left at their defaults.
type MermaidGraphIntrospector struct {
}

// Introspect registers the graph and the defaulted config keys as named dependencies.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), GraphDependencyName)
	depend.RegisterNamed(defaultedConfigs(r), DefaultedConfigsDependencyName)
	return nil
}

func defaultedConfigs(r introspection.Report) []string {
	seen := map[string]bool{}
	keys := []string{}
	for _, c := range r.Configs {
		if c.UsedDefault && !seen[c.Key] {
			seen[c.Key] = true
			keys = append(keys, c.Key)
		}
	}
	sort.Strings(keys)
	return keys
}
