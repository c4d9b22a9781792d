package app

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// introspectionGraphName is the named dependency served by the /introspect endpoint.
const introspectionGraphName = "introspection-graph-mermaid"

// MermaidGraphIntrospector renders the wiring of the application as a Mermaid graph
// and registers it for the HTTP introspection page.
type MermaidGraphIntrospector struct{}

// Introspect generates the Mermaid graph from the report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), introspectionGraphName)
	return nil
}

// ConfigDefaultsLogger logs, once at startup, which configuration keys fell back to their defaults.
type ConfigDefaultsLogger struct {
	Logger *log.Logger
}

// Introspect implements symbiont's introspector.
func (i ConfigDefaultsLogger) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		logger = log.Default()
	}

	var defaults []string
	seen := map[string]struct{}{}
	for _, c := range r.Configs {
		if !c.UsedDefault {
			continue
		}
		if _, ok := seen[c.Key]; ok {
			continue
		}
		seen[c.Key] = struct{}{}
		defaults = append(defaults, c.Key)
	}
	if len(defaults) == 0 {
		return nil
	}

	sort.Strings(defaults)
	logger.Printf("RepoIndexer: using defaults for %s", strings.Join(defaults, ", "))
	return nil
}
