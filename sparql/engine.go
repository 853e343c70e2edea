// Package sparql queries RDF sources through a SPARQL endpoint.
package sparql

import (
	"context"

	"github.com/Informatievlaanderen/OSLO-codelijsten/rdf"
)

// Binding is one solution row of a SELECT query, variable name to value.
// Unbound OPTIONAL variables are simply absent.
type Binding map[string]string

// Get returns the value bound to the named variable.
func (b Binding) Get(name string) (string, bool) {
	v, ok := b[name]
	return v, ok
}

// Engine evaluates SPARQL queries against a set of RDF sources. Sources are
// URLs of RDF documents the query is scoped to.
type Engine interface {
	// QueryBindings evaluates a SELECT query and returns its solution rows.
	// No matches yields an empty slice, not an error.
	QueryBindings(ctx context.Context, query string, sources []string) ([]Binding, error)

	// QueryQuads evaluates a CONSTRUCT query and returns the built graph.
	QueryQuads(ctx context.Context, query string, sources []string) ([]rdf.Quad, error)
}
