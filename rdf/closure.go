package rdf

import (
	"sort"

	"github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/w3c"
)

// Closure collects every quad reachable from root without crossing into
// another registered organization's subgraph. A merged store may hold many
// top-level entities that reference each other's sites; the boundary check
// on the object's rdf:type keeps each entity's serialization self-contained.
//
// Traversal is depth-first. A visited set bounds the walk: shared blank
// nodes can in principle form a cycle, and a revisited node is silently
// truncated rather than treated as an error.
//
// The result is ordered with SortQuads. A root with no quads yields an empty
// slice; the caller decides whether that means "not found".
func Closure(store *Store, root Term) []Quad {
	var quads []Quad
	visited := make(map[Term]bool)
	discover(store, root, visited, &quads)
	SortQuads(quads)
	return quads
}

func discover(store *Store, node Term, visited map[Term]bool, quads *[]Quad) {
	if visited[node] {
		return
	}
	visited[node] = true

	for _, q := range store.Subject(node) {
		*quads = append(*quads, q)
		if q.Object.IsNode() && !isRegisteredOrganization(store, q.Object) {
			discover(store, q.Object, visited, quads)
		}
	}
}

func isRegisteredOrganization(store *Store, node Term) bool {
	t, ok := store.Object(node, w3c.RdfType)
	return ok && t.Value == w3c.RegOrgRegisteredOrganization
}

// SortQuads orders quads for stable, diff-friendly serialization: named
// subjects before blank subjects, then subject value ascending. The sort is
// stable so quads of one subject keep their insertion order.
func SortQuads(quads []Quad) {
	sort.SliceStable(quads, func(i, j int) bool {
		a, b := quads[i].Subject, quads[j].Subject
		if a.Kind != b.Kind {
			return a.Kind == IRI
		}
		return a.Value < b.Value
	})
}
