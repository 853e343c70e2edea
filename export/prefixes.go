package export

import (
	"github.com/Informatievlaanderen/OSLO-codelijsten/rdf"
	"github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/oslo"
	"github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/w3c"
)

// DefaultPrefixes returns the namespace prefixes of the published datasets.
func DefaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":         w3c.RDF,
		"rdfs":        w3c.RDFS,
		"xsd":         w3c.XSD,
		"dcterms":     w3c.DCTerms,
		"skos":        w3c.SKOS,
		"adms":        w3c.ADMS,
		"foaf":        w3c.FOAF,
		"locn":        w3c.LOCN,
		"schema":      w3c.Schema,
		"org":         w3c.Org,
		"reorg":       w3c.RegOrg,
		"organisatie": oslo.Organisatie,
		"adres":       oslo.Adres,
	}
}

// FilterPrefixes keeps only the prefixes whose namespace actually appears in
// the quads, so every emitted document declares exactly what it uses.
func FilterPrefixes(prefixes map[string]string, quads []rdf.Quad) map[string]string {
	used := make(map[string]bool)
	for _, q := range quads {
		for _, t := range []rdf.Term{q.Subject, q.Predicate, q.Object} {
			if t.Kind == rdf.IRI {
				used[t.Value] = true
			}
			if t.Kind == rdf.Literal && t.Datatype != "" {
				used[t.Datatype] = true
			}
		}
	}

	filtered := make(map[string]string)
	for prefix, namespace := range prefixes {
		for iri := range used {
			if hasNamespace(iri, namespace) {
				filtered[prefix] = namespace
				break
			}
		}
	}
	return filtered
}

func hasNamespace(iri, namespace string) bool {
	return len(iri) >= len(namespace) && iri[:len(namespace)] == namespace
}
