package export

import (
	"encoding/json"
	"fmt"

	"github.com/Informatievlaanderen/OSLO-codelijsten/rdf"
	"github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/w3c"
)

// toJSONLD serializes to a JSON-LD document with a filtered @context and one
// @graph node per subject. encoding/json sorts object keys, so the output is
// deterministic for a sorted quad list.
func toJSONLD(quads []rdf.Quad, prefixes map[string]string) (string, error) {
	doc := map[string]any{
		"@context": FilterPrefixes(prefixes, quads),
		"@graph":   jsonldGraph(quads),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal JSON-LD: %w", err)
	}
	return string(data) + "\n", nil
}

func jsonldGraph(quads []rdf.Quad) []map[string]any {
	graph := make([]map[string]any, 0)

	for i := 0; i < len(quads); {
		j := i
		for j < len(quads) && quads[j].Subject == quads[i].Subject {
			j++
		}
		graph = append(graph, jsonldNode(quads[i:j]))
		i = j
	}
	return graph
}

func jsonldNode(quads []rdf.Quad) map[string]any {
	node := map[string]any{"@id": jsonldID(quads[0].Subject)}

	for _, q := range quads {
		if q.Predicate.Value == w3c.RdfType && q.Object.Kind == rdf.IRI {
			node["@type"] = appendValue(node["@type"], q.Object.Value)
			continue
		}
		node[q.Predicate.Value] = appendValue(node[q.Predicate.Value], jsonldObject(q.Object))
	}
	return node
}

// appendValue keeps single-valued predicates scalar and folds repeats into a
// list, which is what downstream JSON-LD consumers of the site expect.
func appendValue(existing, value any) any {
	switch prev := existing.(type) {
	case nil:
		return value
	case []any:
		return append(prev, value)
	default:
		return []any{prev, value}
	}
}

func jsonldID(t rdf.Term) string {
	if t.Kind == rdf.Blank {
		return "_:" + t.Value
	}
	return t.Value
}

func jsonldObject(t rdf.Term) any {
	switch {
	case t.Kind != rdf.Literal:
		return map[string]any{"@id": jsonldID(t)}
	case t.Language != "":
		return map[string]any{"@value": t.Value, "@language": t.Language}
	case t.Datatype != "":
		return map[string]any{"@value": t.Value, "@type": t.Datatype}
	default:
		return t.Value
	}
}

// UnwrapSingle unwraps a JSON-LD document describing exactly one node into a
// bare object, for consumers that expect one object rather than a list. A
// top-level single-element array is unwrapped directly; a document with a
// single-element @graph is flattened into its node with the @context kept.
// Anything else, including unparseable input, is returned unchanged.
func UnwrapSingle(doc string) string {
	var top any
	if err := json.Unmarshal([]byte(doc), &top); err != nil {
		return doc
	}

	switch v := top.(type) {
	case []any:
		if len(v) != 1 {
			return doc
		}
		return mustIndent(v[0], doc)
	case map[string]any:
		graph, ok := v["@graph"].([]any)
		if !ok || len(graph) != 1 {
			return doc
		}
		node, ok := graph[0].(map[string]any)
		if !ok {
			return doc
		}
		out := make(map[string]any, len(node)+1)
		for k, val := range node {
			out[k] = val
		}
		if ctx, ok := v["@context"]; ok {
			out["@context"] = ctx
		}
		return mustIndent(out, doc)
	default:
		return doc
	}
}

func mustIndent(v any, fallback string) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fallback
	}
	return string(data)
}
