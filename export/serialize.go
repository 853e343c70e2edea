package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Informatievlaanderen/OSLO-codelijsten/rdf"
	"github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/w3c"
)

// Serialize renders an ordered quad list as a self-contained document in the
// given format. Quads are expected to be sorted with rdf.SortQuads; the
// serializers group consecutive quads sharing a subject into one block.
func Serialize(quads []rdf.Quad, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return toTurtle(quads, DefaultPrefixes()), nil
	case FormatNTriples:
		return toNTriples(quads), nil
	case FormatJSONLD:
		return toJSONLD(quads, DefaultPrefixes())
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// toTurtle serializes to Turtle with filtered prefix declarations.
func toTurtle(quads []rdf.Quad, prefixes map[string]string) string {
	prefixes = FilterPrefixes(prefixes, quads)

	var sb strings.Builder

	keys := make([]string, 0, len(prefixes))
	for k := range prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, prefix := range keys {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", prefix, prefixes[prefix])
	}
	if len(keys) > 0 {
		sb.WriteString("\n")
	}

	for i := 0; i < len(quads); {
		j := i
		for j < len(quads) && quads[j].Subject == quads[i].Subject {
			j++
		}
		writeSubjectBlock(&sb, quads[i:j], prefixes)
		if j < len(quads) {
			sb.WriteString("\n")
		}
		i = j
	}

	return sb.String()
}

// writeSubjectBlock writes one subject with all its predicates.
func writeSubjectBlock(sb *strings.Builder, quads []rdf.Quad, prefixes map[string]string) {
	sb.WriteString(turtleNode(quads[0].Subject, prefixes))
	sb.WriteString("\n")

	for i, q := range quads {
		fmt.Fprintf(sb, "    %s %s", turtlePredicate(q.Predicate, prefixes), turtleObject(q.Object, prefixes))
		if i < len(quads)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

func turtlePredicate(p rdf.Term, prefixes map[string]string) string {
	if p.Value == w3c.RdfType {
		return "a"
	}
	return turtleNode(p, prefixes)
}

func turtleNode(t rdf.Term, prefixes map[string]string) string {
	if t.Kind == rdf.Blank {
		return "_:" + t.Value
	}
	if name, ok := prefixedName(t.Value, prefixes); ok {
		return name
	}
	return "<" + t.Value + ">"
}

func turtleObject(t rdf.Term, prefixes map[string]string) string {
	if t.Kind != rdf.Literal {
		return turtleNode(t, prefixes)
	}
	s := `"` + escapeString(t.Value) + `"`
	switch {
	case t.Language != "":
		return s + "@" + t.Language
	case t.Datatype != "":
		if name, ok := prefixedName(t.Datatype, prefixes); ok {
			return s + "^^" + name
		}
		return s + "^^<" + t.Datatype + ">"
	default:
		return s
	}
}

// prefixedName compacts a full IRI to prefix:local when a declared namespace
// matches and the local part is a safe Turtle name.
func prefixedName(iri string, prefixes map[string]string) (string, bool) {
	best, bestNS := "", ""
	for prefix, namespace := range prefixes {
		if strings.HasPrefix(iri, namespace) && len(namespace) > len(bestNS) {
			best, bestNS = prefix, namespace
		}
	}
	if bestNS == "" {
		return "", false
	}
	local := iri[len(bestNS):]
	if local == "" || strings.ContainsAny(local, "/#:.%") {
		return "", false
	}
	return best + ":" + local, true
}

// toNTriples serializes one full-IRI statement per line.
func toNTriples(quads []rdf.Quad) string {
	var sb strings.Builder
	for _, q := range quads {
		fmt.Fprintf(&sb, "%s %s %s .\n", ntriplesTerm(q.Subject), ntriplesTerm(q.Predicate), ntriplesTerm(q.Object))
	}
	return sb.String()
}

func ntriplesTerm(t rdf.Term) string {
	switch t.Kind {
	case rdf.Blank:
		return "_:" + t.Value
	case rdf.Literal:
		s := `"` + escapeString(t.Value) + `"`
		switch {
		case t.Language != "":
			return s + "@" + t.Language
		case t.Datatype != "":
			return s + "^^<" + t.Datatype + ">"
		default:
			return s
		}
	default:
		return "<" + t.Value + ">"
	}
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
