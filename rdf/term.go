// Package rdf provides the in-memory quad model used by the converters: terms,
// deterministic blank-node identifiers, a subject-indexed quad store, and the
// entity-closure traversal that carves one registered organization out of a
// shared store.
package rdf

// TermKind discriminates the three node kinds of the model.
type TermKind int

const (
	// IRI is a named node identified by a full IRI.
	IRI TermKind = iota

	// Blank is a document-local node with a deterministic label.
	Blank

	// Literal is a value node, optionally language-tagged or datatyped.
	Literal
)

// Term is a single RDF node. Terms are immutable values and are compared by
// equality of all fields, so deterministic construction yields deterministic
// graphs.
type Term struct {
	Kind     TermKind
	Value    string
	Language string
	Datatype string
}

// NewIRI returns a named-node term.
func NewIRI(iri string) Term {
	return Term{Kind: IRI, Value: iri}
}

// NewBlank returns a blank-node term with the given label.
func NewBlank(label string) Term {
	return Term{Kind: Blank, Value: label}
}

// NewLiteral returns a plain literal term.
func NewLiteral(value string) Term {
	return Term{Kind: Literal, Value: value}
}

// NewLangLiteral returns a language-tagged literal. An empty language tag
// yields a plain literal.
func NewLangLiteral(value, language string) Term {
	return Term{Kind: Literal, Value: value, Language: language}
}

// NewTypedLiteral returns a literal with an explicit datatype IRI.
func NewTypedLiteral(value, datatype string) Term {
	return Term{Kind: Literal, Value: value, Datatype: datatype}
}

// IsNode reports whether the term can be the subject of a quad.
func (t Term) IsNode() bool {
	return t.Kind == IRI || t.Kind == Blank
}

// BlankID builds the label of an owned blank node from its role and the
// identifier of the owning entity. The composite key guarantees that
// re-running a conversion reproduces identical labels, which both the diffed
// output and the closure traversal rely on.
func BlankID(role, owner string) string {
	return role + "_" + owner
}

// Quad is a single (subject, predicate, object) statement. The graph
// component is implicit: every store holds exactly one graph.
type Quad struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// NewQuad is a convenience constructor for a quad with an IRI predicate.
func NewQuad(subject Term, predicate string, object Term) Quad {
	return Quad{Subject: subject, Predicate: NewIRI(predicate), Object: object}
}
