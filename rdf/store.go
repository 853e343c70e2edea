package rdf

// Store is an append-only quad collection with a subject index. It is an
// explicit value handed to the graph builders, not ambient state: each
// conversion unit owns its store, and a store is only shared after all
// writers for it have finished.
type Store struct {
	quads     []Quad
	bySubject map[Term][]int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{bySubject: make(map[Term][]int)}
}

// Add appends one quad.
func (s *Store) Add(q Quad) {
	s.bySubject[q.Subject] = append(s.bySubject[q.Subject], len(s.quads))
	s.quads = append(s.quads, q)
}

// AddAll appends quads in order.
func (s *Store) AddAll(quads ...Quad) {
	for _, q := range quads {
		s.Add(q)
	}
}

// Len returns the number of quads in the store.
func (s *Store) Len() int {
	return len(s.quads)
}

// Quads returns all quads in insertion order. The returned slice is shared
// with the store and must not be modified.
func (s *Store) Quads() []Quad {
	return s.quads
}

// Subject returns all quads whose subject equals the given term, in
// insertion order.
func (s *Store) Subject(subject Term) []Quad {
	idx := s.bySubject[subject]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Quad, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.quads[i])
	}
	return out
}

// Object returns the first object of (subject, predicate), if any.
func (s *Store) Object(subject Term, predicate string) (Term, bool) {
	for _, i := range s.bySubject[subject] {
		if q := s.quads[i]; q.Predicate.Value == predicate {
			return q.Object, true
		}
	}
	return Term{}, false
}
