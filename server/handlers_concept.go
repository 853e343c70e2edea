package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Informatievlaanderen/OSLO-codelijsten/datasetconfig"
	"github.com/Informatievlaanderen/OSLO-codelijsten/sparql"
)

// handleConceptSchemeList returns the JSON projection of every configured
// concept scheme. Schemes whose source cannot be queried are skipped.
func (s *Server) handleConceptSchemeList(w http.ResponseWriter, r *http.Request) {
	schemes, err := s.datasets.Schemes()
	if err != nil {
		s.logger.Error("dataset configuration unavailable", "error", err)
		http.Error(w, "Error fetching concept schemes", http.StatusInternalServerError)
		return
	}

	result := make([]ConceptScheme, 0, len(schemes))
	for _, scheme := range schemes {
		projection, err := s.schemeProjection(r.Context(), scheme.Key, scheme.URL, false)
		if err != nil {
			s.logger.Error("concept scheme query failed",
				"scheme", scheme.Key, "error", err)
			continue
		}
		result = append(result, projection)
	}
	writeJSON(w, http.StatusOK, result)
}

// handleConceptSchemeByKey returns one scheme resolved by its configuration
// key, top concepts included.
func (s *Server) handleConceptSchemeByKey(w http.ResponseWriter, r *http.Request) {
	scheme, err := s.datasets.SchemeByKey(r.PathValue("slug"))
	if err != nil {
		s.schemeNotFound(w, err)
		return
	}

	projection, err := s.schemeProjection(r.Context(), scheme.Key, scheme.URL, true)
	if err != nil {
		s.logger.Error("concept scheme query failed",
			"scheme", scheme.Key, "error", err)
		http.Error(w, "Error fetching concept scheme", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, projection)
}

// handleConceptScheme resolves a scheme by its public URL slug. RDF formats
// serve the scheme's source document; the default is the JSON projection.
func (s *Server) handleConceptScheme(w http.ResponseWriter, r *http.Request) {
	neg := negotiate(r.PathValue("slug"), r)

	scheme, err := s.datasets.SchemeByRef(neg.Slug)
	if err != nil {
		s.schemeNotFound(w, err)
		return
	}

	if neg.RDF {
		doc, err := s.serializeSource(r.Context(), scheme.SourceURL, neg.Format)
		if err != nil {
			s.logger.Error("concept scheme serialization failed",
				"scheme", scheme.URLRef, "error", err)
			http.Error(w, "Error fetching concept scheme", http.StatusBadRequest)
			return
		}
		writeRDF(w, neg.Format, doc)
		return
	}

	projection, err := s.schemeProjection(r.Context(), scheme.URLRef, scheme.SourceURL, true)
	if err != nil {
		s.logger.Error("concept scheme query failed",
			"scheme", scheme.URLRef, "error", err)
		http.Error(w, "Error fetching concept scheme", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, projection)
}

// handleConcept serves one concept. The slug is either "scheme/conceptId" or
// a bare concept id; bare ids are searched across every configured scheme.
func (s *Server) handleConcept(w http.ResponseWriter, r *http.Request) {
	neg := negotiate(r.PathValue("slug"), r)

	schemeSlug, conceptID := splitConceptSlug(neg.Slug)
	sources, err := s.conceptSources(schemeSlug)
	if err != nil {
		s.schemeNotFound(w, err)
		return
	}

	if neg.RDF {
		for _, source := range sources {
			doc, err := s.serializeConcept(r.Context(), conceptID, source, neg.Format)
			if err != nil || doc == "" {
				continue
			}
			writeRDF(w, neg.Format, doc)
			return
		}
		http.Error(w, "Error fetching concept", http.StatusBadRequest)
		return
	}

	concept, err := s.conceptProjection(r.Context(), conceptID, sources)
	if err != nil {
		s.logger.Error("concept query failed", "concept", conceptID, "error", err)
		http.Error(w, "Error fetching concept", http.StatusBadRequest)
		return
	}
	if concept == nil {
		http.Error(w, "Concept not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, concept)
}

func (s *Server) schemeNotFound(w http.ResponseWriter, err error) {
	if errors.Is(err, datasetconfig.ErrNotFound) {
		http.Error(w, "Concept scheme not found", http.StatusNotFound)
		return
	}
	s.logger.Error("dataset configuration unavailable", "error", err)
	http.Error(w, "Error fetching concept scheme", http.StatusInternalServerError)
}

// splitConceptSlug splits "scheme/conceptId" slugs; a bare id yields an
// empty scheme.
func splitConceptSlug(slug string) (schemeSlug, conceptID string) {
	parts := strings.SplitN(slug, "/", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return "", parts[0]
}

// conceptSources resolves the source documents to search for a concept.
func (s *Server) conceptSources(schemeSlug string) ([]string, error) {
	if schemeSlug != "" {
		scheme, err := s.datasets.SchemeByKey(schemeSlug)
		if err == nil {
			return []string{scheme.URL}, nil
		}
		if !errors.Is(err, datasetconfig.ErrNotFound) {
			return nil, err
		}
	}

	schemes, err := s.datasets.Schemes()
	if err != nil {
		return nil, err
	}
	sources := make([]string, 0, len(schemes))
	for _, scheme := range schemes {
		sources = append(sources, scheme.URL)
	}
	return sources, nil
}

// schemeProjection queries one scheme's source and builds the JSON
// projection, optionally including its top concepts.
func (s *Server) schemeProjection(ctx context.Context, id, sourceURL string, withConcepts bool) (ConceptScheme, error) {
	bindings, err := s.engine.QueryBindings(ctx, sparql.ConceptSchemeQuery, []string{sourceURL})
	if err != nil {
		return ConceptScheme{}, err
	}
	if len(bindings) == 0 {
		return ConceptScheme{}, errors.New("no concept scheme in source")
	}

	// Sources can hold several schemes; prefer the one whose URI ends in
	// the requested id.
	binding := bindings[0]
	for _, b := range bindings {
		if uri, _ := b.Get("scheme"); lastSegment(uri) == id {
			binding = b
			break
		}
	}
	schemeURI, _ := binding.Get("scheme")

	projection := ConceptScheme{
		ID:          id,
		URI:         schemeURI,
		Label:       orDefault(binding, "label", id),
		Definition:  value(binding, "definition"),
		Status:      value(binding, "status"),
		Dataset:     value(binding, "dataset"),
		TopConcepts: []ConceptRef{},
		Source:      sourceURL,
	}

	if withConcepts {
		topConcepts, err := s.topConcepts(ctx, schemeURI, sourceURL)
		if err != nil {
			return ConceptScheme{}, err
		}
		projection.TopConcepts = topConcepts
	}
	return projection, nil
}

func (s *Server) topConcepts(ctx context.Context, schemeURI, sourceURL string) ([]ConceptRef, error) {
	bindings, err := s.engine.QueryBindings(ctx, sparql.TopConceptQuery(schemeURI), []string{sourceURL})
	if err != nil {
		return nil, err
	}

	refs := make([]ConceptRef, 0, len(bindings))
	for _, b := range bindings {
		uri, _ := b.Get("concept")
		refs = append(refs, ConceptRef{
			ID:         lastSegment(uri),
			URI:        uri,
			Label:      value(b, "label"),
			Definition: value(b, "definition"),
			Notation:   value(b, "notation"),
			Source:     sourceURL,
		})
	}
	return refs, nil
}

// conceptProjection searches the sources for the concept whose URI ends in
// the given id and assembles its full JSON projection. A nil concept means
// no source had it.
func (s *Server) conceptProjection(ctx context.Context, conceptID string, sources []string) (*Concept, error) {
	for _, source := range sources {
		bindings, err := s.engine.QueryBindings(ctx, sparql.ConceptQuery, []string{source})
		if err != nil {
			return nil, err
		}

		var match sparql.Binding
		for _, b := range bindings {
			if uri, _ := b.Get("concept"); lastSegment(uri) == conceptID {
				match = b
				break
			}
		}
		if match == nil {
			continue
		}
		conceptURI, _ := match.Get("concept")

		broader, err := s.relatedConcepts(ctx, conceptURI, source, "broader")
		if err != nil {
			return nil, err
		}
		narrower, err := s.relatedConcepts(ctx, conceptURI, source, "narrower")
		if err != nil {
			return nil, err
		}

		inScheme, err := s.schemeRefs(ctx, schemeURIs(bindings, conceptURI, "inScheme"), source)
		if err != nil {
			return nil, err
		}
		topConceptOf, err := s.schemeRefs(ctx, schemeURIs(bindings, conceptURI, "topConceptOf"), source)
		if err != nil {
			return nil, err
		}

		dataset := "https://data.vlaanderen.be/id/dataset/codelist"
		if uris := schemeURIs(bindings, conceptURI, "inScheme"); len(uris) > 0 {
			dataset = uris[0]
		}

		return &Concept{
			ID:           conceptID,
			URI:          conceptURI,
			Label:        orDefault(match, "label", conceptID),
			Definition:   value(match, "definition"),
			Notation:     value(match, "notation"),
			Status:       value(match, "status"),
			Dataset:      dataset,
			InScheme:     inScheme,
			TopConceptOf: topConceptOf,
			Broader:      broader,
			Narrower:     narrower,
			Source:       source,
		}, nil
	}
	return nil, nil
}

func (s *Server) relatedConcepts(ctx context.Context, conceptURI, sourceURL, relation string) ([]ConceptRef, error) {
	bindings, err := s.engine.QueryBindings(ctx, sparql.RelatedConceptQuery(conceptURI, relation), []string{sourceURL})
	if err != nil {
		return nil, err
	}

	refs := make([]ConceptRef, 0, len(bindings))
	for _, b := range bindings {
		uri, _ := b.Get("relatedConcept")
		refs = append(refs, ConceptRef{
			ID:         lastSegment(uri),
			URI:        uri,
			Label:      value(b, "label"),
			Definition: value(b, "definition"),
			Notation:   value(b, "notation"),
			Source:     sourceURL,
		})
	}
	return refs, nil
}

func (s *Server) schemeRefs(ctx context.Context, uris []string, sourceURL string) ([]SchemeRef, error) {
	refs := make([]SchemeRef, 0, len(uris))
	for _, uri := range uris {
		bindings, err := s.engine.QueryBindings(ctx, sparql.SchemeQuery(uri), []string{sourceURL})
		if err != nil {
			return nil, err
		}
		if len(bindings) == 0 {
			continue
		}
		id := lastSegment(uri)
		refs = append(refs, SchemeRef{
			ID:         id,
			URI:        uri,
			Label:      orDefault(bindings[0], "label", id),
			Definition: value(bindings[0], "definition"),
			Source:     sourceURL,
		})
	}
	return refs, nil
}

// schemeURIs collects the distinct values a variable takes across the rows
// of one concept.
func schemeURIs(bindings []sparql.Binding, conceptURI, variable string) []string {
	var uris []string
	seen := make(map[string]bool)
	for _, b := range bindings {
		if uri, _ := b.Get("concept"); uri != conceptURI {
			continue
		}
		v, ok := b.Get(variable)
		if !ok || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		uris = append(uris, v)
	}
	return uris
}

func value(b sparql.Binding, name string) string {
	v, _ := b.Get(name)
	return v
}

func orDefault(b sparql.Binding, name, fallback string) string {
	if v, ok := b.Get(name); ok && v != "" {
		return v
	}
	return fallback
}
