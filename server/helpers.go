package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Informatievlaanderen/OSLO-codelijsten/export"
	"github.com/Informatievlaanderen/OSLO-codelijsten/rdf"
	"github.com/Informatievlaanderen/OSLO-codelijsten/sparql"
)

// writeJSON marshals v as JSON and writes it to w with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Response is already partially written; nothing left to do.
		_ = err
	}
}

// writeRDF writes a serialized RDF document with its media type.
func writeRDF(w http.ResponseWriter, format export.Format, doc string) {
	negotiatedFormats.WithLabelValues(string(format)).Inc()
	w.Header().Set("Content-Type", format.MediaType())
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, doc)
}

// lastSegment returns the final path segment of a URI.
func lastSegment(uri string) string {
	idx := strings.LastIndex(uri, "/")
	if idx < 0 {
		return uri
	}
	return uri[idx+1:]
}

// fetchRaw retrieves a source document verbatim.
func (s *Server) fetchRaw(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build source request: %w", err)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(body), nil
}

// serializeSource produces the full contents of a source document in the
// requested format. Turtle requests against a native Turtle source pass the
// document through untouched; everything else goes through a CONSTRUCT of
// all triples.
func (s *Server) serializeSource(ctx context.Context, sourceURL string, format export.Format) (string, error) {
	if format == export.FormatTurtle && strings.HasSuffix(sourceURL, ".ttl") {
		return s.fetchRaw(ctx, sourceURL)
	}

	quads, err := s.engine.QueryQuads(ctx, sparql.ConstructAllQuery, []string{sourceURL})
	if err != nil {
		return "", err
	}
	rdf.SortQuads(quads)
	return export.Serialize(quads, format)
}

// serializeConcept produces the subgraph of one concept in the requested
// format. Single-concept JSON-LD responses are unwrapped to a bare object.
func (s *Server) serializeConcept(ctx context.Context, slug, sourceURL string, format export.Format) (string, error) {
	quads, err := s.engine.QueryQuads(ctx, sparql.ConstructConceptQuery(slug), []string{sourceURL})
	if err != nil {
		return "", err
	}
	rdf.SortQuads(quads)

	doc, err := export.Serialize(quads, format)
	if err != nil {
		return "", err
	}
	if format == export.FormatJSONLD {
		doc = export.UnwrapSingle(doc)
	}
	return doc, nil
}
