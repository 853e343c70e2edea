package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/Informatievlaanderen/OSLO-codelijsten/sparql"
)

// handleOrganization serves one government organization. The backing source
// is the per-organization Turtle file published by the converter.
func (s *Server) handleOrganization(w http.ResponseWriter, r *http.Request) {
	neg := negotiate(r.PathValue("slug"), r)
	sourceURL := s.cfg.Sources.OrganizationTTLURL + "/" + neg.Slug + ".ttl"

	if neg.RDF {
		doc, err := s.serializeSource(r.Context(), sourceURL, neg.Format)
		if err != nil {
			s.logger.Error("organization serialization failed",
				"organization", neg.Slug, "error", err)
			http.Error(w, "Error fetching organization", http.StatusInternalServerError)
			return
		}
		writeRDF(w, neg.Format, doc)
		return
	}

	org, err := s.organizationProjection(r.Context(), neg.Slug, sourceURL)
	if err != nil {
		s.logger.Error("organization query failed",
			"organization", neg.Slug, "error", err)
		http.Error(w, "Error fetching organization", http.StatusInternalServerError)
		return
	}
	if org == nil {
		http.Error(w, "Organization not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

// handleOrganizationList returns every organization found in the combined
// organizations document.
func (s *Server) handleOrganizationList(w http.ResponseWriter, r *http.Request) {
	sourceURL := s.cfg.Sources.OrganizationTTLURL
	bindings, err := s.engine.QueryBindings(r.Context(), sparql.AllOrganizationsQuery, []string{sourceURL})
	if err != nil {
		s.logger.Error("organization list query failed", "error", err)
		http.Error(w, "Error fetching organizations", http.StatusInternalServerError)
		return
	}

	// Rows repeat per seeAlso link; group them by organization URI.
	var order []string
	grouped := make(map[string]*Organization)
	for _, b := range bindings {
		uri, ok := b.Get("org")
		if !ok || uri == "" {
			continue
		}
		org, exists := grouped[uri]
		if !exists {
			id := lastSegment(uri)
			org = &Organization{
				ID:              id,
				URI:             uri,
				Name:            orDefault(b, "name", id),
				AlternativeName: value(b, "altLabel"),
				Description:     value(b, "description"),
				Status:          value(b, "status"),
				FoundingDate:    value(b, "issued"),
				Website:         value(b, "homepage"),
				ContactPoints:   []ContactPoint{},
				Source:          sourceURL,
			}
			grouped[uri] = org
			order = append(order, uri)
		}
		if seeAlso, ok := b.Get("seeAlso"); ok && seeAlso != "" && !contains(org.SeeAlso, seeAlso) {
			org.SeeAlso = append(org.SeeAlso, seeAlso)
		}
	}

	result := make([]Organization, 0, len(order))
	for _, uri := range order {
		result = append(result, *grouped[uri])
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) organizationProjection(ctx context.Context, id, sourceURL string) (*Organization, error) {
	bindings, err := s.engine.QueryBindings(ctx, sparql.OrganizationByIDQuery(id), []string{sourceURL})
	if err != nil {
		return nil, err
	}
	if len(bindings) == 0 {
		return nil, nil
	}

	binding := bindings[0]
	orgURI, _ := binding.Get("org")

	contacts, err := s.contactPoints(ctx, orgURI, sourceURL)
	if err != nil {
		return nil, err
	}

	var seeAlso []string
	for _, b := range bindings {
		if v, ok := b.Get("seeAlso"); ok && v != "" && !contains(seeAlso, v) {
			seeAlso = append(seeAlso, v)
		}
	}

	return &Organization{
		ID:              id,
		URI:             orgURI,
		Name:            orDefault(binding, "name", id),
		AlternativeName: value(binding, "altLabel"),
		Description:     value(binding, "description"),
		Status:          value(binding, "status"),
		FoundingDate:    value(binding, "issued"),
		Website:         value(binding, "homepage"),
		SeeAlso:         seeAlso,
		ContactPoints:   contacts,
		Source:          sourceURL,
	}, nil
}

func (s *Server) contactPoints(ctx context.Context, orgURI, sourceURL string) ([]ContactPoint, error) {
	bindings, err := s.engine.QueryBindings(ctx, sparql.ContactPointsQuery(orgURI), []string{sourceURL})
	if err != nil {
		return nil, err
	}

	contacts := make([]ContactPoint, 0, len(bindings))
	for i, b := range bindings {
		contacts = append(contacts, ContactPoint{
			ID:        contactID(i),
			Name:      value(b, "label"),
			Email:     strings.TrimPrefix(value(b, "email"), "mailto:"),
			Telephone: value(b, "telephone"),
			Fax:       value(b, "faxNumber"),
			Website:   value(b, "url"),
		})
	}
	return contacts, nil
}

func contactID(index int) string {
	return "contact-" + strconv.Itoa(index)
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
