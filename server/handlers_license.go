package server

import (
	"net/http"
	"strings"

	"github.com/Informatievlaanderen/OSLO-codelijsten/export"
	"github.com/Informatievlaanderen/OSLO-codelijsten/sparql"
	"github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/oslo"
)

// handleLicense serves one Flemish model license. The license id may span
// several path segments since the version is part of the URI.
func (s *Server) handleLicense(w http.ResponseWriter, r *http.Request) {
	neg := negotiate(r.PathValue("slug"), r)
	sourceURL := s.cfg.Sources.LicenseTTLURL

	if neg.RDF && neg.Format == export.FormatTurtle {
		doc, err := s.fetchRaw(r.Context(), sourceURL)
		if err != nil {
			s.logger.Error("license document fetch failed", "error", err)
			http.Error(w, "Error fetching license", http.StatusInternalServerError)
			return
		}
		writeRDF(w, export.FormatTurtle, doc)
		return
	}

	bindings, err := s.engine.QueryBindings(r.Context(), sparql.LicenseByIDQuery(neg.Slug), []string{sourceURL})
	if err != nil {
		s.logger.Error("license query failed", "license", neg.Slug, "error", err)
		http.Error(w, "Error fetching license", http.StatusInternalServerError)
		return
	}
	licenses := groupLicenses(bindings, sourceURL)
	if len(licenses) == 0 {
		http.Error(w, "License not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, licenses[0])
}

// handleLicenseList returns every model license of the licenses document.
func (s *Server) handleLicenseList(w http.ResponseWriter, r *http.Request) {
	sourceURL := s.cfg.Sources.LicenseTTLURL

	bindings, err := s.engine.QueryBindings(r.Context(), sparql.LicenseQuery, []string{sourceURL})
	if err != nil {
		s.logger.Error("license list query failed", "error", err)
		http.Error(w, "Error fetching licenses", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, groupLicenses(bindings, sourceURL))
}

// groupLicenses collapses the flattened query rows into license projections.
// A license appears once per type, seeAlso and requires value.
func groupLicenses(bindings []sparql.Binding, sourceURL string) []License {
	var order []string
	grouped := make(map[string]*License)

	for _, b := range bindings {
		uri, ok := b.Get("license")
		if !ok || uri == "" {
			continue
		}
		license, exists := grouped[uri]
		if !exists {
			license = &License{
				// The version segment is part of the URI, so plain
				// last-segment extraction would lose the id.
				ID:       strings.TrimPrefix(uri, oslo.LicenseBase),
				URI:      uri,
				Type:     []string{},
				SeeAlso:  []string{},
				Requires: []string{},
				Source:   sourceURL,
			}
			grouped[uri] = license
			order = append(order, uri)
		}

		if v := value(b, "title"); v != "" {
			license.Title = v
		}
		if v := value(b, "description"); v != "" {
			license.Description = v
		}
		if v := value(b, "versionInfo"); v != "" {
			license.VersionInfo = v
		}
		if v := value(b, "sameAs"); v != "" {
			license.SameAs = v
		}
		if v := value(b, "type"); v != "" && !contains(license.Type, v) {
			license.Type = append(license.Type, v)
		}
		if v := value(b, "seeAlso"); v != "" && !contains(license.SeeAlso, v) {
			license.SeeAlso = append(license.SeeAlso, v)
		}
		if v := value(b, "requires"); v != "" && !contains(license.Requires, v) {
			license.Requires = append(license.Requires, v)
		}
	}

	licenses := make([]License, 0, len(order))
	for _, uri := range order {
		licenses = append(licenses, *grouped[uri])
	}
	return licenses
}
