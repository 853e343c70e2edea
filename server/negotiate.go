package server

import (
	"net/http"

	"github.com/Informatievlaanderen/OSLO-codelijsten/export"
)

// negotiation is the outcome of matching a request against the supported RDF
// formats. A request negotiates a format through a path extension or, when
// the path carries none, through its Accept header. The extension wins.
type negotiation struct {
	// Slug is the path slug with any recognized extension stripped.
	Slug string

	// Format is the negotiated RDF format, valid only when RDF is true.
	Format export.Format

	// RDF reports whether an RDF serialization was requested at all. A
	// request without extension and without a matching Accept header gets
	// the JSON projection instead.
	RDF bool
}

// negotiate resolves the requested representation for a slug.
func negotiate(slug string, r *http.Request) negotiation {
	clean, ext := export.TrimExtension(slug)
	if ext != "" {
		if format, ok := export.FormatForExtension(ext); ok {
			return negotiation{Slug: clean, Format: format, RDF: true}
		}
	}
	if format, ok := export.FormatForAccept(r.Header.Get("Accept")); ok {
		return negotiation{Slug: clean, Format: format, RDF: true}
	}
	return negotiation{Slug: clean}
}
