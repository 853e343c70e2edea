// Package export serializes ordered quad lists to the RDF formats served by
// the codelijsten site: Turtle, N-Triples and JSON-LD.
package export

import "strings"

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MediaType is the standard media type.
	MediaType string

	// Extension is the file extension (with dot).
	Extension string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:      FormatTurtle,
		MediaType: "text/turtle",
		Extension: ".ttl",
	},
	FormatNTriples: {
		Name:      FormatNTriples,
		MediaType: "application/n-triples",
		Extension: ".nt",
	},
	FormatJSONLD: {
		Name:      FormatJSONLD,
		MediaType: "application/ld+json",
		Extension: ".jsonld",
	},
}

// Media types of the supported formats.
const (
	MediaTypeTurtle   = "text/turtle"
	MediaTypeNTriples = "application/n-triples"
	MediaTypeJSONLD   = "application/ld+json"
)

// Extensions lists the recognized path suffixes, in match order.
var Extensions = []string{".ttl", ".jsonld", ".nt"}

// MediaType returns the media type of a format.
func (f Format) MediaType() string {
	if info, ok := FormatRegistry[f]; ok {
		return info.MediaType
	}
	return MediaTypeTurtle
}

// FormatForExtension maps a path suffix such as ".ttl" to its format.
func FormatForExtension(ext string) (Format, bool) {
	for _, info := range FormatRegistry {
		if info.Extension == ext {
			return info.Name, true
		}
	}
	return "", false
}

// FormatForAccept matches an Accept header against the supported media-type
// table. Matching is by containment in the fixed order Turtle, JSON-LD,
// N-Triples, mirroring how the site has always negotiated.
func FormatForAccept(accept string) (Format, bool) {
	if accept == "" {
		return "", false
	}
	for _, f := range []Format{FormatTurtle, FormatJSONLD, FormatNTriples} {
		if strings.Contains(accept, f.MediaType()) {
			return f, true
		}
	}
	return "", false
}

// TrimExtension removes a recognized RDF extension from a slug or path,
// returning the stripped value and the extension found, if any.
func TrimExtension(s string) (clean, ext string) {
	for _, e := range Extensions {
		if strings.HasSuffix(s, e) {
			return strings.TrimSuffix(s, e), e
		}
	}
	return s, ""
}
