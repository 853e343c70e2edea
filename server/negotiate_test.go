package server

import (
	"net/http/httptest"
	"testing"

	"github.com/Informatievlaanderen/OSLO-codelijsten/export"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name   string
		slug   string
		accept string
		want   negotiation
	}{
		{
			name: "extension",
			slug: "activiteiten.ttl",
			want: negotiation{Slug: "activiteiten", Format: export.FormatTurtle, RDF: true},
		},
		{
			name:   "extension beats accept header",
			slug:   "activiteiten.jsonld",
			accept: "text/turtle",
			want:   negotiation{Slug: "activiteiten", Format: export.FormatJSONLD, RDF: true},
		},
		{
			name:   "accept header",
			slug:   "activiteiten",
			accept: "application/n-triples",
			want:   negotiation{Slug: "activiteiten", Format: export.FormatNTriples, RDF: true},
		},
		{
			name:   "accept prefers turtle",
			slug:   "activiteiten",
			accept: "application/n-triples, text/turtle",
			want:   negotiation{Slug: "activiteiten", Format: export.FormatTurtle, RDF: true},
		},
		{
			name: "no extension no accept",
			slug: "activiteiten",
			want: negotiation{Slug: "activiteiten"},
		},
		{
			name:   "browser accept falls back to json",
			slug:   "activiteiten",
			accept: "text/html,application/xhtml+xml",
			want:   negotiation{Slug: "activiteiten"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/conceptscheme/"+tt.slug, nil)
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}
			if got := negotiate(tt.slug, r); got != tt.want {
				t.Errorf("negotiate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLastSegment(t *testing.T) {
	if got := lastSegment("https://data.vlaanderen.be/id/concept/x/1"); got != "1" {
		t.Errorf("lastSegment = %q", got)
	}
	if got := lastSegment("bare"); got != "bare" {
		t.Errorf("lastSegment = %q", got)
	}
}
