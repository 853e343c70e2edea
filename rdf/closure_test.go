package rdf_test

import (
	"testing"

	"github.com/Informatievlaanderen/OSLO-codelijsten/rdf"
	"github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/w3c"
)

func TestClosureCollectsReachableQuads(t *testing.T) {
	store := rdf.NewStore()
	company := rdf.NewIRI("http://example.org/company/1")
	contact := rdf.NewBlank("contact_1")

	store.AddAll(
		rdf.NewQuad(company, w3c.RdfType, rdf.NewIRI(w3c.RegOrgRegisteredOrganization)),
		rdf.NewQuad(company, w3c.SchemaContactInfo, contact),
		rdf.NewQuad(contact, w3c.SchemaEmail, rdf.NewLiteral("info@example.org")),
	)

	quads := rdf.Closure(store, company)
	if len(quads) != 3 {
		t.Fatalf("Closure returned %d quads, want 3", len(quads))
	}
}

func TestClosureStopsAtRegisteredOrganization(t *testing.T) {
	store := rdf.NewStore()
	company := rdf.NewIRI("http://example.org/company/1")
	site := rdf.NewIRI("http://example.org/site/2")

	store.AddAll(
		rdf.NewQuad(company, w3c.RdfType, rdf.NewIRI(w3c.RegOrgRegisteredOrganization)),
		rdf.NewQuad(company, w3c.OrgHasRegisteredSite, site),
		rdf.NewQuad(site, w3c.RdfType, rdf.NewIRI(w3c.RegOrgRegisteredOrganization)),
		rdf.NewQuad(site, w3c.RegOrgLegalName, rdf.NewLiteral("Site BV")),
	)

	quads := rdf.Closure(store, company)
	for _, q := range quads {
		if q.Subject == site {
			t.Fatalf("closure crossed into another registered organization: %v", q)
		}
	}
	if len(quads) != 2 {
		t.Errorf("Closure returned %d quads, want 2", len(quads))
	}
}

func TestClosureTruncatesCycles(t *testing.T) {
	store := rdf.NewStore()
	a := rdf.NewBlank("a")
	b := rdf.NewBlank("b")

	store.AddAll(
		rdf.NewQuad(a, "http://example.org/next", b),
		rdf.NewQuad(b, "http://example.org/next", a),
	)

	// Must terminate and visit each node once.
	quads := rdf.Closure(store, a)
	if len(quads) != 2 {
		t.Fatalf("Closure returned %d quads, want 2", len(quads))
	}
}

func TestClosureEmptyRoot(t *testing.T) {
	store := rdf.NewStore()
	if quads := rdf.Closure(store, rdf.NewIRI("http://example.org/missing")); len(quads) != 0 {
		t.Errorf("Closure of unknown root returned %d quads", len(quads))
	}
}

func TestSortQuads(t *testing.T) {
	quads := []rdf.Quad{
		rdf.NewQuad(rdf.NewBlank("z"), "http://example.org/p", rdf.NewLiteral("1")),
		rdf.NewQuad(rdf.NewIRI("http://example.org/b"), "http://example.org/p", rdf.NewLiteral("2")),
		rdf.NewQuad(rdf.NewIRI("http://example.org/a"), "http://example.org/p", rdf.NewLiteral("3")),
		rdf.NewQuad(rdf.NewIRI("http://example.org/a"), "http://example.org/q", rdf.NewLiteral("4")),
		rdf.NewQuad(rdf.NewBlank("a"), "http://example.org/p", rdf.NewLiteral("5")),
	}

	rdf.SortQuads(quads)

	wantSubjects := []string{
		"http://example.org/a",
		"http://example.org/a",
		"http://example.org/b",
		"a",
		"z",
	}
	for i, want := range wantSubjects {
		if quads[i].Subject.Value != want {
			t.Fatalf("quad %d subject = %q, want %q", i, quads[i].Subject.Value, want)
		}
	}
	// Stable: the two quads of /a keep insertion order.
	if quads[0].Object.Value != "3" || quads[1].Object.Value != "4" {
		t.Error("sort not stable within one subject")
	}
}
