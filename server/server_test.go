package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Informatievlaanderen/OSLO-codelijsten/config"
	"github.com/Informatievlaanderen/OSLO-codelijsten/datasetconfig"
	"github.com/Informatievlaanderen/OSLO-codelijsten/rdf"
	"github.com/Informatievlaanderen/OSLO-codelijsten/sparql"
)

// fakeEngine dispatches canned results per query. Handlers run several
// queries per request, so the callbacks switch on the query text.
type fakeEngine struct {
	bindingsFn func(query string, sources []string) ([]sparql.Binding, error)
	quadsFn    func(query string, sources []string) ([]rdf.Quad, error)
}

func (f *fakeEngine) QueryBindings(_ context.Context, query string, sources []string) ([]sparql.Binding, error) {
	if f.bindingsFn == nil {
		return nil, nil
	}
	return f.bindingsFn(query, sources)
}

func (f *fakeEngine) QueryQuads(_ context.Context, query string, sources []string) ([]rdf.Quad, error) {
	if f.quadsFn == nil {
		return nil, nil
	}
	return f.quadsFn(query, sources)
}

// newTestServer wires a server around the fake engine and a file-backed
// dataset configuration with one scheme pointing at sourceURL.
func newTestServer(t *testing.T, engine sparql.Engine, sourceURL string) *Server {
	t.Helper()

	datasetJSON := fmt.Sprintf(`{"conceptSchemes": [
  {"key": "activiteiten",
   "urlRef": "gemeentelijke-activiteiten",
   "url": "https://data.vlaanderen.be/id/conceptscheme/activiteiten",
   "sourceUrl": %q}
]}`, sourceURL)

	path := filepath.Join(t.TempDir(), "datasets.json")
	if err := os.WriteFile(path, []byte(datasetJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	datasets := datasetconfig.NewProvider(path, nil)
	if err := datasets.Load(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { datasets.Close() })

	cfg := config.DefaultConfig()
	cfg.Sources.OrganizationTTLURL = "https://example.org/organizations"
	cfg.Sources.CompanyTTLURL = "https://example.org/companies"
	cfg.Sources.LicenseTTLURL = "https://example.org/licenses.ttl"

	return New(cfg, engine, datasets, nil)
}

func doRequest(t *testing.T, s *Server, method, target, accept string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, target, nil)
	if accept != "" {
		r.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v\n%s", err, w.Body.String())
	}
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &fakeEngine{}, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/healthz", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode[map[string]string](t, w)
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("response missing request id")
	}
}

func TestConceptSchemeTurtlePassthrough(t *testing.T) {
	const rawTurtle = "@prefix skos: <http://www.w3.org/2004/02/skos/core#> .\n"
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rawTurtle))
	}))
	defer source.Close()

	s := newTestServer(t, &fakeEngine{}, source.URL+"/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/conceptscheme/gemeentelijke-activiteiten.ttl", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "text/turtle" {
		t.Errorf("Content-Type = %q", got)
	}
	// A native Turtle source is passed through untouched.
	if w.Body.String() != rawTurtle {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestConceptSchemeExplicitExtensionConverts(t *testing.T) {
	const schemeURI = "https://data.vlaanderen.be/id/conceptscheme/gemeentelijke-activiteiten"
	engine := &fakeEngine{
		quadsFn: func(query string, sources []string) ([]rdf.Quad, error) {
			if !strings.Contains(query, "CONSTRUCT { ?s ?p ?o }") {
				return nil, nil
			}
			return []rdf.Quad{
				rdf.NewQuad(rdf.NewIRI(schemeURI),
					"http://www.w3.org/2004/02/skos/core#prefLabel",
					rdf.NewLangLiteral("Gemeentelijke activiteiten", "nl")),
			}, nil
		},
	}

	// The source is Turtle; an explicit .jsonld request converts it.
	s := newTestServer(t, engine, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/conceptscheme/gemeentelijke-activiteiten.jsonld", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/ld+json" {
		t.Errorf("Content-Type = %q", got)
	}
	doc := decode[struct {
		Graph []map[string]any `json:"@graph"`
	}](t, w)
	if len(doc.Graph) != 1 || doc.Graph[0]["@id"] != schemeURI {
		t.Errorf("graph = %+v", doc.Graph)
	}
}

func TestConceptSchemeUnknownSlug(t *testing.T) {
	s := newTestServer(t, &fakeEngine{}, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/conceptscheme/onbekend", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Concept scheme not found") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestConceptSchemeJSONProjection(t *testing.T) {
	const schemeURI = "https://data.vlaanderen.be/id/conceptscheme/gemeentelijke-activiteiten"
	engine := &fakeEngine{
		bindingsFn: func(query string, _ []string) ([]sparql.Binding, error) {
			switch {
			case strings.Contains(query, "a skos:ConceptScheme"):
				return []sparql.Binding{{
					"scheme": schemeURI,
					"label":  "Gemeentelijke activiteiten",
				}}, nil
			case strings.Contains(query, "skos:topConceptOf <"):
				return []sparql.Binding{{
					"concept": schemeURI + "/1",
					"label":   "Burgerzaken",
				}}, nil
			}
			return nil, nil
		},
	}

	s := newTestServer(t, engine, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/conceptscheme/gemeentelijke-activiteiten", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	scheme := decode[ConceptScheme](t, w)
	if scheme.ID != "gemeentelijke-activiteiten" || scheme.URI != schemeURI {
		t.Errorf("scheme = %+v", scheme)
	}
	if scheme.Label != "Gemeentelijke activiteiten" {
		t.Errorf("label = %q", scheme.Label)
	}
	if len(scheme.TopConcepts) != 1 || scheme.TopConcepts[0].ID != "1" {
		t.Errorf("topConcepts = %+v", scheme.TopConcepts)
	}
}

func TestConceptSchemeList(t *testing.T) {
	engine := &fakeEngine{
		bindingsFn: func(query string, _ []string) ([]sparql.Binding, error) {
			if strings.Contains(query, "a skos:ConceptScheme") {
				return []sparql.Binding{{
					"scheme": "https://data.vlaanderen.be/id/conceptscheme/activiteiten",
				}}, nil
			}
			return nil, nil
		},
	}

	s := newTestServer(t, engine, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/conceptschemes", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	schemes := decode[[]ConceptScheme](t, w)
	if len(schemes) != 1 {
		t.Fatalf("got %d schemes, want 1", len(schemes))
	}
	// No label bound, so the key is the fallback label.
	if schemes[0].Label != "activiteiten" {
		t.Errorf("label = %q", schemes[0].Label)
	}
}

func TestConceptJSONProjection(t *testing.T) {
	const base = "https://data.vlaanderen.be/id/concept/activiteiten"
	const schemeURI = "https://data.vlaanderen.be/id/conceptscheme/activiteiten"

	engine := &fakeEngine{
		bindingsFn: func(query string, _ []string) ([]sparql.Binding, error) {
			switch {
			case strings.Contains(query, "?concept a skos:Concept"):
				return []sparql.Binding{
					{"concept": base + "/2", "label": "Sport", "notation": "2", "inScheme": schemeURI},
					{"concept": base + "/9", "label": "Overig"},
				}, nil
			case strings.Contains(query, "skos:broader ?relatedConcept"):
				return []sparql.Binding{{"relatedConcept": base + "/1", "label": "Vrije tijd"}}, nil
			case strings.Contains(query, "skos:narrower ?relatedConcept"):
				return nil, nil
			case strings.Contains(query, "SELECT ?label ?definition"):
				return []sparql.Binding{{"label": "Gemeentelijke activiteiten"}}, nil
			}
			return nil, nil
		},
	}

	s := newTestServer(t, engine, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/concept/activiteiten/2", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	concept := decode[Concept](t, w)
	if concept.ID != "2" || concept.URI != base+"/2" || concept.Label != "Sport" {
		t.Errorf("concept = %+v", concept)
	}
	if len(concept.Broader) != 1 || concept.Broader[0].Label != "Vrije tijd" {
		t.Errorf("broader = %+v", concept.Broader)
	}
	if len(concept.Narrower) != 0 {
		t.Errorf("narrower = %+v", concept.Narrower)
	}
	if len(concept.InScheme) != 1 || concept.InScheme[0].Label != "Gemeentelijke activiteiten" {
		t.Errorf("inScheme = %+v", concept.InScheme)
	}
	// The first inScheme URI doubles as the dataset reference.
	if concept.Dataset != schemeURI {
		t.Errorf("dataset = %q", concept.Dataset)
	}
}

func TestConceptNotFound(t *testing.T) {
	s := newTestServer(t, &fakeEngine{}, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/concept/activiteiten/99", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestConceptNTriples(t *testing.T) {
	const conceptURI = "https://data.vlaanderen.be/id/concept/activiteiten/2"
	engine := &fakeEngine{
		quadsFn: func(query string, _ []string) ([]rdf.Quad, error) {
			if !strings.Contains(query, "CONSTRUCT") {
				return nil, nil
			}
			return []rdf.Quad{
				rdf.NewQuad(rdf.NewIRI(conceptURI),
					"http://www.w3.org/2004/02/skos/core#prefLabel",
					rdf.NewLangLiteral("Sport", "nl")),
			}, nil
		},
	}

	s := newTestServer(t, engine, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/concept/activiteiten/2.nt", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/n-triples" {
		t.Errorf("Content-Type = %q", got)
	}
	if !strings.Contains(w.Body.String(), `"Sport"@nl .`) {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestConceptJSONLDUnwrapped(t *testing.T) {
	const conceptURI = "https://data.vlaanderen.be/id/concept/activiteiten/2"
	engine := &fakeEngine{
		quadsFn: func(query string, _ []string) ([]rdf.Quad, error) {
			if !strings.Contains(query, "?concept ?p ?o") {
				return nil, nil
			}
			return []rdf.Quad{
				rdf.NewQuad(rdf.NewIRI(conceptURI),
					"http://www.w3.org/2004/02/skos/core#prefLabel",
					rdf.NewLangLiteral("Sport", "nl")),
			}, nil
		},
	}

	s := newTestServer(t, engine, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/concept/activiteiten/2.jsonld", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/ld+json" {
		t.Errorf("Content-Type = %q", got)
	}
	// A single-concept document is unwrapped to a bare object.
	doc := decode[map[string]any](t, w)
	if _, hasGraph := doc["@graph"]; hasGraph {
		t.Errorf("single concept still wrapped in @graph: %v", doc)
	}
	if doc["@id"] != conceptURI {
		t.Errorf("@id = %v", doc["@id"])
	}
	if _, hasContext := doc["@context"]; !hasContext {
		t.Error("@context missing from unwrapped document")
	}
}

func TestOrganizationJSONProjection(t *testing.T) {
	const orgURI = "https://data.vlaanderen.be/id/organisatie/OVO001234"
	engine := &fakeEngine{
		bindingsFn: func(query string, sources []string) ([]sparql.Binding, error) {
			switch {
			case strings.Contains(query, "a org:Organization"):
				// The per-organization document is the query source.
				if len(sources) != 1 || !strings.HasSuffix(sources[0], "/OVO001234.ttl") {
					t.Errorf("sources = %v", sources)
				}
				return []sparql.Binding{
					{"org": orgURI, "name": "Agentschap Test", "status": "http://data.vlaanderen.be/id/concept/organisatiestatus/actief",
						"seeAlso": "https://wegwijs.vlaanderen.be/#/organisations/abc"},
					{"org": orgURI, "name": "Agentschap Test",
						"seeAlso": "https://wegwijs.vlaanderen.be/#/organisations/abc"},
				}, nil
			case strings.Contains(query, "schema:contactPoint"):
				return []sparql.Binding{{
					"contact": orgURI + "/contact/0",
					"label":   "Email",
					"email":   "mailto:info@vlaanderen.be",
				}}, nil
			}
			return nil, nil
		},
	}

	s := newTestServer(t, engine, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/organisatie/OVO001234", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	org := decode[Organization](t, w)
	if org.ID != "OVO001234" || org.URI != orgURI || org.Name != "Agentschap Test" {
		t.Errorf("organization = %+v", org)
	}
	// Repeated seeAlso rows collapse to one entry.
	if len(org.SeeAlso) != 1 {
		t.Errorf("seeAlso = %v", org.SeeAlso)
	}
	if len(org.ContactPoints) != 1 {
		t.Fatalf("contactPoints = %+v", org.ContactPoints)
	}
	// The mailto: prefix is stripped in the JSON projection.
	if org.ContactPoints[0].Email != "info@vlaanderen.be" {
		t.Errorf("email = %q", org.ContactPoints[0].Email)
	}
}

func TestOrganizationNotFound(t *testing.T) {
	s := newTestServer(t, &fakeEngine{}, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/organisatie/OVO999999", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestOrganizationList(t *testing.T) {
	engine := &fakeEngine{
		bindingsFn: func(query string, _ []string) ([]sparql.Binding, error) {
			if !strings.Contains(query, "a org:Organization") {
				return nil, nil
			}
			return []sparql.Binding{
				{"org": "https://data.vlaanderen.be/id/organisatie/OVO000001", "name": "Eerste",
					"seeAlso": "https://example.org/a"},
				{"org": "https://data.vlaanderen.be/id/organisatie/OVO000001", "name": "Eerste",
					"seeAlso": "https://example.org/b"},
				{"org": "https://data.vlaanderen.be/id/organisatie/OVO000002", "name": "Tweede"},
			}, nil
		},
	}

	s := newTestServer(t, engine, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/organisaties", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	orgs := decode[[]Organization](t, w)
	if len(orgs) != 2 {
		t.Fatalf("got %d organizations, want 2", len(orgs))
	}
	if orgs[0].ID != "OVO000001" || len(orgs[0].SeeAlso) != 2 {
		t.Errorf("first organization = %+v", orgs[0])
	}
	if orgs[1].ID != "OVO000002" {
		t.Errorf("second organization = %+v", orgs[1])
	}
}

func TestCompanyJSONProjection(t *testing.T) {
	const companyURI = "https://data.vlaanderen.be/id/onderneming/0123456789"
	const siteURI = "https://data.vlaanderen.be/id/vestiging/2100000001"

	engine := &fakeEngine{
		bindingsFn: func(query string, _ []string) ([]sparql.Binding, error) {
			if !strings.Contains(query, "a regorg:RegisteredOrganization") {
				return nil, nil
			}
			return []sparql.Binding{
				{
					"organization": companyURI, "legalName": "Test NV",
					"rechtsvorm": "https://data.vlaanderen.be/id/concept/JuridicalForm/014",
					"issued":     "2001-05-04",
					"contactEmail": "info@test.be", "addressPostCode": "1000",
					"registrationNotation": "0123456789",
					"site":                 siteURI, "siteCreated": "2005-11-30",
					"siteRegNotation": "2100000001", "siteRegIssued": "2001-05-04",
				},
				{
					"organization": companyURI, "legalName": "Test SA",
					"site": siteURI,
				},
			}, nil
		},
	}

	s := newTestServer(t, engine, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/onderneming/0123456789", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	company := decode[Company](t, w)
	if company.ID != "0123456789" || company.URI != companyURI {
		t.Errorf("company = %+v", company)
	}
	if len(company.LegalName) != 2 {
		t.Errorf("legalName = %v", company.LegalName)
	}
	if company.Created != "2001-05-04" {
		t.Errorf("created = %q", company.Created)
	}
	if company.Registration == nil || company.Registration.Notation != "0123456789" {
		t.Errorf("registration = %+v", company.Registration)
	}
	if len(company.ContactPoints) != 1 || company.ContactPoints[0].Email != "info@test.be" {
		t.Errorf("contactPoints = %+v", company.ContactPoints)
	}
	if company.ContactPoints[0].Address == nil || company.ContactPoints[0].Address.PostCode != "1000" {
		t.Errorf("address = %+v", company.ContactPoints[0].Address)
	}
	// The repeated site row collapses to one entry with its registration.
	if len(company.RegisteredSites) != 1 {
		t.Fatalf("registeredSites = %+v", company.RegisteredSites)
	}
	site := company.RegisteredSites[0]
	if site.URI != siteURI || site.Registration == nil || site.Registration.Notation != "2100000001" {
		t.Errorf("site = %+v", site)
	}
}

func TestCompanyNotFound(t *testing.T) {
	s := newTestServer(t, &fakeEngine{}, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/onderneming/0000000000", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestLicenseJSONProjection(t *testing.T) {
	const licenseURI = "https://data.vlaanderen.be/id/licentie/creative-commons-zero-verklaring/v1.0"

	engine := &fakeEngine{
		bindingsFn: func(query string, _ []string) ([]sparql.Binding, error) {
			if !strings.Contains(query, "?license a ?type") {
				return nil, nil
			}
			return []sparql.Binding{
				{"license": licenseURI, "type": "http://purl.org/dc/terms/LicenseDocument",
					"title": "CC0-verklaring", "seeAlso": "https://creativecommons.org/publicdomain/zero/1.0/"},
				{"license": licenseURI, "type": "http://creativecommons.org/ns#License",
					"title": "CC0-verklaring"},
			}, nil
		},
	}

	s := newTestServer(t, engine, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/licentie/creative-commons-zero-verklaring/v1.0", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	license := decode[License](t, w)
	// The version segment is part of the id.
	if license.ID != "creative-commons-zero-verklaring/v1.0" {
		t.Errorf("id = %q", license.ID)
	}
	if license.Title != "CC0-verklaring" {
		t.Errorf("title = %q", license.Title)
	}
	if len(license.Type) != 2 {
		t.Errorf("type = %v", license.Type)
	}
	if len(license.SeeAlso) != 1 {
		t.Errorf("seeAlso = %v", license.SeeAlso)
	}
}

func TestLicenseNotFound(t *testing.T) {
	s := newTestServer(t, &fakeEngine{}, "https://example.org/activiteiten.ttl")
	w := doRequest(t, s, "GET", "/licentie/onbekend", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestLicenseTurtlePassthrough(t *testing.T) {
	const rawTurtle = "@prefix dcterms: <http://purl.org/dc/terms/> .\n"
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rawTurtle))
	}))
	defer source.Close()

	s := newTestServer(t, &fakeEngine{}, "https://example.org/activiteiten.ttl")
	s.cfg.Sources.LicenseTTLURL = source.URL + "/licenses.ttl"

	w := doRequest(t, s, "GET", "/licentie/modellicentie-gratis-hergebruik/v1.0", "text/turtle")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != rawTurtle {
		t.Errorf("body = %q", w.Body.String())
	}
}
