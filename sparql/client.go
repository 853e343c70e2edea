package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	knakkrdf "github.com/knakk/rdf"

	"github.com/Informatievlaanderen/OSLO-codelijsten/rdf"
)

const (
	resultsJSONMediaType = "application/sparql-results+json"
	nTriplesMediaType    = "application/n-triples"

	defaultQueryTimeout = 30 * time.Second
)

// Client is an Engine backed by a SPARQL 1.1 protocol endpoint. Query
// sources are passed to the endpoint as FROM clauses.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *slog.Logger
}

// NewClient returns a client for the given endpoint URL.
func NewClient(endpoint string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: defaultQueryTimeout},
		logger:   logger,
	}
}

// selectResults is the application/sparql-results+json envelope.
type selectResults struct {
	Results struct {
		Bindings []map[string]struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

// QueryBindings runs a SELECT query scoped to the given sources.
func (c *Client) QueryBindings(ctx context.Context, query string, sources []string) ([]Binding, error) {
	body, err := c.execute(ctx, query, sources, resultsJSONMediaType)
	if err != nil {
		return nil, err
	}

	var results selectResults
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("parse query results: %w", err)
	}

	bindings := make([]Binding, 0, len(results.Results.Bindings))
	for _, row := range results.Results.Bindings {
		binding := make(Binding, len(row))
		for name, term := range row {
			binding[name] = term.Value
		}
		bindings = append(bindings, binding)
	}
	return bindings, nil
}

// QueryQuads runs a CONSTRUCT query scoped to the given sources and decodes
// the N-Triples response.
func (c *Client) QueryQuads(ctx context.Context, query string, sources []string) ([]rdf.Quad, error) {
	body, err := c.execute(ctx, query, sources, nTriplesMediaType)
	if err != nil {
		return nil, err
	}

	dec := knakkrdf.NewTripleDecoder(strings.NewReader(string(body)), knakkrdf.NTriples)
	var quads []rdf.Quad
	for {
		triple, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode construct result: %w", err)
		}
		quads = append(quads, rdf.Quad{
			Subject:   convertTerm(triple.Subj),
			Predicate: rdf.NewIRI(triple.Pred.String()),
			Object:    convertTerm(triple.Obj),
		})
	}
	return quads, nil
}

func (c *Client) execute(ctx context.Context, query string, sources []string, accept string) ([]byte, error) {
	form := url.Values{"query": {withSources(query, sources)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", accept)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read query response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("sparql endpoint error",
			"status", resp.StatusCode, "endpoint", c.endpoint)
		return nil, fmt.Errorf("query endpoint: status %d", resp.StatusCode)
	}
	return body, nil
}

// withSources scopes a query to the given source documents by inserting FROM
// clauses in front of the WHERE block. Queries without sources pass through
// untouched.
func withSources(query string, sources []string) string {
	if len(sources) == 0 {
		return query
	}

	var from strings.Builder
	for _, source := range sources {
		fmt.Fprintf(&from, "FROM <%s>\n", source)
	}

	idx := strings.Index(strings.ToUpper(query), "WHERE")
	if idx < 0 {
		return query + "\n" + from.String()
	}
	return query[:idx] + from.String() + query[idx:]
}

func convertTerm(term knakkrdf.Term) rdf.Term {
	switch term.Type() {
	case knakkrdf.TermIRI:
		return rdf.NewIRI(term.String())
	case knakkrdf.TermBlank:
		return rdf.NewBlank(strings.TrimPrefix(term.String(), "_:"))
	default:
		lit := term.(knakkrdf.Literal)
		if lang := lit.Lang(); lang != "" {
			return rdf.NewLangLiteral(lit.String(), lang)
		}
		if dt := lit.DataType.String(); dt != "" && dt != "http://www.w3.org/2001/XMLSchema#string" {
			return rdf.NewTypedLiteral(lit.String(), dt)
		}
		return rdf.NewLiteral(lit.String())
	}
}
