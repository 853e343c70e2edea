// Package server exposes the published linked-data resources over HTTP with
// content negotiation between JSON, Turtle, JSON-LD and N-Triples.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Informatievlaanderen/OSLO-codelijsten/config"
	"github.com/Informatievlaanderen/OSLO-codelijsten/datasetconfig"
	"github.com/Informatievlaanderen/OSLO-codelijsten/sparql"
)

const shutdownTimeout = 10 * time.Second

// Server serves the codelijsten document API.
type Server struct {
	cfg      *config.Config
	engine   sparql.Engine
	datasets *datasetconfig.Provider
	http     *http.Client
	logger   *slog.Logger
}

// New returns a server querying RDF sources through the given engine and
// resolving concept-scheme slugs through the given provider.
func New(cfg *config.Config, engine sparql.Engine, datasets *datasetconfig.Provider, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:      cfg,
		engine:   engine,
		datasets: datasets,
		http:     &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

// Handler builds the route table wrapped in the request middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /conceptschemes", s.handleConceptSchemeList)
	mux.HandleFunc("GET /conceptschemes/{slug}", s.handleConceptSchemeByKey)
	mux.HandleFunc("GET /conceptscheme/{slug...}", s.handleConceptScheme)
	mux.HandleFunc("GET /concept/{slug...}", s.handleConcept)
	mux.HandleFunc("GET /organisatie/{slug...}", s.handleOrganization)
	mux.HandleFunc("GET /organisaties", s.handleOrganizationList)
	mux.HandleFunc("GET /onderneming/{slug...}", s.handleCompany)
	mux.HandleFunc("GET /licentie/{slug...}", s.handleLicense)
	mux.HandleFunc("GET /licenties", s.handleLicenseList)

	return s.withRequestLogging(mux)
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Server.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
