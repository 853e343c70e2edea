// Package datasetconfig resolves concept-scheme slugs to the RDF documents
// backing them, driven by a small JSON configuration document.
package datasetconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNotFound is returned when no scheme matches the requested key or
// URL reference.
var ErrNotFound = errors.New("concept scheme not found")

// SchemeConfig is one entry of the dataset configuration. Key identifies the
// scheme internally, URLRef is the public URL slug, URL and SourceURL point
// at the queryable and the raw RDF document.
type SchemeConfig struct {
	Key       string `json:"key"`
	URLRef    string `json:"urlRef"`
	URL       string `json:"url"`
	SourceURL string `json:"sourceUrl"`
}

// Config is the dataset configuration document.
type Config struct {
	ConceptSchemes []SchemeConfig `json:"conceptSchemes"`
}

// Provider loads the dataset configuration once and serves lookups from the
// cached copy. File-backed configurations are reloaded when the file
// changes; HTTP-backed ones stay as loaded.
type Provider struct {
	source string
	http   *http.Client
	logger *slog.Logger

	mu      sync.RWMutex
	config  *Config
	watcher *fsnotify.Watcher
}

// NewProvider returns a provider reading from the given source, an http(s)
// URL or a local file path.
func NewProvider(source string, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		source: source,
		http:   &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

// Load fetches and caches the configuration. For file sources a watcher is
// started that reloads the cache on changes; Close releases it.
func (p *Provider) Load() error {
	cfg, err := p.fetch()
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.config = cfg
	p.mu.Unlock()

	if !p.isFileSource() || p.watcher != nil {
		return nil
	}
	return p.watch()
}

// Close stops the file watcher, if any.
func (p *Provider) Close() error {
	if p.watcher == nil {
		return nil
	}
	return p.watcher.Close()
}

// Schemes returns every configured scheme.
func (p *Provider) Schemes() ([]SchemeConfig, error) {
	cfg, err := p.cached()
	if err != nil {
		return nil, err
	}
	return cfg.ConceptSchemes, nil
}

// SchemeByKey looks a scheme up by its configuration key.
func (p *Provider) SchemeByKey(key string) (SchemeConfig, error) {
	return p.find(func(s SchemeConfig) bool { return s.Key == key })
}

// SchemeByRef looks a scheme up by its public URL slug.
func (p *Provider) SchemeByRef(urlRef string) (SchemeConfig, error) {
	return p.find(func(s SchemeConfig) bool { return s.URLRef == urlRef })
}

func (p *Provider) find(match func(SchemeConfig) bool) (SchemeConfig, error) {
	cfg, err := p.cached()
	if err != nil {
		return SchemeConfig{}, err
	}
	for _, scheme := range cfg.ConceptSchemes {
		if match(scheme) {
			return scheme, nil
		}
	}
	return SchemeConfig{}, ErrNotFound
}

func (p *Provider) cached() (*Config, error) {
	p.mu.RLock()
	cfg := p.config
	p.mu.RUnlock()
	if cfg == nil {
		return nil, errors.New("dataset configuration not loaded")
	}
	return cfg, nil
}

func (p *Provider) isFileSource() bool {
	return !strings.HasPrefix(p.source, "http://") && !strings.HasPrefix(p.source, "https://")
}

func (p *Provider) fetch() (*Config, error) {
	var (
		data []byte
		err  error
	)
	if p.isFileSource() {
		data, err = os.ReadFile(p.source)
	} else {
		data, err = p.fetchHTTP()
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset configuration: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse dataset configuration: %w", err)
	}
	return &cfg, nil
}

func (p *Provider) fetchHTTP() ([]byte, error) {
	resp, err := p.http.Get(p.source)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", p.source, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (p *Provider) watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch dataset configuration: %w", err)
	}
	if err := watcher.Add(p.source); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", p.source, err)
	}
	p.watcher = watcher

	go p.reloadLoop(watcher)
	return nil
}

func (p *Provider) reloadLoop(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := p.fetch()
			if err != nil {
				p.logger.Error("dataset configuration reload failed", "error", err)
				continue
			}
			p.mu.Lock()
			p.config = cfg
			p.mu.Unlock()
			p.logger.Info("dataset configuration reloaded",
				"schemes", len(cfg.ConceptSchemes))
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("dataset configuration watcher error", "error", err)
		}
	}
}
