package datasetconfig_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Informatievlaanderen/OSLO-codelijsten/datasetconfig"
)

const sampleConfig = `{
  "conceptSchemes": [
    {"key": "activiteiten",
     "urlRef": "gemeentelijke-activiteiten",
     "url": "https://data.vlaanderen.be/id/conceptscheme/activiteiten",
     "sourceUrl": "https://example.org/activiteiten.ttl"},
    {"key": "diensten",
     "urlRef": "gemeentelijke-diensten",
     "url": "https://data.vlaanderen.be/id/conceptscheme/diensten",
     "sourceUrl": "https://example.org/diensten.jsonld"}
  ]
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datasets.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProviderFileSource(t *testing.T) {
	provider := datasetconfig.NewProvider(writeConfig(t, sampleConfig), nil)
	if err := provider.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer provider.Close()

	schemes, err := provider.Schemes()
	if err != nil {
		t.Fatal(err)
	}
	if len(schemes) != 2 {
		t.Fatalf("got %d schemes, want 2", len(schemes))
	}

	scheme, err := provider.SchemeByKey("activiteiten")
	if err != nil {
		t.Fatalf("SchemeByKey failed: %v", err)
	}
	if scheme.SourceURL != "https://example.org/activiteiten.ttl" {
		t.Errorf("sourceUrl = %q", scheme.SourceURL)
	}

	scheme, err = provider.SchemeByRef("gemeentelijke-diensten")
	if err != nil {
		t.Fatalf("SchemeByRef failed: %v", err)
	}
	if scheme.Key != "diensten" {
		t.Errorf("key = %q", scheme.Key)
	}

	if _, err := provider.SchemeByKey("onbekend"); !errors.Is(err, datasetconfig.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestProviderHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleConfig))
	}))
	defer srv.Close()

	provider := datasetconfig.NewProvider(srv.URL, nil)
	if err := provider.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer provider.Close()

	if _, err := provider.SchemeByRef("gemeentelijke-activiteiten"); err != nil {
		t.Errorf("SchemeByRef failed: %v", err)
	}
}

func TestProviderLoadErrors(t *testing.T) {
	provider := datasetconfig.NewProvider(filepath.Join(t.TempDir(), "missing.json"), nil)
	if err := provider.Load(); err == nil {
		t.Error("expected error for missing file")
	}

	provider = datasetconfig.NewProvider(writeConfig(t, "{broken"), nil)
	if err := provider.Load(); err == nil {
		t.Error("expected error for malformed JSON")
	}

	// Lookups before a successful Load fail instead of returning nothing.
	provider = datasetconfig.NewProvider(writeConfig(t, sampleConfig), nil)
	if _, err := provider.Schemes(); err == nil {
		t.Error("expected error before Load")
	}
}

func TestProviderReloadsOnFileChange(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	provider := datasetconfig.NewProvider(path, nil)
	if err := provider.Load(); err != nil {
		t.Fatal(err)
	}
	defer provider.Close()

	updated := `{"conceptSchemes": [
  {"key": "nieuw", "urlRef": "nieuw", "url": "https://example.org/nieuw", "sourceUrl": "https://example.org/nieuw.ttl"}
]}`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := provider.SchemeByKey("nieuw"); err == nil {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("configuration not reloaded after file change")
}
