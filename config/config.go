// Package config provides configuration loading and management for the
// codelijsten tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete codelijsten configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Sources SourcesConfig `yaml:"sources"`
	Convert ConvertConfig `yaml:"convert"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	// Listen is the address the server binds to
	Listen string `yaml:"listen"`
	// BaseURI is the root of the published identifier URIs
	BaseURI string `yaml:"base_uri"`
}

// SourcesConfig points at the RDF sources the server queries
type SourcesConfig struct {
	// SPARQLEndpoint is the SPARQL 1.1 protocol endpoint URL
	SPARQLEndpoint string `yaml:"sparql_endpoint"`
	// DatasetConfigURL is the dataset configuration document, an http(s)
	// URL or a local file path
	DatasetConfigURL string `yaml:"dataset_config_url"`
	// OrganizationTTLURL is the base URL of the per-organization Turtle files
	OrganizationTTLURL string `yaml:"organization_ttl_url"`
	// CompanyTTLURL is the base URL of the per-company Turtle files
	CompanyTTLURL string `yaml:"company_ttl_url"`
	// LicenseTTLURL is the URL of the model-licenses Turtle document
	LicenseTTLURL string `yaml:"license_ttl_url"`
}

// ConvertConfig tunes the CSV conversion pipeline
type ConvertConfig struct {
	// ChunkSize is the number of enterprises loaded into memory at once
	ChunkSize int `yaml:"chunk_size"`
	// BatchSize bounds the concurrent file writes within a chunk
	BatchSize int `yaml:"batch_size"`
	// ForceGC runs a GC cycle after every released chunk
	ForceGC bool `yaml:"force_gc"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:  ":8080",
			BaseURI: "https://data.vlaanderen.be",
		},
		Sources: SourcesConfig{},
		Convert: ConvertConfig{
			ChunkSize: 10000,
			BatchSize: 100,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if c.Server.BaseURI == "" {
		return fmt.Errorf("server.base_uri is required")
	}
	if c.Convert.ChunkSize < 0 {
		return fmt.Errorf("convert.chunk_size must not be negative")
	}
	if c.Convert.BatchSize < 0 {
		return fmt.Errorf("convert.batch_size must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Server
	if other.Server.Listen != "" {
		c.Server.Listen = other.Server.Listen
	}
	if other.Server.BaseURI != "" {
		c.Server.BaseURI = other.Server.BaseURI
	}

	// Sources
	if other.Sources.SPARQLEndpoint != "" {
		c.Sources.SPARQLEndpoint = other.Sources.SPARQLEndpoint
	}
	if other.Sources.DatasetConfigURL != "" {
		c.Sources.DatasetConfigURL = other.Sources.DatasetConfigURL
	}
	if other.Sources.OrganizationTTLURL != "" {
		c.Sources.OrganizationTTLURL = other.Sources.OrganizationTTLURL
	}
	if other.Sources.CompanyTTLURL != "" {
		c.Sources.CompanyTTLURL = other.Sources.CompanyTTLURL
	}
	if other.Sources.LicenseTTLURL != "" {
		c.Sources.LicenseTTLURL = other.Sources.LicenseTTLURL
	}

	// Convert
	if other.Convert.ChunkSize != 0 {
		c.Convert.ChunkSize = other.Convert.ChunkSize
	}
	if other.Convert.BatchSize != 0 {
		c.Convert.BatchSize = other.Convert.BatchSize
	}
	if other.Convert.ForceGC {
		c.Convert.ForceGC = true
	}
}
