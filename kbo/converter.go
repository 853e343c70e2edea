package kbo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Informatievlaanderen/OSLO-codelijsten/export"
	"github.com/Informatievlaanderen/OSLO-codelijsten/rdf"
	"github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/oslo"
)

const (
	defaultChunkSize = 10000
	defaultBatchSize = 100
)

// ConverterConfig tunes the conversion pipeline. The zero value gets sane
// defaults applied by NewConverter.
type ConverterConfig struct {
	// ChunkSize is the number of enterprises whose source rows are held in
	// memory at once.
	ChunkSize int
	// BatchSize bounds the number of concurrent per-company serializations
	// within a chunk.
	BatchSize int
	// ForceGC runs a garbage-collection cycle after each chunk is released.
	// Useful on memory-constrained runners processing the full register.
	ForceGC bool
}

// Converter turns the KBO open-data CSV dump into one Turtle document per
// enterprise.
type Converter struct {
	cfg    ConverterConfig
	loader *Loader
	logger *slog.Logger
}

// NewConverter returns a converter with defaults applied.
func NewConverter(cfg ConverterConfig, logger *slog.Logger) *Converter {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = defaultChunkSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{cfg: cfg, loader: NewLoader(logger), logger: logger}
}

// Run converts every enterprise found in inputDir and writes the Turtle
// documents to outputDir. Individual company failures are logged and counted
// in the returned stats; only unreadable inputs or an unwritable output
// directory abort the run.
func (c *Converter) Run(ctx context.Context, inputDir, outputDir string) (Stats, error) {
	start := time.Now()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Stats{}, fmt.Errorf("create output directory: %w", err)
	}

	keys, err := c.loader.EnterpriseKeys(inputDir)
	if err != nil {
		return Stats{}, fmt.Errorf("list enterprises: %w", err)
	}

	var processed, failed, overwritten atomic.Int64

	for offset := 0; offset < len(keys); offset += c.cfg.ChunkSize {
		if err := ctx.Err(); err != nil {
			return c.stats(len(keys), &processed, &failed, &overwritten), err
		}

		end := min(offset+c.cfg.ChunkSize, len(keys))
		chunk := keys[offset:end]

		want := make(map[string]bool, len(chunk))
		for _, k := range chunk {
			want[k] = true
		}

		c.logger.Info("loading chunk",
			"from", offset, "to", end, "total", len(keys))

		lk, err := c.loader.LoadChunk(inputDir, want)
		if err != nil {
			return c.stats(len(keys), &processed, &failed, &overwritten),
				fmt.Errorf("load chunk at %d: %w", offset, err)
		}

		c.convertChunk(ctx, chunk, lk, outputDir, &processed, &failed, &overwritten)

		lk.Release()
		if c.cfg.ForceGC {
			runtime.GC()
		}
	}

	st := c.stats(len(keys), &processed, &failed, &overwritten)
	c.logger.Info("conversion finished",
		"total", st.Total,
		"processed", st.Processed,
		"errors", st.Errors,
		"overwritten", st.Overwritten,
		"duration", time.Since(start).Round(time.Millisecond))
	return st, nil
}

func (c *Converter) stats(total int, processed, failed, overwritten *atomic.Int64) Stats {
	return Stats{
		Total:       total,
		Processed:   int(processed.Load()),
		Errors:      int(failed.Load()),
		Overwritten: int(overwritten.Load()),
	}
}

func (c *Converter) convertChunk(ctx context.Context, chunk []string, lk *Lookups, outputDir string, processed, failed, overwritten *atomic.Int64) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.BatchSize)

	for _, identifier := range chunk {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			replaced, err := c.convertCompany(identifier, lk, outputDir)
			if err != nil {
				failed.Add(1)
				c.logger.Error("company conversion failed",
					"company", identifier, "error", err)
				return nil
			}
			processed.Add(1)
			if replaced {
				overwritten.Add(1)
			}
			return nil
		})
	}

	// Per-company errors are swallowed above; only cancellation surfaces.
	_ = g.Wait()
}

func (c *Converter) convertCompany(identifier string, lk *Lookups, outputDir string) (replaced bool, err error) {
	company, ok := Assemble(identifier, lk)
	if !ok {
		return false, fmt.Errorf("enterprise %s not in loaded chunk", identifier)
	}

	store := rdf.NewStore()
	AddCompany(store, company)

	quads := rdf.Closure(store, rdf.NewIRI(oslo.CompanyURI(identifier)))
	doc, err := export.Serialize(quads, export.FormatTurtle)
	if err != nil {
		return false, fmt.Errorf("serialize: %w", err)
	}

	path := filepath.Join(outputDir, documentName(identifier))
	if _, statErr := os.Stat(path); statErr == nil {
		replaced = true
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return replaced, fmt.Errorf("write %s: %w", path, err)
	}
	return replaced, nil
}

// ConvertCodes imports the code-reference table and writes one Turtle
// document per code category next to the company documents.
func (c *Converter) ConvertCodes(inputDir, outputDir string) error {
	codes, err := c.loader.LoadCodes(inputDir)
	if err != nil {
		return fmt.Errorf("load codes: %w", err)
	}

	byCategory := make(map[string][]Code)
	for _, code := range codes {
		byCategory[code.Category] = append(byCategory[code.Category], code)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for category, group := range byCategory {
		store := rdf.NewStore()
		AddCodes(store, group)

		quads := store.Quads()
		rdf.SortQuads(quads)

		doc, err := export.Serialize(quads, export.FormatTurtle)
		if err != nil {
			return fmt.Errorf("serialize %s: %w", category, err)
		}
		path := filepath.Join(outputDir, documentName(category))
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	c.logger.Info("code lists written", "categories", len(byCategory))
	return nil
}

// documentName derives the output file name from an identifier. Dots are
// dropped so dotted enterprise numbers and plain ones map to the same name.
func documentName(identifier string) string {
	return strings.ReplaceAll(identifier, ".", "") + ".ttl"
}
