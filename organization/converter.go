package organization

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const progressCadence = 10

// Converter turns the registry JSON dump into Turtle.
type Converter struct {
	logger *slog.Logger
}

// NewConverter returns a converter logging through the given logger.
func NewConverter(logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{logger: logger}
}

// ConvertFile reads the dump at inputPath and writes one Turtle document
// containing every valid organization to outputPath.
func (c *Converter) ConvertFile(inputPath, outputPath string) (Stats, error) {
	orgs, valid, err := c.load(inputPath)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Total: len(orgs), Valid: len(valid)}
	if _, statErr := os.Stat(outputPath); statErr == nil {
		st.Overwritten = 1
	}
	if err := os.WriteFile(outputPath, []byte(Document(valid)), 0o644); err != nil {
		return st, fmt.Errorf("write %s: %w", outputPath, err)
	}
	st.Written = 1

	c.logger.Info("organizations written",
		"total", st.Total, "valid", st.Valid, "output", outputPath)
	return st, nil
}

// ConvertSplit reads the dump at inputPath and writes one Turtle file per
// valid organization into outputDir, named by OVO number.
func (c *Converter) ConvertSplit(inputPath, outputDir string) (Stats, error) {
	orgs, valid, err := c.load(inputPath)
	if err != nil {
		return Stats{}, err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Stats{}, fmt.Errorf("create output directory: %w", err)
	}

	st := Stats{Total: len(orgs), Valid: len(valid)}
	for _, org := range valid {
		path := filepath.Join(outputDir, org.OVONumber+".ttl")
		if _, statErr := os.Stat(path); statErr == nil {
			c.logger.Warn("overwriting existing file",
				"file", path, "organization", org.Name)
			st.Overwritten++
		}
		if err := os.WriteFile(path, []byte(WriteTurtle(org)), 0o644); err != nil {
			return st, fmt.Errorf("write %s: %w", path, err)
		}
		st.Written++
		if st.Written%progressCadence == 0 {
			c.logger.Info("converting organizations",
				"written", st.Written, "valid", st.Valid)
		}
	}

	c.logger.Info("organizations written",
		"total", st.Total, "valid", st.Valid,
		"written", st.Written, "overwritten", st.Overwritten)
	return st, nil
}

func (c *Converter) load(inputPath string) (orgs, valid []Organization, err error) {
	c.logger.Info("reading organizations", "input", inputPath)
	orgs, err = ReadFile(inputPath)
	if err != nil {
		return nil, nil, err
	}
	return orgs, FilterValid(orgs), nil
}
