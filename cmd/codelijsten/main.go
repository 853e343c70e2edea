// Package main provides the codelijsten binary entry point.
// Codelijsten converts Flemish government registry exports to RDF and
// serves the resulting linked data with content negotiation.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/Informatievlaanderen/OSLO-codelijsten/config"
	"github.com/Informatievlaanderen/OSLO-codelijsten/datasetconfig"
	"github.com/Informatievlaanderen/OSLO-codelijsten/kbo"
	"github.com/Informatievlaanderen/OSLO-codelijsten/organization"
	"github.com/Informatievlaanderen/OSLO-codelijsten/server"
	"github.com/Informatievlaanderen/OSLO-codelijsten/sparql"
	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "codelijsten"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "OSLO code list tooling",
		Long: `Codelijsten turns Flemish government registry exports into RDF and
serves the resulting documents over HTTP.

It provides:
- KBO enterprise CSV conversion to Turtle documents
- Wegwijs organization JSON conversion to Turtle documents
- A content-negotiating server over concept schemes, concepts,
  organizations, companies and licenses backed by a SPARQL endpoint`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	cmd.AddCommand(serveCmd(&configPath))
	cmd.AddCommand(convertCmd(&configPath))

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}

	loader := config.NewLoader(slog.Default())
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve code lists with content negotiation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			logger := slog.Default()

			datasets := datasetconfig.NewProvider(cfg.Sources.DatasetConfigURL, logger)
			if err := datasets.Load(); err != nil {
				return fmt.Errorf("load dataset config: %w", err)
			}
			defer datasets.Close()

			engine := sparql.NewClient(cfg.Sources.SPARQLEndpoint, logger)

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			logger.Info("Codelijsten ready",
				"version", Version,
				"listen", cfg.Server.Listen)

			return server.New(cfg, engine, datasets, logger).Run(ctx)
		},
	}
}

func convertCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert registry exports to Turtle documents",
	}

	cmd.AddCommand(convertCompaniesCmd(configPath))
	cmd.AddCommand(convertOrganizationsCmd())

	return cmd
}

func convertCompaniesCmd(configPath *string) *cobra.Command {
	var (
		inputDir  string
		outputDir string
		withCodes bool
	)

	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Convert a KBO open-data CSV export to Turtle documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			logger := slog.Default()

			conv := kbo.NewConverter(kbo.ConverterConfig{
				ChunkSize: cfg.Convert.ChunkSize,
				BatchSize: cfg.Convert.BatchSize,
				ForceGC:   cfg.Convert.ForceGC,
			}, logger)

			stats, err := conv.Run(cmd.Context(), inputDir, outputDir)
			if err != nil {
				return fmt.Errorf("convert companies: %w", err)
			}

			if withCodes {
				if err := conv.ConvertCodes(inputDir, outputDir); err != nil {
					return fmt.Errorf("convert codes: %w", err)
				}
			}

			logger.Info("Company conversion complete",
				"total", stats.Total,
				"processed", stats.Processed,
				"errors", stats.Errors,
				"overwritten", stats.Overwritten)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", ".", "Directory holding the KBO CSV export")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "output", "Directory to write Turtle documents to")
	cmd.Flags().BoolVar(&withCodes, "codes", false, "Also convert the code reference table")

	return cmd
}

func convertOrganizationsCmd() *cobra.Command {
	var split bool

	cmd := &cobra.Command{
		Use:   "organizations <input.json> <output>",
		Short: "Convert a Wegwijs organization export to Turtle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			conv := organization.NewConverter(logger)

			var (
				stats organization.Stats
				err   error
			)
			if split {
				stats, err = conv.ConvertSplit(args[0], args[1])
			} else {
				stats, err = conv.ConvertFile(args[0], args[1])
			}
			if err != nil {
				return fmt.Errorf("convert organizations: %w", err)
			}

			logger.Info("Organization conversion complete",
				"total", stats.Total,
				"valid", stats.Valid,
				"written", stats.Written,
				"overwritten", stats.Overwritten)
			return nil
		},
	}

	cmd.Flags().BoolVar(&split, "split", false, "Write one document per OVO number instead of a single file")

	return cmd
}
