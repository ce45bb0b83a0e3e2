package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"tidyprep/internal/config"
	"tidyprep/internal/exporter"
	"tidyprep/internal/fetch"
	"tidyprep/internal/infrastructure"
	"tidyprep/internal/postal"
)

func main() {
	country := flag.String("country", "", "two-letter GeoNames country code (defaults to the configured country)")
	url := flag.String("url", "", "source ZIP URL (defaults to the GeoNames URL for the country)")
	out := flag.String("out", exporter.PostalFileName, "output path for the postal-code table")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "console",
				FilePath: "logs/postalcodes.log",
			},
			Paths:   config.PathsConfig{OutputDir: ".", LogsDir: "logs"},
			Sources: config.SourcesConfig{PostalCountry: "PL", PostalURLTemplate: "https://download.geonames.org/export/zip/%s.zip"},
		}
	}

	paths, err := config.NewPaths(cfg.Paths)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger := infrastructure.LoggerFromContext(ctx)

	cc := strings.ToUpper(*country)
	if cc == "" {
		cc = strings.ToUpper(cfg.Sources.PostalCountry)
	}
	sourceURL := *url
	if sourceURL == "" {
		sourceURL = fmt.Sprintf(cfg.Sources.PostalURLTemplate, cc)
	}
	member := cc + ".txt"

	logger.Info("Starting postal-code preparation",
		slog.String("country", cc),
		slog.String("source_url", sourceURL),
		slog.String("out", *out))

	client := fetch.NewClient(cfg.HTTP)
	archive, err := client.Fetch(ctx, sourceURL)
	if err != nil {
		logger.Error("Failed to download postal archive",
			slog.String("url", sourceURL),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	raw, err := fetch.ZipMember(archive, member)
	if err != nil {
		logger.Error("Failed to extract archive member",
			slog.String("member", member),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	records, err := postal.Parse(bytes.NewReader(raw))
	if err != nil {
		logger.Error("Failed to parse postal records", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pe := exporter.NewPostalExporter(exporter.NewCSVWriter(paths))
	if err := pe.ExportRecords(records, *out); err != nil {
		logger.Error("Failed to write postal-code table",
			slog.String("path", *out),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Postal-code preparation complete",
		slog.String("country", cc),
		slog.Int("records", len(records)))
}
