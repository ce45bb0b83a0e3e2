package main

import (
	"bytes"
	"context"
	"flag"
	"log/slog"
	"os"

	"tidyprep/internal/billboard"
	"tidyprep/internal/config"
	"tidyprep/internal/exporter"
	"tidyprep/internal/fetch"
	"tidyprep/internal/infrastructure"
)

func main() {
	url := flag.String("url", "", "source CSV URL (defaults to the configured billboard source)")
	in := flag.String("in", "", "local wide-format CSV to read instead of downloading")
	outSongs := flag.String("out-songs", exporter.SongsFileName, "output path for the songs table")
	outRanks := flag.String("out-ranks", exporter.RanksFileName, "output path for the ranks table")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "console",
				FilePath: "logs/billboard.log",
			},
			Paths: config.PathsConfig{OutputDir: ".", LogsDir: "logs"},
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

	sourceURL := *url
	if sourceURL == "" {
		sourceURL = cfg.Sources.BillboardURL
	}

	logger.Info("Starting billboard preparation",
		slog.String("source_url", sourceURL),
		slog.String("input_file", *in),
		slog.String("out_songs", *outSongs),
		slog.String("out_ranks", *outRanks))

	var raw []byte
	if *in != "" {
		raw, err = os.ReadFile(*in)
		if err != nil {
			logger.Error("Failed to read input file",
				slog.String("path", *in),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		client := fetch.NewClient(cfg.HTTP)
		raw, err = client.Fetch(ctx, sourceURL)
		if err != nil {
			logger.Error("Failed to download billboard source",
				slog.String("url", sourceURL),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	table, err := billboard.ParseWide(bytes.NewReader(raw))
	if err != nil {
		logger.Error("Failed to parse billboard source", slog.String("error", err.Error()))
		os.Exit(1)
	}

	songs := billboard.Songs(table)
	ranks, err := billboard.Ranks(table)
	if err != nil {
		logger.Error("Failed to reshape billboard ranks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	bb := exporter.NewBillboardExporter(exporter.NewCSVWriter(paths))
	if err := bb.ExportSongs(songs, *outSongs); err != nil {
		logger.Error("Failed to write songs table",
			slog.String("path", *outSongs),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := bb.ExportRanks(ranks, *outRanks); err != nil {
		logger.Error("Failed to write ranks table",
			slog.String("path", *outRanks),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Billboard preparation complete",
		slog.Int("songs", len(songs)),
		slog.Int("rank_observations", len(ranks)),
		slog.Int("week_columns", len(table.WeekLabels)))
}
