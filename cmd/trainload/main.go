package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/trainload/trainload/internal/config"
	"github.com/trainload/trainload/internal/report"
	"github.com/trainload/trainload/internal/source"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	athleteID := flag.String("athlete", "", "athlete identifier (required)")
	method := flag.String("method", "", "override analysis method: rolling or ewma")
	profileDays := flag.Int("days", 28, "days of load profile to include (0 = all)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *athleteID == "" {
		fmt.Fprintf(os.Stderr, "Usage: trainload -config config.yaml -athlete ID [-method rolling|ewma] [-days N]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *method != "" {
		cfg.Analysis.Method = *method
	}
	log.Info("trainload starting", "version", Version, "athlete", *athleteID,
		"method", cfg.Analysis.Method, "source", cfg.Source.Type)

	// Open the configured series source
	ctx := context.Background()
	src, err := source.Open(ctx, cfg.Source)
	if err != nil {
		log.Error("failed to open source", "type", cfg.Source.Type, "error", err)
		os.Exit(1)
	}
	defer src.Close()

	series, err := src.LoadSeries(ctx, *athleteID)
	if err != nil {
		log.Error("failed to load series", "athlete", *athleteID, "error", err)
		os.Exit(1)
	}
	log.Info("series loaded", "athlete", *athleteID, "days", series.Len())

	// Run the analysis and emit the report
	rep, err := report.Build(series, cfg.Analysis, *profileDays)
	if err != nil {
		log.Error("analysis failed", "athlete", *athleteID, "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Error("failed to encode report", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	log.Info("analysis complete",
		"ratio", rep.ACWR.Ratio,
		"flag", rep.ACWR.Flag,
		"low_confidence", rep.ACWR.LowConfidence,
		"swc", rep.SWC,
	)
}
