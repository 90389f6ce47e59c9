package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/catalog-normalizer/internal/common"
	"github.com/joseph-ayodele/catalog-normalizer/internal/ingest"
	"github.com/joseph-ayodele/catalog-normalizer/internal/keypool"
	"github.com/joseph-ayodele/catalog-normalizer/internal/namesvc"
	"github.com/joseph-ayodele/catalog-normalizer/internal/namesvc/gemini"
	"github.com/joseph-ayodele/catalog-normalizer/internal/normalize"
	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
	"github.com/joseph-ayodele/catalog-normalizer/internal/report"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir       = flag.String("dir", "", "directory of JSON files/archives to normalize (required)")
		out       = flag.String("out", "cleaned.json", "output JSON file path")
		reportOut = flag.String("report", "report.md", "output report file path")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Load input payloads
	loader := ingest.NewLoader(logger)
	inputs, fileErrs, err := loader.LoadDirectory(*dir)
	if err != nil {
		logger.Error("failed to load input directory", "error", err)
		os.Exit(1)
	}

	// Setup name resolver (graceful if no keys are configured)
	var resolver *namesvc.Resolver
	if len(cfg.NameService.APIKeys) > 0 {
		keys, err := keypool.NewManager(cfg.NameService.APIKeys, cfg.NameService.MaxCallsPerKey)
		if err != nil {
			logger.Error("failed to build key pool", "error", err)
			os.Exit(1)
		}
		client := gemini.NewClient(gemini.Config{
			BaseURL: cfg.NameService.BaseURL,
			Model:   cfg.NameService.Model,
			Timeout: cfg.NameService.Timeout,
		}, logger)
		resolver = namesvc.NewResolver(client, keys, cfg.NameService.ChunkSize, logger)
		logger.Info("name service client initialized",
			"model", cfg.NameService.Model,
			"keys", len(cfg.NameService.APIKeys),
			"max_calls_per_key", cfg.NameService.MaxCallsPerKey,
		)
	} else {
		resolver = namesvc.NewResolver(nil, nil, cfg.NameService.ChunkSize, logger)
		logger.Warn("no name service API keys configured, model names will keep their original casing")
	}

	// Phase 1: build the name cache for the whole batch
	names := resolver.ResolveAll(ctx, inputs)

	// Phase 2: normalize every record against the completed cache
	rep := report.NewReport()
	for _, errStr := range fileErrs {
		rep.AddError(errStr)
	}
	normalizer := normalize.NewNormalizer(names, rep, logger)

	var cleaned []record.Record
	for _, in := range inputs {
		cleaned = append(cleaned, normalizer.ProcessInput(in)...)
	}

	// Write cleaned output
	data, err := json.MarshalIndent(cleaned, "", cfg.Batch.OutputIndent)
	if err != nil {
		logger.Error("failed to encode cleaned records", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	// Write report
	if err := os.WriteFile(*reportOut, []byte(report.BuildText(rep, time.Now())), 0644); err != nil {
		logger.Error("failed to write report file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch normalization complete",
		"total_models", rep.TotalModels,
		"processed", rep.ProcessedModels,
		"failed", rep.FailedModels,
		"issues", rep.TotalIssues(),
		"fallback_chunks", resolver.FallbackChunks(),
		"output_file", *out,
		"report_file", *reportOut,
	)

	fmt.Printf("Batch normalization complete!\n")
	fmt.Printf("- Models processed: %d/%d\n", rep.ProcessedModels, rep.TotalModels)
	fmt.Printf("- Failed models: %d\n", rep.FailedModels)
	fmt.Printf("- Issues fixed: %d\n", rep.TotalIssues())
	fmt.Printf("- Output: %s\n", *out)
	fmt.Printf("- Report: %s\n", *reportOut)
}
