package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/catalog-normalizer/internal/ingest"
	"github.com/joseph-ayodele/catalog-normalizer/internal/merge"
)

func main() {
	var (
		dir = flag.String("dir", "", "directory of JSON files/archives to merge (required)")
		out = flag.String("out", "merged.json", "output JSON file path")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: --dir is required")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	loader := ingest.NewLoader(logger)
	inputs, fileErrs, err := loader.LoadDirectory(*dir)
	if err != nil {
		logger.Error("failed to load input directory", "error", err)
		os.Exit(1)
	}
	for _, errStr := range fileErrs {
		logger.Warn("skipping invalid input", "detail", errStr)
	}

	merged, skipped := merge.Merge(inputs)

	data, err := json.MarshalIndent(merged, "", "    ")
	if err != nil {
		logger.Error("failed to encode merged records", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("merge complete",
		"payloads", len(inputs),
		"records", len(merged),
		"skipped_non_objects", skipped,
		"invalid_files", len(fileErrs),
		"output_file", *out,
	)

	fmt.Printf("Merge complete!\n")
	fmt.Printf("- Records merged: %d\n", len(merged))
	fmt.Printf("- Invalid files skipped: %d\n", len(fileErrs))
	fmt.Printf("- Output: %s\n", *out)
}
