package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
	"github.com/joseph-ayodele/catalog-normalizer/internal/remover"
)

func main() {
	var (
		jsonPath = flag.String("json", "", "merged JSON file containing a list of records (required)")
		xlsxPath = flag.String("xlsx", "", "XLSX workbook listing model names to remove (required)")
		out      = flag.String("out", "cleaned.json", "output JSON file path")
	)
	flag.Parse()

	if *jsonPath == "" || *xlsxPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --json and --xlsx are required")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	data, err := os.ReadFile(*jsonPath)
	if err != nil {
		logger.Error("failed to read JSON file", "error", err)
		os.Exit(1)
	}
	var records []record.Record
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Error("JSON must contain a list of objects", "error", err)
		os.Exit(1)
	}

	names, err := remover.ReadModelNames(*xlsxPath, logger)
	if err != nil {
		logger.Error("failed to read workbook", "error", err)
		os.Exit(1)
	}

	kept, removed := remover.Remove(records, names)

	outData, err := json.MarshalIndent(kept, "", "    ")
	if err != nil {
		logger.Error("failed to encode cleaned records", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, outData, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("removal complete",
		"records_in", len(records),
		"removed", removed,
		"records_out", len(kept),
		"output_file", *out,
	)

	fmt.Printf("Removed %d model(s). Final count: %d\n", removed, len(kept))
	fmt.Printf("- Output: %s\n", *out)
}
