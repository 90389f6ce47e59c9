package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/catalog-normalizer/internal/common"
	"github.com/joseph-ayodele/catalog-normalizer/internal/ingest"
	"github.com/joseph-ayodele/catalog-normalizer/internal/urlcheck"
)

func main() {
	var (
		dir = flag.String("dir", "", "directory of JSON files to scan for URLs (required)")
		out = flag.String("out", "url-status.xlsx", "output XLSX file path")
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

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	loader := ingest.NewLoader(logger)
	inputs, fileErrs, err := loader.LoadDirectory(*dir)
	if err != nil {
		logger.Error("failed to load input directory", "error", err)
		os.Exit(1)
	}
	for _, errStr := range fileErrs {
		logger.Warn("skipping invalid input", "detail", errStr)
	}

	var urls []string
	for _, in := range inputs {
		urls = append(urls, urlcheck.CollectURLs(in.Value)...)
	}
	if len(urls) == 0 {
		logger.Warn("no URLs found", "dir", *dir)
	}

	checker := urlcheck.NewChecker(cfg.URLCheck.Timeout, cfg.URLCheck.Workers, logger)
	results := checker.CheckAll(context.Background(), urls)

	workbook, err := urlcheck.BuildWorkbook(results)
	if err != nil {
		logger.Error("failed to build workbook", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, workbook, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	working := 0
	for _, r := range results {
		if r.Status == "Working" {
			working++
		}
	}

	logger.Info("url check complete",
		"urls", len(urls),
		"working", working,
		"output_file", *out,
	)

	fmt.Printf("URL check complete!\n")
	fmt.Printf("- URLs checked: %d\n", len(urls))
	fmt.Printf("- Working: %d\n", working)
	fmt.Printf("- Output: %s\n", *out)
}
