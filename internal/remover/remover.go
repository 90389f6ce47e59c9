// Package remover drops records whose general.model appears in a
// spreadsheet-supplied removal list.
package remover

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
)

// ReadModelNames reads removal candidates from the first column of the first
// sheet of an XLSX workbook. The first row is treated as a header.
func ReadModelNames(path string, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("remover.workbook.close_error", "path", path, "error", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	var names []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if name := strings.TrimSpace(row[0]); name != "" {
			names = append(names, name)
		}
	}

	logger.Info("remover.workbook.ok", "path", path, "sheet", sheets[0], "names", len(names))
	return names, nil
}

// Remove filters out records whose trimmed general.model matches any of the
// given names, returning the survivors and the removed count.
func Remove(records []record.Record, names []string) ([]record.Record, int) {
	if len(names) == 0 {
		return records, 0
	}
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}

	kept := make([]record.Record, 0, len(records))
	removed := 0
	for _, rec := range records {
		name := ""
		if g, ok := rec.General(); ok {
			if s, ok := g["model"].(string); ok {
				name = strings.TrimSpace(s)
			}
		}
		if _, ok := drop[name]; ok && name != "" {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	return kept, removed
}
