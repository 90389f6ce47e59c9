package urlcheck

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildWorkbook renders check results into an XLSX workbook, one sheet with
// URL and Status columns.
func BuildWorkbook(results []Result) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "URL Status"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"URL", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.URL)
		write(2, r.Status)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 80)
	_ = f.SetColWidth(sheet, "B", "B", 36)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
