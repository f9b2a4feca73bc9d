package statement

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Load reads the first sheet of an uploaded workbook and interprets the
// first three columns positionally as (label, prior year, current year).
// The first row is assumed to be a header and is dropped regardless of its
// content, so arbitrary header names in the source file do not matter.
func Load(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows below the header", sheet)
	}

	out := make([]RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		out = append(out, RawRow{
			Label:   strings.TrimSpace(cell(row, 0)),
			Prior:   coerceNumber(cell(row, 1)),
			Current: coerceNumber(cell(row, 2)),
		})
	}

	slog.Info("statement loaded",
		slog.String("sheet", sheet),
		slog.Int("line_items", len(out)))

	return out, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// coerceNumber parses a formatted cell value into a float. Thousands
// separators and surrounding whitespace are tolerated because excelize
// returns the displayed value, not the underlying one. Anything else that
// fails to parse is absence and becomes 0.
func coerceNumber(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return 0
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}
