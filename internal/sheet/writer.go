package sheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/untoldecay/FloraSheet/internal/types"
)

// Enriched columns appended after the pass-through columns.
var enrichedHeader = []string{
	"country",
	"latin_names",
	"common_names",
	"variety_names",
	"dose_value",
	"dose_unit",
	"collected_iso",
	"extraction_source",
	"processed_at",
}

const listSep = "; "

// Write produces the output workbook: every input row in original order with
// its pass-through cells intact and the enriched columns appended. records
// and enriched are aligned by index.
func Write(path, sheetName string, header []string, records []types.RawRecord, enriched []*types.EnrichedRecord) error {
	if sheetName == "" {
		sheetName = "Sheet1"
	}

	f := excelize.NewFile()
	defer f.Close()

	// excelize creates "Sheet1" by default; rename rather than add.
	if sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			return fmt.Errorf("naming sheet: %w", err)
		}
	}

	outHeader := make([]any, 0, len(header)+len(enrichedHeader))
	for _, h := range header {
		outHeader = append(outHeader, h)
	}
	for _, h := range enrichedHeader {
		outHeader = append(outHeader, h)
	}
	if err := f.SetSheetRow(sheetName, "A1", &outHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	processedAt := time.Now().Format(time.RFC3339)
	for i, rec := range enriched {
		row := make([]any, 0, len(header)+len(enrichedHeader))
		for c := 0; c < len(header); c++ {
			row = append(row, passCell(records[i].PassThrough, c))
		}
		row = append(row, enrichedCells(rec, processedAt)...)

		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("computing cell reference: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cellRef, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func enrichedCells(rec *types.EnrichedRecord, processedAt string) []any {
	var latin, common, variety []string
	for _, v := range rec.Varieties {
		latin = append(latin, orMarker(v.LatinName))
		common = append(common, orMarker(v.CommonName))
		variety = append(variety, orMarker(v.VarietyName))
	}

	doseValue, doseUnit := "", ""
	if rec.Dose != nil {
		doseValue = strconv.FormatFloat(rec.Dose.Value, 'f', -1, 64)
		doseUnit = rec.Dose.Unit
	}

	return []any{
		rec.Country,
		strings.Join(latin, listSep),
		strings.Join(common, listSep),
		strings.Join(variety, listSep),
		doseValue,
		doseUnit,
		rec.Collected,
		rec.Source,
		processedAt,
	}
}

func orMarker(s string) string {
	if s == "" {
		return types.Unresolved
	}
	return s
}

func passCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
