// Package sheet is the row-oriented tabular collaborator: it reads raw
// records from an xlsx workbook in file order and writes enriched records
// back out in the same order. It holds no extraction logic.
package sheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/untoldecay/FloraSheet/internal/types"
)

// Columns names the input columns carrying extraction source text. A name
// that is not present in the header simply yields empty text for that field;
// rows are never rejected for missing columns.
type Columns struct {
	Address     string
	Description string
	Dose        string
	Collected   string
}

// Workbook is an open input spreadsheet.
type Workbook struct {
	file   *excelize.File
	sheet  string
	header []string
	rows   [][]string
}

// Open reads the first sheet of the workbook at path into memory.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		f.Close()
		return nil, fmt.Errorf("no sheets found in %s", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	if len(rows) == 0 {
		f.Close()
		return nil, fmt.Errorf("workbook %s is empty", path)
	}

	return &Workbook{
		file:   f,
		sheet:  sheetName,
		header: rows[0],
		rows:   rows[1:],
	}, nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// Header returns the header row.
func (w *Workbook) Header() []string {
	return w.header
}

// Sheet returns the sheet name being read.
func (w *Workbook) Sheet() string {
	return w.sheet
}

// RowCount returns the number of data rows (header excluded).
func (w *Workbook) RowCount() int {
	return len(w.rows)
}

// Records converts the data rows to RawRecords in file order.
func (w *Workbook) Records(cols Columns) []types.RawRecord {
	addrIdx := w.columnIndex(cols.Address)
	descIdx := w.columnIndex(cols.Description)
	doseIdx := w.columnIndex(cols.Dose)
	collIdx := w.columnIndex(cols.Collected)

	records := make([]types.RawRecord, len(w.rows))
	for i, row := range w.rows {
		records[i] = types.RawRecord{
			Index:       i,
			Address:     cell(row, addrIdx),
			Description: cell(row, descIdx),
			Dose:        cell(row, doseIdx),
			Collected:   cell(row, collIdx),
			PassThrough: row,
		}
	}
	return records
}

// HasColumn reports whether the header contains name (case-insensitive).
func (w *Workbook) HasColumn(name string) bool {
	return w.columnIndex(name) >= 0
}

func (w *Workbook) columnIndex(name string) int {
	if name == "" {
		return -1
	}
	for i, h := range w.header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// OutputPath derives the default output file name from the input path:
// data.xlsx becomes data_processed.xlsx alongside it.
func OutputPath(input string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	if ext == "" {
		ext = ".xlsx"
	}
	return stem + "_processed" + ext
}
