package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/untoldecay/FloraSheet/internal/config"
	"github.com/untoldecay/FloraSheet/internal/types"
)

func writeInputWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"ID", "Address", "Species", "Dose", "Collected"},
		{"1", "123 Main St, Paris, France", "Rosa 'Peace' and Rosa 'Iceberg'", "5 mg/L", "3 March 2024"},
		{"2", "Lisse, The Netherlands", "tulip 'Apeldoorn'", "", ""},
		{"3", "nowhere in particular", "", "", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func TestRunProcessOfflineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("ANTHROPIC_API_KEY", "")

	if err := config.Initialize(); err != nil {
		t.Fatalf("config.Initialize: %v", err)
	}

	input := filepath.Join(dir, "records.xlsx")
	output := filepath.Join(dir, "out.xlsx")
	writeInputWorkbook(t, input)

	if err := runProcess(context.Background(), input, output); err != nil {
		t.Fatalf("runProcess failed: %v", err)
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	// Header plus every input row: no row is ever dropped.
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	// Enriched columns start after the 5 pass-through columns.
	const country, varietyNames, doseValue, collectedISO = 5, 8, 9, 11

	if got := rows[1][country]; got != "France" {
		t.Errorf("row 1 country = %q", got)
	}
	if got := rows[1][varietyNames]; got != "Peace; Iceberg" {
		t.Errorf("row 1 varieties = %q", got)
	}
	if got := rows[1][doseValue]; got != "5" {
		t.Errorf("row 1 dose = %q", got)
	}
	if got := rows[1][collectedISO]; got != "2024-03-03" {
		t.Errorf("row 1 collected = %q", got)
	}

	if got := rows[2][country]; got != "Netherlands" {
		t.Errorf("row 2 country = %q", got)
	}

	// Row 3 resolves nothing: unresolved marker, not blank, and still present.
	if got := rows[3][country]; got != types.Unresolved {
		t.Errorf("row 3 country = %q", got)
	}
}

func TestRunProcessUnreadableInput(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := config.Initialize(); err != nil {
		t.Fatal(err)
	}
	if err := runProcess(context.Background(), "does-not-exist.xlsx", ""); err == nil {
		t.Error("expected error for unreadable input")
	}
}
