package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/untoldecay/FloraSheet/internal/config"
	"github.com/untoldecay/FloraSheet/internal/extractor"
	"github.com/untoldecay/FloraSheet/internal/fallback"
	"github.com/untoldecay/FloraSheet/internal/sheet"
	"github.com/untoldecay/FloraSheet/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check <input.xlsx>",
	Short: "Dry-run a spreadsheet against the fallback table",
	Long: `Opens the workbook and reports what the deterministic table alone can
resolve, without issuing any AI calls. Useful for judging whether a run
needs an API key at all, and for validating a fallback-table overrides file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(ctx context.Context, input string) error {
	wb, err := sheet.Open(input)
	if err != nil {
		return err
	}
	defer wb.Close()

	table, err := fallback.Load(config.GetString("fallback-table"))
	if err != nil {
		return err
	}

	cols := sheet.Columns{
		Address:     config.GetString("columns.address"),
		Description: config.GetString("columns.description"),
		Dose:        config.GetString("columns.dose"),
		Collected:   config.GetString("columns.collected"),
	}
	records := wb.Records(cols)

	pipe := extractor.NewPipeline(extractor.Options{
		Table:   extractor.NewTableExtractor(table),
		Workers: config.GetInt("workers"),
	})
	result, err := pipe.Run(ctx, records)
	if err != nil {
		return err
	}

	countries, varieties, doses := 0, 0, 0
	for _, rec := range result.Records {
		if rec.Country != types.Unresolved {
			countries++
		}
		if len(rec.Varieties) > 0 {
			varieties++
		}
		if rec.Dose != nil {
			doses++
		}
	}

	if config.GetBool("json") {
		outputJSON(map[string]any{
			"input":              input,
			"sheet":              wb.Sheet(),
			"rows":               wb.RowCount(),
			"columns":            len(wb.Header()),
			"country_resolvable": countries,
			"variety_resolvable": varieties,
			"dose_parseable":     doses,
			"table_countries":    table.Countries(),
			"table_species":      table.SpeciesKeywords(),
		})
		return nil
	}

	fmt.Printf("%s: sheet %q, %d rows, %d columns\n", input, wb.Sheet(), wb.RowCount(), len(wb.Header()))
	fmt.Printf("fallback table: %d country synonyms, %d species keywords\n", table.Countries(), table.SpeciesKeywords())
	fmt.Printf("table alone resolves: country %d/%d, varieties %d/%d, dose %d/%d\n",
		countries, wb.RowCount(), varieties, wb.RowCount(), doses, wb.RowCount())
	for _, name := range []string{cols.Address, cols.Description, cols.Dose, cols.Collected} {
		if name != "" && !wb.HasColumn(name) {
			fmt.Printf("warning: column %q not found in header\n", name)
		}
	}
	return nil
}
