package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/untoldecay/FloraSheet/internal/ui"
)

var quickstartCmd = &cobra.Command{
	Use:   "quickstart",
	Short: "Show a short usage guide",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.ShouldUseColor() {
			fmt.Print(quickstartDoc)
			return nil
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(ui.GetWidth()),
		)
		if err != nil {
			fmt.Print(quickstartDoc)
			return nil
		}
		out, err := renderer.Render(quickstartDoc)
		if err != nil {
			fmt.Print(quickstartDoc)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quickstartCmd)
}

const quickstartDoc = `# flora quickstart

## 1. Point flora at a spreadsheet

    flora records.xlsx

Writes ` + "`records_processed.xlsx`" + ` with the original columns plus
country, latin/common/variety names, parsed dose and a processed_at stamp.

## 2. Add an API key for AI extraction

    export ANTHROPIC_API_KEY=sk-ant-...
    flora records.xlsx

Without a key every row is resolved by the built-in synonym table. With a
key, each row tries the AI first and falls back to the table on any failure.
A failing row never stops the run and never disables AI for later rows.

## 3. Check what the table alone can do

    flora check records.xlsx

Opens the workbook and reports how many rows the offline table resolves;
no network calls are made.

## 4. Persist settings

    flora init

Writes ` + "`.flora/config.yaml`" + ` (API key, model, workers, column names).
Environment variables with the ` + "`FLORA_`" + ` prefix override it, e.g.
` + "`FLORA_WORKERS=8`" + `.

## Useful flags

- ` + "`--offline`" + ` — skip the AI even when a key is configured
- ` + "`--no-cache`" + ` — ignore the extraction cache
- ` + "`--json`" + ` — machine-readable run summary
`
