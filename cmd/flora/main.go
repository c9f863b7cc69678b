// flora cleans plant-record spreadsheets: it reads an xlsx of species
// records, normalizes country, latin, common and variety names through an
// AI extraction strategy with a deterministic table fallback, and writes an
// enriched spreadsheet.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/untoldecay/FloraSheet/internal/config"
)

var (
	jsonOutput  bool
	offlineFlag bool
	noCacheFlag bool
	workersFlag int
)

var rootCmd = &cobra.Command{
	Use:   "flora <input.xlsx> [output.xlsx]",
	Short: "Clean and enrich plant-record spreadsheets",
	Long: `flora reads an Excel spreadsheet of plant/species records, extracts
canonical country names and (latin, common, variety) name tuples from its
free-text columns, and writes an enriched copy.

Extraction uses the Anthropic API when a key is configured (ANTHROPIC_API_KEY
or api-key in config) and degrades per record to a deterministic synonym
table on any failure. Without a key the whole run uses the table. Rows are
never dropped: fields neither strategy resolves are marked "unknown".

The output file defaults to <input>_processed.xlsx.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return err
		}
		// Explicit flags override config file and environment.
		if cmd.Flags().Changed("json") {
			config.Set("json", jsonOutput)
		}
		if cmd.Flags().Changed("no-cache") {
			config.Set("no-cache", noCacheFlag)
		}
		if cmd.Flags().Changed("workers") {
			config.Set("workers", workersFlag)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		output := ""
		if len(args) > 1 {
			output = args[1]
		}
		return runProcess(cmd.Context(), args[0], output)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON")
	rootCmd.Flags().BoolVar(&offlineFlag, "offline", false, "skip AI extraction even if an API key is configured")
	rootCmd.Flags().BoolVar(&noCacheFlag, "no-cache", false, "disable the extraction cache")
	rootCmd.Flags().IntVar(&workersFlag, "workers", 0, "concurrent extraction workers (default from config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
