package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .flora/config.yaml interactively",
	Long: `Walks through the configuration options and writes .flora/config.yaml
in the current directory. Existing config is not overwritten unless
confirmed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

type initAnswers struct {
	APIKey      string
	Model       string
	Workers     string
	Address     string
	Description string
	Dose        string
	Collected   string
	Confirm     bool
}

func runInit() error {
	configPath := filepath.Join(".flora", "config.yaml")

	answers := initAnswers{
		Workers:     "4",
		Address:     "Address",
		Description: "Species",
		Dose:        "Dose",
		Collected:   "Collected",
	}

	modelOptions := []huh.Option[string]{
		huh.NewOption("Claude 3.5 Haiku (default, cheapest)", ""),
		huh.NewOption("Claude Sonnet 4", "claude-sonnet-4-20250514"),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Anthropic API key").
				Description("Leave empty to rely on ANTHROPIC_API_KEY or run table-only").
				EchoMode(huh.EchoModePassword).
				Value(&answers.APIKey),

			huh.NewSelect[string]().
				Title("Model").
				Description("Which model handles extraction").
				Options(modelOptions...).
				Value(&answers.Model),

			huh.NewInput().
				Title("Workers").
				Description("Concurrent extraction workers").
				Value(&answers.Workers).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return fmt.Errorf("must be a positive integer")
					}
					return nil
				}),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Address column").
				Description("Header name of the address column").
				Value(&answers.Address),

			huh.NewInput().
				Title("Description column").
				Description("Header name of the species/variety description column").
				Value(&answers.Description),

			huh.NewInput().
				Title("Dose column").
				Value(&answers.Dose),

			huh.NewInput().
				Title("Collected-date column").
				Description("Leave empty to skip date normalization").
				Value(&answers.Collected),

			huh.NewConfirm().
				Title("Write "+configPath+"?").
				Value(&answers.Confirm),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("init cancelled: %w", err)
	}
	if !answers.Confirm {
		fmt.Println("Aborted; nothing written.")
		return nil
	}

	workers, _ := strconv.Atoi(strings.TrimSpace(answers.Workers))
	cfg := map[string]any{
		"model":   answers.Model,
		"workers": workers,
		"columns": map[string]string{
			"address":     answers.Address,
			"description": answers.Description,
			"dose":        answers.Dose,
			"collected":   answers.Collected,
		},
	}
	if answers.APIKey != "" {
		cfg["api-key"] = answers.APIKey
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("creating .flora directory: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	fmt.Printf("Wrote %s\n", configPath)
	return nil
}
