package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/untoldecay/FloraSheet/internal/audit"
	"github.com/untoldecay/FloraSheet/internal/cache"
	"github.com/untoldecay/FloraSheet/internal/config"
	"github.com/untoldecay/FloraSheet/internal/debug"
	"github.com/untoldecay/FloraSheet/internal/extractor"
	"github.com/untoldecay/FloraSheet/internal/fallback"
	"github.com/untoldecay/FloraSheet/internal/sheet"
	"github.com/untoldecay/FloraSheet/internal/ui"
)

func runProcess(ctx context.Context, input, output string) error {
	if output == "" {
		output = sheet.OutputPath(input)
	}

	wb, err := sheet.Open(input)
	if err != nil {
		return err
	}
	defer wb.Close()

	cols := sheet.Columns{
		Address:     config.GetString("columns.address"),
		Description: config.GetString("columns.description"),
		Dose:        config.GetString("columns.dose"),
		Collected:   config.GetString("columns.collected"),
	}
	records := wb.Records(cols)

	table, err := fallback.Load(config.GetString("fallback-table"))
	if err != nil {
		return err
	}

	ai, err := buildAIExtractor()
	if err != nil {
		return err
	}

	var store *cache.Store
	if ai != nil && !config.GetBool("no-cache") {
		path := config.GetString("cache-path")
		if path == "" {
			path = filepath.Join(audit.Dir(), "cache.db")
		}
		store, err = cache.Open(path)
		if err != nil {
			// The cache is an optimization; a broken cache must not fail the run.
			debug.Logf("cache disabled: %v", err)
			store = nil
		}
	}
	if store != nil {
		defer store.Close()
	}

	pipe := extractor.NewPipeline(extractor.Options{
		AI:      ai,
		Table:   extractor.NewTableExtractor(table),
		Cache:   store,
		Workers: config.GetInt("workers"),
		Dates:   extractor.NewDateNormalizer(),
	})

	result, err := pipe.Run(ctx, records)
	if err != nil {
		return err
	}

	if err := sheet.Write(output, wb.Sheet(), wb.Header(), records, result.Records); err != nil {
		return err
	}

	if config.GetBool("json") {
		outputJSON(map[string]any{
			"input":       input,
			"output":      output,
			"rows":        result.Stats.Rows,
			"ai_resolved": result.Stats.AIResolved,
			"table_used":  result.Stats.TableUsed,
			"unresolved":  result.Stats.Unresolved,
			"degraded":    result.Stats.Degraded,
			"cache_hits":  result.Stats.CacheHits,
			"duration":    result.Stats.Duration.String(),
		})
		return nil
	}

	fmt.Println(ui.RenderSummary(ui.RunSummary{
		Input:      input,
		Output:     output,
		Rows:       result.Stats.Rows,
		AIResolved: result.Stats.AIResolved,
		TableUsed:  result.Stats.TableUsed,
		Unresolved: result.Stats.Unresolved,
		Degraded:   result.Stats.Degraded,
		CacheHits:  result.Stats.CacheHits,
		Duration:   result.Stats.Duration.Round(time.Millisecond).String(),
	}))
	return nil
}

// buildAIExtractor returns the AI strategy, or nil when the run should stay
// in table mode (no key configured, or --offline).
func buildAIExtractor() (extractor.Extractor, error) {
	if offlineFlag {
		return nil, nil
	}

	claude, err := extractor.NewClaudeExtractor(
		config.GetString("api-key"),
		config.GetString("model"),
		config.GetDuration("timeout"),
	)
	if errors.Is(err, extractor.ErrAPIKeyRequired) {
		fmt.Fprintln(os.Stderr, "No API key configured; using the fallback table for the whole run")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if config.GetBool("audit") {
		claude.EnableAudit()
	}
	return claude, nil
}
