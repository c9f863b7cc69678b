package extractor

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/untoldecay/FloraSheet/internal/cache"
	"github.com/untoldecay/FloraSheet/internal/debug"
	"github.com/untoldecay/FloraSheet/internal/types"
)

// Options configures a Pipeline.
type Options struct {
	// AI is the primary strategy; nil means the whole run stays in table mode.
	AI Extractor
	// Table is the deterministic strategy, required.
	Table *TableExtractor
	// Cache is consulted before AI calls and updated after successes. Optional.
	Cache *cache.Store
	// Workers bounds concurrent record processing; values < 1 mean 1.
	Workers int
	// Dates normalizes the collected-date column when set.
	Dates *DateNormalizer
}

// Stats summarizes one run.
type Stats struct {
	Rows       int
	AIResolved int
	TableUsed  int
	Unresolved int
	Degraded   int
	CacheHits  int
	Duration   time.Duration
}

// Result is the outcome of processing a batch of records.
type Result struct {
	Records []*types.EnrichedRecord
	Stats   Stats
}

// Pipeline runs records through the extraction strategies. Per record:
// TRY_AI then, on any failure, TRY_TABLE; the table strategy cannot fail, so
// every record always produces exactly one EnrichedRecord. A failure on
// record i never disables AI for record i+1.
type Pipeline struct {
	ai      Extractor
	table   *TableExtractor
	cache   *cache.Store
	workers int
	dates   *DateNormalizer
}

func NewPipeline(opts Options) *Pipeline {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		ai:      opts.AI,
		table:   opts.Table,
		cache:   opts.Cache,
		workers: workers,
		dates:   opts.Dates,
	}
}

// Run processes all records and returns them in input order. The only error
// it can return is cancellation of ctx; extraction problems degrade records,
// they never abort the run.
func (p *Pipeline) Run(ctx context.Context, records []types.RawRecord) (*Result, error) {
	start := time.Now()
	out := make([]*types.EnrichedRecord, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = p.processOne(gctx, records[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Records: out}
	res.Stats.Rows = len(out)
	res.Stats.Duration = time.Since(start)
	for _, rec := range out {
		switch rec.Source {
		case types.SourceAI:
			res.Stats.AIResolved++
		case types.SourceTable:
			res.Stats.TableUsed++
		default:
			res.Stats.Unresolved++
		}
		if rec.Degraded {
			res.Stats.Degraded++
		}
		if rec.CacheHit {
			res.Stats.CacheHits++
		}
	}
	return res, nil
}

func (p *Pipeline) processOne(ctx context.Context, rec types.RawRecord) *types.EnrichedRecord {
	enriched := types.NewEnrichedRecord(rec.Index)
	enriched.Dose = ParseDose(rec.Dose)
	enriched.Collected = rec.Collected
	if p.dates != nil && rec.Collected != "" {
		enriched.Collected = p.dates.Normalize(rec.Collected)
	}

	ex := p.extract(ctx, rec, enriched)
	p.apply(ex, enriched)
	return enriched
}

func (p *Pipeline) extract(ctx context.Context, rec types.RawRecord, enriched *types.EnrichedRecord) *Extraction {
	if p.ai != nil {
		key := cache.Key(rec.Address, rec.Description)
		if p.cache != nil {
			if entry, ok, err := p.cache.Get(ctx, key); err == nil && ok {
				enriched.CacheHit = true
				enriched.Source = types.SourceAI
				return &Extraction{Country: entry.Country, Varieties: entry.Varieties}
			} else if err != nil {
				debug.Logf("row %d: cache lookup: %v", rec.Index, err)
			}
		}

		ex, err := p.ai.Extract(ctx, rec)
		if err == nil {
			enriched.Source = types.SourceAI
			if p.cache != nil {
				if err := p.cache.Put(ctx, key, &cache.Entry{
					Country:   ex.Country,
					Varieties: ex.Varieties,
					Model:     p.ai.Name(),
				}); err != nil {
					debug.Logf("row %d: cache write: %v", rec.Index, err)
				}
			}
			return ex
		}

		debug.Logf("row %d: %s extraction failed, falling back: %v", rec.Index, p.ai.Name(), err)
		enriched.Degraded = true
	}

	// Table extraction is pure and cannot fail.
	ex, _ := p.table.Extract(ctx, rec)
	enriched.Source = types.SourceTable
	return ex
}

// apply copies extraction output onto the record, substituting the unresolved
// marker where nothing was produced.
func (p *Pipeline) apply(ex *Extraction, enriched *types.EnrichedRecord) {
	if ex.Country != "" {
		enriched.Country = ex.Country
	}
	if ex.Varieties != nil {
		enriched.Varieties = ex.Varieties
	}
	if enriched.Country == types.Unresolved && len(enriched.Varieties) == 0 {
		enriched.Source = types.SourceNone
	}
}
