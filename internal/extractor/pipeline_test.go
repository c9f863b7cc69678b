package extractor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/untoldecay/FloraSheet/internal/cache"
	"github.com/untoldecay/FloraSheet/internal/fallback"
	"github.com/untoldecay/FloraSheet/internal/types"
)

func recordWith(address, description string) types.RawRecord {
	return types.RawRecord{Address: address, Description: description}
}

// fakeAI fails for row indexes listed in failRows and otherwise returns a
// fixed extraction.
type fakeAI struct {
	failRows map[int]bool
	calls    int
}

func (f *fakeAI) Name() string { return "fake" }

func (f *fakeAI) Extract(_ context.Context, rec types.RawRecord) (*Extraction, error) {
	f.calls++
	if f.failRows[rec.Index] {
		return nil, fmt.Errorf("simulated API failure for row %d", rec.Index)
	}
	return &Extraction{
		Country:   "Ecuador",
		Varieties: []types.VarietyEntry{{LatinName: "Rosa", CommonName: "Rose"}},
	}, nil
}

func testRecords(n int) []types.RawRecord {
	records := make([]types.RawRecord, n)
	for i := range records {
		records[i] = types.RawRecord{
			Index:       i,
			Address:     "Quito, Ecuador",
			Description: fmt.Sprintf("Rosa 'Lot %d'", i),
		}
	}
	return records
}

func TestPipelineTableOnly(t *testing.T) {
	pipe := NewPipeline(Options{
		Table: NewTableExtractor(fallback.Builtin()),
	})

	result, err := pipe.Run(context.Background(), []types.RawRecord{
		{Index: 0, Address: "123 Main St, Paris, France", Description: "Rosa 'Peace' and Rosa 'Iceberg'", Dose: "5 mg/L"},
		{Index: 1, Address: "unknown location", Description: ""},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(result.Records))
	}

	r0 := result.Records[0]
	if r0.Country != "France" {
		t.Errorf("row 0 country = %q", r0.Country)
	}
	if len(r0.Varieties) != 2 {
		t.Errorf("row 0 varieties = %+v", r0.Varieties)
	}
	if r0.Dose == nil || r0.Dose.Value != 5 || r0.Dose.Unit != "mg/L" {
		t.Errorf("row 0 dose = %+v", r0.Dose)
	}
	if r0.Source != types.SourceTable {
		t.Errorf("row 0 source = %q", r0.Source)
	}

	r1 := result.Records[1]
	if r1.Country != types.Unresolved {
		t.Errorf("row 1 country = %q, want unresolved marker", r1.Country)
	}
	if r1.Varieties == nil || len(r1.Varieties) != 0 {
		t.Errorf("row 1 varieties = %+v, want empty non-nil", r1.Varieties)
	}
	if r1.Source != types.SourceNone {
		t.Errorf("row 1 source = %q", r1.Source)
	}
}

func TestPipelineFailureIsolation(t *testing.T) {
	ai := &fakeAI{failRows: map[int]bool{1: true}}
	pipe := NewPipeline(Options{
		AI:    ai,
		Table: NewTableExtractor(fallback.Builtin()),
	})

	result, err := pipe.Run(context.Background(), testRecords(3))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Row 1 degraded but is still present; rows 0 and 2 used AI.
	if result.Records[1] == nil {
		t.Fatal("degraded row missing from output")
	}
	if !result.Records[1].Degraded || result.Records[1].Source != types.SourceTable {
		t.Errorf("row 1 = %+v, want degraded table result", result.Records[1])
	}

	for _, i := range []int{0, 2} {
		if result.Records[i].Source != types.SourceAI {
			t.Errorf("row %d source = %q, want ai (failure must not disable AI for other rows)", i, result.Records[i].Source)
		}
		if result.Records[i].Degraded {
			t.Errorf("row %d unexpectedly degraded", i)
		}
	}

	if result.Stats.Degraded != 1 || result.Stats.AIResolved != 2 || result.Stats.TableUsed != 1 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if ai.calls != 3 {
		t.Errorf("AI called %d times, want 3", ai.calls)
	}
}

func TestPipelineOrderPreservedWithWorkers(t *testing.T) {
	pipe := NewPipeline(Options{
		AI:      &fakeAI{},
		Table:   NewTableExtractor(fallback.Builtin()),
		Workers: 8,
	})

	records := testRecords(64)
	result, err := pipe.Run(context.Background(), records)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for i, rec := range result.Records {
		if rec == nil {
			t.Fatalf("row %d missing", i)
		}
		if rec.Index != i {
			t.Errorf("output position %d holds record %d", i, rec.Index)
		}
	}
}

func TestPipelineCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pipe := NewPipeline(Options{Table: NewTableExtractor(fallback.Builtin())})
	if _, err := pipe.Run(ctx, testRecords(4)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPipelineCacheSkipsRepeatCalls(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("cache.Open failed: %v", err)
	}
	defer store.Close()

	ai := &fakeAI{}
	opts := Options{
		AI:    ai,
		Table: NewTableExtractor(fallback.Builtin()),
		Cache: store,
	}

	records := testRecords(2)

	if _, err := NewPipeline(opts).Run(context.Background(), records); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if ai.calls != 2 {
		t.Fatalf("first run: %d AI calls, want 2", ai.calls)
	}

	result, err := NewPipeline(opts).Run(context.Background(), records)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if ai.calls != 2 {
		t.Errorf("second run issued AI calls: total %d, want 2", ai.calls)
	}
	if result.Stats.CacheHits != 2 {
		t.Errorf("cache hits = %d, want 2", result.Stats.CacheHits)
	}
	for _, rec := range result.Records {
		if rec.Source != types.SourceAI || rec.Country != "Ecuador" {
			t.Errorf("cached record = %+v", rec)
		}
	}
}

func TestPipelineDateNormalization(t *testing.T) {
	pipe := NewPipeline(Options{
		Table: NewTableExtractor(fallback.Builtin()),
		Dates: NewDateNormalizer(),
	})

	result, err := pipe.Run(context.Background(), []types.RawRecord{
		{Index: 0, Collected: "3 March 2024"},
		{Index: 1, Collected: "garbage value"},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := result.Records[0].Collected; got != "2024-03-03" {
		t.Errorf("normalized date = %q", got)
	}
	if got := result.Records[1].Collected; got != "garbage value" {
		t.Errorf("unparseable date changed to %q", got)
	}
}
