package extractor

import (
	"context"
	"regexp"
	"strings"

	"github.com/untoldecay/FloraSheet/internal/fallback"
	"github.com/untoldecay/FloraSheet/internal/types"
)

// Quoted variety names: Rosa 'Peace', Tulipa "Queen of Night". Curly quotes
// show up in spreadsheets pasted from word processors.
var varietyQuotePat = regexp.MustCompile(`['\x{2018}"\x{201C}]([^'\x{2018}\x{2019}"\x{201C}\x{201D}]+)['\x{2019}"\x{201D}]`)

// TableExtractor is the deterministic strategy: keyword matching against the
// fallback table. It is pure and never fails, so the same input text always
// yields the same extraction.
type TableExtractor struct {
	table *fallback.Table
}

func NewTableExtractor(t *fallback.Table) *TableExtractor {
	return &TableExtractor{table: t}
}

func (e *TableExtractor) Name() string {
	return "table"
}

func (e *TableExtractor) Extract(_ context.Context, rec types.RawRecord) (*Extraction, error) {
	ex := &Extraction{Varieties: []types.VarietyEntry{}}

	if country, ok := e.table.MatchCountry(rec.Address); ok {
		ex.Country = country
	}

	ex.Varieties = e.varieties(rec.Description)
	return ex, nil
}

// varieties decomposes a description into entries. Each species keyword hit
// opens a slot; each quoted name attaches to the nearest preceding slot, so
// "Rosa 'Peace' and Rosa 'Iceberg'" yields two entries and
// "Rosa 'Peace' and 'Iceberg'" does too. Quoted names with no preceding
// species become standalone entries.
func (e *TableExtractor) varieties(desc string) []types.VarietyEntry {
	entries := []types.VarietyEntry{}
	if strings.TrimSpace(desc) == "" {
		return entries
	}

	type slot struct {
		match fallback.SpeciesMatch
		names []string
	}

	matches := e.table.MatchSpecies(desc)
	slots := make([]slot, len(matches))
	for i, m := range matches {
		slots[i] = slot{match: m}
	}

	var orphans []string
	for _, q := range varietyQuotePat.FindAllStringSubmatchIndex(desc, -1) {
		name := strings.TrimSpace(desc[q[2]:q[3]])
		if name == "" {
			continue
		}
		owner := -1
		for i := range slots {
			if slots[i].match.Pos < q[0] {
				owner = i
			}
		}
		if owner == -1 {
			orphans = append(orphans, name)
			continue
		}
		slots[owner].names = append(slots[owner].names, name)
	}

	for _, s := range slots {
		if len(s.names) == 0 {
			entries = append(entries, types.VarietyEntry{
				LatinName:  s.match.Latin,
				CommonName: s.match.Common,
			})
			continue
		}
		for _, name := range s.names {
			entries = append(entries, types.VarietyEntry{
				LatinName:   s.match.Latin,
				CommonName:  s.match.Common,
				VarietyName: name,
			})
		}
	}

	for _, name := range orphans {
		entries = append(entries, types.VarietyEntry{VarietyName: name})
	}

	return entries
}
