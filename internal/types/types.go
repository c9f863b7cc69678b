// Package types defines the core record types shared across FloraSheet packages.
package types

// Unresolved is the explicit marker written for fields that neither extraction
// strategy could resolve. It is distinct from "" so that an unresolved field can
// never be confused with a field that was never attempted.
const Unresolved = "unknown"

// Extraction sources, recorded per record in the output and run summary.
const (
	SourceAI    = "ai"
	SourceTable = "table"
	SourceNone  = "none"
)

// RawRecord is one input row, immutable after construction. Index is the
// zero-based data-row position (header excluded) and doubles as the record's
// only identity.
type RawRecord struct {
	Index       int
	Address     string
	Description string
	Dose        string
	Collected   string
	// PassThrough holds the original row cells in file order. They are
	// written back to the output unchanged.
	PassThrough []string
}

// VarietyEntry is one (latin, common, variety) triple extracted from a
// description field. All fields are optional; a single description may
// decompose into several entries.
type VarietyEntry struct {
	LatinName   string `json:"latin_name"`
	CommonName  string `json:"common_name"`
	VarietyName string `json:"variety_name"`
}

// Dose is a parsed dose field: numeric value plus unit, e.g. 5 "mg/L".
type Dose struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// EnrichedRecord is the extraction result for one RawRecord. Varieties is
// never nil: an empty slice means nothing was extracted, which is a valid
// outcome, not an error.
type EnrichedRecord struct {
	Index     int
	Country   string
	Varieties []VarietyEntry
	Dose      *Dose
	Collected string
	// Source records which strategy produced the country/variety fields.
	Source string
	// Degraded is true when the AI strategy was attempted and failed for
	// this record, forcing table mode.
	Degraded bool
	// CacheHit is true when the result came from the extraction cache
	// rather than a live AI call.
	CacheHit bool
}

// NewEnrichedRecord returns an EnrichedRecord for idx with the invariants
// already satisfied: non-nil Varieties and unresolved markers in place.
func NewEnrichedRecord(idx int) *EnrichedRecord {
	return &EnrichedRecord{
		Index:     idx,
		Country:   Unresolved,
		Varieties: []VarietyEntry{},
		Source:    SourceNone,
	}
}
