// Package extractor implements the field-extraction pipeline: an AI strategy
// backed by the Anthropic API and a deterministic table strategy, composed via
// ordered per-record fallback.
package extractor

import (
	"context"
	"errors"

	"github.com/untoldecay/FloraSheet/internal/types"
)

// Extraction holds the country and variety fields derived from one record's
// free text. Dose and date handling are local concerns and live outside it.
type Extraction struct {
	Country   string               `json:"country"`
	Varieties []types.VarietyEntry `json:"varieties"`
}

// Extractor is the interface for field-extraction strategies.
type Extractor interface {
	Extract(ctx context.Context, rec types.RawRecord) (*Extraction, error)
	Name() string
}

// ErrEmptyResponse is returned when the AI produced a well-formed but empty
// extraction. It is a per-record failure, handled by falling back.
var ErrEmptyResponse = errors.New("empty extraction response")
