package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/untoldecay/FloraSheet/internal/types"
)

// Dose fields look like "5 mg/L", "2.5ml", "10 g per plant". The unit is the
// first token after the number; trailing prose is ignored.
var dosePat = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*([a-zµμ%][a-z0-9µμ%/.·-]*(?:/[a-z0-9µμ]+)?)?`)

// ParseDose extracts a numeric value and unit from a free-text dose field.
// It is purely local pattern matching, independent of the country/variety
// strategies. Returns nil when no number is present.
func ParseDose(text string) *types.Dose {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	m := dosePat.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return nil
	}

	return &types.Dose{
		Value: value,
		Unit:  strings.TrimRight(m[2], "."),
	}
}
