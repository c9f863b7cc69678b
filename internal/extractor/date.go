package extractor

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

const isoDate = "2006-01-02"

// Layouts seen in real spreadsheets, tried before natural-language parsing.
var dateLayouts = []string{
	isoDate,
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// DateNormalizer rewrites free-text collected-date values to ISO form.
// Values it cannot parse pass through unchanged; normalization is best-effort
// and never fails a record.
type DateNormalizer struct {
	parser *when.Parser
	now    time.Time
}

func NewDateNormalizer() *DateNormalizer {
	p := when.New(nil)
	p.Add(en.All...)
	p.Add(common.All...)
	return &DateNormalizer{parser: p, now: time.Now()}
}

// Normalize returns the ISO form of text, or text unchanged if no date can be
// recognized in it.
func (n *DateNormalizer) Normalize(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(isoDate)
		}
	}

	r, err := n.parser.Parse(trimmed, n.now)
	if err != nil || r == nil {
		return text
	}
	return r.Time.Format(isoDate)
}
