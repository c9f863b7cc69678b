package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "63", Dark: "86"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "245", Dark: "240"}
	ColorPass   = lipgloss.AdaptiveColor{Light: "35", Dark: "42"}
	ColorWarn   = lipgloss.AdaptiveColor{Light: "208", Dark: "214"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Align(lipgloss.Center)

	borderStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	warnStyle = lipgloss.NewStyle().Foreground(ColorWarn)
	passStyle = lipgloss.NewStyle().Foreground(ColorPass)
)

// RunSummary is the per-run report rendered after processing.
type RunSummary struct {
	Input      string
	Output     string
	Rows       int
	AIResolved int
	TableUsed  int
	Unresolved int
	Degraded   int
	CacheHits  int
	Duration   string
}

// RenderSummary renders the run report. Styled table on a color-capable TTY,
// plain key: value lines otherwise so output stays machine-readable in pipes.
func RenderSummary(s RunSummary) string {
	rows := [][]string{
		{"rows processed", fmt.Sprintf("%d", s.Rows)},
		{"resolved by AI", fmt.Sprintf("%d", s.AIResolved)},
		{"resolved by table", fmt.Sprintf("%d", s.TableUsed)},
		{"unresolved", fmt.Sprintf("%d", s.Unresolved)},
		{"degraded to fallback", fmt.Sprintf("%d", s.Degraded)},
		{"cache hits", fmt.Sprintf("%d", s.CacheHits)},
		{"duration", s.Duration},
	}

	if !ShouldUseColor() {
		var b strings.Builder
		fmt.Fprintf(&b, "input: %s\n", s.Input)
		fmt.Fprintf(&b, "output: %s\n", s.Output)
		for _, r := range rows {
			fmt.Fprintf(&b, "%s: %s\n", r[0], r[1])
		}
		return b.String()
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Run Summary", "")
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return lipgloss.NewStyle().Padding(0, 1)
	})
	for _, r := range rows {
		val := r[1]
		switch {
		case r[0] == "unresolved" && val != "0":
			val = warnStyle.Render(val)
		case r[0] == "degraded to fallback" && val != "0":
			val = warnStyle.Render(val)
		case r[0] == "rows processed":
			val = passStyle.Render(val)
		}
		t.Row(r[0], val)
	}

	header := fmt.Sprintf("%s → %s", s.Input, s.Output)
	return lipgloss.JoinVertical(lipgloss.Left, header, t.Render())
}
