package formatter

import (
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders value as a horizontal bar scaled against max over width
// cells. Non-positive values render as an empty track.
func RenderBar(value, max float64, width int, style lipgloss.Style) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if max > 0 && value > 0 {
		filled = int(value / max * float64(width))
		if filled == 0 {
			filled = 1
		}
		if filled > width {
			filled = width
		}
	}
	return style.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

// RenderStatsChart draws one bar pair per month comparing employee cost with
// generated income, both scaled to the largest amount shown.
func RenderStatsChart(stats []*domain.MonthlyStats, width int, currency string) string {
	if len(stats) == 0 {
		return ""
	}
	var peak float64
	for _, s := range stats {
		peak = max(peak, s.Cost, s.GeneratedIncome)
	}

	var b strings.Builder
	b.WriteString(StyleRed.Render(filledBlock) + Dim(" Employee cost   ") + StyleGreen.Render(filledBlock) + Dim(" Income generated") + "\n\n")
	for i, s := range stats {
		if i > 0 {
			b.WriteString("\n")
		}
		pad := strings.Repeat(" ", len(s.Month))
		b.WriteString(Bold(s.Month) + " " + RenderBar(s.Cost, peak, width, StyleRed) + " " + FormatMoney(s.Cost, currency) + "\n")
		b.WriteString(pad + " " + RenderBar(s.GeneratedIncome, peak, width, StyleGreen) + " " + FormatMoney(s.GeneratedIncome, currency) + "\n")
	}
	return b.String()
}
