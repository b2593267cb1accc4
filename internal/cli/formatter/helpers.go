package formatter

import (
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"
)

// DefaultCurrency is used when a currency code is empty or unknown.
const DefaultCurrency = "EUR"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatMoney renders amount in the given ISO currency, e.g. "€1,234.50".
func FormatMoney(amount float64, currency string) string {
	code := strings.ToUpper(currency)
	if money.GetCurrency(code) == nil {
		code = DefaultCurrency
	}
	return money.NewFromFloat(amount, code).Display()
}

// FormatHours renders hours without trailing zeros, e.g. "7.5h".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

// FormatDecimal renders v the way it was stored, e.g. "7.5" or "8".
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Truncate shortens s to max visible cells, ending with an ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 || lipgloss.Width(s) <= max {
		return s
	}
	r := []rune(s)
	if max == 1 || len(r) <= 1 {
		return "…"
	}
	for lipgloss.Width(string(r)) > max-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
