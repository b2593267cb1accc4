package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorBg     = lipgloss.Color("#282828")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the color a calendar or pill uses for the status.
// Other has no color of its own.
func StatusColor(s domain.Status) (lipgloss.Color, bool) {
	switch s {
	case domain.StatusPresent:
		return ColorGreen, true
	case domain.StatusSick:
		return ColorRed, true
	case domain.StatusVacation:
		return ColorBlue, true
	case domain.StatusHoliday:
		return ColorPurple, true
	default:
		return ColorDim, false
	}
}

// StatusPill returns a colored status indicator such as "● Sick".
func StatusPill(s domain.Status) string {
	c, _ := StatusColor(s)
	return lipgloss.NewStyle().Foreground(c).Render("● " + string(s))
}

// classStatus maps a calendar decoration class back to its status.
var classStatus = map[string]domain.Status{
	domain.StatusPresent.CalendarClass():  domain.StatusPresent,
	domain.StatusSick.CalendarClass():     domain.StatusSick,
	domain.StatusVacation.CalendarClass(): domain.StatusVacation,
	domain.StatusHoliday.CalendarClass():  domain.StatusHoliday,
}

// ClassStyle returns the day style for a calendar decoration class.
func ClassStyle(class string) lipgloss.Style {
	st, ok := classStatus[class]
	if !ok {
		return StyleFg
	}
	c, _ := StatusColor(st)
	return lipgloss.NewStyle().Foreground(ColorBg).Background(c)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// ErrorLine renders a failure message in red.
func ErrorLine(msg string) string {
	return StyleRed.Render("Error: " + msg)
}

// Success renders a check mark and message in green.
func Success(msg string) string {
	return StyleGreen.Render("✔ " + msg)
}
