package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const calendarCell = 4

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// RenderCalendar draws the month containing selected as a Monday-first grid.
// classOf names each day's decoration class; the selected day is bracketed.
func RenderCalendar(selected time.Time, classOf func(day time.Time) string) string {
	month := domain.MonthOf(selected)
	first := month.FirstDay()

	var b strings.Builder
	title := fmt.Sprintf("%s %d", month.Month, month.Year)
	b.WriteString(lipgloss.PlaceHorizontal(calendarCell*7, lipgloss.Center, StyleHeader.Render(title)))
	b.WriteString("\n")
	for _, wd := range weekdayHeader {
		b.WriteString(Dim(fmt.Sprintf("%*s ", calendarCell-1, wd)))
	}
	b.WriteString("\n")

	// Monday = 0.
	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat(" ", offset*calendarCell))

	col := offset
	for d := 1; d <= month.Days(); d++ {
		day := time.Date(month.Year, month.Month, d, 0, 0, 0, 0, time.Local)
		b.WriteString(renderDay(day, sameDay(day, selected), classOf(day)))
		col++
		if col == 7 && d < month.Days() {
			b.WriteString("\n")
			col = 0
		}
	}
	b.WriteString("\n")
	return b.String()
}

func renderDay(day time.Time, selected bool, class string) string {
	num := fmt.Sprintf("%2d", day.Day())
	styled := ClassStyle(class).Render(num)
	if selected {
		return StyleHeader.Render("[") + styled + StyleHeader.Render("]")
	}
	return " " + styled + " "
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CalendarLegend lists the decorated statuses with their colors.
func CalendarLegend() string {
	parts := make([]string, 0, len(domain.Statuses))
	for _, st := range domain.Statuses {
		if _, ok := StatusColor(st); !ok {
			continue
		}
		parts = append(parts, ClassStyle(st.CalendarClass()).Render("  ")+" "+Dim(string(st)))
	}
	return strings.Join(parts, "  ")
}
