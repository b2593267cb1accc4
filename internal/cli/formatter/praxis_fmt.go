package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
)

// FormatEmployees renders the employee directory as a table.
func FormatEmployees(emps []*domain.Employee, currency string) string {
	if len(emps) == 0 {
		return Dim("No employees yet.") + "\n"
	}
	rows := make([][]string, 0, len(emps))
	for _, e := range emps {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			e.JoinDate,
			FormatMoney(e.MonthlyRate, currency),
			FormatHours(e.AvgHours),
		})
	}
	return Table{
		Headers: []string{"ID", "Name", "Joined", "Monthly rate", "Avg hours"},
		Rows:    rows,
		Align:   []Align{AlignRight, AlignLeft, AlignLeft, AlignRight, AlignRight},
	}.Render()
}

// FormatTherapies renders the therapy catalog with per-session margin.
func FormatTherapies(therapies []*domain.Therapy, currency string) string {
	if len(therapies) == 0 {
		return Dim("No therapies in the catalog.") + "\n"
	}
	rows := make([][]string, 0, len(therapies))
	for _, t := range therapies {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			t.Name,
			FormatMoney(t.Cost, currency),
			FormatMoney(t.Income, currency),
			FormatMoney(t.Income-t.Cost, currency),
		})
	}
	return Table{
		Headers: []string{"ID", "Therapy", "Cost", "Income", "Margin"},
		Rows:    rows,
		Align:   []Align{AlignRight, AlignLeft, AlignRight, AlignRight, AlignRight},
	}.Render()
}

// FormatPerformance renders daily records with one column per modality.
func FormatPerformance(records []*domain.PerformanceRecord, currency string) string {
	if len(records) == 0 {
		return Dim("No performance recorded.") + "\n"
	}
	headers := []string{"Date", "Status", "Hours", "Income"}
	align := []Align{AlignLeft, AlignLeft, AlignRight, AlignRight}
	for _, m := range domain.Modalities {
		headers = append(headers, m.Label())
		align = append(align, AlignRight)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{r.Date, StatusPill(r.Status), FormatDecimal(r.HoursWorked), FormatMoney(r.Income, currency)}
		for _, n := range r.Values() {
			row = append(row, strconv.Itoa(n))
		}
		rows = append(rows, row)
	}
	return Table{Headers: headers, Rows: rows, Align: align}.Render()
}

// FormatMonthlyStats renders monthly totals, money in the given currency,
// followed by a totals line when more than one month is shown.
func FormatMonthlyStats(stats []*domain.MonthlyStats, currency string) string {
	if len(stats) == 0 {
		return Dim("No stats available for this range.") + "\n"
	}
	rows := make([][]string, 0, len(stats)+1)
	var hours, cost, income float64
	var days int
	for _, s := range stats {
		rows = append(rows, statsRow(s.Month, s.TotalHours, s.WorkDays, s.GeneratedIncome, s.Cost, currency))
		hours += s.TotalHours
		days += s.WorkDays
		cost += s.Cost
		income += s.GeneratedIncome
	}
	if len(stats) > 1 {
		rows = append(rows, statsRow(Bold("Total"), hours, days, income, cost, currency))
	}
	return Table{
		Headers: []string{"Month", "Hours", "Work days", "Income", "Cost", "Margin"},
		Rows:    rows,
		Align:   []Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight},
	}.Render()
}

func statsRow(label string, hours float64, days int, income, cost float64, currency string) []string {
	margin := FormatMoney(income-cost, currency)
	if income < cost {
		margin = StyleRed.Render(margin)
	}
	return []string{
		label,
		fmt.Sprintf("%.1f", hours),
		strconv.Itoa(days),
		FormatMoney(income, currency),
		FormatMoney(cost, currency),
		margin,
	}
}

// FormatModalityTotals lists the session totals of one month, skipping zeros.
func FormatModalityTotals(s *domain.MonthlyStats) string {
	parts := make([]string, 0, len(domain.Modalities))
	for _, m := range domain.Modalities {
		if n := s.Total(m); n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", m.Label(), n))
		}
	}
	if len(parts) == 0 {
		return Dim("no sessions")
	}
	return strings.Join(parts, Dim(" · "))
}
