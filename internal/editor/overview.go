package editor

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
)

// StatsBackend is the slice of the backend the overview uses.
type StatsBackend interface {
	MonthlyStats(ctx context.Context, req contract.StatsRequest) ([]*domain.MonthlyStats, error)
	ExportMonthlyStats(ctx context.Context, req contract.ExportRequest) (*contract.ExportResult, error)
}

// NoDataMessage replaces the table and chart when a range has no stats.
const NoDataMessage = "No stats available for this range."

// OverviewColumns heads the rows returned by Overview.Rows.
var OverviewColumns = []string{"Month", "Hours", "Work days", "Income", "Cost"}

// Overview shows one employee's monthly statistics over a month range.
type Overview struct {
	mu         sync.Mutex
	backend    StatsBackend
	employeeID int64
	start, end domain.Month
	stats      []*domain.MonthlyStats
	message    string
	err        string
}

// NewOverview starts with a range covering the month of now.
func NewOverview(backend StatsBackend, employeeID int64, now time.Time) *Overview {
	m := domain.MonthOf(now)
	return &Overview{backend: backend, employeeID: employeeID, start: m, end: m}
}

func (o *Overview) Range() (start, end domain.Month) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.start, o.end
}

func (o *Overview) SetRange(start, end domain.Month) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.start, o.end = start, end
}

// ShiftStart and ShiftEnd move one end of the range by n months.
func (o *Overview) ShiftStart(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.start = o.start.AddMonths(n)
}

func (o *Overview) ShiftEnd(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.end = o.end.AddMonths(n)
}

func (o *Overview) Stats() []*domain.MonthlyStats {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*domain.MonthlyStats(nil), o.stats...)
}

// NoData reports whether there is nothing to tabulate.
func (o *Overview) NoData() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.stats) == 0
}

func (o *Overview) Message() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.message
}

func (o *Overview) Err() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

func (o *Overview) request() contract.StatsRequest {
	start, end := o.start.String(), o.end.String()
	return contract.StatsRequest{EmployeeID: o.employeeID, StartMonth: &start, EndMonth: &end}
}

// Fetch loads the stats of the current range. On failure the previous stats
// stay in place.
func (o *Overview) Fetch(ctx context.Context) error {
	o.mu.Lock()
	req := o.request()
	o.mu.Unlock()

	stats, err := o.backend.MonthlyStats(ctx, req)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.err = "Failed to fetch stats: " + err.Error()
		return err
	}
	o.stats = stats
	o.err = ""
	return nil
}

// Rows renders the stats as table rows under OverviewColumns.
func (o *Overview) Rows() [][]string {
	o.mu.Lock()
	defer o.mu.Unlock()
	rows := make([][]string, 0, len(o.stats))
	for _, s := range o.stats {
		rows = append(rows, []string{
			s.Month,
			fmt.Sprintf("%.1f", s.TotalHours),
			strconv.Itoa(s.WorkDays),
			fmt.Sprintf("%.2f", s.GeneratedIncome),
			fmt.Sprintf("%.2f", s.Cost),
		})
	}
	return rows
}

// Export writes the current range to a workbook. An empty path lets the
// backend pick a file name in its export directory.
func (o *Overview) Export(ctx context.Context, path string) (*contract.ExportResult, error) {
	o.mu.Lock()
	req := contract.ExportRequest{StatsRequest: o.request(), Path: path}
	o.mu.Unlock()

	res, err := o.backend.ExportMonthlyStats(ctx, req)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.err = "Export failed: " + err.Error()
		return nil, err
	}
	o.err = ""
	o.message = fmt.Sprintf("Exported %d month(s) to %s", res.Months, res.Path)
	return res, nil
}
