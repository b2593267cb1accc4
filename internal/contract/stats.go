package contract

import (
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
)

// StatsRequest asks for one employee's monthly statistics. The month range
// (YYYY-MM, inclusive) only applies when both ends are given.
type StatsRequest struct {
	EmployeeID int64   `json:"employeeId"`
	StartMonth *string `json:"startMonth,omitempty"`
	EndMonth   *string `json:"endMonth,omitempty"`
}

// NewStatsRequest covers the month containing now.
func NewStatsRequest(employeeID int64, now time.Time) StatsRequest {
	m := domain.MonthOf(now).String()
	start, end := m, m
	return StatsRequest{EmployeeID: employeeID, StartMonth: &start, EndMonth: &end}
}

// Range returns the requested bounds, empty when unset.
func (r StatsRequest) Range() (start, end string) {
	if r.StartMonth != nil {
		start = *r.StartMonth
	}
	if r.EndMonth != nil {
		end = *r.EndMonth
	}
	return start, end
}

// ExportRequest writes the stats StatsRequest selects to an xlsx workbook.
// Path may be empty, in which case a name is derived inside the export directory.
type ExportRequest struct {
	StatsRequest
	Path string `json:"path,omitempty"`
}

type ExportResult struct {
	Path   string `json:"path"`
	Months int    `json:"months"`
}
