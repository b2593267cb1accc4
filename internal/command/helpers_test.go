package command

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/alexanderramin/praxis/internal/repository"
	"github.com/alexanderramin/praxis/internal/service"
	"github.com/alexanderramin/praxis/internal/testutil"
)

func newTestRouter(t *testing.T) (*Router, *bytes.Buffer) {
	t.Helper()
	database := testutil.NewTestDB(t)
	employees := repository.NewSQLiteEmployeeRepo(database)
	therapies := repository.NewSQLiteTherapyRepo(database)
	performance := repository.NewSQLitePerformanceRepo(database)
	stats := service.NewStatsService(performance, employees, therapies)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	r := NewRouter(Services{
		Employees:   service.NewEmployeeService(employees, testutil.NewTestUoW(database)),
		Therapies:   service.NewTherapyService(therapies),
		Performance: service.NewPerformanceService(performance, employees),
		Stats:       stats,
		Export:      service.NewExportService(stats, employees, t.TempDir()),
		Import:      service.NewImportService(testutil.NewTestUoW(database)),
	}, logger)
	return r, &logs
}
