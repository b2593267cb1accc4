// Package app assembles the backend: repositories over one database,
// services on top, and the command router and client in front.
package app

import (
	"database/sql"
	"log/slog"

	"github.com/alexanderramin/praxis/internal/command"
	"github.com/alexanderramin/praxis/internal/db"
	"github.com/alexanderramin/praxis/internal/repository"
	"github.com/alexanderramin/praxis/internal/service"
)

type Options struct {
	// ExportDir receives workbooks written without an explicit path.
	ExportDir string
	// Logger records command invocations. Nil discards them.
	Logger    *slog.Logger
	Observers []service.UseCaseObserver
}

// Backend is the assembled backend.
type Backend struct {
	Router *command.Router
	Client *command.Client
}

// New wires a backend over database, which must already be migrated.
func New(database *sql.DB, opts Options) *Backend {
	employees := repository.NewSQLiteEmployeeRepo(database)
	therapies := repository.NewSQLiteTherapyRepo(database)
	performance := repository.NewSQLitePerformanceRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	stats := service.NewStatsService(performance, employees, therapies)
	router := command.NewRouter(command.Services{
		Employees:   service.NewEmployeeService(employees, uow, opts.Observers...),
		Therapies:   service.NewTherapyService(therapies, opts.Observers...),
		Performance: service.NewPerformanceService(performance, employees, opts.Observers...),
		Stats:       stats,
		Export:      service.NewExportService(stats, employees, opts.ExportDir, opts.Observers...),
		Import:      service.NewImportService(uow, opts.Observers...),
	}, opts.Logger)

	return &Backend{Router: router, Client: command.NewClient(router)}
}
