package service

import (
	"context"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/importer"
)

type EmployeeService interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	// Delete removes the employee together with their performance history.
	Delete(ctx context.Context, id int64) error
}

type TherapyService interface {
	Create(ctx context.Context, t *domain.Therapy) error
	GetByID(ctx context.Context, id int64) (*domain.Therapy, error)
	List(ctx context.Context) ([]*domain.Therapy, error)
	Update(ctx context.Context, t *domain.Therapy) error
}

type PerformanceService interface {
	Create(ctx context.Context, p *domain.PerformanceRecord) error
	GetByID(ctx context.Context, id int64) (*domain.PerformanceRecord, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.PerformanceRecord, error)
	ListByEmployeeDate(ctx context.Context, employeeID int64, date string) ([]*domain.PerformanceRecord, error)
	// Update replaces the day's values of an existing record. Employee and
	// date are fixed once a record exists.
	Update(ctx context.Context, p *domain.PerformanceRecord) error
}

type StatsService interface {
	Monthly(ctx context.Context, req contract.StatsRequest) ([]*domain.MonthlyStats, error)
}

type ExportService interface {
	MonthlyStats(ctx context.Context, req contract.ExportRequest) (*contract.ExportResult, error)
}

type ImportService interface {
	// Import validates and stores a practice data file atomically.
	Import(ctx context.Context, schema *importer.ImportSchema) (*contract.ImportResult, error)
}
