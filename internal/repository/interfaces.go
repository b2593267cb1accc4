package repository

import (
	"context"

	"github.com/alexanderramin/praxis/internal/domain"
)

type EmployeeRepo interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id int64) error
}

type TherapyRepo interface {
	Create(ctx context.Context, t *domain.Therapy) error
	GetByID(ctx context.Context, id int64) (*domain.Therapy, error)
	List(ctx context.Context) ([]*domain.Therapy, error)
	Update(ctx context.Context, t *domain.Therapy) error
}

// MonthRange bounds an aggregation by YYYY-MM month, inclusive. The range
// only applies when both ends are set.
type MonthRange struct {
	Start string
	End   string
}

func (r MonthRange) bounded() bool {
	return r.Start != "" && r.End != ""
}

type PerformanceRepo interface {
	Create(ctx context.Context, p *domain.PerformanceRecord) error
	GetByID(ctx context.Context, id int64) (*domain.PerformanceRecord, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.PerformanceRecord, error)
	ListByEmployeeDate(ctx context.Context, employeeID int64, date string) ([]*domain.PerformanceRecord, error)
	Update(ctx context.Context, p *domain.PerformanceRecord) error
	DeleteByEmployee(ctx context.Context, employeeID int64) (int64, error)
	// MonthlyTotals sums hours, present days and modality counts per month,
	// ascending. Cost and income are left for the caller to price.
	MonthlyTotals(ctx context.Context, employeeID int64, rng MonthRange) ([]*domain.MonthlyStats, error)
}
