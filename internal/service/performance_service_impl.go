package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/repository"
)

type performanceService struct {
	performance repository.PerformanceRepo
	employees   repository.EmployeeRepo
	observer    UseCaseObserver
}

func NewPerformanceService(performance repository.PerformanceRepo, employees repository.EmployeeRepo, observers ...UseCaseObserver) PerformanceService {
	return &performanceService{
		performance: performance,
		employees:   employees,
		observer:    combineObservers(observers),
	}
}

// prepare canonicalizes the status and validates the record.
func prepare(p *domain.PerformanceRecord) error {
	status, err := domain.ParseStatus(string(p.Status))
	if err != nil {
		return err
	}
	p.Status = status
	return domain.Validate(p)
}

func (s *performanceService) Create(ctx context.Context, p *domain.PerformanceRecord) (err error) {
	uc := startUseCase(s.observer, "add-performance", map[string]any{
		"employee_id": p.EmployeeID,
		"date":        p.Date,
	})
	defer func() { uc.finish(ctx, err) }()

	if err = prepare(p); err != nil {
		return err
	}
	if _, err = s.employees.GetByID(ctx, p.EmployeeID); err != nil {
		return err
	}
	return s.performance.Create(ctx, p)
}

func (s *performanceService) GetByID(ctx context.Context, id int64) (*domain.PerformanceRecord, error) {
	return s.performance.GetByID(ctx, id)
}

func (s *performanceService) ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.PerformanceRecord, error) {
	return s.performance.ListByEmployee(ctx, employeeID)
}

func (s *performanceService) ListByEmployeeDate(ctx context.Context, employeeID int64, date string) ([]*domain.PerformanceRecord, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}
	return s.performance.ListByEmployeeDate(ctx, employeeID, date)
}

func (s *performanceService) Update(ctx context.Context, p *domain.PerformanceRecord) (err error) {
	uc := startUseCase(s.observer, "update-performance", map[string]any{"performance_id": p.ID})
	defer func() { uc.finish(ctx, err) }()

	if p.ID <= 0 {
		return fmt.Errorf("%w: performance id is required", domain.ErrInvalid)
	}
	var existing *domain.PerformanceRecord
	existing, err = s.performance.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	p.EmployeeID = existing.EmployeeID
	p.Date = existing.Date
	uc.fields["employee_id"] = p.EmployeeID
	uc.fields["date"] = p.Date

	if err = prepare(p); err != nil {
		return err
	}
	return s.performance.Update(ctx, p)
}
