package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/repository"
)

type statsService struct {
	performance repository.PerformanceRepo
	employees   repository.EmployeeRepo
	therapies   repository.TherapyRepo
}

func NewStatsService(performance repository.PerformanceRepo, employees repository.EmployeeRepo, therapies repository.TherapyRepo) StatsService {
	return &statsService{performance: performance, employees: employees, therapies: therapies}
}

// Monthly aggregates the employee's records per month. Each month carries
// the employee's monthly rate as cost and its modality totals priced at the
// current catalog income.
func (s *statsService) Monthly(ctx context.Context, req contract.StatsRequest) ([]*domain.MonthlyStats, error) {
	rng, err := monthRange(req)
	if err != nil {
		return nil, err
	}

	stats, err := s.performance.MonthlyTotals(ctx, req.EmployeeID, rng)
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return stats, nil
	}

	var cost float64
	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	switch {
	case err == nil:
		cost = emp.MonthlyRate
	case errors.Is(err, repository.ErrNotFound):
		cost = 0
	default:
		return nil, err
	}

	therapies, err := s.therapies.List(ctx)
	if err != nil {
		return nil, err
	}
	prices := domain.IncomeByModality(therapies)

	for _, st := range stats {
		st.Cost = cost
		st.GeneratedIncome = st.ModalityTotals.Income(prices)
	}
	return stats, nil
}

func monthRange(req contract.StatsRequest) (repository.MonthRange, error) {
	if req.EmployeeID <= 0 {
		return repository.MonthRange{}, fmt.Errorf("%w: employee id is required", domain.ErrInvalid)
	}
	start, end := req.Range()
	var from, to domain.Month
	var err error
	if start != "" {
		if from, err = domain.ParseMonth(start); err != nil {
			return repository.MonthRange{}, err
		}
	}
	if end != "" {
		if to, err = domain.ParseMonth(end); err != nil {
			return repository.MonthRange{}, err
		}
	}
	// One open end means every month.
	if start == "" || end == "" {
		return repository.MonthRange{}, nil
	}
	if to.Before(from) {
		return repository.MonthRange{}, fmt.Errorf("%w: start month %s is after end month %s", domain.ErrInvalid, from, to)
	}
	return repository.MonthRange{Start: from.String(), End: to.String()}, nil
}
