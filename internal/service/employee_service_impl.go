package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/praxis/internal/db"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/repository"
)

type employeeService struct {
	employees repository.EmployeeRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewEmployeeService(employees repository.EmployeeRepo, uow db.UnitOfWork, observers ...UseCaseObserver) EmployeeService {
	return &employeeService{
		employees: employees,
		uow:       uow,
		observer:  combineObservers(observers),
	}
}

func (s *employeeService) Create(ctx context.Context, e *domain.Employee) (err error) {
	uc := startUseCase(s.observer, "add-employee", map[string]any{"name": e.Name})
	defer func() { uc.finish(ctx, err) }()

	e.Normalize()
	if err = domain.Validate(e); err != nil {
		return err
	}
	if err = s.employees.Create(ctx, e); err != nil {
		return err
	}
	uc.fields["employee_id"] = e.ID
	return nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *employeeService) Update(ctx context.Context, e *domain.Employee) (err error) {
	uc := startUseCase(s.observer, "update-employee", map[string]any{"employee_id": e.ID})
	defer func() { uc.finish(ctx, err) }()

	if e.ID <= 0 {
		return fmt.Errorf("%w: employee id is required", domain.ErrInvalid)
	}
	e.Normalize()
	if err = domain.Validate(e); err != nil {
		return err
	}
	return s.employees.Update(ctx, e)
}

func (s *employeeService) Delete(ctx context.Context, id int64) (err error) {
	uc := startUseCase(s.observer, "delete-employee", map[string]any{"employee_id": id})
	defer func() { uc.finish(ctx, err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPerformance := repository.NewSQLitePerformanceRepo(tx)
		txEmployees := repository.NewSQLiteEmployeeRepo(tx)

		removed, err := txPerformance.DeleteByEmployee(ctx, id)
		if err != nil {
			return err
		}
		uc.fields["performance_removed"] = removed
		return txEmployees.Delete(ctx, id)
	})
}
