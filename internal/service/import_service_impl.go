package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/db"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/importer"
	"github.com/alexanderramin/praxis/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: combineObservers(observers)}
}

// Import stores a practice data file in one transaction. Any failure,
// including a day that already exists, leaves the database untouched.
func (s *importService) Import(ctx context.Context, schema *importer.ImportSchema) (result *contract.ImportResult, err error) {
	uc := startUseCase(s.observer, "import-data", map[string]any{
		"employees":   len(schema.Employees),
		"therapies":   len(schema.Therapies),
		"performance": len(schema.Performance),
	})
	defer func() { uc.finish(ctx, err) }()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalid, errors.Join(errs...))
	}
	var batch *importer.Batch
	batch, err = importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}
	for _, e := range batch.Employees {
		if err = domain.Validate(e); err != nil {
			return nil, err
		}
	}

	result = &contract.ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEmployees := repository.NewSQLiteEmployeeRepo(tx)
		txTherapies := repository.NewSQLiteTherapyRepo(tx)
		txPerformance := repository.NewSQLitePerformanceRepo(tx)

		for _, e := range batch.Employees {
			if err := txEmployees.Create(ctx, e); err != nil {
				return fmt.Errorf("creating employee %q: %w", e.Name, err)
			}
			result.Employees++
		}

		existing, err := txTherapies.List(ctx)
		if err != nil {
			return err
		}
		byName := make(map[string]*domain.Therapy, len(existing))
		for _, t := range existing {
			byName[t.Name] = t
		}
		for _, t := range batch.Therapies {
			if cur, ok := byName[t.Name]; ok {
				t.ID = cur.ID
				if err := txTherapies.Update(ctx, t); err != nil {
					return fmt.Errorf("updating therapy %q: %w", t.Name, err)
				}
				result.TherapiesUpdated++
				continue
			}
			if err := txTherapies.Create(ctx, t); err != nil {
				return fmt.Errorf("creating therapy %q: %w", t.Name, err)
			}
			result.TherapiesAdded++
		}

		for i, p := range batch.Performance {
			if ref := batch.EmployeeRefs[i]; ref >= 0 {
				p.EmployeeID = batch.Employees[ref].ID
			} else if _, err := txEmployees.GetByID(ctx, p.EmployeeID); err != nil {
				return fmt.Errorf("performance on %s: %w", p.Date, err)
			}
			if err := prepare(p); err != nil {
				return err
			}
			if err := txPerformance.Create(ctx, p); err != nil {
				return fmt.Errorf("creating performance on %s: %w", p.Date, err)
			}
			result.Performance++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.fields["employees_added"] = result.Employees
	uc.fields["performance_added"] = result.Performance
	return result, nil
}
