package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/repository"
)

type therapyService struct {
	therapies repository.TherapyRepo
	observer  UseCaseObserver
}

func NewTherapyService(therapies repository.TherapyRepo, observers ...UseCaseObserver) TherapyService {
	return &therapyService{therapies: therapies, observer: combineObservers(observers)}
}

func (s *therapyService) Create(ctx context.Context, t *domain.Therapy) (err error) {
	uc := startUseCase(s.observer, "add-therapy", map[string]any{"therapy": t.Name})
	defer func() { uc.finish(ctx, err) }()

	t.Normalize()
	if err = domain.Validate(t); err != nil {
		return err
	}
	return s.therapies.Create(ctx, t)
}

func (s *therapyService) GetByID(ctx context.Context, id int64) (*domain.Therapy, error) {
	return s.therapies.GetByID(ctx, id)
}

func (s *therapyService) List(ctx context.Context) ([]*domain.Therapy, error) {
	return s.therapies.List(ctx)
}

func (s *therapyService) Update(ctx context.Context, t *domain.Therapy) (err error) {
	uc := startUseCase(s.observer, "update-therapy", map[string]any{"therapy_id": t.ID})
	defer func() { uc.finish(ctx, err) }()

	if t.ID <= 0 {
		return fmt.Errorf("%w: therapy id is required", domain.ErrInvalid)
	}
	t.Normalize()
	if err = domain.Validate(t); err != nil {
		return err
	}
	return s.therapies.Update(ctx, t)
}
