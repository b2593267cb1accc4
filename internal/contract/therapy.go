package contract

import "github.com/alexanderramin/praxis/internal/domain"

type TherapyParams struct {
	TherapyName string  `json:"therapyName"`
	Cost        float64 `json:"cost"`
	Income      float64 `json:"income"`
}

func (p TherapyParams) Therapy() *domain.Therapy {
	return &domain.Therapy{Name: p.TherapyName, Cost: p.Cost, Income: p.Income}
}

type UpdateTherapyParams struct {
	ID int64 `json:"id"`
	TherapyParams
}

func (p UpdateTherapyParams) Therapy() *domain.Therapy {
	t := p.TherapyParams.Therapy()
	t.ID = p.ID
	return t
}

func NewUpdateTherapyParams(t *domain.Therapy) UpdateTherapyParams {
	return UpdateTherapyParams{
		ID:            t.ID,
		TherapyParams: TherapyParams{TherapyName: t.Name, Cost: t.Cost, Income: t.Income},
	}
}
