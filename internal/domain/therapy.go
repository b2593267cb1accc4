package domain

import "strings"

// Therapy is a billable service type with its cost and income per session.
type Therapy struct {
	ID     int64   `json:"id"`
	Name   string  `json:"therapy_name" validate:"required"`
	Cost   float64 `json:"cost" validate:"gte=0"`
	Income float64 `json:"income" validate:"gte=0"`
}

func (t *Therapy) Normalize() {
	t.Name = strings.TrimSpace(t.Name)
}

// DefaultTherapyCost and DefaultTherapyIncome seed a fresh catalog.
const (
	DefaultTherapyCost   = 50.0
	DefaultTherapyIncome = 100.0
)

// IncomeByModality maps each modality to the income of the catalog entry
// sharing its name. Modalities without a catalog entry are absent.
func IncomeByModality(therapies []*Therapy) map[Modality]float64 {
	prices := make(map[Modality]float64, len(therapies))
	for _, t := range therapies {
		prices[Modality(t.Name)] = t.Income
	}
	return prices
}
