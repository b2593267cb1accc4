package domain

import "strings"

type Employee struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required"`
	JoinDate    string  `json:"join_date" validate:"required,datetime=2006-01-02"`
	MonthlyRate float64 `json:"monthly_rate" validate:"gte=0"`
	AvgHours    float64 `json:"avg_hours" validate:"gte=0,lte=24"`
}

// Normalize trims surrounding whitespace from the free-text fields.
func (e *Employee) Normalize() {
	e.Name = strings.TrimSpace(e.Name)
	e.JoinDate = strings.TrimSpace(e.JoinDate)
}
