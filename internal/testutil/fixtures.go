package testutil

import "github.com/alexanderramin/praxis/internal/domain"

// Employee options
type EmployeeOption func(*domain.Employee)

func WithJoinDate(d string) EmployeeOption {
	return func(e *domain.Employee) {
		e.JoinDate = d
	}
}

func WithMonthlyRate(rate float64) EmployeeOption {
	return func(e *domain.Employee) {
		e.MonthlyRate = rate
	}
}

func WithAvgHours(h float64) EmployeeOption {
	return func(e *domain.Employee) {
		e.AvgHours = h
	}
}

func NewTestEmployee(name string, opts ...EmployeeOption) *domain.Employee {
	e := &domain.Employee{
		Name:        name,
		JoinDate:    "2024-01-15",
		MonthlyRate: 3000,
		AvgHours:    8,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Therapy options
type TherapyOption func(*domain.Therapy)

func WithPrices(cost, income float64) TherapyOption {
	return func(t *domain.Therapy) {
		t.Cost = cost
		t.Income = income
	}
}

func NewTestTherapy(name string, opts ...TherapyOption) *domain.Therapy {
	t := &domain.Therapy{
		Name:   name,
		Cost:   domain.DefaultTherapyCost,
		Income: domain.DefaultTherapyIncome,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Performance options
type PerformanceOption func(*domain.PerformanceRecord)

func WithHours(h float64) PerformanceOption {
	return func(p *domain.PerformanceRecord) {
		p.HoursWorked = h
	}
}

func WithStatus(s domain.Status) PerformanceOption {
	return func(p *domain.PerformanceRecord) {
		p.Status = s
	}
}

func WithIncome(income float64) PerformanceOption {
	return func(p *domain.PerformanceRecord) {
		p.Income = income
	}
}

func WithCount(m domain.Modality, n int) PerformanceOption {
	return func(p *domain.PerformanceRecord) {
		p.SetCount(m, n)
	}
}

func NewTestPerformance(employeeID int64, date string, opts ...PerformanceOption) *domain.PerformanceRecord {
	p := &domain.PerformanceRecord{
		EmployeeID:  employeeID,
		Date:        date,
		HoursWorked: 8,
		Status:      domain.StatusPresent,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
