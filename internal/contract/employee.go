package contract

import (
	"fmt"

	"github.com/alexanderramin/praxis/internal/domain"
)

// IDParams addresses a single row by id.
type IDParams struct {
	ID int64 `json:"id"`
}

type EmployeeRefParams struct {
	EmployeeID int64 `json:"employeeId"`
}

// AddEmployeeParams creates an employee. AvgHours is optional and defaults to 0.
type AddEmployeeParams struct {
	Name        string   `json:"name"`
	JoinDate    string   `json:"joinDate"`
	MonthlyRate float64  `json:"monthlyRate"`
	AvgHours    *float64 `json:"avgHours,omitempty"`
}

func (p AddEmployeeParams) Employee() *domain.Employee {
	return &domain.Employee{
		Name:        p.Name,
		JoinDate:    p.JoinDate,
		MonthlyRate: p.MonthlyRate,
		AvgHours:    domain.ValueOr(p.AvgHours, 0),
	}
}

type UpdateEmployeeParams struct {
	ID int64 `json:"id"`
	AddEmployeeParams
}

// Check rejects an update without avgHours, which would otherwise reset the
// stored value to 0.
func (p UpdateEmployeeParams) Check() error {
	if p.AvgHours == nil {
		return fmt.Errorf("%w: avgHours is required", domain.ErrInvalid)
	}
	return nil
}

func (p UpdateEmployeeParams) Employee() *domain.Employee {
	e := p.AddEmployeeParams.Employee()
	e.ID = p.ID
	return e
}

// NewUpdateEmployeeParams copies every field of e.
func NewUpdateEmployeeParams(e *domain.Employee) UpdateEmployeeParams {
	avg := e.AvgHours
	return UpdateEmployeeParams{
		ID: e.ID,
		AddEmployeeParams: AddEmployeeParams{
			Name:        e.Name,
			JoinDate:    e.JoinDate,
			MonthlyRate: e.MonthlyRate,
			AvgHours:    &avg,
		},
	}
}
