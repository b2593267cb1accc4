package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
)

// Batch holds the domain objects of one import, ready for persistence.
// Performance records whose owner is a new employee carry EmployeeID 0
// until the employee is stored; EmployeeRefs maps them to that employee.
type Batch struct {
	Employees   []*domain.Employee
	Therapies   []*domain.Therapy
	Performance []*domain.PerformanceRecord

	// EmployeeRefs[i] is the index into Employees that Performance[i]
	// belongs to, or -1 when the record names an existing employee.
	EmployeeRefs []int
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*Batch, error) {
	batch := &Batch{
		Employees:    make([]*domain.Employee, 0, len(schema.Employees)),
		Therapies:    make([]*domain.Therapy, 0, len(schema.Therapies)),
		Performance:  make([]*domain.PerformanceRecord, 0, len(schema.Performance)),
		EmployeeRefs: make([]int, 0, len(schema.Performance)),
	}

	refIndex := make(map[string]int, len(schema.Employees))
	for i, e := range schema.Employees {
		refIndex[e.Ref] = i
		batch.Employees = append(batch.Employees, &domain.Employee{
			Name:        strings.TrimSpace(e.Name),
			JoinDate:    e.JoinDate,
			MonthlyRate: e.MonthlyRate,
			AvgHours:    domain.ValueOr(e.AvgHours, 0),
		})
	}

	for _, t := range schema.Therapies {
		batch.Therapies = append(batch.Therapies, &domain.Therapy{
			Name:   strings.TrimSpace(t.Name),
			Cost:   t.Cost,
			Income: t.Income,
		})
	}

	for _, p := range schema.Performance {
		ref := -1
		if p.EmployeeRef != "" {
			idx, ok := refIndex[p.EmployeeRef]
			if !ok {
				return nil, fmt.Errorf("employee_ref %q not found for day %s", p.EmployeeRef, p.Date)
			}
			ref = idx
		}

		status := domain.StatusPresent
		if p.Status != "" {
			st, err := domain.ParseStatus(p.Status)
			if err != nil {
				return nil, err
			}
			status = st
		}

		rec := &domain.PerformanceRecord{
			EmployeeID:  p.EmployeeID,
			Date:        p.Date,
			HoursWorked: p.HoursWorked,
			Status:      status,
			Income:      p.Income,
		}
		for key, n := range p.Counts {
			rec.SetCount(domain.Modality(key), n)
		}

		batch.Performance = append(batch.Performance, rec)
		batch.EmployeeRefs = append(batch.EmployeeRefs, ref)
	}

	return batch, nil
}
