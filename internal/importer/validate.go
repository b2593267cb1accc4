package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.Empty() {
		return []error{fmt.Errorf("import file contains no employees, therapies or performance")}
	}

	refs := make(map[string]bool)
	errs = append(errs, validateEmployees(schema.Employees, refs)...)
	errs = append(errs, validateTherapies(schema.Therapies)...)
	errs = append(errs, validatePerformance(schema.Performance, refs)...)

	return errs
}

func validateEmployees(employees []EmployeeImport, refs map[string]bool) []error {
	var errs []error

	for i, e := range employees {
		prefix := fmt.Sprintf("employees[%d]", i)

		if e.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[e.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, e.Ref))
		} else {
			refs[e.Ref] = true
		}

		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if e.JoinDate == "" {
			errs = append(errs, fmt.Errorf("%s.join_date is required", prefix))
		} else {
			errs = append(errs, validateDate(prefix+".join_date", e.JoinDate)...)
		}
		if e.MonthlyRate < 0 {
			errs = append(errs, fmt.Errorf("%s.monthly_rate must not be negative", prefix))
		}
		if e.AvgHours != nil && (*e.AvgHours < 0 || *e.AvgHours > 24) {
			errs = append(errs, fmt.Errorf("%s.avg_hours must be between 0 and 24", prefix))
		}
	}

	return errs
}

func validateTherapies(therapies []TherapyImport) []error {
	var errs []error
	names := make(map[string]bool)

	for i, t := range therapies {
		prefix := fmt.Sprintf("therapies[%d]", i)

		name := strings.TrimSpace(t.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("%s.therapy_name is required", prefix))
		} else if names[name] {
			errs = append(errs, fmt.Errorf("%s.therapy_name: duplicate name %q", prefix, name))
		} else {
			names[name] = true
		}

		if t.Cost < 0 {
			errs = append(errs, fmt.Errorf("%s.cost must not be negative", prefix))
		}
		if t.Income < 0 {
			errs = append(errs, fmt.Errorf("%s.income must not be negative", prefix))
		}
	}

	return errs
}

func validatePerformance(entries []PerformanceImport, refs map[string]bool) []error {
	var errs []error
	days := make(map[string]bool)

	for i, p := range entries {
		prefix := fmt.Sprintf("performance[%d]", i)

		var owner string
		switch {
		case p.EmployeeRef != "" && p.EmployeeID != 0:
			errs = append(errs, fmt.Errorf("%s: set employee_ref or employee_id, not both", prefix))
		case p.EmployeeRef != "":
			if !refs[p.EmployeeRef] {
				errs = append(errs, fmt.Errorf("%s.employee_ref: ref %q not found in employees", prefix, p.EmployeeRef))
			}
			owner = "ref:" + p.EmployeeRef
		case p.EmployeeID > 0:
			owner = fmt.Sprintf("id:%d", p.EmployeeID)
		case p.EmployeeID < 0:
			errs = append(errs, fmt.Errorf("%s.employee_id must be positive", prefix))
		default:
			errs = append(errs, fmt.Errorf("%s: employee_ref or employee_id is required", prefix))
		}

		if p.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else {
			errs = append(errs, validateDate(prefix+".date", p.Date)...)
		}

		if owner != "" && p.Date != "" {
			key := owner + "@" + p.Date
			if days[key] {
				errs = append(errs, fmt.Errorf("%s: duplicate day %s for the same employee", prefix, p.Date))
			}
			days[key] = true
		}

		if p.HoursWorked < 0 || p.HoursWorked > 24 {
			errs = append(errs, fmt.Errorf("%s.hours_worked must be between 0 and 24", prefix))
		}
		if p.Income < 0 {
			errs = append(errs, fmt.Errorf("%s.income must not be negative", prefix))
		}
		if p.Status != "" {
			if _, err := domain.ParseStatus(p.Status); err != nil {
				errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, p.Status))
			}
		}

		for key, n := range p.Counts {
			if !knownModality(key) {
				errs = append(errs, fmt.Errorf("%s.counts: unknown modality %q", prefix, key))
			} else if n < 0 {
				errs = append(errs, fmt.Errorf("%s.counts.%s must not be negative", prefix, key))
			}
		}
	}

	return errs
}

func knownModality(key string) bool {
	for _, m := range domain.Modalities {
		if string(m) == key {
			return true
		}
	}
	return false
}

func validateDate(field, s string) []error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, s)}
	}
	return nil
}
