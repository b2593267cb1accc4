package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(f float64) *float64 { return &f }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Employees: []EmployeeImport{
			{Ref: "anna", Name: "Anna Berg", JoinDate: "2024-01-15", MonthlyRate: 3000},
		},
		Performance: []PerformanceImport{
			{EmployeeRef: "anna", Date: "2024-03-01", HoursWorked: 8, Income: 240},
		},
	}
}

func hasError(errs []error, want string) bool {
	for _, e := range errs {
		if strings.Contains(e.Error(), want) {
			return true
		}
	}
	return false
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	errs := ValidateImportSchema(validMinimalSchema())
	assert.Empty(t, errs)
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	schema := &ImportSchema{
		Employees: []EmployeeImport{
			{Ref: "anna", Name: "Anna Berg", JoinDate: "2024-01-15", MonthlyRate: 3000, AvgHours: ptrFloat(7.5)},
			{Ref: "ben", Name: "Ben Kuhn", JoinDate: "2023-09-01", MonthlyRate: 2800},
		},
		Therapies: []TherapyImport{
			{Name: "kg", Cost: 20, Income: 45},
			{Name: "massage", Cost: 15, Income: 40},
		},
		Performance: []PerformanceImport{
			{EmployeeRef: "anna", Date: "2024-03-01", HoursWorked: 8, Income: 240, Counts: map[string]int{"kg": 4, "mld_45": 1}},
			{EmployeeRef: "anna", Date: "2024-03-04", Status: "Urlaub"},
			{EmployeeRef: "ben", Date: "2024-03-01", HoursWorked: 6, Status: "sick"},
			{EmployeeID: 7, Date: "2024-03-01", HoursWorked: 4, Income: 90},
		},
	}
	errs := ValidateImportSchema(schema)
	assert.Empty(t, errs)
}

func TestValidateImportSchema_EmptyFile(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "contains no employees")
}

func TestValidateImportSchema_MissingEmployeeFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *ImportSchema)
		wantMsg string
	}{
		{"missing ref", func(s *ImportSchema) { s.Employees[0].Ref = ""; s.Performance = nil }, "employees[0].ref is required"},
		{"missing name", func(s *ImportSchema) { s.Employees[0].Name = "  " }, "employees[0].name is required"},
		{"missing join_date", func(s *ImportSchema) { s.Employees[0].JoinDate = "" }, "employees[0].join_date is required"},
		{"negative rate", func(s *ImportSchema) { s.Employees[0].MonthlyRate = -1 }, "monthly_rate must not be negative"},
		{"avg hours above a day", func(s *ImportSchema) { s.Employees[0].AvgHours = ptrFloat(25) }, "avg_hours must be between 0 and 24"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := validMinimalSchema()
			tc.mutate(s)
			errs := ValidateImportSchema(s)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tc.wantMsg)
		})
	}
}

func TestValidateImportSchema_InvalidDates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *ImportSchema)
	}{
		{"bad join_date", func(s *ImportSchema) { s.Employees[0].JoinDate = "15.01.2024" }},
		{"bad performance date", func(s *ImportSchema) { s.Performance[0].Date = "2024-02-30" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := validMinimalSchema()
			tc.mutate(s)
			errs := ValidateImportSchema(s)
			assert.True(t, hasError(errs, "invalid date format"), "got %v", errs)
		})
	}
}

func TestValidateImportSchema_DuplicateEmployeeRef(t *testing.T) {
	s := validMinimalSchema()
	s.Employees = append(s.Employees, EmployeeImport{Ref: "anna", Name: "Dup", JoinDate: "2024-01-01"})
	errs := ValidateImportSchema(s)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), `employees[1].ref: duplicate ref "anna"`)
}

func TestValidateImportSchema_Therapies(t *testing.T) {
	s := validMinimalSchema()
	s.Therapies = []TherapyImport{
		{Name: "kg", Cost: 20, Income: 45},
		{Name: " kg ", Cost: 20, Income: 45},
		{Name: "", Cost: -1, Income: -2},
	}
	errs := ValidateImportSchema(s)
	assert.True(t, hasError(errs, `therapies[1].therapy_name: duplicate name "kg"`), "got %v", errs)
	assert.True(t, hasError(errs, "therapies[2].therapy_name is required"))
	assert.True(t, hasError(errs, "therapies[2].cost must not be negative"))
	assert.True(t, hasError(errs, "therapies[2].income must not be negative"))
}

func TestValidateImportSchema_PerformanceOwner(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *PerformanceImport)
		wantMsg string
	}{
		{"unknown ref", func(p *PerformanceImport) { p.EmployeeRef = "nobody" }, `ref "nobody" not found in employees`},
		{"no owner", func(p *PerformanceImport) { p.EmployeeRef = "" }, "employee_ref or employee_id is required"},
		{"both owners", func(p *PerformanceImport) { p.EmployeeID = 3 }, "not both"},
		{"negative id", func(p *PerformanceImport) { p.EmployeeRef = ""; p.EmployeeID = -3 }, "employee_id must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := validMinimalSchema()
			tc.mutate(&s.Performance[0])
			errs := ValidateImportSchema(s)
			assert.True(t, hasError(errs, tc.wantMsg), "expected %q, got %v", tc.wantMsg, errs)
		})
	}
}

func TestValidateImportSchema_DuplicateDay(t *testing.T) {
	s := validMinimalSchema()
	s.Performance = append(s.Performance,
		PerformanceImport{EmployeeRef: "anna", Date: "2024-03-01", HoursWorked: 4},
		PerformanceImport{EmployeeID: 9, Date: "2024-03-01"},
	)
	errs := ValidateImportSchema(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "performance[1]: duplicate day 2024-03-01")
}

func TestValidateImportSchema_PerformanceValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *PerformanceImport)
		wantMsg string
	}{
		{"hours above a day", func(p *PerformanceImport) { p.HoursWorked = 25 }, "hours_worked must be between 0 and 24"},
		{"negative income", func(p *PerformanceImport) { p.Income = -5 }, "income must not be negative"},
		{"unknown status", func(p *PerformanceImport) { p.Status = "Remote" }, `status: invalid value "Remote"`},
		{"unknown modality", func(p *PerformanceImport) { p.Counts = map[string]int{"yoga": 1} }, `unknown modality "yoga"`},
		{"modality label instead of key", func(p *PerformanceImport) { p.Counts = map[string]int{"MLD 45": 1} }, "unknown modality"},
		{"negative count", func(p *PerformanceImport) { p.Counts = map[string]int{"kg": -1} }, "counts.kg must not be negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := validMinimalSchema()
			tc.mutate(&s.Performance[0])
			errs := ValidateImportSchema(s)
			assert.True(t, hasError(errs, tc.wantMsg), "expected %q, got %v", tc.wantMsg, errs)
		})
	}
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	s := validMinimalSchema()
	s.Employees[0].Name = ""
	s.Employees[0].MonthlyRate = -1
	s.Performance[0].Income = -1
	errs := ValidateImportSchema(s)
	assert.Len(t, errs, 3)
}

func TestParseImportSchema(t *testing.T) {
	schema, err := ParseImportSchema([]byte(`{
		"employees": [{"ref": "anna", "name": "Anna", "join_date": "2024-01-15", "monthly_rate": 3000, "avg_hours": 7.5}],
		"therapies": [{"therapy_name": "kg", "cost": 20, "income": 45}],
		"performance": [{"employee_ref": "anna", "date": "2024-03-01", "hours_worked": 8, "income": 240, "counts": {"kg": 3}}]
	}`))
	require.NoError(t, err)
	require.Len(t, schema.Employees, 1)
	require.NotNil(t, schema.Employees[0].AvgHours)
	assert.Equal(t, 7.5, *schema.Employees[0].AvgHours)
	assert.Equal(t, "kg", schema.Therapies[0].Name)
	assert.Equal(t, 3, schema.Performance[0].Counts["kg"])

	_, err = ParseImportSchema([]byte(`{"employes": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")

	_, err = ParseImportSchema([]byte(`{`))
	assert.Error(t, err)
}
