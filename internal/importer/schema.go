package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure of a practice data file.
// Employees are declared with a file-local ref that performance entries
// point at; entries may instead name an employee already in the database.
type ImportSchema struct {
	Employees   []EmployeeImport    `json:"employees,omitempty"`
	Therapies   []TherapyImport     `json:"therapies,omitempty"`
	Performance []PerformanceImport `json:"performance,omitempty"`
}

// EmployeeImport defines a new employee in the import file.
type EmployeeImport struct {
	Ref         string   `json:"ref"`
	Name        string   `json:"name"`
	JoinDate    string   `json:"join_date"`
	MonthlyRate float64  `json:"monthly_rate"`
	AvgHours    *float64 `json:"avg_hours,omitempty"`
}

// TherapyImport defines a catalog entry. An existing therapy with the same
// name is updated in place.
type TherapyImport struct {
	Name   string  `json:"therapy_name"`
	Cost   float64 `json:"cost"`
	Income float64 `json:"income"`
}

// PerformanceImport defines one day of work for an employee. Exactly one of
// EmployeeRef and EmployeeID must be set. Counts is keyed by modality
// ("kg", "mld_45", ...).
type PerformanceImport struct {
	EmployeeRef string         `json:"employee_ref,omitempty"`
	EmployeeID  int64          `json:"employee_id,omitempty"`
	Date        string         `json:"date"`
	HoursWorked float64        `json:"hours_worked"`
	Status      string         `json:"status,omitempty"`
	Income      float64        `json:"income"`
	Counts      map[string]int `json:"counts,omitempty"`
}

// Empty reports whether the file carries nothing to import.
func (s *ImportSchema) Empty() bool {
	return len(s.Employees) == 0 && len(s.Therapies) == 0 && len(s.Performance) == 0
}

// ParseImportSchema decodes an import document. Unknown fields are rejected.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

// LoadImportSchema reads and parses a practice data JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}
