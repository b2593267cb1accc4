package editor

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
)

// PerformanceBackend is the slice of the backend the daily editor uses.
type PerformanceBackend interface {
	AllPerformance(ctx context.Context, employeeID int64) ([]*domain.PerformanceRecord, error)
	AddPerformance(ctx context.Context, p contract.PerformanceParams) error
	UpdatePerformance(ctx context.Context, p contract.UpdatePerformanceParams) error
}

const (
	FillHoursIncomeMessage = "Please fill in hours and income"
	SavedMessage           = "Saved successfully!"
)

// Field is one numeric input of the daily form, in traversal order: hours,
// income, then one counter per modality.
type Field int

const (
	FieldHours Field = iota
	FieldIncome
	firstModalityField
)

// FieldCount is the number of numeric fields.
var FieldCount = int(firstModalityField) + len(domain.Modalities)

// ModalityField returns the counter field of m.
func ModalityField(m domain.Modality) Field {
	for i, mod := range domain.Modalities {
		if mod == m {
			return firstModalityField + Field(i)
		}
	}
	return -1
}

// Modality returns the modality a counter field holds.
func (f Field) Modality() (domain.Modality, bool) {
	i := int(f - firstModalityField)
	if i < 0 || i >= len(domain.Modalities) {
		return "", false
	}
	return domain.Modalities[i], true
}

func (f Field) Label() string {
	switch f {
	case FieldHours:
		return "Hours"
	case FieldIncome:
		return "Income (€)"
	}
	if m, ok := f.Modality(); ok {
		return m.Label()
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Form is the text of the daily form.
type Form struct {
	Status domain.Status
	values []string
}

func blankForm() Form {
	f := Form{Status: domain.StatusPresent, values: make([]string, FieldCount)}
	for i := range f.values {
		f.values[i] = "0"
	}
	return f
}

func formFromRecord(r *domain.PerformanceRecord) Form {
	f := blankForm()
	f.Status = r.Status
	f.values[FieldHours] = formatDecimal(r.HoursWorked)
	f.values[FieldIncome] = formatDecimal(r.Income)
	for i, n := range r.Values() {
		f.values[int(firstModalityField)+i] = strconv.Itoa(n)
	}
	return f
}

func (f Form) Value(fd Field) string {
	if int(fd) < 0 || int(fd) >= len(f.values) {
		return ""
	}
	return f.values[fd]
}

func (f Form) clone() Form {
	f.values = append([]string(nil), f.values...)
	return f
}

// DailyEditor edits one employee's performance record per calendar day.
// Records are loaded once; selecting a date reads from memory. The lock is
// never held across a backend call.
type DailyEditor struct {
	mu         sync.Mutex
	backend    PerformanceBackend
	employeeID int64
	records    []*domain.PerformanceRecord
	date       time.Time
	boundID    int64
	form       Form
	focus      Field
	focused    bool
	message    string
	err        string
}

// NewDailyEditor starts on day with an empty form.
func NewDailyEditor(backend PerformanceBackend, employeeID int64, day time.Time) *DailyEditor {
	return &DailyEditor{
		backend:    backend,
		employeeID: employeeID,
		date:       truncateDay(day),
		form:       blankForm(),
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func (e *DailyEditor) EmployeeID() int64 { return e.employeeID }

func (e *DailyEditor) Date() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.date
}

// BoundID returns the id of the record the form edits, 0 for a new record.
func (e *DailyEditor) BoundID() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.boundID
}

func (e *DailyEditor) Form() Form {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form.clone()
}

func (e *DailyEditor) Records() []*domain.PerformanceRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*domain.PerformanceRecord(nil), e.records...)
}

// Message returns the last informational message, such as a save result or
// a validation prompt.
func (e *DailyEditor) Message() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.message
}

func (e *DailyEditor) Err() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Load fetches every record of the employee and re-selects the current date.
func (e *DailyEditor) Load(ctx context.Context) error {
	list, err := e.backend.AllPerformance(ctx, e.employeeID)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.applyRecords(list, err)
}

func (e *DailyEditor) applyRecords(list []*domain.PerformanceRecord, err error) error {
	if err != nil {
		e.err = "Failed to load performance: " + err.Error()
		return err
	}
	e.records = list
	e.err = ""
	e.selectDate(e.date)
	return nil
}

// SelectDate binds the form to the record of day, or resets it when the day
// has no record.
func (e *DailyEditor) SelectDate(day time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selectDate(day)
}

func (e *DailyEditor) selectDate(day time.Time) {
	e.date = truncateDay(day)
	e.focused = false
	if r := e.recordFor(e.date); r != nil {
		e.boundID = r.ID
		e.form = formFromRecord(r)
		return
	}
	e.boundID = 0
	e.form = blankForm()
}

// ShiftDate moves the selection by days.
func (e *DailyEditor) ShiftDate(days int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selectDate(e.date.AddDate(0, 0, days))
}

func (e *DailyEditor) recordFor(day time.Time) *domain.PerformanceRecord {
	key := domain.FormatDate(day)
	for _, r := range e.records {
		if r.Date == key {
			return r
		}
	}
	return nil
}

// StatusClass returns the calendar decoration for day.
func (e *DailyEditor) StatusClass(day time.Time) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.recordFor(day)
	if r == nil {
		return ""
	}
	return r.Status.CalendarClass()
}

func (e *DailyEditor) SetValue(f Field, v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if int(f) >= 0 && int(f) < len(e.form.values) {
		e.form.values[f] = v
	}
}

func (e *DailyEditor) SetStatus(s domain.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.form.Status = s
}

// CycleStatus steps the status through domain.Statuses.
func (e *DailyEditor) CycleStatus(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx := 0
	for i, s := range domain.Statuses {
		if s == e.form.Status {
			idx = i
		}
	}
	n := len(domain.Statuses)
	e.form.Status = domain.Statuses[((idx+delta)%n+n)%n]
}

// Focused returns the focused field and whether any field has focus.
func (e *DailyEditor) Focused() (Field, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.focus, e.focused
}

// Focus moves focus to f, blurring the previous field. A "0" placeholder is
// cleared so typing replaces it.
func (e *DailyEditor) Focus(f Field) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.focusField(f)
}

func (e *DailyEditor) focusField(f Field) {
	if int(f) < 0 || int(f) >= FieldCount {
		return
	}
	e.blur()
	e.focus = f
	e.focused = true
	if e.form.values[f] == "0" {
		e.form.values[f] = ""
	}
}

// Blur drops focus. A field left empty reverts to "0".
func (e *DailyEditor) Blur() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.blur()
}

func (e *DailyEditor) blur() {
	if !e.focused {
		return
	}
	if e.form.values[e.focus] == "" {
		e.form.values[e.focus] = "0"
	}
	e.focused = false
}

// Next moves focus to the following field. It reports true, leaving focus in
// place, when the last field already has focus; Enter then saves.
func (e *DailyEditor) Next() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.focused {
		e.focusField(FieldHours)
		return false
	}
	if int(e.focus) == FieldCount-1 {
		return true
	}
	e.focusField(e.focus + 1)
	return false
}

// Prev moves focus to the preceding field and stays on the first.
func (e *DailyEditor) Prev() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.focused {
		e.focusField(FieldHours)
		return
	}
	if e.focus > FieldHours {
		e.focusField(e.focus - 1)
	}
}

// Save stores the form for the selected date: a new record when none is
// bound, otherwise an update of the bound one. It then reloads all records.
// The focused field is blurred first, so a cleared placeholder counts as 0.
func (e *DailyEditor) Save(ctx context.Context) error {
	e.mu.Lock()
	e.blur()
	if blank(e.form.values[FieldHours], e.form.values[FieldIncome]) {
		e.message = FillHoursIncomeMessage
		e.mu.Unlock()
		return ErrIncomplete
	}
	p, err := e.params()
	boundID := e.boundID
	e.mu.Unlock()

	if err == nil {
		if boundID == 0 {
			err = e.backend.AddPerformance(ctx, p)
		} else {
			err = e.backend.UpdatePerformance(ctx, contract.UpdatePerformanceParams{ID: boundID, PerformanceParams: p})
		}
	}
	if err != nil {
		e.mu.Lock()
		e.message = ""
		e.err = "Save failed: " + err.Error()
		e.mu.Unlock()
		return err
	}

	list, err := e.backend.AllPerformance(ctx, e.employeeID)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.applyRecords(list, err); err != nil {
		return err
	}
	e.message = SavedMessage
	return nil
}

func (e *DailyEditor) params() (contract.PerformanceParams, error) {
	hours, err := parseDecimal("hours", e.form.values[FieldHours])
	if err != nil {
		return contract.PerformanceParams{}, err
	}
	income, err := parseDecimal("income", e.form.values[FieldIncome])
	if err != nil {
		return contract.PerformanceParams{}, err
	}
	r := &domain.PerformanceRecord{
		EmployeeID:  e.employeeID,
		Date:        domain.FormatDate(e.date),
		HoursWorked: hours,
		Status:      e.form.Status,
		Income:      income,
	}
	for i, m := range domain.Modalities {
		r.SetCount(m, parseCount(e.form.values[int(firstModalityField)+i]))
	}
	return contract.NewPerformanceParams(r), nil
}
