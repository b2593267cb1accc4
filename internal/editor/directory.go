package editor

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
)

// EmployeeBackend is the slice of the backend the directory uses.
type EmployeeBackend interface {
	Employees(ctx context.Context) ([]*domain.Employee, error)
	AddEmployee(ctx context.Context, p contract.AddEmployeeParams) error
	UpdateEmployee(ctx context.Context, p contract.UpdateEmployeeParams) error
	DeleteEmployee(ctx context.Context, id int64) error
}

// EmployeeDraft is the text of an employee form as typed.
type EmployeeDraft struct {
	Name        string
	JoinDate    string
	MonthlyRate string
	AvgHours    string
}

// DraftFromEmployee renders e into form text.
func DraftFromEmployee(e *domain.Employee) EmployeeDraft {
	return EmployeeDraft{
		Name:        e.Name,
		JoinDate:    e.JoinDate,
		MonthlyRate: formatDecimal(e.MonthlyRate),
		AvgHours:    formatDecimal(e.AvgHours),
	}
}

// Complete reports whether the required fields are filled. Average hours
// are optional.
func (d EmployeeDraft) Complete() bool {
	return !blank(d.Name, d.JoinDate, d.MonthlyRate)
}

func (d EmployeeDraft) params() (contract.AddEmployeeParams, error) {
	rate, err := parseDecimal("monthly rate", d.MonthlyRate)
	if err != nil {
		return contract.AddEmployeeParams{}, err
	}
	p := contract.AddEmployeeParams{
		Name:        strings.TrimSpace(d.Name),
		JoinDate:    strings.TrimSpace(d.JoinDate),
		MonthlyRate: rate,
	}
	if strings.TrimSpace(d.AvgHours) != "" {
		avg, err := parseDecimal("average hours", d.AvgHours)
		if err != nil {
			return contract.AddEmployeeParams{}, err
		}
		p.AvgHours = &avg
	}
	return p, nil
}

var errNotEditing = errors.New("no employee is being edited")

// Directory is the employee list with create, inline edit and delete.
type Directory struct {
	mu        sync.Mutex
	backend   EmployeeBackend
	employees []*domain.Employee
	editingID int64
	staged    EmployeeDraft
	err       string
}

func NewDirectory(backend EmployeeBackend) *Directory {
	return &Directory{backend: backend}
}

// Employees returns the last loaded list.
func (d *Directory) Employees() []*domain.Employee {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*domain.Employee(nil), d.employees...)
}

// Err returns the message of the last failure, or "".
func (d *Directory) Err() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Editing returns the id of the employee under inline edit, 0 if none.
func (d *Directory) Editing() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.editingID
}

// Staged returns the pending inline edit.
func (d *Directory) Staged() EmployeeDraft {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.staged
}

func (d *Directory) Load(ctx context.Context) error {
	list, err := d.backend.Employees(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.applyList(list, err)
}

func (d *Directory) applyList(list []*domain.Employee, err error) error {
	if err != nil {
		d.err = "Failed to load employees: " + err.Error()
		return err
	}
	d.employees = list
	d.err = ""
	return nil
}

func (d *Directory) fail(prefix string, err error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = prefix + err.Error()
	return err
}

// Create adds the employee described by draft and reloads the list.
func (d *Directory) Create(ctx context.Context, draft EmployeeDraft) error {
	if !draft.Complete() {
		d.mu.Lock()
		d.err = FillAllFieldsMessage
		d.mu.Unlock()
		return ErrIncomplete
	}
	p, err := draft.params()
	if err == nil {
		err = d.backend.AddEmployee(ctx, p)
	}
	if err != nil {
		return d.fail("Failed to add employee: ", err)
	}
	return d.Load(ctx)
}

// BeginEdit starts an inline edit of the listed employee with the given id.
// It reports false when no such employee is loaded.
func (d *Directory) BeginEdit(id int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range d.employees {
		if e.ID == id {
			d.editingID = id
			d.staged = DraftFromEmployee(e)
			return true
		}
	}
	return false
}

// Stage replaces the pending edit. It is ignored when nothing is being edited.
func (d *Directory) Stage(draft EmployeeDraft) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.editingID != 0 {
		d.staged = draft
	}
}

// Commit sends the staged edit, leaves edit mode and reloads. On failure the
// edit stays open.
func (d *Directory) Commit(ctx context.Context) error {
	d.mu.Lock()
	id, staged := d.editingID, d.staged
	var loaded *domain.Employee
	for _, e := range d.employees {
		if e.ID == id {
			loaded = e
		}
	}
	d.mu.Unlock()

	if id == 0 {
		return errNotEditing
	}
	p, err := staged.params()
	if err == nil && p.AvgHours == nil && loaded != nil {
		// A blank field keeps the stored average.
		avg := loaded.AvgHours
		p.AvgHours = &avg
	}
	if err == nil {
		err = d.backend.UpdateEmployee(ctx, contract.UpdateEmployeeParams{ID: id, AddEmployeeParams: p})
	}
	if err != nil {
		return d.fail("Failed to update employee: ", err)
	}
	d.endEdit(id)
	return d.Load(ctx)
}

func (d *Directory) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.editingID = 0
	d.staged = EmployeeDraft{}
}

// endEdit leaves edit mode if id is still the employee under edit.
func (d *Directory) endEdit(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.editingID == id {
		d.editingID = 0
		d.staged = EmployeeDraft{}
	}
}

// Delete removes the employee and reloads.
func (d *Directory) Delete(ctx context.Context, id int64) error {
	if err := d.backend.DeleteEmployee(ctx, id); err != nil {
		return d.fail("Failed to delete employee: ", err)
	}
	d.endEdit(id)
	return d.Load(ctx)
}
