package cli

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/editor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// employeeEditView manages employees: add, edit in place, delete, and open
// an employee's performance.
type employeeEditView struct {
	state  *SharedState
	dir    *editor.Directory
	cursor int
}

func newEmployeeEditView(state *SharedState) *employeeEditView {
	return &employeeEditView{state: state, dir: editor.NewDirectory(state.App.Client)}
}

func (v *employeeEditView) Init() tea.Cmd {
	return loadEmployeesCmd(v.state, v.dir)
}

func (v *employeeEditView) selected() *domain.Employee {
	emps := v.dir.Employees()
	if len(emps) == 0 {
		return nil
	}
	return emps[clampCursor(v.cursor, len(emps))]
}

func (v *employeeEditView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		return v, loadEmployeesCmd(v.state, v.dir)

	case employeesLoadedMsg:
		if msg.dir == v.dir {
			v.cursor = clampCursor(v.cursor, len(v.dir.Employees()))
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			v.cursor = clampCursor(v.cursor-1, len(v.dir.Employees()))
		case "down", "j":
			v.cursor = clampCursor(v.cursor+1, len(v.dir.Employees()))
		case "a":
			return v, pushView(v.addForm())
		case "e", "enter":
			if e := v.selected(); e != nil {
				return v, pushView(v.editForm(e))
			}
		case "c":
			v.dir.Cancel()
		case "x", "delete":
			if e := v.selected(); e != nil {
				return v, pushView(v.deleteForm(e))
			}
		case "p":
			if e := v.selected(); e != nil {
				return v, pushView(newPerformanceView(v.state, e.ID))
			}
		}
	}
	return v, nil
}

func (v *employeeEditView) addForm() View {
	draft := &editor.EmployeeDraft{JoinDate: domain.FormatDate(v.state.App.now())}
	return newWizardView("Add Employee", newEmployeeForm(draft), func() tea.Cmd {
		return func() tea.Msg { return applyEmployeeCreate(v.state.ctx(), v.dir, *draft) }
	}, nil)
}

// editForm opens the inline edit of e. A failed edit of the same employee
// is still staged and reopens with the values typed last.
func (v *employeeEditView) editForm(e *domain.Employee) View {
	if v.dir.Editing() != e.ID {
		v.dir.BeginEdit(e.ID)
	}
	draft := v.dir.Staged()
	return newWizardView("Edit "+e.Name, newEmployeeForm(&draft), func() tea.Cmd {
		return func() tea.Msg { return applyEmployeeEdit(v.state.ctx(), v.dir, draft) }
	}, v.dir.Cancel)
}

func (v *employeeEditView) deleteForm(e *domain.Employee) View {
	var confirmed bool
	form := newConfirmForm("Delete "+e.Name+" and all of their performance records?", &confirmed)
	return newWizardView("Delete Employee", form, func() tea.Cmd {
		return func() tea.Msg { return applyEmployeeDelete(v.state.ctx(), v.dir, e, confirmed) }
	}, nil)
}

func (v *employeeEditView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Manage Employees"))
	b.WriteString("\n\n")

	if msg := v.dir.Err(); msg != "" {
		b.WriteString(formatter.ErrorLine(msg) + "\n\n")
	}

	emps := v.dir.Employees()
	if len(emps) == 0 {
		b.WriteString(formatter.Dim("No employees yet. Press a to add one.") + "\n")
		return b.String()
	}

	cursor := clampCursor(v.cursor, len(emps))
	editing := v.dir.Editing()
	rows := make([][]string, 0, len(emps))
	for i, e := range emps {
		marker := " "
		if i == cursor {
			marker = formatter.StyleHeader.Render("▸")
		}
		name := e.Name
		if e.ID == editing {
			name += " " + formatter.StyleYellow.Render("(editing)")
		}
		rows = append(rows, []string{
			marker,
			strconv.FormatInt(e.ID, 10),
			name,
			e.JoinDate,
			formatter.FormatMoney(e.MonthlyRate, v.state.App.currency()),
			formatter.FormatHours(e.AvgHours),
		})
	}
	b.WriteString(formatter.Table{
		Headers: []string{"", "ID", "Name", "Joined", "Monthly rate", "Avg hours"},
		Rows:    rows,
		Align:   []formatter.Align{formatter.AlignLeft, formatter.AlignRight, formatter.AlignLeft, formatter.AlignLeft, formatter.AlignRight, formatter.AlignRight},
	}.Render())
	return b.String()
}

func (v *employeeEditView) ID() ViewID    { return ViewEmployeeEdit }
func (v *employeeEditView) Title() string { return "Employees" }
func (v *employeeEditView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		binding("a", "add"),
		binding("e", "edit"),
		binding("x", "delete"),
		binding("p", "performance"),
	}
	if v.dir.Editing() != 0 {
		hints = append(hints, binding("c", "cancel edit"))
	}
	return hints
}
