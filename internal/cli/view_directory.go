package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/editor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// employeesLoadedMsg signals that a Directory finished loading.
type employeesLoadedMsg struct {
	dir *editor.Directory
}

func loadEmployeesCmd(state *SharedState, dir *editor.Directory) tea.Cmd {
	return func() tea.Msg {
		_ = dir.Load(state.ctx())
		return employeesLoadedMsg{dir: dir}
	}
}

// clampCursor keeps a list cursor inside [0, n).
func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// directoryView is the home screen: the employee names, a way into each
// employee's performance, and links to the management screens.
type directoryView struct {
	state  *SharedState
	dir    *editor.Directory
	cursor int
}

func newDirectoryView(state *SharedState) *directoryView {
	return &directoryView{state: state, dir: editor.NewDirectory(state.App.Client)}
}

func (v *directoryView) Init() tea.Cmd {
	return loadEmployeesCmd(v.state, v.dir)
}

func (v *directoryView) selected() *domain.Employee {
	emps := v.dir.Employees()
	if len(emps) == 0 {
		return nil
	}
	return emps[clampCursor(v.cursor, len(emps))]
}

func (v *directoryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		case "enter", "p":
			if e := v.selected(); e != nil {
				return v, pushView(newPerformanceView(v.state, e.ID))
			}
		case "t":
			return v, pushView(newTherapiesView(v.state))
		case "m":
			return v, pushView(newEmployeeEditView(v.state))
		case "r":
			return v, loadEmployeesCmd(v.state, v.dir)
		}
	}
	return v, nil
}

func (v *directoryView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Employees"))
	b.WriteString("\n\n")

	if msg := v.dir.Err(); msg != "" {
		b.WriteString(formatter.ErrorLine(msg) + "\n\n")
	}

	emps := v.dir.Employees()
	if len(emps) == 0 {
		b.WriteString(formatter.Dim("No employees yet. Press m to add one.") + "\n")
		return b.String()
	}

	cursor := clampCursor(v.cursor, len(emps))
	for i, e := range emps {
		marker := "  "
		name := e.Name
		if i == cursor {
			marker = formatter.StyleHeader.Render("▸ ")
			name = formatter.Bold(name)
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker, name, formatter.Dim("show performance"))
	}
	return b.String()
}

func (v *directoryView) ID() ViewID    { return ViewDirectory }
func (v *directoryView) Title() string { return "" }
func (v *directoryView) ShortHelp() []key.Binding {
	return []key.Binding{
		binding("enter", "performance"),
		binding("t", "therapies"),
		binding("m", "manage employees"),
		binding("r", "reload"),
	}
}
