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

type therapiesLoadedMsg struct {
	cat *editor.Catalog
}

func loadTherapiesCmd(state *SharedState, cat *editor.Catalog) tea.Cmd {
	return func() tea.Msg {
		_ = cat.Load(state.ctx())
		return therapiesLoadedMsg{cat: cat}
	}
}

// therapiesView lists the therapy catalog with add and inline edit.
type therapiesView struct {
	state  *SharedState
	cat    *editor.Catalog
	cursor int
}

func newTherapiesView(state *SharedState) *therapiesView {
	return &therapiesView{state: state, cat: editor.NewCatalog(state.App.Client)}
}

func (v *therapiesView) Init() tea.Cmd {
	return loadTherapiesCmd(v.state, v.cat)
}

func (v *therapiesView) selected() *domain.Therapy {
	list := v.cat.Therapies()
	if len(list) == 0 {
		return nil
	}
	return list[clampCursor(v.cursor, len(list))]
}

func (v *therapiesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		return v, loadTherapiesCmd(v.state, v.cat)

	case therapiesLoadedMsg:
		if msg.cat == v.cat {
			v.cursor = clampCursor(v.cursor, len(v.cat.Therapies()))
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			v.cursor = clampCursor(v.cursor-1, len(v.cat.Therapies()))
		case "down", "j":
			v.cursor = clampCursor(v.cursor+1, len(v.cat.Therapies()))
		case "a":
			return v, pushView(v.addForm())
		case "e", "enter":
			if t := v.selected(); t != nil {
				return v, pushView(v.editForm(t))
			}
		case "c":
			v.cat.Cancel()
		}
	}
	return v, nil
}

func (v *therapiesView) addForm() View {
	draft := &editor.TherapyDraft{}
	return newWizardView("Add Therapy", newTherapyForm(draft), func() tea.Cmd {
		return func() tea.Msg { return applyTherapyCreate(v.state.ctx(), v.cat, *draft) }
	}, nil)
}

func (v *therapiesView) editForm(t *domain.Therapy) View {
	if v.cat.Editing() != t.ID {
		v.cat.BeginEdit(t.ID)
	}
	draft := v.cat.Staged()
	return newWizardView("Edit "+t.Name, newTherapyForm(&draft), func() tea.Cmd {
		return func() tea.Msg { return applyTherapyEdit(v.state.ctx(), v.cat, draft) }
	}, v.cat.Cancel)
}

func (v *therapiesView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Therapies"))
	b.WriteString("\n\n")

	if msg := v.cat.Err(); msg != "" {
		b.WriteString(formatter.ErrorLine(msg) + "\n\n")
	}

	list := v.cat.Therapies()
	if len(list) == 0 {
		b.WriteString(formatter.Dim("No therapies in the catalog. Press a to add one.") + "\n")
		return b.String()
	}

	cur := v.state.App.currency()
	cursor := clampCursor(v.cursor, len(list))
	editing := v.cat.Editing()
	rows := make([][]string, 0, len(list))
	for i, t := range list {
		marker := " "
		if i == cursor {
			marker = formatter.StyleHeader.Render("▸")
		}
		name := t.Name
		if t.ID == editing {
			name += " " + formatter.StyleYellow.Render("(editing)")
		}
		rows = append(rows, []string{
			marker,
			strconv.FormatInt(t.ID, 10),
			name,
			formatter.FormatMoney(t.Cost, cur),
			formatter.FormatMoney(t.Income, cur),
		})
	}
	b.WriteString(formatter.Table{
		Headers: []string{"", "ID", "Therapy", "Cost", "Income"},
		Rows:    rows,
		Align:   []formatter.Align{formatter.AlignLeft, formatter.AlignRight, formatter.AlignLeft, formatter.AlignRight, formatter.AlignRight},
	}.Render())
	return b.String()
}

func (v *therapiesView) ID() ViewID    { return ViewTherapies }
func (v *therapiesView) Title() string { return "Therapies" }
func (v *therapiesView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		binding("a", "add"),
		binding("e", "edit"),
	}
	if v.cat.Editing() != 0 {
		hints = append(hints, binding("c", "cancel edit"))
	}
	return hints
}
