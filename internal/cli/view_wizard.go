package cli

import (
	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

var wizardHelp = []key.Binding{
	binding("enter", "next"),
	binding("esc", "cancel"),
}

// wizardView puts a huh form on the stack. On completion it runs onDone and
// hands the resulting command to the app model; esc runs onCancel instead.
type wizardView struct {
	title    string
	form     *huh.Form
	onDone   func() tea.Cmd
	onCancel func()
}

func newWizardView(title string, form *huh.Form, done func() tea.Cmd, cancel func()) *wizardView {
	return &wizardView{title: title, form: form, onDone: done, onCancel: cancel}
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		if v.onCancel != nil {
			v.onCancel()
		}
		return v, closeWizard(outputCmd(formatter.Dim("Cancelled.")))
	}

	next, cmd := v.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State != huh.StateCompleted {
		return v, cmd
	}

	var result tea.Cmd
	if v.onDone != nil {
		result = v.onDone()
	}
	return v, closeWizard(tea.Batch(cmd, result))
}

func closeWizard(next tea.Cmd) tea.Cmd {
	return func() tea.Msg { return wizardCompleteMsg{nextCmd: next} }
}

func (v *wizardView) View() string             { return v.form.View() }
func (v *wizardView) ID() ViewID               { return ViewForm }
func (v *wizardView) Title() string            { return v.title }
func (v *wizardView) ShortHelp() []key.Binding { return wizardHelp }
