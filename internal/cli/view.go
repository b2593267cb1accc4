package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewDirectory ViewID = iota
	ViewEmployeeEdit
	ViewTherapies
	ViewPerformance
	ViewForm
)

// View is a screen on the navigation stack.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding
	// Title is the breadcrumb segment. The directory returns "".
	Title() string
}

// inputCapturer is implemented by views that consume printable keys
// themselves, so global shortcuts like q and : must not fire.
type inputCapturer interface {
	CapturesInput() bool
}

// viewCapturesInput reports whether v receives every key, bypassing
// the global q, : and esc bindings. Forms always do.
func viewCapturesInput(v View) bool {
	switch v := v.(type) {
	case nil:
		return false
	case inputCapturer:
		if v.CapturesInput() {
			return true
		}
	}
	return v.ID() == ViewForm
}

// stack is the navigation history. The employee directory sits at index 0
// and is never removed.
type stack []View

func (s stack) top() View {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

func (s stack) pop() stack {
	if len(s) <= 1 {
		return s
	}
	return s[:len(s)-1]
}

// home drops every view above the directory.
func (s stack) home() stack {
	if len(s) == 0 {
		return s
	}
	return s[:1]
}

// send delivers msg to the top view.
func (s stack) send(msg tea.Msg) tea.Cmd {
	if len(s) == 0 {
		return nil
	}
	i := len(s) - 1
	next, cmd := s[i].Update(msg)
	s[i] = next.(View)
	return cmd
}

// broadcast delivers msg to every view, bottom first.
func (s stack) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s))
	for i, v := range s {
		next, cmd := v.Update(msg)
		s[i] = next.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (s stack) crumbs() []string {
	var out []string
	for _, v := range s {
		if t := v.Title(); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func binding(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, desc))
}
