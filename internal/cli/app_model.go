package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model. It owns the view stack, the
// command bar and the pane that shows command output.
type appModel struct {
	state     *SharedState
	viewStack stack
	cmdBar    commandBar
	quitting  bool

	// lastOutput is the text of the latest command; while outputActive it
	// replaces the active view and takes the scroll keys.
	lastOutput   string
	outputActive bool
	output       outputPane
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	return appModel{
		state:     state,
		viewStack: stack{newDirectoryView(state)},
		cmdBar:    newCommandBar(state),
		output:    newOutputPane(),
	}
}

func (m *appModel) activeView() View {
	return m.viewStack.top()
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.navigate(msg); ok {
		return m, cmd
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		cmd = m.viewStack.send(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case cmdOutputMsg:
		m.showOutput(msg.output)
	case tea.MouseMsg:
		if m.outputActive {
			cmd = m.output.scroll(msg)
			break
		}
		cmd = m.viewStack.send(msg)
	default:
		// Cursor blinks belong to the bar while it has focus.
		if m.cmdBar.Focused() {
			cmd = m.cmdBar.UpdateNonKey(msg)
		} else {
			cmd = m.viewStack.send(msg)
		}
	}
	return m, cmd
}

// handleKey resolves a key in priority order: ctrl+c, the focused command
// bar, the output pane, a view that captures input, then the global
// bindings. Whatever is left goes to the active view.
func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.cmdBar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.dismissOutput()
		}
		return m.cmdBar.Update(msg)
	}

	if m.outputActive {
		if isOutputScrollKey(msg) {
			return m.output.scroll(msg)
		}
		m.dismissOutput()
		if msg.Type == tea.KeyEsc {
			return nil
		}
	}

	if viewCapturesInput(m.activeView()) {
		return m.viewStack.send(msg)
	}

	switch msg.String() {
	case ":":
		m.cmdBar.Focus()
		return nil
	case "q":
		return m.quit()
	case "esc":
		if len(m.viewStack) == 1 {
			return nil
		}
		m.viewStack = m.viewStack.home()
		return refreshViews
	}
	return m.viewStack.send(msg)
}

func (m *appModel) resize(msg tea.WindowSizeMsg) {
	m.state.Width, m.state.Height = msg.Width, msg.Height
	m.cmdBar.SetWidth(msg.Width)
	if m.outputActive {
		m.output.resize(msg.Width, m.state.ContentHeight())
	}
}

// showOutput opens the output pane. Empty output keeps what is shown.
func (m *appModel) showOutput(text string) {
	if text == "" {
		return
	}
	m.lastOutput = text
	m.outputActive = true
	m.output.show(text, m.state.Width, m.state.ContentHeight())
}

func (m *appModel) dismissOutput() {
	m.lastOutput = ""
	m.outputActive = false
}

func (m *appModel) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}
