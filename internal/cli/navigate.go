package cli

import tea "github.com/charmbracelet/bubbletea"

// Views never touch the stack directly; they return one of these
// messages and appModel.navigate applies it.
type (
	pushViewMsg struct{ view View }
	popViewMsg  struct{}
	// homeMsg drops every view above the employee directory.
	homeMsg struct{}
	// refreshViewMsg asks every view on the stack to reload.
	refreshViewMsg struct{}
	// cmdOutputMsg carries text for the output pane.
	cmdOutputMsg struct{ output string }
	// wizardCompleteMsg closes a finished or cancelled form and then
	// runs nextCmd.
	wizardCompleteMsg struct{ nextCmd tea.Cmd }
	quitMsg           struct{}
)

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func goHome() tea.Cmd {
	return func() tea.Msg { return homeMsg{} }
}

func refreshViews() tea.Msg {
	return refreshViewMsg{}
}

func outputCmd(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// navigate applies a navigation message to m. It reports false for any
// other message.
func (m *appModel) navigate(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case pushViewMsg:
		m.cmdBar.Blur()
		m.dismissOutput()
		m.viewStack = append(m.viewStack, msg.view)
		return msg.view.Init(), true

	case popViewMsg:
		m.viewStack = m.viewStack.pop()
		return nil, true

	case homeMsg:
		m.dismissOutput()
		m.viewStack = m.viewStack.home()
		return refreshViews, true

	case refreshViewMsg:
		// Views under a form reload too, so they show what it saved.
		return m.viewStack.broadcast(msg), true

	case wizardCompleteMsg:
		if top := m.activeView(); top != nil && top.ID() == ViewForm {
			m.viewStack = m.viewStack.pop()
		}
		m.dismissOutput()
		return tea.Batch(msg.nextCmd, refreshViews), true

	case quitMsg:
		return m.quit(), true
	}
	return nil, false
}
