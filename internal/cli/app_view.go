package cli

import (
	"strings"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
)

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	screen := strings.Join([]string{
		m.header(),
		m.body(),
		m.footer(),
		m.cmdBar.View(),
	}, "\n")

	// Alt-screen rendering diffs by line; short frames leave stale rows.
	if rows := strings.Count(screen, "\n") + 1; rows < m.state.Height {
		screen += strings.Repeat("\n", m.state.Height-rows)
	}
	return screen
}

// header is the app name followed by the breadcrumbs of the stack.
func (m *appModel) header() string {
	title := formatter.StylePurple.Render("praxis")
	if crumbs := m.viewStack.crumbs(); len(crumbs) > 0 {
		title += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}
	return title + "\n" + m.state.rule()
}

func (m *appModel) body() string {
	switch {
	case m.lastOutput == "":
	case m.outputActive && m.state.Height > 0:
		return m.output.View()
	default:
		return m.lastOutput
	}
	if v := m.activeView(); v != nil {
		return v.View()
	}
	return ""
}

// footer lists the key hints for whatever currently has the keyboard.
func (m *appModel) footer() string {
	var hints []string
	switch {
	case m.outputActive:
		if m.output.overflows() {
			hints = m.output.hints()
		}
	case m.activeView() != nil:
		for _, b := range m.activeView().ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	if !m.cmdBar.Focused() && !m.outputActive && !viewCapturesInput(m.activeView()) {
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: home"))
		}
		hints = append(hints, formatter.Dim(": command"), formatter.Dim("q: quit"))
	}

	return m.state.rule() + "\n" + strings.Join(hints, "  ")
}
