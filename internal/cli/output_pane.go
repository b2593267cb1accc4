package cli

import (
	"fmt"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// outputPane shows command bar output in place of the active view and
// scrolls it when it is taller than the content area.
type outputPane struct {
	vp viewport.Model
}

func newOutputPane() outputPane {
	vp := viewport.New(0, 0)
	// Letter keys are left alone so that they dismiss the output.
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return outputPane{vp: vp}
}

func (p *outputPane) show(text string, width, height int) {
	p.vp.SetContent(text)
	p.resize(width, height)
	p.vp.GotoTop()
}

func (p *outputPane) resize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height
}

func (p *outputPane) scroll(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

func (p *outputPane) overflows() bool {
	return p.vp.TotalLineCount() > p.vp.Height
}

func (p *outputPane) hints() []string {
	pos := fmt.Sprintf("[%d%%]", int(p.vp.ScrollPercent()*100))
	switch {
	case p.vp.AtTop():
		pos = "[TOP]"
	case p.vp.AtBottom():
		pos = "[END]"
	}
	return []string{
		formatter.Dim(pos),
		formatter.Dim("↑↓ pgup/pgdn: scroll"),
		formatter.Dim("esc: dismiss"),
	}
}

func (p *outputPane) View() string {
	return p.vp.View()
}

func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}
