package cli

import (
	"testing"

	"github.com/alexanderramin/praxis/internal/teatest"
)

// TestDriver runs the whole TUI against an App and exposes the parts of
// appModel that the TUI tests assert on.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver opens the TUI at 120x40 with the directory already loaded.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	d := &TestDriver{Driver: teatest.New(t, newAppModel(app), teatest.WithSize(120, 40))}
	d.DrainInit()
	return d
}

// Command runs input through the command bar and hands the keyboard back
// to the active view.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
	if d.CmdBarFocused() {
		d.PressEsc()
	}
}

func (d *TestDriver) model() appModel { return d.Model.(appModel) }

func (d *TestDriver) State() *SharedState { return d.model().state }

func (d *TestDriver) ActiveView() View { return d.model().viewStack.top() }

// ActiveViewID is -1 for an empty stack.
func (d *TestDriver) ActiveViewID() ViewID {
	if v := d.ActiveView(); v != nil {
		return v.ID()
	}
	return -1
}

// ViewStackIDs lists the stack bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	var ids []ViewID
	for _, v := range d.model().viewStack {
		ids = append(ids, v.ID())
	}
	return ids
}

// IsQuitting is true once the model asked to quit or the driver saw
// tea.QuitMsg.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.model().quitting
}

func (d *TestDriver) CmdBarFocused() bool {
	m := d.model()
	return m.cmdBar.Focused()
}

func (d *TestDriver) LastOutput() string { return stripANSI(d.model().lastOutput) }

func (d *TestDriver) Screen() string { return stripANSI(d.View()) }
