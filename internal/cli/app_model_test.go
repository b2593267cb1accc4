package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
	capturing  bool
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }
func (v *stubView) CapturesInput() bool      { return v.capturing }

func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func TestNewAppModelStartsAtDirectory(t *testing.T) {
	m := newAppModel(testApp(t))

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewDirectory, m.activeView().ID())
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := newAppModel(testApp(t))
	v2 := newStubView(ViewTherapies, "Therapies", "therapies view")
	v3 := newStubView(ViewForm, "Add Therapy", "form view")

	model, cmd := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())

	model, _ = m.Update(pushViewMsg{view: v3})
	m = model.(appModel)
	require.Len(t, m.viewStack, 3)

	model, cmd = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())

	model, cmd = m.Update(homeMsg{})
	m = model.(appModel)
	require.NotNil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewDirectory, m.activeView().ID())
	assert.IsType(t, refreshViewMsg{}, cmd())

	// The directory is never popped.
	model, _ = m.Update(popViewMsg{})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_RefreshReachesEveryView(t *testing.T) {
	m := newAppModel(testApp(t))
	bottom := newStubView(ViewDirectory, "", "home")
	top := newStubView(ViewEmployeeEdit, "Employees", "edit")
	m.viewStack = []View{bottom, top}

	model, _ := m.Update(refreshViewMsg{})
	m = model.(appModel)

	require.Len(t, bottom.updateSeen, 1)
	require.Len(t, top.updateSeen, 1)
	assert.IsType(t, refreshViewMsg{}, bottom.updateSeen[0])
}

func TestAppModel_WindowResizeForwardsToActiveView(t *testing.T) {
	m := newAppModel(testApp(t))
	v := newStubView(ViewTherapies, "Therapies", "therapies")
	m.viewStack = []View{v}

	model, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)
	require.Nil(t, cmd)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	assert.Equal(t, 25, m.state.ContentHeight())
	assert.NotZero(t, m.cmdBar.input.Width)
	require.Len(t, v.updateSeen, 1)
	_, ok := v.updateSeen[0].(tea.WindowSizeMsg)
	assert.True(t, ok)
}

func TestAppModel_KeyHandling_GlobalAndCaptured(t *testing.T) {
	t.Run("colon focuses command bar", func(t *testing.T) {
		m := newAppModel(testApp(t))
		require.False(t, m.cmdBar.Focused())

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{':'}})
		m = model.(appModel)
		require.Nil(t, cmd)
		assert.True(t, m.cmdBar.Focused())
	})

	t.Run("q quits when active view does not capture input", func(t *testing.T) {
		m := newAppModel(testApp(t))
		m.viewStack = []View{newStubView(ViewDirectory, "", "home")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("capturing view receives q and does not quit", func(t *testing.T) {
		m := newAppModel(testApp(t))
		v := newStubView(ViewPerformance, "Performance", "perf")
		v.capturing = true
		m.viewStack = []View{v}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.Nil(t, cmd)
		assert.False(t, m.quitting)
		require.Len(t, v.updateSeen, 1)
		assert.Equal(t, "q", v.updateSeen[0].(tea.KeyMsg).String())
	})

	t.Run("esc dismisses output before going home", func(t *testing.T) {
		m := newAppModel(testApp(t))
		m.viewStack = []View{
			newStubView(ViewDirectory, "", "home"),
			newStubView(ViewPerformance, "Performance", "perf"),
			newStubView(ViewTherapies, "Therapies", "therapies"),
		}
		m.lastOutput = "stale output"
		m.outputActive = true

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		require.Nil(t, cmd)
		assert.Len(t, m.viewStack, 3)
		assert.Empty(t, m.lastOutput)
		assert.False(t, m.outputActive)

		model, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.Len(t, m.viewStack, 1)
		assert.IsType(t, refreshViewMsg{}, cmd())
	})
}

func TestAppModel_WizardCompleteAndOutput(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = []View{
		newStubView(ViewEmployeeEdit, "Employees", "employees"),
		newStubView(ViewForm, "Add Employee", "wizard"),
	}

	next := func() tea.Msg { return cmdOutputMsg{output: "done"} }

	model, cmd := m.Update(wizardCompleteMsg{nextCmd: next})
	m = model.(appModel)
	require.NotNil(t, cmd)
	require.Len(t, m.viewStack, 1)

	batchMsg := cmd()
	batch, ok := batchMsg.(tea.BatchMsg)
	require.True(t, ok, "expected tea.BatchMsg, got %T", batchMsg)
	var gotOutput, gotRefresh bool
	for _, c := range batch {
		if c == nil {
			continue
		}
		switch c().(type) {
		case cmdOutputMsg:
			gotOutput = true
		case refreshViewMsg:
			gotRefresh = true
		}
	}
	assert.True(t, gotOutput, "batch should contain cmdOutputMsg")
	assert.True(t, gotRefresh, "batch should contain refreshViewMsg")

	model, cmd = m.Update(cmdOutputMsg{output: "hello"})
	m = model.(appModel)
	require.Nil(t, cmd)
	assert.Contains(t, m.View(), "hello")

	// Empty output leaves the previous output in place.
	model, _ = m.Update(cmdOutputMsg{})
	m = model.(appModel)
	assert.Equal(t, "hello", m.lastOutput)
}

func TestAppModel_WizardCompleteKeepsNonFormView(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = []View{
		newStubView(ViewDirectory, "", "home"),
		newStubView(ViewTherapies, "Therapies", "therapies"),
	}

	model, _ := m.Update(wizardCompleteMsg{})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 2)
}

func TestAppModel_HeaderShowsBreadcrumbs(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = []View{
		newStubView(ViewDirectory, "", "home"),
		newStubView(ViewEmployeeEdit, "Employees", "employees"),
		newStubView(ViewForm, "Add Employee", "form"),
	}

	view := stripANSI(m.View())
	assert.Contains(t, view, "praxis › Employees › Add Employee")
}

func TestViewCapturesInput(t *testing.T) {
	assert.False(t, viewCapturesInput(nil))
	assert.True(t, viewCapturesInput(newStubView(ViewForm, "Form", "")))
	assert.False(t, viewCapturesInput(newStubView(ViewDirectory, "", "")))

	v := newStubView(ViewPerformance, "Performance", "")
	assert.False(t, viewCapturesInput(v))
	v.capturing = true
	assert.True(t, viewCapturesInput(v))
}

func TestAppModel_OutputViewportScroll(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = []View{newStubView(ViewDirectory, "", "home")}

	// Height 10 leaves 5 content lines.
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = model.(appModel)

	lines := make([]string, 50)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	content := strings.Join(lines, "\n")

	model, _ = m.Update(cmdOutputMsg{output: content})
	m = model.(appModel)
	assert.True(t, m.outputActive)

	view := m.View()
	assert.Contains(t, view, "line 1")
	assert.Contains(t, view, "pgup/pgdn")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(appModel)
	assert.True(t, m.outputActive)

	// Non-scroll key dismisses.
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = model.(appModel)
	assert.False(t, m.outputActive)
	assert.Empty(t, m.lastOutput)
}

func TestAppModel_OutputShortContentNoScroll(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = []View{newStubView(ViewDirectory, "", "home")}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = model.(appModel)

	model, _ = m.Update(cmdOutputMsg{output: "short output"})
	m = model.(appModel)
	assert.True(t, m.outputActive)

	view := m.View()
	assert.Contains(t, view, "short output")
	assert.NotContains(t, view, "pgup/pgdn")
}

func TestIsOutputScrollKey(t *testing.T) {
	scrollKeys := []tea.KeyType{
		tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD,
	}
	for _, k := range scrollKeys {
		assert.True(t, isOutputScrollKey(tea.KeyMsg{Type: k}), "expected scroll key: %v", k)
	}

	nonScrollKeys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyRunes, Runes: []rune{':'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
	}
	for _, k := range nonScrollKeys {
		assert.False(t, isOutputScrollKey(k), "expected non-scroll key: %v", k)
	}
}

func TestStack(t *testing.T) {
	home := newStubView(ViewDirectory, "", "home")
	s := stack{home}
	assert.Same(t, home, s.pop().top(), "the directory stays")

	perf := newStubView(ViewPerformance, "Performance", "perf")
	form := newStubView(ViewForm, "Edit Day", "form")
	s = append(s, perf, form)
	assert.Equal(t, []string{"Performance", "Edit Day"}, s.crumbs())
	assert.Same(t, perf, s.pop().top())
	assert.Len(t, s.home(), 1)

	s.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, form.updateSeen, 1)
	assert.Empty(t, perf.updateSeen)

	s.broadcast(refreshViewMsg{})
	assert.Len(t, home.updateSeen, 1)
	assert.Len(t, perf.updateSeen, 1)
	assert.Len(t, form.updateSeen, 2)

	assert.Nil(t, stack{}.top())
	assert.Nil(t, stack{}.send(tea.KeyMsg{}))
}
