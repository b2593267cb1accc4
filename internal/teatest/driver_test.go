package teatest

import (
	"strconv"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type loadedMsg struct{ n int }

type slowMsg struct{}

// counter loads a starting value on Init, counts typed digits and quits on q.
type counter struct {
	n      int
	width  int
	events []string
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return loadedMsg{n: 10} }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case loadedMsg:
		c.n = msg.n
		c.events = append(c.events, "loaded")
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return c, tea.Quit
		case "b":
			return c, tea.Batch(
				func() tea.Msg { return loadedMsg{n: 1} },
				func() tea.Msg { time.Sleep(time.Second); return slowMsg{} },
			)
		}
		if d, err := strconv.Atoi(msg.String()); err == nil {
			c.n += d
		}
	case slowMsg:
		c.events = append(c.events, "slow")
	}
	return c, nil
}

func (c counter) View() string {
	return "n=" + strconv.Itoa(c.n)
}

func TestDriver_InitAndKeys(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	assert.Equal(t, 80, d.Model.(counter).width)

	d.DrainInit()
	assert.Equal(t, "n=10", d.View())

	d.Type("12")
	assert.Equal(t, "n=13", d.View())
}

func TestDriver_BatchDropsSlowCommands(t *testing.T) {
	d := New(t, counter{}, WithCmdTimeout(10*time.Millisecond))

	d.PressKey('b')

	c := d.Model.(counter)
	assert.Equal(t, 1, c.n)
	assert.Equal(t, []string{"loaded"}, c.events)
}

func TestDriver_QuitStopsDelivery(t *testing.T) {
	d := New(t, counter{})

	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.PressKey('5')
	assert.Equal(t, "n=0", d.View())
}
