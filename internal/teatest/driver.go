// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver stands in for tea.Program: every message goes straight to
// Update, and the commands Update returns are run and fed back until the
// model settles. Commands that do not return within the driver's timeout
// (cursor blinks, tickers) are dropped.
package teatest

import (
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxMessages bounds how many follow-up messages one Send may process.
// A model that keeps scheduling itself trips it and the test logs why.
const MaxMessages = 200

// DefaultCmdTimeout is how long a command may run before it is dropped.
// Backend calls against in-memory SQLite finish in a few milliseconds;
// cursor blinks wait about half a second.
const DefaultCmdTimeout = 50 * time.Millisecond

// Driver is a synchronous harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg comes out of a command. The real
	// runtime swallows that message, so models rarely record it themselves.
	Quitting bool

	timeout time.Duration
	width   int
	height  int
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg of w x h before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) { d.width, d.height = w, h }
}

// WithCmdTimeout overrides DefaultCmdTimeout.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.timeout = timeout }
}

// New wraps model. Call DrainInit to run the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, timeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	if d.width > 0 || d.height > 0 {
		d.Send(tea.WindowSizeMsg{Width: d.width, Height: d.height})
	}
	return d
}

// DrainInit runs Init and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.settle(d.Model.Init())
}

// Send delivers msg and settles the model. Nothing is delivered after quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.settle(d.update(msg))
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// PressType sends a non-rune key such as tea.KeyTab or tea.KeyCtrlS.
func (d *Driver) PressType(keys ...tea.KeyType) {
	d.T.Helper()
	for _, k := range keys {
		d.Send(tea.KeyMsg{Type: k})
	}
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.PressType(tea.KeyEnter)
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.PressType(tea.KeyEsc)
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.PressType(tea.KeyCtrlC)
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.PressType(tea.KeyUp)
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.PressType(tea.KeyDown)
}

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) update(msg tea.Msg) tea.Cmd {
	next, cmd := d.Model.Update(msg)
	d.Model = next
	return cmd
}

// settle runs pending commands breadth first, feeding each produced
// message back through Update, until none remain.
func (d *Driver) settle(first tea.Cmd) {
	d.T.Helper()
	queue := []tea.Cmd{first}
	processed := 0

	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}

		msg := d.run(cmd)
		switch m := msg.(type) {
		case nil:
			continue
		case tea.BatchMsg:
			queue = append(queue, m...)
			continue
		case tea.QuitMsg:
			d.Quitting = true
			d.update(m)
			return
		}
		if isCursorMsg(msg) {
			continue
		}

		processed++
		if processed > MaxMessages {
			d.T.Logf("teatest: stopped after %d messages, last %T", MaxMessages, msg)
			return
		}
		queue = append(queue, d.update(msg))
	}
}

// run executes cmd, giving up after the driver's timeout.
func (d *Driver) run(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	timer := time.NewTimer(d.timeout)
	defer timer.Stop()
	select {
	case msg := <-done:
		return msg
	case <-timer.C:
		return nil
	}
}

// isCursorMsg matches the blink messages of bubbles' cursor package, which
// would otherwise chain into blocking timer commands.
func isCursorMsg(msg tea.Msg) bool {
	t := reflect.TypeOf(msg)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.HasSuffix(t.PkgPath(), "bubbles/cursor")
}
