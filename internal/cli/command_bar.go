package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// commandBar is the persistent text input at the bottom of the TUI.
// It runs the same cobra commands as the command line and shows their
// output in the content area.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	// subcommand names by parent, derived from the cobra tree
	tree map[string][]string

	history    []string
	historyIdx int
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return commandBar{
		input: ti,
		state: state,
		tree:  commandTree(NewRootCmd(state.App)),
	}
}

// Focus gives focus to the command bar.
func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

// Blur removes focus from the command bar.
func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

// Focused returns whether the command bar has focus.
func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len(promptPlain) - 1
}

// Update handles key messages when the command bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		line := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if line == "" {
			return nil
		}
		c.addHistory(line)
		return c.executeCommand(line)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

const promptPlain = "praxis > "

func (c *commandBar) View() string {
	prefix := formatter.StylePurple.Render("praxis") + " " + formatter.Dim("❯") + " "
	if !c.focused {
		return prefix + formatter.Dim("press : to type a command")
	}
	return prefix + c.input.View()
}

// executeCommand interprets one command-bar line. Built-ins navigate or
// quit; anything else runs through the cobra tree.
func (c *commandBar) executeCommand(line string) tea.Cmd {
	args, err := splitArgs(line)
	if err != nil {
		return outputCmd(formatter.ErrorLine(err.Error()))
	}
	if len(args) == 0 {
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "quit", "exit":
		return func() tea.Msg { return quitMsg{} }
	case "home":
		c.Blur()
		return goHome()
	case "clear":
		return nil
	case "help":
		args = append(args[1:], "--help")
	case "tui":
		return outputCmd(formatter.Dim("Already in the interactive interface."))
	}

	app := c.state.App
	return tea.Batch(
		func() tea.Msg { return cmdOutputMsg{output: captureCobraOutput(app, args)} },
		refreshViews,
	)
}

// captureCobraOutput runs args through a fresh cobra tree and returns what
// it printed, followed by the error if it failed.
func captureCobraOutput(app *App, args []string) string {
	root := NewRootCmd(app)
	var buf strings.Builder
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
			buf.WriteString("\n")
		}
		buf.WriteString(formatter.ErrorLine(err.Error()))
		if strings.Contains(err.Error(), "unknown command") {
			buf.WriteString("\n" + formatter.Dim("Type 'help' for available commands."))
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

// splitArgs splits a command line into words, honoring single and double
// quotes and backslash escapes.
func splitArgs(line string) ([]string, error) {
	var parts []string
	var cur strings.Builder
	var quote rune
	escaped, started := false, false

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case quote == '"':
			switch r {
			case '"':
				quote = 0
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped, started = true, true
		case r == '\'' || r == '"':
			quote, started = r, true
		case r == ' ' || r == '\t':
			if started {
				parts = append(parts, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if escaped {
		return nil, fmt.Errorf("unterminated escape sequence")
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quoted string")
	}
	if started {
		parts = append(parts, cur.String())
	}
	return parts, nil
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	c.history = append(c.history, line)
	c.historyIdx = len(c.history)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

var builtinCommands = []string{"home", "help", "clear", "quit"}

// commandTree maps "" to the top-level command names and each parent to
// its subcommand names.
func commandTree(root *cobra.Command) map[string][]string {
	tree := map[string][]string{"": append([]string(nil), builtinCommands...)}
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "completion" {
			continue
		}
		tree[""] = append(tree[""], cmd.Name())
		for _, sub := range cmd.Commands() {
			tree[cmd.Name()] = append(tree[cmd.Name()], sub.Name())
		}
	}
	for k := range tree {
		sort.Strings(tree[k])
	}
	return tree
}

func (c *commandBar) updateSuggestions() {
	text := c.input.Value()
	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	switch {
	case len(parts) == 1 && !trailingSpace:
		c.input.SetSuggestions(completeLine("", filterSuggestions(c.tree[""], parts[0])))
	case len(parts) == 1 && trailingSpace, len(parts) == 2 && !trailingSpace:
		prefix := ""
		if len(parts) == 2 {
			prefix = parts[1]
		}
		subs := filterSuggestions(c.tree[strings.ToLower(parts[0])], prefix)
		c.input.SetSuggestions(completeLine(parts[0]+" ", subs))
	default:
		c.input.SetSuggestions(nil)
	}
}

// completeLine prefixes each suggestion with the words already typed, since
// textinput suggestions replace the whole value.
func completeLine(head string, words []string) []string {
	if len(words) == 0 {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = head + w
	}
	return out
}

// filterSuggestions returns items from pool that start with prefix (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}
