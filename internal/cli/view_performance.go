package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/editor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type perfTab int

const (
	tabDaily perfTab = iota
	tabOverview
)

func (t perfTab) String() string {
	if t == tabOverview {
		return "Statistics"
	}
	return "Calendar"
}

type employeeNameMsg struct {
	id   int64
	name string
	err  error
}

// dailyDoneMsg and overviewDoneMsg signal that an editor operation finished;
// the views re-render from editor state.
type dailyDoneMsg struct{ ed *editor.DailyEditor }

type overviewDoneMsg struct{ ov *editor.Overview }

// performanceView shows one employee's performance in two tabs: a calendar
// with the daily form, and the monthly overview.
type performanceView struct {
	state      *SharedState
	employeeID int64
	name       string
	nameErr    string
	tab        perfTab
	daily      *editor.DailyEditor
	overview   *editor.Overview
}

func newPerformanceView(state *SharedState, employeeID int64) *performanceView {
	now := state.App.now()
	return &performanceView{
		state:      state,
		employeeID: employeeID,
		daily:      editor.NewDailyEditor(state.App.Client, employeeID, now),
		overview:   editor.NewOverview(state.App.Client, employeeID, now),
	}
}

func (v *performanceView) Init() tea.Cmd {
	return tea.Batch(v.loadName(), v.loadDaily(), v.fetchOverview())
}

func (v *performanceView) loadName() tea.Cmd {
	id := v.employeeID
	client := v.state.App.Client
	ctx := v.state.ctx()
	return func() tea.Msg {
		name, err := client.EmployeeName(ctx, id)
		return employeeNameMsg{id: id, name: name, err: err}
	}
}

func (v *performanceView) loadDaily() tea.Cmd {
	ed, ctx := v.daily, v.state.ctx()
	return func() tea.Msg {
		_ = ed.Load(ctx)
		return dailyDoneMsg{ed: ed}
	}
}

func (v *performanceView) saveDaily() tea.Cmd {
	ed, ctx := v.daily, v.state.ctx()
	return func() tea.Msg {
		_ = ed.Save(ctx)
		return dailyDoneMsg{ed: ed}
	}
}

func (v *performanceView) fetchOverview() tea.Cmd {
	ov, ctx := v.overview, v.state.ctx()
	return func() tea.Msg {
		_ = ov.Fetch(ctx)
		return overviewDoneMsg{ov: ov}
	}
}

func (v *performanceView) exportOverview() tea.Cmd {
	ov, ctx := v.overview, v.state.ctx()
	return func() tea.Msg {
		_, _ = ov.Export(ctx, "")
		return overviewDoneMsg{ov: ov}
	}
}

// CapturesInput is true while a daily field is being typed into.
func (v *performanceView) CapturesInput() bool {
	if v.tab != tabDaily {
		return false
	}
	_, focused := v.daily.Focused()
	return focused
}

func (v *performanceView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		return v, tea.Batch(v.loadName(), v.loadDaily(), v.fetchOverview())

	case employeeNameMsg:
		if msg.id == v.employeeID {
			v.name = msg.name
			v.nameErr = ""
			if msg.err != nil {
				v.nameErr = msg.err.Error()
			}
		}
		return v, nil

	case dailyDoneMsg, overviewDoneMsg:
		return v, nil

	case tea.KeyMsg:
		if !v.CapturesInput() && msg.String() == "tab" {
			v.tab = (v.tab + 1) % 2
			return v, nil
		}
		if v.tab == tabDaily {
			return v, v.updateDaily(msg)
		}
		return v, v.updateOverview(msg)
	}
	return v, nil
}

func (v *performanceView) updateDaily(msg tea.KeyMsg) tea.Cmd {
	ed := v.daily
	field, focused := ed.Focused()

	switch msg.String() {
	case "ctrl+s":
		return v.saveDaily()
	case "s":
		ed.CycleStatus(1)
		return nil
	case "S":
		ed.CycleStatus(-1)
		return nil
	}

	if focused {
		switch msg.Type {
		case tea.KeyEnter:
			if ed.Next() {
				return v.saveDaily()
			}
		case tea.KeyDown, tea.KeyTab:
			ed.Next()
		case tea.KeyUp, tea.KeyShiftTab:
			ed.Prev()
		case tea.KeyEsc:
			ed.Blur()
		case tea.KeyBackspace:
			val := []rune(ed.Form().Value(field))
			if len(val) > 0 {
				ed.SetValue(field, string(val[:len(val)-1]))
			}
		case tea.KeyRunes:
			ed.SetValue(field, ed.Form().Value(field)+numericRunes(msg.Runes, field))
		}
		return nil
	}

	switch msg.String() {
	case "left", "h":
		ed.ShiftDate(-1)
	case "right", "l":
		ed.ShiftDate(1)
	case "up", "k":
		ed.ShiftDate(-7)
	case "down", "j":
		ed.ShiftDate(7)
	case "enter", "i":
		ed.Next()
	case "t":
		ed.SelectDate(v.state.App.now())
	}
	return nil
}

// numericRunes keeps the characters a field accepts: digits everywhere,
// a decimal separator only in hours and income.
func numericRunes(runes []rune, f editor.Field) string {
	decimal := f == editor.FieldHours || f == editor.FieldIncome
	var b strings.Builder
	for _, r := range runes {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case decimal && (r == '.' || r == ','):
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (v *performanceView) updateOverview(msg tea.KeyMsg) tea.Cmd {
	ov := v.overview
	switch msg.String() {
	case "left", "h":
		ov.ShiftStart(-1)
	case "right", "l":
		ov.ShiftStart(1)
	case "down", "j":
		ov.ShiftEnd(-1)
	case "up", "k":
		ov.ShiftEnd(1)
	case "enter", "f":
		return v.fetchOverview()
	case "x":
		return v.exportOverview()
	}
	return nil
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *performanceView) View() string {
	var b strings.Builder

	name := v.name
	if name == "" {
		name = fmt.Sprintf("#%d", v.employeeID)
	}
	b.WriteString(formatter.Header("Employee " + name + " Performance"))
	b.WriteString("\n")
	if v.nameErr != "" {
		b.WriteString(formatter.ErrorLine(v.nameErr) + "\n")
	}
	b.WriteString(v.renderTabs() + "\n\n")

	if v.tab == tabDaily {
		b.WriteString(v.renderDaily())
	} else {
		b.WriteString(v.renderOverview())
	}
	return b.String()
}

func (v *performanceView) renderTabs() string {
	var parts []string
	for _, t := range []perfTab{tabDaily, tabOverview} {
		if t == v.tab {
			parts = append(parts, formatter.StyleHeader.Render("["+t.String()+"]"))
		} else {
			parts = append(parts, formatter.Dim(" "+t.String()+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (v *performanceView) renderDaily() string {
	ed := v.daily
	cal := formatter.RenderCalendar(ed.Date(), ed.StatusClass) + "\n" + formatter.CalendarLegend()

	form := ed.Form()
	field, focused := ed.Focused()

	var f strings.Builder
	day := ed.Date().Format("Mon 2006-01-02")
	if id := ed.BoundID(); id != 0 {
		fmt.Fprintf(&f, "%s  %s\n", formatter.Bold(day), formatter.Dim(fmt.Sprintf("record #%d", id)))
	} else {
		fmt.Fprintf(&f, "%s  %s\n", formatter.Bold(day), formatter.Dim("new"))
	}
	fmt.Fprintf(&f, "%-12s %s\n\n", "Status", formatter.StatusPill(form.Status))

	for i := 0; i < editor.FieldCount; i++ {
		fd := editor.Field(i)
		label := fmt.Sprintf("%-12s", fd.Label())
		val := form.Value(fd)
		if focused && fd == field {
			fmt.Fprintf(&f, "%s %s\n", formatter.StyleHeader.Render(label), formatter.Bold(val)+formatter.StyleHeader.Render("▏"))
			continue
		}
		fmt.Fprintf(&f, "%s %s\n", formatter.Dim(label), val)
		if fd == editor.FieldIncome {
			f.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cal, "    ", f.String()))
	b.WriteString("\n")
	if msg := ed.Err(); msg != "" {
		b.WriteString("\n" + formatter.ErrorLine(msg) + "\n")
	}
	switch msg := ed.Message(); msg {
	case "":
	case editor.SavedMessage:
		b.WriteString("\n" + formatter.Success(msg) + "\n")
	default:
		b.WriteString("\n" + formatter.StyleYellow.Render(msg) + "\n")
	}
	return b.String()
}

func (v *performanceView) renderOverview() string {
	ov := v.overview
	start, end := ov.Range()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s %s\n\n",
		formatter.Dim("From"), formatter.Bold(start.String()),
		formatter.Dim("to"), formatter.Bold(end.String()))

	if msg := ov.Err(); msg != "" {
		b.WriteString(formatter.ErrorLine(msg) + "\n\n")
	}

	if ov.NoData() {
		b.WriteString(formatter.Dim(editor.NoDataMessage) + "\n")
	} else {
		b.WriteString(formatter.Table{
			Headers: editor.OverviewColumns,
			Rows:    ov.Rows(),
			Align: []formatter.Align{
				formatter.AlignLeft, formatter.AlignRight, formatter.AlignRight, formatter.AlignRight, formatter.AlignRight,
			},
		}.Render())
		b.WriteString("\n")
		stats := ov.Stats()
		for _, s := range stats {
			fmt.Fprintf(&b, "%s  %s\n", formatter.Dim(s.Month), formatter.FormatModalityTotals(s))
		}
		b.WriteString("\n")
		b.WriteString(formatter.RenderStatsChart(stats, v.chartWidth(), v.state.App.currency()))
	}

	if msg := ov.Message(); msg != "" {
		b.WriteString("\n" + formatter.Success(msg) + "\n")
	}
	return b.String()
}

func (v *performanceView) chartWidth() int {
	w := v.state.Width - 30
	if w > 50 {
		return 50
	}
	if w < 10 {
		return 10
	}
	return w
}

func (v *performanceView) ID() ViewID    { return ViewPerformance }
func (v *performanceView) Title() string { return "Performance" }
func (v *performanceView) ShortHelp() []key.Binding {
	if v.tab == tabOverview {
		return []key.Binding{
			binding("←/→", "start month"),
			binding("↑/↓", "end month"),
			binding("enter", "fetch"),
			binding("x", "export"),
			binding("tab", "calendar"),
		}
	}
	if v.CapturesInput() {
		return []key.Binding{
			binding("0-9", "type"),
			binding("enter", "next/save"),
			binding("↑/↓", "field"),
			binding("s", "status"),
			binding("ctrl+s", "save"),
			binding("esc", "done"),
		}
	}
	return []key.Binding{
		binding("←/→/↑/↓", "day"),
		binding("enter", "edit"),
		binding("s", "status"),
		binding("ctrl+s", "save"),
		binding("t", "today"),
		binding("tab", "statistics"),
	}
}
