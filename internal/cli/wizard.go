package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/editor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// praxisHuhTheme returns a custom huh theme using the Gruvbox palette.
func praxisHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// ── field validators ─────────────────────────────────────────────────────────
//
// Validators only check format. Blank required fields pass so the editors
// report them with their own message.

func validateOptionalDecimal(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func decimalInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalDecimal)
}

// ── forms ────────────────────────────────────────────────────────────────────

func newEmployeeForm(d *editor.EmployeeDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&d.Name),
			huh.NewInput().
				Title("Join date").
				Placeholder("2024-01-15").
				Value(&d.JoinDate).
				Validate(validateOptionalDate),
			decimalInput("Monthly rate", "3000", &d.MonthlyRate),
			decimalInput("Average hours per day (optional)", "7.5", &d.AvgHours),
		),
	).WithTheme(praxisHuhTheme()).WithShowHelp(false)
}

func newTherapyForm(d *editor.TherapyDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Therapy name").Value(&d.Name),
			decimalInput("Cost per session", "0", &d.Cost),
			decimalInput("Income per session", "0", &d.Income),
		),
	).WithTheme(praxisHuhTheme()).WithShowHelp(false)
}

func newConfirmForm(title string, ok *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Keep").
				Value(ok),
		),
	).WithTheme(praxisHuhTheme()).WithShowHelp(false)
}

// ── form results ─────────────────────────────────────────────────────────────
//
// Each apply function runs one editor operation and reports the outcome as
// transient output. Editors keep the error text for their views as well.

func editorResult(err error, failure, success string) tea.Msg {
	if err != nil {
		return cmdOutputMsg{output: formatter.ErrorLine(failure)}
	}
	return cmdOutputMsg{output: formatter.Success(success)}
}

func applyEmployeeCreate(ctx context.Context, dir *editor.Directory, d editor.EmployeeDraft) tea.Msg {
	err := dir.Create(ctx, d)
	return editorResult(err, dir.Err(), fmt.Sprintf("Added employee %s", strings.TrimSpace(d.Name)))
}

func applyEmployeeEdit(ctx context.Context, dir *editor.Directory, d editor.EmployeeDraft) tea.Msg {
	dir.Stage(d)
	err := dir.Commit(ctx)
	return editorResult(err, dir.Err(), fmt.Sprintf("Updated employee %s", strings.TrimSpace(d.Name)))
}

func applyEmployeeDelete(ctx context.Context, dir *editor.Directory, e *domain.Employee, confirmed bool) tea.Msg {
	if !confirmed {
		return cmdOutputMsg{output: formatter.Dim("Kept " + e.Name + ".")}
	}
	err := dir.Delete(ctx, e.ID)
	return editorResult(err, dir.Err(), fmt.Sprintf("Removed employee %s", e.Name))
}

func applyTherapyCreate(ctx context.Context, cat *editor.Catalog, d editor.TherapyDraft) tea.Msg {
	err := cat.Create(ctx, d)
	return editorResult(err, cat.Err(), fmt.Sprintf("Added therapy %s", strings.TrimSpace(d.Name)))
}

func applyTherapyEdit(ctx context.Context, cat *editor.Catalog, d editor.TherapyDraft) tea.Msg {
	cat.Stage(d)
	err := cat.Commit(ctx)
	return editorResult(err, cat.Err(), fmt.Sprintf("Updated therapy %s", strings.TrimSpace(d.Name)))
}
