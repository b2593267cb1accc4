package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow is the clock every CLI and TUI test runs at.
var testNow = time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	b := app.New(testutil.NewTestDB(t), app.Options{ExportDir: t.TempDir()})
	return &App{
		Client:   b.Client,
		Invoker:  b.Router,
		Currency: "EUR",
		Now:      func() time.Time { return testNow },
	}
}

// seedEmployee adds an employee through the client and returns its id.
func seedEmployee(t *testing.T, a *App, name string) int64 {
	t.Helper()
	ctx := context.Background()
	avg := 7.5
	require.NoError(t, a.Client.AddEmployee(ctx, contract.AddEmployeeParams{
		Name: name, JoinDate: "2024-01-15", MonthlyRate: 3000, AvgHours: &avg,
	}))
	emps, err := a.Client.Employees(ctx)
	require.NoError(t, err)
	for _, e := range emps {
		if e.Name == name {
			return e.ID
		}
	}
	t.Fatalf("employee %q not found", name)
	return 0
}

func seedPerformance(t *testing.T, a *App, rec *domain.PerformanceRecord) {
	t.Helper()
	require.NoError(t, a.Client.AddPerformance(context.Background(), contract.NewPerformanceParams(rec)))
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func fmtInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// --- Root ---

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	a := testApp(t)
	a.IsInteractive = func() bool { return false }

	out, err := executeCmd(t, a)
	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands")
	assert.Contains(t, out, "employee")
	assert.Contains(t, out, "stats")
}

// --- Employees ---

func TestEmployeeAddAndList(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "employee", "add",
		"--name", "Anna", "--join-date", "2024-01-15", "--monthly-rate", "3000", "--avg-hours", "7.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Added employee Anna")

	out, err = executeCmd(t, a, "employee", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Anna")
	assert.Contains(t, out, "2024-01-15")
	assert.Contains(t, out, "3,000.00")
	assert.Contains(t, out, "7.5h")
}

func TestEmployeeAdd_AvgHoursOptional(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "employee", "add", "--name", "Ben", "--join-date", "2023-05-01", "--monthly-rate", "2500")
	require.NoError(t, err)

	emps, err := a.Client.Employees(context.Background())
	require.NoError(t, err)
	require.Len(t, emps, 1)
	assert.Equal(t, 0.0, emps[0].AvgHours)

	out, err := executeCmd(t, a, "employee", "show", fmtInt(emps[0].ID))
	require.NoError(t, err)
	assert.Contains(t, out, "BEN")
	assert.Contains(t, out, "Average hours: 0h")
}

func TestEmployeeAdd_MissingRequiredFlag(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "employee", "add", "--name", "Anna", "--join-date", "2024-01-15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monthly-rate")
}

func TestEmployeeAdd_InvalidJoinDate(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "employee", "add", "--name", "Anna", "--join-date", "15.01.2024", "--monthly-rate", "3000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestEmployeeUpdate_KeepsUnsetFields(t *testing.T) {
	a := testApp(t)
	empID := seedEmployee(t, a, "Anna")

	out, err := executeCmd(t, a, "employee", "update", fmtInt(empID), "--monthly-rate", "3500")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated employee Anna")

	e, err := a.Client.Employee(context.Background(), empID)
	require.NoError(t, err)
	assert.Equal(t, "Anna", e.Name)
	assert.Equal(t, "2024-01-15", e.JoinDate)
	assert.Equal(t, 3500.0, e.MonthlyRate)
	assert.Equal(t, 7.5, e.AvgHours)
}

func TestEmployeeUpdate_InvalidID(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "employee", "update", "abc", "--name", "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid employee id "abc"`)
}

func TestEmployeeRemove_DropsPerformance(t *testing.T) {
	a := testApp(t)
	empID := seedEmployee(t, a, "Anna")
	seedPerformance(t, a, testutil.NewTestPerformance(empID, "2024-03-01"))

	out, err := executeCmd(t, a, "employee", "remove", fmtInt(empID))
	require.NoError(t, err)
	assert.Contains(t, out, "Removed employee")

	out, err = executeCmd(t, a, "employee", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No employees yet.")

	recs, err := a.Client.AllPerformance(context.Background(), empID)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

// --- Therapies ---

func TestTherapyList_Seeded(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "therapy", "list")
	require.NoError(t, err)
	for _, m := range domain.Modalities {
		assert.Contains(t, out, string(m))
	}
	assert.Contains(t, out, "Margin")
}

func TestTherapyAddAndUpdate(t *testing.T) {
	a := testApp(t)
	ctx := context.Background()

	out, err := executeCmd(t, a, "therapy", "add", "--name", "massage", "--cost", "20", "--income", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "Added therapy massage")

	therapies, err := a.Client.Therapies(ctx)
	require.NoError(t, err)
	var massage *domain.Therapy
	for _, th := range therapies {
		if th.Name == "massage" {
			massage = th
		}
	}
	require.NotNil(t, massage)

	_, err = executeCmd(t, a, "therapy", "update", fmtInt(massage.ID), "--income", "80")
	require.NoError(t, err)

	updated, err := findTherapy(ctx, a, massage.ID)
	require.NoError(t, err)
	assert.Equal(t, "massage", updated.Name)
	assert.Equal(t, 20.0, updated.Cost)
	assert.Equal(t, 80.0, updated.Income)
}

func TestTherapyUpdate_NotFound(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "therapy", "update", "999", "--cost", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "therapy 999 not found")
}

// --- Performance ---

func TestPerfLog_AddsThenUpdates(t *testing.T) {
	a := testApp(t)
	ctx := context.Background()
	empID := seedEmployee(t, a, "Anna")

	out, err := executeCmd(t, a, "perf", "log", "--employee", fmtInt(empID), "--date", "2024-03-04",
		"--hours", "7.5", "--income", "240", "--count", "kg=3", "--count", "MLD 45=1")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged 2024-03-04")

	out, err = executeCmd(t, a, "perf", "log", "--employee", fmtInt(empID), "--date", "2024-03-04",
		"--status", "krank", "--count", "kg=4")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated 2024-03-04")

	recs, err := a.Client.AllPerformance(ctx, empID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, 7.5, rec.HoursWorked)
	assert.Equal(t, 240.0, rec.Income)
	assert.Equal(t, domain.StatusSick, rec.Status)
	assert.Equal(t, 4, rec.KG)
	assert.Equal(t, 1, rec.MLD45)
}

func TestPerfLog_DefaultsToToday(t *testing.T) {
	a := testApp(t)
	empID := seedEmployee(t, a, "Anna")

	_, err := executeCmd(t, a, "perf", "log", "--employee", fmtInt(empID), "--hours", "8", "--income", "100")
	require.NoError(t, err)

	recs, err := a.Client.Performance(context.Background(), empID, "2024-03-05")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestPerfLog_NewDayNeedsHoursAndIncome(t *testing.T) {
	a := testApp(t)
	empID := seedEmployee(t, a, "Anna")

	_, err := executeCmd(t, a, "perf", "log", "--employee", fmtInt(empID), "--hours", "8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--hours and --income are required")
}

func TestPerfLog_RejectsBadInput(t *testing.T) {
	a := testApp(t)
	empID := seedEmployee(t, a, "Anna")
	base := []string{"perf", "log", "--employee", fmtInt(empID), "--hours", "8", "--income", "100"}

	tests := []struct {
		name  string
		extra []string
		want  string
	}{
		{"unknown modality", []string{"--count", "yoga=1"}, `unknown modality "yoga"`},
		{"negative count", []string{"--count", "kg=-1"}, "must not be negative"},
		{"unknown status", []string{"--status", "busy"}, "unknown status"},
		{"bad date", []string{"--date", "2024-3-5"}, "YYYY-MM-DD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, a, append(append([]string{}, base...), tt.extra...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPerfList(t *testing.T) {
	a := testApp(t)
	empID := seedEmployee(t, a, "Anna")
	seedPerformance(t, a, testutil.NewTestPerformance(empID, "2024-03-01", testutil.WithCount(domain.ModalityFango, 2)))
	seedPerformance(t, a, testutil.NewTestPerformance(empID, "2024-03-02", testutil.WithStatus(domain.StatusVacation)))

	out, err := executeCmd(t, a, "perf", "list", "--employee", fmtInt(empID))
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "2024-03-02")
	assert.Contains(t, out, "Fango")

	out, err = executeCmd(t, a, "perf", "list", "--employee", fmtInt(empID), "--date", "2024-03-02")
	require.NoError(t, err)
	assert.NotContains(t, out, "2024-03-01")
	assert.Contains(t, out, "● Vacation")
}

// --- Stats and export ---

func seedStats(t *testing.T, a *App) int64 {
	t.Helper()
	empID := seedEmployee(t, a, "Anna")
	seedPerformance(t, a, testutil.NewTestPerformance(empID, "2024-04-02", testutil.WithHours(8), testutil.WithCount(domain.ModalityKG, 2)))
	seedPerformance(t, a, testutil.NewTestPerformance(empID, "2024-04-03", testutil.WithHours(7.25)))
	seedPerformance(t, a, testutil.NewTestPerformance(empID, "2024-05-06", testutil.WithHours(6), testutil.WithCount(domain.ModalityMT, 1)))
	return empID
}

func TestStats_Range(t *testing.T) {
	a := testApp(t)
	empID := seedStats(t, a)

	out, err := executeCmd(t, a, "stats", "--employee", fmtInt(empID), "--from", "2024-04", "--to", "2024-05", "--sessions", "--chart")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-04")
	assert.Contains(t, out, "2024-05")
	assert.Contains(t, out, "15.2")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "KG 2")
	assert.Contains(t, out, "Employee cost")

	out, err = executeCmd(t, a, "stats", "--employee", fmtInt(empID), "--from", "2024-05", "--to", "2024-05")
	require.NoError(t, err)
	assert.NotContains(t, out, "2024-04")
	assert.NotContains(t, out, "Total")
}

func TestStats_NoData(t *testing.T) {
	a := testApp(t)
	empID := seedStats(t, a)

	out, err := executeCmd(t, a, "stats", "--employee", fmtInt(empID), "--from", "2023-01", "--to", "2023-02")
	require.NoError(t, err)
	assert.Contains(t, out, "No stats available for this range.")
}

func TestStats_InvalidRange(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "stats", "--employee", "1", "--from", "2024-13")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2024-13")

	_, err = executeCmd(t, a, "stats", "--employee", "1", "--from", "2024-05", "--to", "2024-04")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is before")
}

func TestExport_WritesWorkbook(t *testing.T) {
	a := testApp(t)
	empID := seedStats(t, a)
	path := filepath.Join(t.TempDir(), "anna.xlsx")

	out, err := executeCmd(t, a, "export", "--employee", fmtInt(empID), "--from", "2024-04", "--to", "2024-04", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 month(s) to "+path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// --- Import ---

const importFile = `{
	"employees": [{"ref": "anna", "name": "Anna Berg", "join_date": "2024-01-15", "monthly_rate": 3000}],
	"therapies": [{"therapy_name": "massage", "cost": 15, "income": 40}],
	"performance": [
		{"employee_ref": "anna", "date": "2024-03-01", "hours_worked": 8, "income": 240, "counts": {"kg": 3}},
		{"employee_ref": "anna", "date": "2024-03-04", "status": "Urlaub"}
	]
}`

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "practice.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImport_StoresFile(t *testing.T) {
	a := testApp(t)
	path := writeImportFile(t, importFile)

	out, err := executeCmd(t, a, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 employee(s), 2 day(s); therapies: 1 added, 0 updated")

	out, err = executeCmd(t, a, "employee", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Anna Berg")
}

func TestImport_CheckStoresNothing(t *testing.T) {
	a := testApp(t)
	path := writeImportFile(t, importFile)

	out, err := executeCmd(t, a, "import", path, "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid: 1 employee(s), 1 therapy(ies), 2 day(s)")

	emps, err := a.Client.Employees(context.Background())
	require.NoError(t, err)
	assert.Empty(t, emps)
}

func TestImport_ValidationErrors(t *testing.T) {
	a := testApp(t)
	path := writeImportFile(t, `{"performance": [{"employee_ref": "ghost", "date": "2024-3-1"}]}`)

	out, err := executeCmd(t, a, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 2 validation error(s)")
	assert.Contains(t, out, `ref "ghost" not found in employees`)
	assert.Contains(t, out, "invalid date format")
}

func TestImport_BadFile(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = executeCmd(t, a, "import", writeImportFile(t, `{"staff": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")
}

// --- Invoke ---

func TestInvoke_ReturnsJSON(t *testing.T) {
	a := testApp(t)
	empID := seedEmployee(t, a, "Anna")

	out, err := executeCmd(t, a, "invoke", "get_employee_name", `{"id": `+fmtInt(empID)+`}`)
	require.NoError(t, err)
	assert.Equal(t, `"Anna"`, strings.TrimSpace(out))

	out, err = executeCmd(t, a, "invoke", "get_employees")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Anna"`)
	assert.Contains(t, out, `"monthly_rate": 3000`)
}

func TestInvoke_ParamsFromStdin(t *testing.T) {
	a := testApp(t)
	empID := seedEmployee(t, a, "Anna")
	seedPerformance(t, a, testutil.NewTestPerformance(empID, "2024-03-01"))

	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(`{"employeeId": ` + fmtInt(empID) + `}`))
	root.SetArgs([]string{"invoke", "get_all_performance", "-"})
	require.NoError(t, root.Execute())

	assert.Contains(t, buf.String(), `"date": "2024-03-01"`)
}

func TestInvoke_Errors(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "invoke", "get_employee_name", "{not json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")

	_, err = executeCmd(t, a, "invoke", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: nope")
}

func TestInvoke_List(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "invoke", "--list")
	require.NoError(t, err)
	for _, name := range contract.Commands {
		assert.Contains(t, out, name)
	}
}
