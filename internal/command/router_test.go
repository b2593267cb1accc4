package command

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoke(t *testing.T, r *Router, name, params string) string {
	t.Helper()
	out, err := r.Invoke(context.Background(), name, json.RawMessage(params))
	require.NoError(t, err, "%s %s", name, params)
	return string(out)
}

func TestRouter_RegistersEveryCommand(t *testing.T) {
	r, _ := newTestRouter(t)
	assert.ElementsMatch(t, contract.Commands, r.Names())
}

func TestRouter_UnknownCommand(t *testing.T) {
	r, _ := newTestRouter(t)

	_, err := r.Invoke(context.Background(), "drop_tables", nil)
	require.Error(t, err)
	assert.Equal(t, "unknown command: drop_tables", err.Error())

	var cmdErr *Error
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "drop_tables", cmdErr.Command)
}

func TestRouter_InvalidParameters(t *testing.T) {
	r, _ := newTestRouter(t)

	_, err := r.Invoke(context.Background(), contract.CmdAddEmployee, json.RawMessage(`{"name": 5}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid parameters for add_employee")
}

func TestRouter_EmployeeLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Equal(t, "[]", invoke(t, r, contract.CmdGetEmployees, ""))
	assert.Equal(t, "null", invoke(t, r, contract.CmdAddEmployee,
		`{"name":"Anna","joinDate":"2024-01-15","monthlyRate":3000,"avgHours":7.5}`))

	list := invoke(t, r, contract.CmdGetEmployees, "null")
	assert.JSONEq(t, `[{"id":1,"name":"Anna","join_date":"2024-01-15","monthly_rate":3000,"avg_hours":7.5}]`, list)

	assert.Equal(t, `"Anna"`, invoke(t, r, contract.CmdGetEmployeeName, `{"id":1}`))
	assert.Equal(t, `"7.5"`, invoke(t, r, contract.CmdGetEmployeeAvgHours, `{"id":1}`))

	invoke(t, r, contract.CmdUpdateEmployee,
		`{"id":1,"name":"Anna Berg","joinDate":"2024-01-15","monthlyRate":3100,"avgHours":8}`)
	assert.Equal(t, `"8"`, invoke(t, r, contract.CmdGetEmployeeAvgHours, `{"id":1}`))

	invoke(t, r, contract.CmdDeleteEmployee, `{"employeeId":1}`)
	assert.Equal(t, "[]", invoke(t, r, contract.CmdGetEmployees, ""))
}

func TestRouter_ValidationFailureIsReadable(t *testing.T) {
	r, _ := newTestRouter(t)

	_, err := r.Invoke(context.Background(), contract.CmdAddEmployee, json.RawMessage(`{"joinDate":"2024-01-15","monthlyRate":1}`))
	require.Error(t, err)
	assert.Equal(t, "invalid input: name is required", err.Error())
}

func TestRouter_UpdateEmployeeRequiresAvgHours(t *testing.T) {
	r, _ := newTestRouter(t)
	invoke(t, r, contract.CmdAddEmployee,
		`{"name":"Anna","joinDate":"2024-01-15","monthlyRate":3000,"avgHours":7.5}`)

	_, err := r.Invoke(context.Background(), contract.CmdUpdateEmployee,
		json.RawMessage(`{"id":1,"name":"Anna","joinDate":"2024-01-15","monthlyRate":3000}`))
	require.Error(t, err)
	assert.Equal(t, "invalid input: avgHours is required", err.Error())
	assert.Equal(t, `"7.5"`, invoke(t, r, contract.CmdGetEmployeeAvgHours, `{"id":1}`))
}

func TestRouter_MissingEmployeeName(t *testing.T) {
	r, _ := newTestRouter(t)

	_, err := r.Invoke(context.Background(), contract.CmdGetEmployeeName, json.RawMessage(`{"id":3}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRouter_PerformanceAndStats(t *testing.T) {
	r, _ := newTestRouter(t)
	invoke(t, r, contract.CmdAddEmployee, `{"name":"Anna","joinDate":"2024-01-15","monthlyRate":3000}`)

	invoke(t, r, contract.CmdAddPerformance, `{"employeeId":1,"date":"2024-03-05","hoursWorked":8,"status":"Present","income":200,"kgNum":2,"mld45Num":1}`)
	invoke(t, r, contract.CmdAddPerformance, `{"employeeId":1,"date":"2024-03-01","hoursWorked":0,"status":"Urlaub","income":0}`)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(invoke(t, r, contract.CmdGetAllPerformance, `{"employeeId":1}`)), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "2024-03-01", records[0]["date"])
	assert.Equal(t, "Vacation", records[0]["status"])
	assert.EqualValues(t, 1, records[1]["mld_45_num"])

	invoke(t, r, contract.CmdUpdatePerformance, `{"id":2,"employeeId":1,"date":"2024-03-01","hoursWorked":4,"status":"Present","income":50,"hbNum":1}`)

	one := invoke(t, r, contract.CmdGetPerformance, `{"employeeId":1,"date":"2024-03-01"}`)
	assert.Contains(t, one, `"hb_num":1`)

	var stats []map[string]any
	require.NoError(t, json.Unmarshal([]byte(invoke(t, r, contract.CmdGetMonthlyStats,
		`{"employeeId":1,"startMonth":"2024-03","endMonth":"2024-03"}`)), &stats))
	require.Len(t, stats, 1)
	assert.Equal(t, "2024-03", stats[0]["month"])
	assert.EqualValues(t, 12, stats[0]["total_hours"])
	assert.EqualValues(t, 2, stats[0]["work_days"])
	assert.EqualValues(t, 3000, stats[0]["cost"])
	assert.EqualValues(t, 400, stats[0]["generated_income"], "kg×2 + mld_45×1 + hb×1 at 100 each")
}

func TestRouter_EmptyStatsIsEmptyList(t *testing.T) {
	r, _ := newTestRouter(t)
	invoke(t, r, contract.CmdAddEmployee, `{"name":"Anna","joinDate":"2024-01-15","monthlyRate":3000}`)

	assert.Equal(t, "[]", invoke(t, r, contract.CmdGetMonthlyStats, `{"employeeId":1,"startMonth":"2020-01","endMonth":"2020-02"}`))
}

func TestRouter_TherapyCommands(t *testing.T) {
	r, _ := newTestRouter(t)

	invoke(t, r, contract.CmdAddTherapy, `{"therapyName":"Massage","cost":20,"income":55}`)
	_, err := r.Invoke(context.Background(), contract.CmdAddTherapy, json.RawMessage(`{"therapyName":"Massage","cost":20,"income":55}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	invoke(t, r, contract.CmdUpdateTherapy, `{"id":10,"therapyName":"Massage","cost":25,"income":60}`)

	var therapies []map[string]any
	require.NoError(t, json.Unmarshal([]byte(invoke(t, r, contract.CmdGetAllTherapies, "")), &therapies))
	require.Len(t, therapies, 10)
	assert.Equal(t, "Massage", therapies[9]["therapy_name"])
	assert.EqualValues(t, 60, therapies[9]["income"])
}

func TestRouter_LogsInvocationsWithRequestID(t *testing.T) {
	r, logs := newTestRouter(t)

	invoke(t, r, contract.CmdGetEmployees, "")
	_, _ = r.Invoke(context.Background(), "nope", nil)

	out := logs.String()
	assert.Contains(t, out, "msg=command_completed")
	assert.Contains(t, out, "command=get_employees")
	assert.Contains(t, out, "msg=command_failed")
	assert.Contains(t, out, "request_id=")
}

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func TestRouter_ImportData(t *testing.T) {
	r, _ := newTestRouter(t)

	out := invoke(t, r, contract.CmdImportData, `{
		"employees": [{"ref": "anna", "name": "Anna", "join_date": "2024-01-15", "monthly_rate": 3000}],
		"therapies": [{"therapy_name": "kg", "cost": 20, "income": 45}],
		"performance": [{"employee_ref": "anna", "date": "2024-03-01", "hours_worked": 8, "income": 240, "counts": {"kg": 2}}]
	}`)
	assert.JSONEq(t, `{"employees":1,"therapiesAdded":0,"therapiesUpdated":1,"performance":1}`, out)

	_, err := r.Invoke(context.Background(), contract.CmdImportData, json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains no employees")
}
