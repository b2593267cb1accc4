package contract

// Names of the backend commands. Views address the backend only by these.
const (
	CmdGetEmployees        = "get_employees"
	CmdGetEmployee         = "get_employee"
	CmdAddEmployee         = "add_employee"
	CmdUpdateEmployee      = "update_employee"
	CmdDeleteEmployee      = "delete_employee"
	CmdGetEmployeeName     = "get_employee_name"
	CmdGetEmployeeAvgHours = "get_employee_avg_hours"
	CmdGetAllTherapies     = "get_all_therapies"
	CmdAddTherapy          = "add_therapy"
	CmdUpdateTherapy       = "update_therapy"
	CmdGetAllPerformance   = "get_all_performance"
	CmdGetPerformance      = "get_performance"
	CmdAddPerformance      = "add_performance"
	CmdUpdatePerformance   = "update_performance"
	CmdGetMonthlyStats     = "get_monthly_stats"
	CmdExportMonthlyStats  = "export_monthly_stats"
	CmdImportData          = "import_data"
)

// Commands lists every command name in documentation order.
var Commands = []string{
	CmdGetEmployees, CmdGetEmployee, CmdAddEmployee, CmdUpdateEmployee, CmdDeleteEmployee,
	CmdGetEmployeeName, CmdGetEmployeeAvgHours,
	CmdGetAllTherapies, CmdAddTherapy, CmdUpdateTherapy,
	CmdGetAllPerformance, CmdGetPerformance, CmdAddPerformance, CmdUpdatePerformance,
	CmdGetMonthlyStats, CmdExportMonthlyStats, CmdImportData,
}
