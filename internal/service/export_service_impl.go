package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/repository"
	"github.com/xuri/excelize/v2"
)

const statsSheet = "Monthly stats"

type exportService struct {
	stats     StatsService
	employees repository.EmployeeRepo
	exportDir string
	observer  UseCaseObserver
}

func NewExportService(stats StatsService, employees repository.EmployeeRepo, exportDir string, observers ...UseCaseObserver) ExportService {
	return &exportService{
		stats:     stats,
		employees: employees,
		exportDir: exportDir,
		observer:  combineObservers(observers),
	}
}

// MonthlyStats writes the requested months to a single-sheet workbook. An
// empty range still produces a workbook holding only the header rows.
func (s *exportService) MonthlyStats(ctx context.Context, req contract.ExportRequest) (result *contract.ExportResult, err error) {
	uc := startUseCase(s.observer, "export-monthly-stats", map[string]any{"employee_id": req.EmployeeID})
	defer func() { uc.finish(ctx, err) }()

	var emp *domain.Employee
	emp, err = s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	var stats []*domain.MonthlyStats
	stats, err = s.stats.Monthly(ctx, req.StatsRequest)
	if err != nil {
		return nil, err
	}

	path := req.Path
	if path == "" {
		path = filepath.Join(s.exportDir, exportFileName(emp, req.StatsRequest))
	}
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err = writeStatsSheet(f, emp, stats); err != nil {
		return nil, err
	}
	if err = f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("saving workbook: %w", err)
	}

	uc.fields["path"] = path
	uc.fields["months"] = len(stats)
	return &contract.ExportResult{Path: path, Months: len(stats)}, nil
}

func exportFileName(emp *domain.Employee, req contract.StatsRequest) string {
	start, end := req.Range()
	span := "all"
	if start != "" && end != "" {
		span = start + "_" + end
	}
	slug := strings.ToLower(strings.Join(strings.Fields(emp.Name), "-"))
	return fmt.Sprintf("praxis-%d-%s-%s.xlsx", emp.ID, slug, span)
}

func statsHeaders() []any {
	headers := []any{"Month", "Hours", "Work days", "Cost", "Income", "Margin"}
	for _, m := range domain.Modalities {
		headers = append(headers, m.Label())
	}
	return headers
}

func writeStatsSheet(f *excelize.File, emp *domain.Employee, stats []*domain.MonthlyStats) error {
	if err := f.SetSheetName("Sheet1", statsSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	// Built-in number format 2 is "0.00".
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("creating money style: %w", err)
	}

	if err := f.SetCellValue(statsSheet, "A1", emp.Name); err != nil {
		return err
	}
	if err := f.SetCellStyle(statsSheet, "A1", "A1", bold); err != nil {
		return err
	}

	headers := statsHeaders()
	if err := f.SetSheetRow(statsSheet, "A3", &headers); err != nil {
		return fmt.Errorf("writing headers: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(statsSheet, "A3", lastCol+"3", bold); err != nil {
		return err
	}

	for i, st := range stats {
		row := []any{st.Month, st.TotalHours, st.WorkDays, st.Cost, st.GeneratedIncome, st.Margin()}
		for _, m := range domain.Modalities {
			row = append(row, st.Total(m))
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+4)
		if err := f.SetSheetRow(statsSheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s: %w", st.Month, err)
		}
	}
	if len(stats) > 0 {
		last := len(stats) + 3
		if err := f.SetCellStyle(statsSheet, "D4", fmt.Sprintf("F%d", last), money); err != nil {
			return err
		}
	}

	for i := range headers {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		width := 12.0
		if i == 0 {
			width = 20
		}
		if err := f.SetColWidth(statsSheet, colName, colName, width); err != nil {
			return err
		}
	}
	return nil
}
