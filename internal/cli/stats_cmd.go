package cli

import (
	"fmt"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// monthFlag is a YYYY-MM flag value.
type monthFlag struct {
	month domain.Month
	set   bool
}

var _ pflag.Value = (*monthFlag)(nil)

func (f *monthFlag) String() string {
	if !f.set {
		return ""
	}
	return f.month.String()
}

func (f *monthFlag) Set(s string) error {
	m, err := domain.ParseMonth(s)
	if err != nil {
		return err
	}
	f.month, f.set = m, true
	return nil
}

func (f *monthFlag) Type() string { return "month" }

func (f *monthFlag) ptr() *string {
	if !f.set {
		return nil
	}
	s := f.month.String()
	return &s
}

// monthRange holds the --from/--to pair shared by stats and export.
type monthRange struct {
	from, to monthFlag
}

func (r *monthRange) register(cmd *cobra.Command) {
	cmd.Flags().Var(&r.from, "from", "First month (YYYY-MM)")
	cmd.Flags().Var(&r.to, "to", "Last month (YYYY-MM)")
}

// request builds the stats request. Without both ends every month with
// records is included.
func (r *monthRange) request(employeeID int64) (contract.StatsRequest, error) {
	if r.from.set && r.to.set && r.to.month.Before(r.from.month) {
		return contract.StatsRequest{}, fmt.Errorf("--to %s is before --from %s", r.to.String(), r.from.String())
	}
	return contract.StatsRequest{
		EmployeeID: employeeID,
		StartMonth: r.from.ptr(),
		EndMonth:   r.to.ptr(),
	}, nil
}

func newStatsCmd(app *App) *cobra.Command {
	var employeeID int64
	var rng monthRange
	var chart, sessions bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show monthly hours, income and cost for an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := rng.request(employeeID)
			if err != nil {
				return err
			}
			stats, err := app.Client.MonthlyStats(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatMonthlyStats(stats, app.currency()))
			if sessions {
				for _, s := range stats {
					fmt.Fprintf(out, "%s  %s\n", formatter.Bold(s.Month), formatter.FormatModalityTotals(s))
				}
			}
			if chart && len(stats) > 0 {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.RenderStatsChart(stats, 30, app.currency()))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee ID")
	rng.register(cmd)
	cmd.Flags().BoolVar(&chart, "chart", false, "Draw a cost/income bar chart")
	cmd.Flags().BoolVar(&sessions, "sessions", false, "List session totals per modality")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var employeeID int64
	var rng monthRange
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export monthly stats to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := rng.request(employeeID)
			if err != nil {
				return err
			}
			res, err := app.Client.ExportMonthlyStats(cmd.Context(), contract.ExportRequest{StatsRequest: req, Path: out})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Exported %d month(s) to %s", res.Months, res.Path)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee ID")
	rng.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output .xlsx path (default: a generated name in the export directory)")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}
