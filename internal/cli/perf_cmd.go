package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/spf13/cobra"
)

func newPerfCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "perf",
		Aliases: []string{"performance"},
		Short:   "View and log daily performance",
	}

	cmd.AddCommand(
		newPerfListCmd(app),
		newPerfLogCmd(app),
	)

	return cmd
}

func newPerfListCmd(app *App) *cobra.Command {
	var employeeID int64
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an employee's performance records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []*domain.PerformanceRecord
			var err error
			if date != "" {
				if _, err := domain.ParseDate(date); err != nil {
					return err
				}
				records, err = app.Client.Performance(cmd.Context(), employeeID, date)
			} else {
				records, err = app.Client.AllPerformance(cmd.Context(), employeeID)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPerformance(records, app.currency()))
			return nil
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee ID")
	cmd.Flags().StringVar(&date, "date", "", "Only this day (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}

// newPerfLogCmd records one day. An existing record for the day is updated
// in place and keeps every value whose flag is not given.
func newPerfLogCmd(app *App) *cobra.Command {
	var employeeID int64
	var date, status string
	var hours, income float64
	var counts map[string]int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log or correct one day of performance",
		Example: "  praxis perf log --employee 1 --hours 7.5 --income 240 --count kg=3 --count mld_45=1\n" +
			"  praxis perf log --employee 1 --date 2024-03-05 --status Sick --hours 0 --income 0",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()
			if date == "" {
				date = domain.FormatDate(app.now())
			}
			if _, err := domain.ParseDate(date); err != nil {
				return err
			}

			existing, err := app.Client.Performance(ctx, employeeID, date)
			if err != nil {
				return err
			}
			rec := &domain.PerformanceRecord{EmployeeID: employeeID, Date: date, Status: domain.StatusPresent}
			if len(existing) > 0 {
				rec = existing[0]
			} else if !flags.Changed("hours") || !flags.Changed("income") {
				return fmt.Errorf("--hours and --income are required when logging a new day")
			}

			if flags.Changed("hours") {
				rec.HoursWorked = hours
			}
			if flags.Changed("income") {
				rec.Income = income
			}
			if flags.Changed("status") {
				st, err := domain.ParseStatus(status)
				if err != nil {
					return err
				}
				rec.Status = st
			}
			if err := applyCounts(rec, counts); err != nil {
				return err
			}

			verb := "Logged"
			if rec.ID != 0 {
				verb = "Updated"
				err = app.Client.UpdatePerformance(ctx, contract.NewUpdatePerformanceParams(rec))
			} else {
				err = app.Client.AddPerformance(ctx, contract.NewPerformanceParams(rec))
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("%s %s for employee %d", verb, date, employeeID)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee ID")
	cmd.Flags().StringVar(&date, "date", "", "Day to log (YYYY-MM-DD, default today)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours worked")
	cmd.Flags().Float64Var(&income, "income", 0, "Income of the day")
	cmd.Flags().StringVar(&status, "status", string(domain.StatusPresent), "Attendance status: "+statusNames())
	cmd.Flags().StringToIntVar(&counts, "count", nil, "Sessions per modality, e.g. kg=3 (repeatable)")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}

func applyCounts(rec *domain.PerformanceRecord, counts map[string]int) error {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		m, ok := lookupModality(k)
		if !ok {
			return fmt.Errorf("unknown modality %q", k)
		}
		if counts[k] < 0 {
			return fmt.Errorf("count for %s must not be negative", m.Label())
		}
		rec.SetCount(m, counts[k])
	}
	return nil
}

// lookupModality accepts a modality key ("mld_45") or its label ("MLD 45"),
// ignoring case and separators.
func lookupModality(s string) (domain.Modality, bool) {
	squash := strings.NewReplacer("_", "", " ", "", "-", "")
	want := squash.Replace(strings.ToLower(s))
	for _, m := range domain.Modalities {
		if squash.Replace(string(m)) == want {
			return m, true
		}
	}
	return "", false
}

func statusNames() string {
	names := make([]string, len(domain.Statuses))
	for i, s := range domain.Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
