package cli

import (
	"fmt"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/spf13/cobra"
)

func newEmployeeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employee",
		Aliases: []string{"emp"},
		Short:   "Manage employees",
	}

	cmd.AddCommand(
		newEmployeeListCmd(app),
		newEmployeeShowCmd(app),
		newEmployeeAddCmd(app),
		newEmployeeUpdateCmd(app),
		newEmployeeRemoveCmd(app),
	)

	return cmd
}

func newEmployeeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			emps, err := app.Client.Employees(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEmployees(emps, app.currency()))
			return nil
		},
	}
}

func newEmployeeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an employee's name and average daily hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("employee", args[0])
			if err != nil {
				return err
			}
			name, err := app.Client.EmployeeName(cmd.Context(), id)
			if err != nil {
				return err
			}
			avg, err := app.Client.EmployeeAvgHours(cmd.Context(), id)
			if err != nil {
				return err
			}
			body := fmt.Sprintf("%s %d\n%s %sh", formatter.Dim("ID:"), id, formatter.Dim("Average hours:"), avg)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(name, body))
			return nil
		},
	}
}

func newEmployeeAddCmd(app *App) *cobra.Command {
	var name, joinDate string
	var rate, avg float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := domain.ParseDate(joinDate); err != nil {
				return err
			}
			p := contract.AddEmployeeParams{Name: name, JoinDate: joinDate, MonthlyRate: rate}
			if cmd.Flags().Changed("avg-hours") {
				p.AvgHours = &avg
			}
			if err := app.Client.AddEmployee(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Added employee %s", name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Employee name")
	cmd.Flags().StringVar(&joinDate, "join-date", "", "Join date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&rate, "monthly-rate", 0, "Monthly cost of the employee")
	cmd.Flags().Float64Var(&avg, "avg-hours", 0, "Average working hours per day")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("join-date")
	_ = cmd.MarkFlagRequired("monthly-rate")

	return cmd
}

func newEmployeeUpdateCmd(app *App) *cobra.Command {
	var name, joinDate string
	var rate, avg float64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("employee", args[0])
			if err != nil {
				return err
			}
			e, err := app.Client.Employee(cmd.Context(), id)
			if err != nil {
				return err
			}

			p := contract.NewUpdateEmployeeParams(e)
			flags := cmd.Flags()
			if flags.Changed("name") {
				p.Name = name
			}
			if flags.Changed("join-date") {
				if _, err := domain.ParseDate(joinDate); err != nil {
					return err
				}
				p.JoinDate = joinDate
			}
			if flags.Changed("monthly-rate") {
				p.MonthlyRate = rate
			}
			if flags.Changed("avg-hours") {
				p.AvgHours = &avg
			}

			if err := app.Client.UpdateEmployee(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Updated employee %s", p.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Employee name")
	cmd.Flags().StringVar(&joinDate, "join-date", "", "Join date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&rate, "monthly-rate", 0, "Monthly cost of the employee")
	cmd.Flags().Float64Var(&avg, "avg-hours", 0, "Average working hours per day")

	return cmd
}

func newEmployeeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an employee and their performance records",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("employee", args[0])
			if err != nil {
				return err
			}
			if err := app.Client.DeleteEmployee(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Removed employee %d", id)))
			return nil
		},
	}
}
