package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/spf13/cobra"
)

func newTherapyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "therapy",
		Short: "Manage the therapy catalog",
	}

	cmd.AddCommand(
		newTherapyListCmd(app),
		newTherapyAddCmd(app),
		newTherapyUpdateCmd(app),
	)

	return cmd
}

func newTherapyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List therapies with cost and income per session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			therapies, err := app.Client.Therapies(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTherapies(therapies, app.currency()))
			return nil
		},
	}
}

func newTherapyAddCmd(app *App) *cobra.Command {
	var p contract.TherapyParams

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a therapy to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client.AddTherapy(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Added therapy %s", p.TherapyName)))
			return nil
		},
	}

	cmd.Flags().StringVar(&p.TherapyName, "name", "", "Therapy name")
	cmd.Flags().Float64Var(&p.Cost, "cost", 0, "Cost per session")
	cmd.Flags().Float64Var(&p.Income, "income", 0, "Income per session")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("cost")
	_ = cmd.MarkFlagRequired("income")

	return cmd
}

func newTherapyUpdateCmd(app *App) *cobra.Command {
	var name string
	var cost, income float64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a therapy; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("therapy", args[0])
			if err != nil {
				return err
			}
			t, err := findTherapy(cmd.Context(), app, id)
			if err != nil {
				return err
			}

			p := contract.NewUpdateTherapyParams(t)
			flags := cmd.Flags()
			if flags.Changed("name") {
				p.TherapyName = name
			}
			if flags.Changed("cost") {
				p.Cost = cost
			}
			if flags.Changed("income") {
				p.Income = income
			}

			if err := app.Client.UpdateTherapy(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Updated therapy %s", p.TherapyName)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Therapy name")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Cost per session")
	cmd.Flags().Float64Var(&income, "income", 0, "Income per session")

	return cmd
}

// findTherapy looks id up in the catalog; there is no single-therapy command.
func findTherapy(ctx context.Context, app *App, id int64) (*domain.Therapy, error) {
	therapies, err := app.Client.Therapies(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range therapies {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("therapy %d not found", id)
}
