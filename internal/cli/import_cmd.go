package cli

import (
	"fmt"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import employees, therapies and performance days from a JSON file",
		Long: "Import a practice data file. Employees get a file-local \"ref\" that\n" +
			"performance entries point at with \"employee_ref\"; existing employees\n" +
			"are named with \"employee_id\". Therapies with a known name are updated.\n" +
			"The whole file is stored in one transaction.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(out, formatter.ErrorLine(e.Error()))
				}
				return fmt.Errorf("%s has %d validation error(s)", args[0], len(errs))
			}
			if check {
				fmt.Fprintln(out, formatter.Success(fmt.Sprintf("%s is valid: %d employee(s), %d therapy(ies), %d day(s)",
					args[0], len(schema.Employees), len(schema.Therapies), len(schema.Performance))))
				return nil
			}

			res, err := app.Client.ImportData(cmd.Context(), schema)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			fmt.Fprintln(out, formatter.Success(fmt.Sprintf(
				"Imported %d employee(s), %d day(s); therapies: %d added, %d updated",
				res.Employees, res.Performance, res.TherapiesAdded, res.TherapiesUpdated)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Validate the file without storing anything")

	return cmd
}
