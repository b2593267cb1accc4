package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/spf13/cobra"
)

// newInvokeCmd exposes the raw command boundary: a command name and a JSON
// parameter object in, the JSON result out.
func newInvokeCmd(app *App) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "invoke <command> [params-json | -]",
		Short: "Call a backend command with JSON parameters",
		Example: `  praxis invoke get_employees
  praxis invoke get_employee_name '{"id": 1}'
  echo '{"employeeId": 1}' | praxis invoke get_all_performance -`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, name := range contract.Commands {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			var params json.RawMessage
			if len(args) == 2 {
				raw := []byte(args[1])
				if args[1] == "-" {
					b, err := io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return fmt.Errorf("reading parameters: %w", err)
					}
					raw = b
				}
				raw = bytes.TrimSpace(raw)
				if len(raw) > 0 && !json.Valid(raw) {
					return fmt.Errorf("parameters are not valid JSON")
				}
				params = raw
			}

			res, err := app.Invoker.Invoke(cmd.Context(), strings.TrimSpace(args[0]), params)
			if err != nil {
				return err
			}
			if len(res) == 0 {
				return nil
			}
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, res, "", "  "); err != nil {
				return fmt.Errorf("formatting result: %w", err)
			}
			fmt.Fprintln(out, pretty.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List the available commands")

	return cmd
}
