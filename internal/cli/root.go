package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/command"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds what CLI commands and TUI views need to reach the backend.
// Every operation goes through the named-command boundary.
type App struct {
	Client  *command.Client
	Invoker command.Invoker

	// Currency is the ISO code money amounts are displayed in.
	Currency string

	// Now overrides the clock in tests.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. When it is, running
	// praxis without arguments opens the TUI.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) currency() string {
	if a.Currency == "" {
		return formatter.DefaultCurrency
	}
	return a.Currency
}

// NewRootCmd creates the top-level "praxis" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "praxis",
		Short:        "Staff, therapy and daily performance tracker for a therapy practice",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newEmployeeCmd(app),
		newTherapyCmd(app),
		newPerfCmd(app),
		newStatsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newInvokeCmd(app),
		newTUICmd(app),
	)

	return root
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}

func runTUI(app *App) error {
	_, err := tea.NewProgram(newAppModel(app), tea.WithAltScreen()).Run()
	return err
}

func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, s)
	}
	return id, nil
}
