package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	var planFlag string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive progress dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("the dashboard needs a terminal")
			}

			planID, err := resolvePlan(context.Background(), app, planFlag)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newDashboardModel(app, planID), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&planFlag, "plan", "", "Plan ID, ID prefix, or name")

	return cmd
}
