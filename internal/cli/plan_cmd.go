package cli

import (
	"context"
	"fmt"

	"github.com/averyholm/telos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage transfer plans",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List plans",
			RunE: func(cmd *cobra.Command, args []string) error {
				plans, err := app.Plans.List(context.Background())
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatPlanList(plans))
				return nil
			},
		},
		&cobra.Command{
			Use:   "show [plan]",
			Short: "Show a plan's course slots",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				flag := ""
				if len(args) > 0 {
					flag = args[0]
				}
				id, err := resolvePlan(ctx, app, flag)
				if err != nil {
					return err
				}
				plan, err := app.Plans.GetByID(ctx, id)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatPlanDetail(plan))
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <plan>",
			Short: "Delete a plan",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				id, err := resolvePlan(ctx, app, args[0])
				if err != nil {
					return err
				}
				if err := app.Plans.Delete(ctx, id); err != nil {
					return err
				}
				fmt.Println("Plan deleted.")
				return nil
			},
		},
	)

	return cmd
}
