package cli

import (
	"context"
	"fmt"

	"github.com/averyholm/telos/internal/cli/formatter"
	"github.com/averyholm/telos/internal/contract"
	"github.com/spf13/cobra"
)

func newSegmentsCmd(app *App) *cobra.Command {
	var planFlag, filterFlag string

	cmd := &cobra.Command{
		Use:   "segments",
		Short: "Show the proportional degree track layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			planID, err := resolvePlan(ctx, app, planFlag)
			if err != nil {
				return err
			}

			resp, err := app.Progress.GetSegments(ctx, contract.SegmentsRequest{
				PlanID: planID,
				Filter: filterFlag,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSegments(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&planFlag, "plan", "", "Plan ID, ID prefix, or name")
	cmd.Flags().StringVar(&filterFlag, "filter", "", "View filter: all, planned, in_progress, completed")

	return cmd
}
