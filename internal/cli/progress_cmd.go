package cli

import (
	"context"
	"fmt"

	"github.com/averyholm/telos/internal/cli/formatter"
	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	var planFlag, filterFlag, institutionFlag string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show requirement progress for a plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			planID, err := resolvePlan(ctx, app, planFlag)
			if err != nil {
				return err
			}

			req := contract.NewProgressRequest(planID)
			if filterFlag != "" {
				req.Filter = domain.ViewFilter(filterFlag)
			}
			req.CurrentInstitution = institutionFlag

			resp, err := app.Progress.GetProgress(ctx, req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatProgress(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&planFlag, "plan", "", "Plan ID, ID prefix, or name")
	cmd.Flags().StringVar(&filterFlag, "filter", "", "View filter: all, planned, in_progress, completed")
	cmd.Flags().StringVar(&institutionFlag, "institution", "", "Override the attributed current institution")

	return cmd
}
