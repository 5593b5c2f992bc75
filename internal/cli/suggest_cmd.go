package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/cli/formatter"
	"github.com/averyholm/telos/internal/contract"
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App) *cobra.Command {
	var planFlag, groupFlag string
	var maxFlag int

	cmd := &cobra.Command{
		Use:   "suggest [category]",
		Short: "Suggest catalog courses for an unmet requirement",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			planID, err := resolvePlan(ctx, app, planFlag)
			if err != nil {
				return err
			}

			category := ""
			if len(args) > 0 {
				category = strings.TrimSpace(args[0])
			}
			if category == "" {
				category, err = pickRequirement(ctx, app, planID)
				if err != nil {
					return err
				}
			}

			req := contract.NewSuggestRequest(planID, category)
			req.GroupID = groupFlag
			if maxFlag > 0 {
				req.MaxResults = maxFlag
			}

			resp, err := app.Suggest.Suggest(ctx, req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSuggestions(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&planFlag, "plan", "", "Plan ID, ID prefix, or name")
	cmd.Flags().StringVar(&groupFlag, "group", "", "Restrict to one requirement group ID")
	cmd.Flags().IntVar(&maxFlag, "max", 0, "Maximum number of suggestions")

	return cmd
}

// pickRequirement prompts for a requirement category when none was given.
// Falls back to an error in non-interactive runs.
func pickRequirement(ctx context.Context, app *App, planID string) (string, error) {
	if !app.Interactive {
		return "", fmt.Errorf("a requirement category is required")
	}

	plan, err := app.Plans.GetByID(ctx, planID)
	if err != nil {
		return "", fmt.Errorf("loading plan: %w", err)
	}
	program, err := app.Programs.GetByID(ctx, plan.ProgramID)
	if err != nil {
		return "", fmt.Errorf("loading program: %w", err)
	}
	if len(program.Requirements) == 0 {
		return "", fmt.Errorf("program %q has no requirements", program.Name)
	}

	form, result := requirementSelectForm(program.Requirements)
	if err := form.Run(); err != nil {
		return "", err
	}
	return *result, nil
}
