package cli

import (
	"context"
	"fmt"

	"github.com/averyholm/telos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a program, plan, and catalog from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportProgram(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported %s (%s)\n",
				formatter.Bold(result.Program.Name),
				formatter.InstitutionBadge(result.Program.Institution))
			fmt.Printf("  %d requirements\n", result.RequirementCount)
			if result.Plan != nil {
				fmt.Printf("  plan %q with %d courses\n", result.Plan.Name, result.PlanCourseCount)
			}
			if result.CatalogCount > 0 {
				fmt.Printf("  %d catalog courses\n", result.CatalogCount)
			}
			if result.EquivalencyCount > 0 {
				fmt.Printf("  %d equivalencies\n", result.EquivalencyCount)
			}
			return nil
		},
	}
}
