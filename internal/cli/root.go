package cli

import (
	"github.com/averyholm/telos/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Programs service.ProgramService
	Plans    service.PlanService
	Catalog  service.CatalogService
	Progress service.ProgressService
	Suggest  service.SuggestService
	Import   service.ImportService
	// Interactive is set when stdout is a terminal; pickers and the TUI
	// require it.
	Interactive bool
}

// NewRootCmd creates the top-level "telos" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "telos",
		Short: "Degree progress tracker for transfer plans",
	}

	root.AddCommand(
		newProgressCmd(app),
		newSegmentsCmd(app),
		newSuggestCmd(app),
		newImportCmd(app),
		newPlanCmd(app),
		newProgramCmd(app),
		newCatalogCmd(app),
		newTUICmd(app),
	)

	return root
}
