package cli

import (
	"context"
	"fmt"

	"github.com/averyholm/telos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgramCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "Manage degree programs",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List programs",
			RunE: func(cmd *cobra.Command, args []string) error {
				programs, err := app.Programs.List(context.Background())
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatProgramList(programs))
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show a program's requirements",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				program, err := app.Programs.GetByID(context.Background(), args[0])
				if err != nil {
					return err
				}

				fmt.Println(formatter.Header(program.Name))
				fmt.Printf("%s, %s credits required\n\n",
					formatter.InstitutionBadge(program.Institution),
					formatter.FormatCredits(program.TotalCreditsRequired))

				for _, req := range program.Requirements {
					fmt.Printf("%s  %s\n", formatter.Bold(req.Category),
						formatter.Dim(formatter.FormatCredits(req.CreditsRequired)+" cr"))
					for _, g := range req.Groups {
						fmt.Printf("    %s (%d options)\n", g.Name, len(g.Options))
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a program and its plans",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Programs.Delete(context.Background(), args[0]); err != nil {
					return err
				}
				fmt.Println("Program deleted.")
				return nil
			},
		},
	)

	return cmd
}
