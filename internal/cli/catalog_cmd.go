package cli

import (
	"context"
	"fmt"

	"github.com/averyholm/telos/internal/cli/formatter"
	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/repository"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and maintain the course catalog",
	}

	var subjectFlag, institutionFlag string
	var minLevelFlag, limitFlag int

	searchCmd := &cobra.Command{
		Use:   "search [title keyword]",
		Short: "Search catalog courses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := repository.CourseSearch{
				Subject:     subjectFlag,
				Institution: institutionFlag,
				MinLevel:    minLevelFlag,
				Limit:       limitFlag,
			}
			if len(args) > 0 {
				q.Search = args[0]
			}
			if q.Search == "" && q.Subject == "" && q.Institution == "" && q.MinLevel == 0 {
				return fmt.Errorf("give a title keyword or at least one of --subject, --institution, --min-level")
			}

			courses, err := app.Catalog.Search(context.Background(), q)
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				fmt.Println(formatter.Dim("No courses found."))
				return nil
			}

			headers := []string{"Code", "Title", "Credits", "Institution", "Level"}
			var rows [][]string
			for _, c := range courses {
				rows = append(rows, []string{
					formatter.Bold(c.Code),
					c.Title,
					formatter.FormatCredits(c.Credits),
					c.Institution,
					fmt.Sprintf("%d", c.EffectiveLevel()),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
	searchCmd.Flags().StringVar(&subjectFlag, "subject", "", "Course-code subject prefix, e.g. MATH")
	searchCmd.Flags().StringVar(&institutionFlag, "institution", "", "Scope to one institution")
	searchCmd.Flags().IntVar(&minLevelFlag, "min-level", 0, "Minimum course level")
	searchCmd.Flags().IntVar(&limitFlag, "limit", 0, "Maximum results")

	var addTitle, addInstitution, addTag string
	var addCredits float64

	addCmd := &cobra.Command{
		Use:   "add <code>",
		Short: "Add or update a catalog course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			course := domain.Course{
				ID:          uuid.New().String(),
				Code:        args[0],
				Title:       addTitle,
				Credits:     addCredits,
				Institution: addInstitution,
				Tag:         addTag,
			}
			if err := app.Catalog.Upsert(context.Background(), &course); err != nil {
				return err
			}
			fmt.Printf("Saved %s\n", formatter.Bold(domain.NormalizeCode(args[0])))
			return nil
		},
	}
	addCmd.Flags().StringVar(&addTitle, "title", "", "Course title")
	addCmd.Flags().Float64Var(&addCredits, "credits", 3, "Credit hours")
	addCmd.Flags().StringVar(&addInstitution, "institution", "", "Offering institution")
	addCmd.Flags().StringVar(&addTag, "tag", "", "Course tag, e.g. developmental")

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Count catalog courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Catalog.Count(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%d courses\n", n)
			return nil
		},
	}

	cmd.AddCommand(searchCmd, addCmd, countCmd)
	return cmd
}
