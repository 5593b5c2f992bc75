package formatter

import (
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/domain"
)

// FormatPlanList renders plans as a table.
func FormatPlanList(plans []*domain.Plan) string {
	if len(plans) == 0 {
		return Dim("No plans yet. Import one with `telos import <file>`.") + "\n"
	}

	headers := []string{"ID", "Name", "Status", "Courses"}
	var rows [][]string
	for _, p := range plans {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			string(p.Status),
			fmt.Sprintf("%d", len(p.Courses)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatPlanDetail renders one plan with its course slots.
func FormatPlanDetail(plan *domain.Plan) string {
	var b strings.Builder

	b.WriteString(Header(plan.Name))
	b.WriteString("\n\n")

	if len(plan.Courses) == 0 {
		b.WriteString(Dim("No courses on this plan."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"Code", "Title", "Credits", "Institution", "Category", "Status"}
	var rows [][]string
	for _, pc := range plan.Courses {
		category := pc.RequirementCategory
		if category == "" {
			category = Dim("--")
		}
		rows = append(rows, []string{
			Bold(pc.Course.Code),
			pc.Course.Title,
			FormatCredits(pc.CreditValue()),
			pc.Course.Institution,
			category,
			CourseStatusPill(pc.Status),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return b.String()
}

// FormatProgramList renders programs as a table.
func FormatProgramList(programs []*domain.Program) string {
	if len(programs) == 0 {
		return Dim("No programs yet. Import one with `telos import <file>`.") + "\n"
	}

	headers := []string{"ID", "Name", "Institution", "Credits", "Requirements"}
	var rows [][]string
	for _, p := range programs {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			InstitutionBadge(p.Institution),
			FormatCredits(p.TotalCreditsRequired),
			fmt.Sprintf("%d", len(p.Requirements)),
		})
	}
	return RenderTable(headers, rows)
}
