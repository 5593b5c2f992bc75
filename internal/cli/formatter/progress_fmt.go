package formatter

import (
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/contract"
)

// FormatProgress renders the full progress view: the institution split
// followed by one line per requirement with a fill bar.
func FormatProgress(resp *contract.ProgressResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Progress — %s", resp.PlanName)))
	b.WriteString("\n\n")

	b.WriteString(formatTrackLine("Current", resp.Current))
	b.WriteString(formatTrackLine("Transfer", resp.Transfer))
	b.WriteString("\n")

	if resp.Filter != "" && resp.Filter != "all" {
		b.WriteString(Dim(fmt.Sprintf("Filter: %s", string(resp.Filter))))
		b.WriteString("\n\n")
	}

	for _, req := range resp.Transfer.Requirements {
		b.WriteString(formatRequirement(req))
	}

	return b.String()
}

func formatTrackLine(label string, track contract.TrackProgress) string {
	inst := track.Institution
	if inst == "" {
		inst = "--"
	}
	return fmt.Sprintf("%-9s %s  %s  %s\n",
		Bold(label),
		InstitutionBadge(inst),
		RenderProgress(track.Percent, 24),
		Dim(FormatCredits(track.Credits)+" cr"),
	)
}

func formatRequirement(req contract.RequirementStatus) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
		StateIndicator(req.State),
		Bold(req.Category),
		RenderProgress(req.FillPercent(), 16),
		Dim(CreditPair(req.CompletedCredits, req.TotalCredits)),
	))

	for _, g := range req.Groups {
		mark := StyleDim.Render("○")
		if g.IsFull {
			mark = StyleGreen.Render("●")
		}
		b.WriteString(fmt.Sprintf("    %s %s %s\n",
			mark, g.GroupName,
			Dim(fmt.Sprintf("(%d courses, %s cr)", g.CoursesCompleted, FormatCredits(g.CreditsCompleted))),
		))
	}

	for _, c := range req.Constraints {
		if c.Satisfied {
			continue
		}
		b.WriteString(fmt.Sprintf("    %s %s\n", StyleRed.Render("▲"), c.Reason))
	}

	if len(req.AppliedCourses) > 0 {
		b.WriteString(fmt.Sprintf("    %s\n", Dim("applied: "+strings.Join(req.AppliedCourses, ", "))))
	}

	return b.String()
}
