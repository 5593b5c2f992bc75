package formatter

import (
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/contract"
)

// FormatSuggestions renders suggestion candidates for one requirement.
func FormatSuggestions(resp *contract.SuggestResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Suggestions — %s", resp.Category)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Requirement state: %s\n\n", StateIndicator(resp.State)))

	if len(resp.Candidates) == 0 {
		b.WriteString(Dim("No matching catalog courses found."))
		b.WriteString("\n")
	} else {
		headers := []string{"Code", "Title", "Credits", "Source", ""}
		var rows [][]string
		for _, c := range resp.Candidates {
			marker := ""
			if c.IsPreferred {
				marker = StyleGreen.Render("★ preferred")
			} else if c.Note != "" {
				marker = Dim(c.Note)
			}
			source := string(c.Source)
			if c.GroupName != "" {
				source = c.GroupName
			}
			rows = append(rows, []string{
				Bold(c.Course.Code),
				c.Course.Title,
				FormatCredits(c.Course.Credits),
				Dim(source),
				marker,
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	for _, note := range resp.Notes {
		b.WriteString(Dim("note: " + note))
		b.WriteString("\n")
	}

	return b.String()
}
