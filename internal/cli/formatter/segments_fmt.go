package formatter

import (
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/contract"
)

// trackRows is the character height of the rendered segment track.
const trackRows = 25

// FormatSegments renders the packed progress track as a vertical bar with one
// band per requirement, each band sized by its height percentage.
func FormatSegments(resp *contract.SegmentsResponse) string {
	var b strings.Builder

	b.WriteString(Header("Degree Track"))
	b.WriteString("\n\n")

	if len(resp.Segments) == 0 {
		b.WriteString(Dim("No requirements to display."))
		b.WriteString("\n")
		return b.String()
	}

	for _, seg := range resp.Segments {
		rows := int(seg.HeightPct/100*trackRows + 0.5)
		if rows < 1 {
			rows = 1
		}
		style := StateColor(seg.State)
		labelRow := rows / 2
		for r := 0; r < rows; r++ {
			b.WriteString(style.Render("  ┃ "))
			if r == labelRow {
				b.WriteString(fmt.Sprintf("%s  %s", style.Render(seg.Label),
					Dim(fmt.Sprintf("%.0f%%", seg.FillPct))))
			}
			b.WriteString("\n")
		}
	}

	if resp.Degraded {
		b.WriteString("\n")
		b.WriteString(Dim("Some segments fell below the minimum display height."))
		b.WriteString("\n")
	}

	return b.String()
}
