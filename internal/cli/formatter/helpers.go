package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// FormatCredits renders a credit count without a trailing .0 for whole values.
func FormatCredits(credits float64) string {
	if credits == float64(int64(credits)) {
		return fmt.Sprintf("%d", int64(credits))
	}
	return fmt.Sprintf("%.1f", credits)
}

// CreditPair renders "got / need cr", e.g. "3 / 6 cr".
func CreditPair(got, need float64) string {
	return fmt.Sprintf("%s / %s cr", FormatCredits(got), FormatCredits(need))
}

// InstitutionBadge returns a purple-styled institution label.
func InstitutionBadge(institution string) string {
	if institution == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(institution)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
