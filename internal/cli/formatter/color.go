package formatter

import (
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StateColor returns the lipgloss style for a completion state.
func StateColor(state contract.CompletionState) lipgloss.Style {
	switch state {
	case contract.StateMet:
		return StyleGreen
	case contract.StatePart:
		return StyleYellow
	default:
		return StyleDim
	}
}

// StateIndicator returns a colored fulfillment indicator such as "● MET".
func StateIndicator(state contract.CompletionState) string {
	switch state {
	case contract.StateMet:
		return StyleGreen.Render("● MET")
	case contract.StatePart:
		return StyleYellow.Render("◐ PARTIAL")
	default:
		return StyleDim.Render("○ NONE")
	}
}

// CourseStatusPill returns a colored status indicator for a plan course.
func CourseStatusPill(status domain.CourseStatus) string {
	switch status {
	case domain.CourseCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.CourseInProgress:
		return StyleBlue.Render("● In Progress")
	case domain.CoursePlanned:
		return StyleDim.Render("○ Planned")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
