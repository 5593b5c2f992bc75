package cli

import (
	"github.com/averyholm/telos/internal/cli/formatter"
	"github.com/averyholm/telos/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func telosHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// requirementSelectForm builds a single-select form over the program's
// requirement categories. The returned pointer holds the selection after Run.
func requirementSelectForm(reqs []domain.Requirement) (*huh.Form, *string) {
	result := new(string)

	options := make([]huh.Option[string], 0, len(reqs))
	for _, r := range reqs {
		options = append(options, huh.NewOption(r.Category, r.Category))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Requirement").
				Options(options...).
				Value(result),
		),
	).WithTheme(telosHuhTheme()).WithShowHelp(false)

	return form, result
}
