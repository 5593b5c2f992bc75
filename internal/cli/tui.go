package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/cli/formatter"
	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// filterCycle is the order the f key walks through view filters.
var filterCycle = []domain.ViewFilter{
	domain.FilterAll,
	domain.FilterPlanned,
	domain.FilterInProgress,
	domain.FilterCompleted,
}

// ── messages ─────────────────────────────────────────────────────────────────

type progressLoadedMsg struct {
	progress *contract.ProgressResponse
	segments *contract.SegmentsResponse
	err      error
}

type suggestionsLoadedMsg struct {
	category string
	resp     *contract.SuggestResponse
	err      error
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel is the interactive progress dashboard: a segment track on
// the left, requirement detail on the right, suggestions on demand.
type dashboardModel struct {
	app    *App
	planID string

	progress *contract.ProgressResponse
	segments *contract.SegmentsResponse

	cursor      int
	filterIdx   int
	suggestions *contract.SuggestResponse
	suggestFor  string

	spin    spinner.Model
	loading bool
	err     error
	width   int
	height  int

	keys dashboardKeys
}

type dashboardKeys struct {
	Up      key.Binding
	Down    key.Binding
	Filter  key.Binding
	Suggest key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Suggest: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "suggest")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func newDashboardModel(app *App, planID string) dashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)

	return dashboardModel{
		app:     app,
		planID:  planID,
		spin:    sp,
		loading: true,
		keys:    newDashboardKeys(),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadProgress())
}

func (m dashboardModel) filter() domain.ViewFilter {
	return filterCycle[m.filterIdx%len(filterCycle)]
}

func (m dashboardModel) loadProgress() tea.Cmd {
	app, planID, filter := m.app, m.planID, m.filter()
	return func() tea.Msg {
		ctx := context.Background()

		req := contract.NewProgressRequest(planID)
		req.Filter = filter
		progress, err := app.Progress.GetProgress(ctx, req)
		if err != nil {
			return progressLoadedMsg{err: err}
		}

		segments, err := app.Progress.GetSegments(ctx, contract.SegmentsRequest{
			PlanID: planID,
			Filter: string(filter),
		})
		if err != nil {
			return progressLoadedMsg{err: err}
		}

		return progressLoadedMsg{progress: progress, segments: segments}
	}
}

func (m dashboardModel) loadSuggestions(category string) tea.Cmd {
	app, planID := m.app, m.planID
	return func() tea.Msg {
		resp, err := app.Suggest.Suggest(context.Background(), contract.NewSuggestRequest(planID, category))
		return suggestionsLoadedMsg{category: category, resp: resp, err: err}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progressLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.progress = msg.progress
			m.segments = msg.segments
			if n := len(m.requirements()); m.cursor >= n && n > 0 {
				m.cursor = n - 1
			}
		}
		return m, nil

	case suggestionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.suggestions = msg.resp
		m.suggestFor = msg.category
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.suggestions = nil
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.requirements())-1 {
			m.cursor++
		}
		m.suggestions = nil
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filterIdx = (m.filterIdx + 1) % len(filterCycle)
		m.loading = true
		m.suggestions = nil
		return m, tea.Batch(m.spin.Tick, m.loadProgress())

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.loadProgress())

	case key.Matches(msg, m.keys.Suggest):
		reqs := m.requirements()
		if m.cursor < len(reqs) {
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.loadSuggestions(reqs[m.cursor].Category))
		}
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) requirements() []contract.RequirementStatus {
	if m.progress == nil {
		return nil
	}
	return m.progress.Transfer.Requirements
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m dashboardModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n\n" + m.helpLine()
	}
	if m.progress == nil {
		return fmt.Sprintf("\n  %s Loading plan…\n", m.spin.View())
	}

	left := m.renderTrack()
	right := m.renderDetail()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("%s — %s", m.progress.PlanName, m.progress.ProgramName)))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	if m.loading {
		b.WriteString(fmt.Sprintf("%s working…\n", m.spin.View()))
	}
	b.WriteString(m.helpLine())
	return b.String()
}

func (m dashboardModel) renderTrack() string {
	var b strings.Builder

	b.WriteString(formatter.Bold("Track"))
	b.WriteString(formatter.Dim(fmt.Sprintf("  [%s]", string(m.filter()))))
	b.WriteString("\n")

	reqs := m.requirements()
	if m.segments != nil {
		for i, seg := range m.segments.Segments {
			rows := int(seg.HeightPct/100*20 + 0.5)
			if rows < 1 {
				rows = 1
			}
			style := formatter.StateColor(seg.State)
			marker := " "
			if i == m.cursor && i < len(reqs) {
				marker = formatter.StyleHeader.Render("▶")
			}
			for r := 0; r < rows; r++ {
				if r == rows/2 {
					b.WriteString(fmt.Sprintf("%s %s %s\n", marker, style.Render("┃"), seg.Label))
				} else {
					b.WriteString(fmt.Sprintf("  %s\n", style.Render("┃")))
				}
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(formatTrackSummary("Current", m.progress.Current))
	b.WriteString(formatTrackSummary("Transfer", m.progress.Transfer))

	return b.String()
}

func formatTrackSummary(label string, track contract.TrackProgress) string {
	return fmt.Sprintf("%-9s %s %s\n", label,
		formatter.RenderProgress(track.Percent, 14),
		formatter.Dim(formatter.FormatCredits(track.Credits)+" cr"))
}

func (m dashboardModel) renderDetail() string {
	reqs := m.requirements()
	if len(reqs) == 0 {
		return formatter.Dim("No requirements.")
	}
	if m.cursor >= len(reqs) {
		m.cursor = len(reqs) - 1
	}
	req := reqs[m.cursor]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Bold(req.Category), formatter.StateIndicator(req.State)))
	if req.Description != "" {
		b.WriteString(formatter.Dim(req.Description))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n",
		formatter.RenderProgress(req.FillPercent(), 20),
		formatter.Dim(formatter.CreditPair(req.CompletedCredits, req.TotalCredits))))

	for _, g := range req.Groups {
		mark := formatter.StyleDim.Render("○")
		if g.IsFull {
			mark = formatter.StyleGreen.Render("●")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", mark, g.GroupName,
			formatter.Dim(fmt.Sprintf("%d courses", g.CoursesCompleted))))
	}
	for _, c := range req.Constraints {
		if !c.Satisfied {
			b.WriteString(formatter.StyleRed.Render("▲ ") + c.Reason + "\n")
		}
	}

	if m.suggestions != nil && m.suggestFor == req.Category {
		b.WriteString("\n")
		b.WriteString(formatter.Bold("Suggestions"))
		b.WriteString("\n")
		if len(m.suggestions.Candidates) == 0 {
			b.WriteString(formatter.Dim("none found"))
			b.WriteString("\n")
		}
		for _, c := range m.suggestions.Candidates {
			star := " "
			if c.IsPreferred {
				star = formatter.StyleGreen.Render("★")
			}
			b.WriteString(fmt.Sprintf("%s %s %s %s\n", star, formatter.Bold(c.Course.Code),
				c.Course.Title, formatter.Dim(formatter.FormatCredits(c.Course.Credits)+" cr")))
		}
	}

	return b.String()
}

func (m dashboardModel) helpLine() string {
	parts := []string{}
	for _, b := range []key.Binding{m.keys.Up, m.keys.Down, m.keys.Filter, m.keys.Suggest, m.keys.Refresh, m.keys.Quit} {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, formatter.Dim(b.Help().Desc)))
	}
	return formatter.Dim(strings.Join(parts, "  "))
}
