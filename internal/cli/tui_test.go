package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProgressService struct {
	progress   *contract.ProgressResponse
	segments   *contract.SegmentsResponse
	lastFilter domain.ViewFilter
	calls      int
}

func (s *stubProgressService) GetProgress(_ context.Context, req contract.ProgressRequest) (*contract.ProgressResponse, error) {
	s.lastFilter = req.Filter
	s.calls++
	resp := *s.progress
	resp.Filter = req.Filter
	return &resp, nil
}

func (s *stubProgressService) GetSegments(_ context.Context, _ contract.SegmentsRequest) (*contract.SegmentsResponse, error) {
	return s.segments, nil
}

type stubSuggestService struct {
	lastCategory string
}

func (s *stubSuggestService) Suggest(_ context.Context, req contract.SuggestRequest) (*contract.SuggestResponse, error) {
	s.lastCategory = req.Category
	return &contract.SuggestResponse{
		Category: req.Category,
		State:    contract.StatePart,
		Candidates: []contract.Candidate{
			{
				Course:      domain.Course{Code: "PHYS 2210", Title: "Physics I", Credits: 4},
				Source:      contract.SourceKeyword,
				IsPreferred: true,
			},
		},
	}, nil
}

func dashboardFixture() (*stubProgressService, *stubSuggestService) {
	reqs := []contract.RequirementStatus{
		{
			Category:         "Mathematics",
			Key:              "mathematics",
			State:            contract.StateMet,
			CompletedCredits: 6,
			TotalCredits:     6,
		},
		{
			Category:         "Physical Science",
			Key:              "physical science",
			State:            contract.StatePart,
			CompletedCredits: 4,
			TotalCredits:     8,
			Groups: []contract.GroupStatus{
				{GroupID: "g1", GroupName: "Lab sequence", CoursesCompleted: 1},
			},
		},
	}

	progress := &stubProgressService{
		progress: &contract.ProgressResponse{
			PlanID:      "plan-1",
			PlanName:    "Fall Transfer",
			ProgramName: "BS Computer Science",
			Current:     contract.TrackProgress{Institution: "Salt Lake CC", Percent: 10, Credits: 12, Requirements: reqs},
			Transfer:    contract.TrackProgress{Institution: "Weber State", Percent: 25, Credits: 30, Requirements: reqs},
		},
		segments: &contract.SegmentsResponse{
			PlanID: "plan-1",
			Segments: []contract.Segment{
				{Category: "Mathematics", Label: "Mathematics", HeightPct: 42.9, FillPct: 100, State: contract.StateMet},
				{Category: "Physical Science", Label: "Physical Sci…", HeightPct: 57.1, FillPct: 50, StartPct: 42.9, State: contract.StatePart},
			},
		},
	}

	return progress, &stubSuggestService{}
}

func newDashboardDriver(t *testing.T) (*teatest.Driver, *stubProgressService, *stubSuggestService) {
	t.Helper()
	progress, suggest := dashboardFixture()
	app := &App{Progress: progress, Suggest: suggest, Interactive: true}

	d := teatest.New(t, newDashboardModel(app, "plan-1"), teatest.WithSize(100, 40))
	d.DrainInit()
	return d, progress, suggest
}

func TestDashboard_InitialLoad(t *testing.T) {
	d, progress, _ := newDashboardDriver(t)

	view := d.View()
	// The header renders uppercased.
	assert.Contains(t, view, "FALL TRANSFER")
	assert.Contains(t, view, "BS COMPUTER SCIENCE")
	assert.Contains(t, view, "Mathematics")
	assert.Contains(t, view, "Physical Sci")
	assert.Equal(t, domain.FilterAll, progress.lastFilter)
}

func TestDashboard_CursorAndDetail(t *testing.T) {
	d, _, _ := newDashboardDriver(t)

	// First requirement selected by default.
	assert.Contains(t, d.View(), "6 / 6 cr")

	d.PressDown()
	view := d.View()
	assert.Contains(t, view, "4 / 8 cr")
	assert.Contains(t, view, "Lab sequence")

	// Down at the last requirement stays put.
	d.PressDown()
	assert.Contains(t, d.View(), "4 / 8 cr")

	d.PressUp()
	assert.Contains(t, d.View(), "6 / 6 cr")
}

func TestDashboard_FilterCycleReloads(t *testing.T) {
	d, progress, _ := newDashboardDriver(t)
	require.Equal(t, 1, progress.calls)

	d.PressKey('f')
	assert.Equal(t, 2, progress.calls)
	assert.Equal(t, domain.FilterPlanned, progress.lastFilter)
	assert.Contains(t, d.View(), "planned")

	d.PressKey('f')
	d.PressKey('f')
	d.PressKey('f')
	assert.Equal(t, domain.FilterAll, progress.lastFilter)
}

func TestDashboard_SuggestKey(t *testing.T) {
	d, _, suggest := newDashboardDriver(t)

	d.PressDown()
	d.PressKey('s')

	assert.Equal(t, "physical science", strings.ToLower(suggest.lastCategory))
	view := d.View()
	assert.Contains(t, view, "Suggestions")
	assert.Contains(t, view, "PHYS 2210")
	assert.Contains(t, view, "Physics I")

	// Moving the cursor clears the suggestion panel.
	d.PressUp()
	assert.NotContains(t, d.View(), "PHYS 2210")
}

func TestDashboard_Quit(t *testing.T) {
	d, _, _ := newDashboardDriver(t)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}
