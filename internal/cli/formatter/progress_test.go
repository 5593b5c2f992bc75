package formatter

import (
	"strings"
	"testing"

	"github.com/averyholm/telos/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name       string
		pct        float64
		width      int
		wantFilled int
		wantPct    string
	}{
		{"empty", 0, 10, 0, "0%"},
		{"half", 50, 10, 5, "50%"},
		{"full", 100, 10, 10, "100%"},
		{"clamped above", 140, 10, 10, "100%"},
		{"clamped below", -5, 10, 0, "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderProgress(tt.pct, tt.width)
			assert.Equal(t, tt.wantFilled, strings.Count(out, filledBlock))
			assert.Equal(t, tt.width-tt.wantFilled, strings.Count(out, emptyBlock))
			assert.Contains(t, out, tt.wantPct)
		})
	}
}

func TestFormatCredits(t *testing.T) {
	assert.Equal(t, "3", FormatCredits(3))
	assert.Equal(t, "3.5", FormatCredits(3.5))
	assert.Equal(t, "0", FormatCredits(0))
	assert.Equal(t, "3 / 6 cr", CreditPair(3, 6))
}

func TestFormatProgress(t *testing.T) {
	resp := &contract.ProgressResponse{
		PlanName: "Transfer Plan",
		Filter:   "all",
		Current: contract.TrackProgress{
			Institution: "Salt Lake CC",
			Percent:     25,
			Credits:     30,
		},
		Transfer: contract.TrackProgress{
			Institution: "Weber State",
			Percent:     10,
			Credits:     12,
			Requirements: []contract.RequirementStatus{
				{
					Category:         "Mathematics",
					State:            contract.StatePart,
					CompletedCredits: 3,
					TotalCredits:     6,
					AppliedCourses:   []string{"MATH 1050"},
				},
				{
					Category:     "Humanities",
					State:        contract.StateNone,
					TotalCredits: 9,
					Constraints: []contract.ConstraintResult{
						{Satisfied: false, Reason: "needs 3 credits at level 3000+"},
					},
				},
			},
		},
	}

	out := FormatProgress(resp)
	assert.Contains(t, out, "TRANSFER PLAN")
	assert.Contains(t, out, "Salt Lake CC")
	assert.Contains(t, out, "Weber State")
	assert.Contains(t, out, "Mathematics")
	assert.Contains(t, out, "3 / 6 cr")
	assert.Contains(t, out, "applied: MATH 1050")
	assert.Contains(t, out, "needs 3 credits at level 3000+")
}

func TestFormatSegments(t *testing.T) {
	resp := &contract.SegmentsResponse{
		Segments: []contract.Segment{
			{Category: "Mathematics", Label: "Mathematics", HeightPct: 40, FillPct: 50, State: contract.StatePart},
			{Category: "Humanities", Label: "Humanities", HeightPct: 60, FillPct: 0, State: contract.StateNone},
		},
	}

	out := FormatSegments(resp)
	assert.Contains(t, out, "Mathematics")
	assert.Contains(t, out, "Humanities")
	assert.Contains(t, out, "50%")
	assert.NotContains(t, out, "minimum display height")

	resp.Degraded = true
	assert.Contains(t, FormatSegments(resp), "minimum display height")
}

func TestFormatSuggestions_Empty(t *testing.T) {
	resp := &contract.SuggestResponse{
		Category: "Mathematics",
		State:    contract.StateNone,
		Notes:    []string{"catalog search unavailable"},
	}

	out := FormatSuggestions(resp)
	assert.Contains(t, out, "No matching catalog courses")
	assert.Contains(t, out, "catalog search unavailable")
}
