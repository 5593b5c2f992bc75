package progress

import (
	"testing"

	"github.com/averyholm/telos/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestCategoryKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases and trims", "  Humanities ", "humanities"},
		{"collapses whitespace run", "Social\t\tScience", "social science"},
		{"slash becomes space", "Arts/Humanities", "arts humanities"},
		{"dash becomes space", "Pre-Calculus", "pre calculus"},
		{"en dash becomes space", "Math–Science", "math science"},
		{"mixed separator run collapses once", "Arts / - Humanities", "arts humanities"},
		{"leading separators dropped", "--Core", "core"},
		{"empty maps to uncategorized", "", "uncategorized"},
		{"whitespace only maps to uncategorized", "   ", "uncategorized"},
		{"already canonical unchanged", "quantitative literacy", "quantitative literacy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryKey(tt.input))
		})
	}
}

func TestMergeStatuses_CollapsesSpellings(t *testing.T) {
	merged := MergeStatuses([]contract.RequirementStatus{
		{
			Category:         "Social Science",
			Key:              "social science",
			CompletedCredits: 3,
			TotalCredits:     6,
			AppliedCourses:   []string{"SOC 1010"},
		},
		{
			Category:         "Mathematics",
			Key:              "mathematics",
			CompletedCredits: 4,
			TotalCredits:     4,
		},
		{
			Category:         "Social-Science",
			Key:              "social science",
			Description:      "Breadth area",
			CompletedCredits: 6,
			TotalCredits:     5,
			AppliedCourses:   []string{"SOC 1010", "ANTH 1010"},
		},
	})

	assert.Len(t, merged, 2)

	// First-seen order and spelling survive.
	ss := merged[0]
	assert.Equal(t, "Social Science", ss.Category)
	assert.Equal(t, "social science", ss.Key)

	// Credit totals take the max from each side.
	assert.Equal(t, 6.0, ss.CompletedCredits)
	assert.Equal(t, 6.0, ss.TotalCredits)

	// Applied courses union without duplicates, first non-empty description.
	assert.Equal(t, []string{"SOC 1010", "ANTH 1010"}, ss.AppliedCourses)
	assert.Equal(t, "Breadth area", ss.Description)

	// State recomputed from the merged totals.
	assert.Equal(t, contract.StateMet, ss.State)

	assert.Equal(t, "Mathematics", merged[1].Category)
}

func TestMergeStatuses_KeyDerivedWhenMissing(t *testing.T) {
	merged := MergeStatuses([]contract.RequirementStatus{
		{Category: "Fine Arts", CompletedCredits: 3, TotalCredits: 3},
		{Category: "fine-arts", CompletedCredits: 1, TotalCredits: 3},
	})

	assert.Len(t, merged, 1)
	assert.Equal(t, "fine arts", merged[0].Key)
	assert.Equal(t, 3.0, merged[0].CompletedCredits)
}
