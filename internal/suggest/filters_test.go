package suggest

import (
	"context"
	"testing"

	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestFor(t *testing.T, req Request, courses ...domain.Course) []contract.Candidate {
	t.Helper()
	m := NewMatcher(newFakeCatalog(courses...), DefaultConfig())
	candidates, _ := m.Suggest(context.Background(), req)
	return candidates
}

func TestFilters_OnPlanByID(t *testing.T) {
	bio1 := weberCatalogCourse("BIOL 1610", "Biology I")
	bio2 := weberCatalogCourse("BIOL 1620", "Biology II")

	req, _ := groupedRequest(nil,
		domain.CourseOption{CourseCode: "BIOL 1610"},
		domain.CourseOption{CourseCode: "BIOL 1620"},
	)
	req.OnPlan = map[string]bool{bio1.ID: true}

	candidates := suggestFor(t, req, bio1, bio2)
	require.Len(t, candidates, 1)
	assert.Equal(t, "BIOL 1620", candidates[0].Course.Code)
}

func TestFilters_OnPlanByCodeFallback(t *testing.T) {
	// The planned course carries no catalog ID; matching falls back to
	// code plus institution.
	bio1 := weberCatalogCourse("BIOL 1610", "Biology I")
	planned := domain.PlanCourse{
		Course: domain.Course{Code: "biol-1610", Institution: "Weber State"},
		Status: domain.CourseCompleted,
	}

	req, _ := groupedRequest(nil, domain.CourseOption{CourseCode: "BIOL 1610"})
	req.Plan = domain.Plan{Courses: []domain.PlanCourse{planned}}

	candidates := suggestFor(t, req, bio1)
	assert.Empty(t, candidates)
}

func TestFilters_LevelFloor(t *testing.T) {
	dev := weberCatalogCourse("MATH 0990", "Beginning Algebra")
	ok := weberCatalogCourse("MATH 1050", "College Algebra")

	req, _ := groupedRequest(nil,
		domain.CourseOption{CourseCode: "MATH 0990"},
		domain.CourseOption{CourseCode: "MATH 1050"},
	)

	candidates := suggestFor(t, req, dev, ok)
	require.Len(t, candidates, 1)
	assert.Equal(t, "MATH 1050", candidates[0].Course.Code)
}

func TestFilters_UnknownLevelConservativeForUpperDivision(t *testing.T) {
	noLevel := weberCatalogCourse("SEMINAR", "Department Seminar")

	tests := []struct {
		name     string
		category string
		want     int
	}{
		{"ordinary requirement keeps unknown level", "Electives", 1},
		{"upper division requirement drops it", "Upper Division Electives", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := groupedRequest(nil, domain.CourseOption{CourseCode: "SEMINAR"})
			req.Requirement.Category = tt.category
			candidates := suggestFor(t, req, noLevel)
			assert.Len(t, candidates, tt.want)
		})
	}
}

func TestFilters_ConstraintMinLevelDropsUnknown(t *testing.T) {
	noLevel := weberCatalogCourse("SEMINAR", "Department Seminar")

	req, _ := groupedRequest(nil, domain.CourseOption{CourseCode: "SEMINAR"})
	req.Constraints = []contract.ConstraintResult{}
	req.Requirement.Constraints = []domain.Constraint{
		{Type: domain.ConstraintMinLevelCredits, MinLevel: 3000, Credits: 9},
	}

	candidates := suggestFor(t, req, noLevel)
	assert.Empty(t, candidates)
}

func TestFilters_ExcludedTag(t *testing.T) {
	tagged := weberCatalogCourse("MATH 1010", "Intermediate Algebra", testutil.WithTag("developmental"))

	req, _ := groupedRequest(nil, domain.CourseOption{CourseCode: "MATH 1010"})
	req.Constraints = []contract.ConstraintResult{
		{Type: domain.ConstraintMaxTagCredits, Tag: "developmental", Satisfied: false},
	}

	assert.Empty(t, suggestFor(t, req, tagged))

	// A satisfied cap does not exclude the tag.
	req.Constraints[0].Satisfied = true
	assert.Len(t, suggestFor(t, req, tagged), 1)
}

func TestFilters_NonTransferable(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		title string
		kept  bool
	}{
		{"suffix after digits", "HLTH 1010NE", "Health Fundamentals", false},
		{"marker in title", "KIN 1050", "Fitness (No Equivalent)", false},
		{"subject merely ends in suffix letters", "GENE 3000", "Genetics", true},
		{"ordinary course", "MATH 1050", "College Algebra", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := weberCatalogCourse(tt.code, tt.title)
			req, _ := groupedRequest(nil, domain.CourseOption{CourseCode: tt.code})
			candidates := suggestFor(t, req, course)
			if tt.kept {
				assert.Len(t, candidates, 1)
			} else {
				assert.Empty(t, candidates)
			}
		})
	}
}
