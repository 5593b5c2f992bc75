package progress

import (
	"testing"

	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateConstraints_MinLevel(t *testing.T) {
	c := domain.Constraint{Type: domain.ConstraintMinLevelCredits, MinLevel: 2000, Credits: 6}
	courses := []domain.PlanCourse{
		testutil.NewTestPlanCourse(testutil.NewTestCourse("HIST 2700")),
		testutil.NewTestPlanCourse(testutil.NewTestCourse("HIST 2710")),
		testutil.NewTestPlanCourse(testutil.NewTestCourse("HIST 1700")),
	}

	results := EvaluateConstraints([]domain.Constraint{c}, courses)
	require.Len(t, results, 1)

	// Two 2000-level courses at 3 credits each meet the floor; the
	// 1000-level course does not count.
	assert.True(t, results[0].Satisfied)
	assert.Equal(t, 6.0, results[0].Tally)
}

func TestEvaluateConstraints_MinLevelUnknownLevelExcluded(t *testing.T) {
	c := domain.Constraint{Type: domain.ConstraintMinLevelCredits, MinLevel: 1000, Credits: 3}
	courses := []domain.PlanCourse{
		// No digits in the code and no explicit level: cannot count.
		testutil.NewTestPlanCourse(testutil.NewTestCourse("SEMINAR")),
	}

	results := EvaluateConstraints([]domain.Constraint{c}, courses)
	require.Len(t, results, 1)
	assert.False(t, results[0].Satisfied)
	assert.Zero(t, results[0].Tally)
	assert.Contains(t, results[0].Reason, "needs 3.0 credits at level 1000+")
}

func TestEvaluateConstraints_ExplicitLevelBeatsCode(t *testing.T) {
	c := domain.Constraint{Type: domain.ConstraintMinLevelCredits, MinLevel: 3000, Credits: 3}
	courses := []domain.PlanCourse{
		// Code parses to 1010 but the catalog level says 3010.
		testutil.NewTestPlanCourse(testutil.NewTestCourse("ART 1010", testutil.WithLevel(3010))),
	}

	results := EvaluateConstraints([]domain.Constraint{c}, courses)
	require.Len(t, results, 1)
	assert.True(t, results[0].Satisfied)
}

func TestEvaluateConstraints_MaxTag(t *testing.T) {
	c := domain.Constraint{Type: domain.ConstraintMaxTagCredits, Tag: "developmental", Credits: 3}

	t.Run("within the cap", func(t *testing.T) {
		courses := []domain.PlanCourse{
			testutil.NewTestPlanCourse(testutil.NewTestCourse("MATH 0990", testutil.WithTag("Developmental"))),
		}
		results := EvaluateConstraints([]domain.Constraint{c}, courses)
		require.Len(t, results, 1)
		assert.True(t, results[0].Satisfied)
		assert.Equal(t, 3.0, results[0].Tally)
		assert.Equal(t, "developmental", results[0].Tag)
	})

	t.Run("over the cap", func(t *testing.T) {
		courses := []domain.PlanCourse{
			testutil.NewTestPlanCourse(testutil.NewTestCourse("MATH 0990", testutil.WithTag("developmental"))),
			testutil.NewTestPlanCourse(testutil.NewTestCourse("ENGL 0990", testutil.WithTag("developmental"))),
		}
		results := EvaluateConstraints([]domain.Constraint{c}, courses)
		require.Len(t, results, 1)
		assert.False(t, results[0].Satisfied)
		assert.Equal(t, 6.0, results[0].Tally)
	})
}

func TestEvaluateConstraints_UnknownTypeReported(t *testing.T) {
	c := domain.Constraint{Type: "residency_credits"}
	results := EvaluateConstraints([]domain.Constraint{c}, nil)
	require.Len(t, results, 1)
	assert.True(t, results[0].Satisfied)
	assert.Contains(t, results[0].Reason, "not evaluated")
}

func TestEvaluateConstraints_EmptyIsNil(t *testing.T) {
	assert.Nil(t, EvaluateConstraints(nil, nil))
}

func TestExcludedTags(t *testing.T) {
	courses := []domain.PlanCourse{
		testutil.NewTestPlanCourse(testutil.NewTestCourse("MATH 0990", testutil.WithTag("developmental"))),
		testutil.NewTestPlanCourse(testutil.NewTestCourse("ENGL 0990", testutil.WithTag("developmental"))),
	}
	results := EvaluateConstraints([]domain.Constraint{
		{Type: domain.ConstraintMaxTagCredits, Tag: "developmental", Credits: 3},
		{Type: domain.ConstraintMaxTagCredits, Tag: "technical", Credits: 9},
		{Type: domain.ConstraintMinLevelCredits, MinLevel: 1000, Credits: 100},
	}, courses)

	// Only the violated tag cap excludes its tag; the satisfied cap and the
	// violated level floor do not.
	assert.Equal(t, []string{"developmental"}, ExcludedTags(results))
}
