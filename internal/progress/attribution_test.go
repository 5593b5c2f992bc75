package progress

import (
	"testing"

	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func slccCourse(code string, credits float64) domain.PlanCourse {
	return testutil.NewTestPlanCourse(testutil.NewTestCourse(code, testutil.WithCredits(credits)))
}

func weberCourse(code string, credits float64) domain.PlanCourse {
	return testutil.NewTestPlanCourse(
		testutil.NewTestCourse(code, testutil.WithCredits(credits), testutil.WithInstitution("Weber State")))
}

func TestAttributeCredits_SplitsTracks(t *testing.T) {
	attr := AttributeCredits(AttributionInput{
		Completed: []domain.PlanCourse{
			slccCourse("MATH 1050", 4),
			slccCourse("ENGL 1010", 3),
			weberCourse("CS 1400", 3),
		},
		TargetInstitution:    "Weber State",
		TotalCreditsRequired: 120,
	})

	assert.Equal(t, "Salt Lake CC", attr.CurrentInstitution)
	assert.Equal(t, 7.0, attr.CurrentCredits)
	assert.InDelta(t, 7.0/120*100, attr.CurrentPercent, 1e-9)

	// Only target-institution credits transfer without an equivalency.
	assert.Equal(t, 3.0, attr.TransferCredits)
	assert.InDelta(t, 2.5, attr.TransferPercent, 1e-9)
}

func TestAttributeCredits_EquivalencyMovesCredits(t *testing.T) {
	eq := domain.Equivalency{Institution: "Salt Lake CC", CourseCode: "MATH 1050", TargetCode: "MATH 1050"}
	attr := AttributeCredits(AttributionInput{
		Completed: []domain.PlanCourse{
			slccCourse("MATH 1050", 4),
			slccCourse("ENGL 1010", 3),
		},
		TargetInstitution:    "Weber State",
		TotalCreditsRequired: 120,
		Equivalencies: map[string]domain.Equivalency{
			domain.EquivalencyKey("Salt Lake CC", "MATH 1050"): eq,
		},
	})

	// The mapped course counts toward both its home track and transfer.
	assert.Equal(t, 7.0, attr.CurrentCredits)
	assert.Equal(t, 4.0, attr.TransferCredits)
}

func TestAttributeCredits_HighestCreditInstitutionWins(t *testing.T) {
	byu := testutil.NewTestPlanCourse(
		testutil.NewTestCourse("PHIL 1000", testutil.WithCredits(9), testutil.WithInstitution("BYU")))

	attr := AttributeCredits(AttributionInput{
		Completed: []domain.PlanCourse{
			slccCourse("MATH 1050", 4),
			byu,
		},
		TargetInstitution:    "Weber State",
		TotalCreditsRequired: 120,
	})

	assert.Equal(t, "BYU", attr.CurrentInstitution)
	assert.Equal(t, 9.0, attr.CurrentCredits)
}

func TestAttributeCredits_FirstEncounteredBreaksTies(t *testing.T) {
	byu := testutil.NewTestPlanCourse(
		testutil.NewTestCourse("PHIL 1000", testutil.WithCredits(3), testutil.WithInstitution("BYU")))

	attr := AttributeCredits(AttributionInput{
		Completed: []domain.PlanCourse{
			slccCourse("MATH 1050", 3),
			byu,
		},
		TargetInstitution:    "Weber State",
		TotalCreditsRequired: 120,
	})

	assert.Equal(t, "Salt Lake CC", attr.CurrentInstitution)
}

func TestAttributeCredits_Override(t *testing.T) {
	attr := AttributeCredits(AttributionInput{
		Completed: []domain.PlanCourse{
			slccCourse("MATH 1050", 4),
			testutil.NewTestPlanCourse(
				testutil.NewTestCourse("PHIL 1000", testutil.WithCredits(9), testutil.WithInstitution("BYU"))),
		},
		TargetInstitution:    "Weber State",
		TotalCreditsRequired: 120,
		CurrentOverride:      "Salt Lake CC",
	})

	assert.Equal(t, "Salt Lake CC", attr.CurrentInstitution)
	assert.Equal(t, 4.0, attr.CurrentCredits)
}

func TestAttributeCredits_PercentClamping(t *testing.T) {
	attr := AttributeCredits(AttributionInput{
		Completed: []domain.PlanCourse{
			weberCourse("CS 1400", 30),
		},
		TargetInstitution:    "Weber State",
		TotalCreditsRequired: 20,
	})
	assert.Equal(t, 100.0, attr.TransferPercent)

	// Zero requirement never divides.
	attr = AttributeCredits(AttributionInput{
		Completed:         []domain.PlanCourse{weberCourse("CS 1400", 30)},
		TargetInstitution: "Weber State",
	})
	assert.Zero(t, attr.TransferPercent)
}

func TestAttributeCredits_BlankInstitutionIgnored(t *testing.T) {
	anon := testutil.NewTestPlanCourse(
		testutil.NewTestCourse("MISC 1000", testutil.WithInstitution("  ")))

	attr := AttributeCredits(AttributionInput{
		Completed:            []domain.PlanCourse{anon},
		TargetInstitution:    "Weber State",
		TotalCreditsRequired: 120,
	})

	assert.Empty(t, attr.CurrentInstitution)
	assert.Zero(t, attr.CurrentCredits)
	assert.Zero(t, attr.TransferCredits)
}
