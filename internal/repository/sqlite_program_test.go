package repository

import (
	"context"
	"testing"

	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramRepo_RoundTrip(t *testing.T) {
	repo := NewSQLiteProgramRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	g1 := testutil.NewTestGroup("Life Science", 1, "BIOL 1610", "BIOL 1615")
	g1.Options[0].IsPreferred = true
	g1.Options[0].Notes = "includes lab"
	g2 := domain.RequirementGroup{ID: "g-phys", Name: "Physical Science", CreditsRequired: 8}

	sci := testutil.NewGroupedRequirement("Science", 8, g1, g2)
	math := testutil.NewSimpleRequirement("Mathematics", 6)
	math.Description = "Quantitative literacy"
	math.Constraints = []domain.Constraint{
		{Type: domain.ConstraintMinLevelCredits, MinLevel: 1000, Credits: 6},
		{Type: domain.ConstraintMaxTagCredits, Tag: "developmental", Credits: 0},
	}

	program := testutil.NewTestProgram("BS Computer Science",
		testutil.WithRequirements(math, sci),
		testutil.WithTotalCredits(120))

	require.NoError(t, repo.Create(ctx, &program))

	got, err := repo.GetByID(ctx, program.ID)
	require.NoError(t, err)

	assert.Equal(t, program.Name, got.Name)
	assert.Equal(t, "Weber State", got.Institution)
	assert.Equal(t, 120.0, got.TotalCreditsRequired)
	require.Len(t, got.Requirements, 2)

	// Declared order survives.
	gotMath := got.Requirements[0]
	assert.Equal(t, "Mathematics", gotMath.Category)
	assert.Equal(t, "Quantitative literacy", gotMath.Description)
	assert.Equal(t, domain.RequirementSimple, gotMath.Type)
	require.Len(t, gotMath.Constraints, 2)
	assert.Equal(t, domain.ConstraintMinLevelCredits, gotMath.Constraints[0].Type)
	assert.Equal(t, 1000, gotMath.Constraints[0].MinLevel)
	assert.Equal(t, "developmental", gotMath.Constraints[1].Tag)

	gotSci := got.Requirements[1]
	require.Len(t, gotSci.Groups, 2)
	assert.Equal(t, "Life Science", gotSci.Groups[0].Name)
	assert.Equal(t, 1, gotSci.Groups[0].CoursesRequired)
	require.Len(t, gotSci.Groups[0].Options, 2)
	assert.Equal(t, "BIOL 1610", gotSci.Groups[0].Options[0].CourseCode)
	assert.True(t, gotSci.Groups[0].Options[0].IsPreferred)
	assert.Equal(t, "includes lab", gotSci.Groups[0].Options[0].Notes)
	assert.Equal(t, 8.0, gotSci.Groups[1].CreditsRequired)
}

func TestProgramRepo_GetByIDNotFound(t *testing.T) {
	repo := NewSQLiteProgramRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgramRepo_ListAndDelete(t *testing.T) {
	repo := NewSQLiteProgramRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	a := testutil.NewTestProgram("Program A")
	b := testutil.NewTestProgram("Program B")
	require.NoError(t, repo.Create(ctx, &a))
	require.NoError(t, repo.Create(ctx, &b))

	programs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, programs, 2)

	require.NoError(t, repo.Delete(ctx, a.ID))
	programs, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, "Program B", programs[0].Name)
}
