package repository

import (
	"context"
	"testing"

	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquivalencyRepo_UpsertAndLoadAll(t *testing.T) {
	repo := NewSQLiteEquivalencyRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, domain.Equivalency{
		Institution: " Salt Lake CC ",
		CourseCode:  "math-1050",
		TargetCode:  "MATH 1050",
	}))
	require.NoError(t, repo.Upsert(ctx, domain.Equivalency{
		Institution: "Salt Lake CC",
		CourseCode:  "ENGL 1010",
		TargetCode:  "ENGL 1010",
	}))

	all, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Keys come out in the form the attribution lookup builds.
	eq, ok := all[domain.EquivalencyKey("Salt Lake CC", "MATH 1050")]
	require.True(t, ok)
	assert.Equal(t, "MATH 1050", eq.TargetCode)
}

func TestEquivalencyRepo_UpsertReplacesTarget(t *testing.T) {
	repo := NewSQLiteEquivalencyRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	e := domain.Equivalency{Institution: "Salt Lake CC", CourseCode: "MATH 1050", TargetCode: "MATH 1050"}
	require.NoError(t, repo.Upsert(ctx, e))

	e.TargetCode = "MATH 1055"
	require.NoError(t, repo.Upsert(ctx, e))

	all, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "MATH 1055", all[domain.EquivalencyKey("Salt Lake CC", "MATH 1050")].TargetCode)
}
