package importer

import (
	"testing"

	"github.com/averyholm/telos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Program(t *testing.T) {
	schema := &ImportSchema{
		Program: ProgramImport{Name: "BS CS", Institution: "Weber State", TotalCredits: 120},
		Requirements: []RequirementImport{
			{Category: "Mathematics", Description: "Quantitative literacy", Credits: 6},
			{Category: "Science Lab", Credits: 8, Groups: []GroupImport{
				{Ref: "bio", Name: "Biology", CoursesRequired: 2, Options: []OptionImport{
					{Code: "biol 1610", Preferred: true, Note: "take first"},
					{Code: "BIOL  1620"},
				}},
			}},
		},
	}

	bundle, err := Convert(schema)
	require.NoError(t, err)

	p := bundle.Program
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "BS CS", p.Name)
	assert.Equal(t, "Weber State", p.Institution)
	assert.Equal(t, 120.0, p.TotalCreditsRequired)
	require.Len(t, p.Requirements, 2)

	math := p.Requirements[0]
	assert.Equal(t, domain.RequirementSimple, math.Type)
	assert.Equal(t, "Quantitative literacy", math.Description)

	sci := p.Requirements[1]
	assert.Equal(t, domain.RequirementGrouped, sci.Type)
	require.Len(t, sci.Groups, 1)
	g := sci.Groups[0]
	assert.NotEmpty(t, g.ID)
	require.Len(t, g.Options, 2)
	assert.Equal(t, "BIOL 1610", g.Options[0].CourseCode)
	assert.True(t, g.Options[0].IsPreferred)
	assert.Equal(t, "take first", g.Options[0].Notes)
	assert.Equal(t, "BIOL 1620", g.Options[1].CourseCode)
}

func TestConvert_PlanResolvesGroupRefs(t *testing.T) {
	schema := &ImportSchema{
		Program: ProgramImport{Name: "BS CS", Institution: "Weber State", TotalCredits: 120},
		Requirements: []RequirementImport{
			{Category: "Science Lab", Credits: 8, Groups: []GroupImport{
				{Ref: "bio", Name: "Biology", CoursesRequired: 2, Options: []OptionImport{{Code: "BIOL 1610"}}},
			}},
		},
		Plan: &PlanImport{
			Name: "Transfer Plan",
			Courses: []PlanCourseImport{
				{Code: "biol 1610", Credits: 4, Status: "completed", Category: "Science Lab", GroupRef: ptrStr("bio")},
				{Code: "MATH 1050", Credits: 4},
			},
		},
	}

	bundle, err := Convert(schema)
	require.NoError(t, err)
	require.NotNil(t, bundle.Plan)

	plan := bundle.Plan
	assert.Equal(t, bundle.Program.ID, plan.ProgramID)
	assert.Equal(t, domain.PlanActive, plan.Status)
	require.Len(t, plan.Courses, 2)

	bio := plan.Courses[0]
	assert.Equal(t, "BIOL 1610", bio.Course.Code)
	assert.Equal(t, domain.CourseCompleted, bio.Status)
	require.NotNil(t, bio.RequirementGroupID)
	assert.Equal(t, bundle.Program.Requirements[0].Groups[0].ID, *bio.RequirementGroupID)
	assert.Equal(t, 1000, bio.Course.Level)

	math := plan.Courses[1]
	assert.Equal(t, domain.CoursePlanned, math.Status)
	assert.Nil(t, math.RequirementGroupID)
	// untitled plan courses fall back to the code
	assert.Equal(t, "MATH 1050", math.Course.Title)
	// institution defaults to the program's
	assert.Equal(t, "Weber State", math.Course.Institution)
}

func TestConvert_UnknownGroupRef(t *testing.T) {
	schema := &ImportSchema{
		Program:      ProgramImport{Name: "BS CS", Institution: "Weber State"},
		Requirements: []RequirementImport{{Category: "Mathematics", Credits: 6}},
		Plan: &PlanImport{
			Name:    "Plan",
			Courses: []PlanCourseImport{{Code: "MATH 1050", Credits: 4, GroupRef: ptrStr("ghost")}},
		},
	}

	_, err := Convert(schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `group_ref "ghost" not found`)
}

func TestConvert_CatalogAndEquivalencies(t *testing.T) {
	schema := &ImportSchema{
		Program:      ProgramImport{Name: "BS CS", Institution: "Weber State"},
		Requirements: []RequirementImport{{Category: "Mathematics", Credits: 6}},
		Catalog: []CourseImport{
			{Code: "math-1050", Title: "College Algebra", Credits: 4},
			{Code: "CS 3100", Title: "Operating Systems", Credits: 3, Level: 3000, Institution: "Weber State"},
		},
		Equivalencies: []EquivalencyImport{
			{Institution: "Salt Lake CC", CourseCode: "mat 1050", TargetCode: "MATH 1050"},
		},
	}

	bundle, err := Convert(schema)
	require.NoError(t, err)

	require.Len(t, bundle.Catalog, 2)
	algebra := bundle.Catalog[0]
	assert.Equal(t, "MATH 1050", algebra.Code)
	assert.Equal(t, 1000, algebra.Level)
	assert.Equal(t, "Weber State", algebra.Institution)
	assert.Equal(t, 3000, bundle.Catalog[1].Level)

	require.Len(t, bundle.Equivalencies, 1)
	eq := bundle.Equivalencies[0]
	assert.Equal(t, "MAT 1050", eq.CourseCode)
	assert.Equal(t, "MATH 1050", eq.TargetCode)
}
