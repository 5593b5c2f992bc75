package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromCode(t *testing.T) {
	assert.Equal(t, 1010, LevelFromCode("MATH 1010"))
	assert.Equal(t, 2030, LevelFromCode("ENGL-2030H"))
	assert.Equal(t, 950, LevelFromCode("MATH0950"))
	assert.Equal(t, 0, LevelFromCode("SEMINAR"))
	assert.Equal(t, 0, LevelFromCode(""))
}

func TestEffectiveLevel_PrefersExplicit(t *testing.T) {
	c := Course{Code: "MATH 1010", Level: 3000}
	assert.Equal(t, 3000, c.EffectiveLevel())

	c.Level = 0
	assert.Equal(t, 1010, c.EffectiveLevel())
}

func TestSameCode(t *testing.T) {
	assert.True(t, SameCode("MATH 1010", "math-1010"))
	assert.True(t, SameCode(" MATH  1010 ", "MATH 1010"))
	assert.False(t, SameCode("MATH 1010", "MATH 1020"))
}

func TestCreditValue_OverrideWins(t *testing.T) {
	override := 4.0
	pc := PlanCourse{Course: Course{Credits: 3}, CreditsOverride: &override}
	assert.Equal(t, 4.0, pc.CreditValue())

	pc.CreditsOverride = nil
	assert.Equal(t, 3.0, pc.CreditValue())
}

func TestViewFilter_Matches(t *testing.T) {
	assert.True(t, FilterAll.Matches(CoursePlanned))
	assert.True(t, FilterCompleted.Matches(CourseCompleted))
	assert.False(t, FilterCompleted.Matches(CoursePlanned))
	assert.True(t, ViewFilter("").Matches(CourseInProgress))
}

func TestCourseOption_Matches(t *testing.T) {
	pc := PlanCourse{Course: Course{Code: "BIOL 1610", Institution: "Salt Lake CC"}}

	assert.True(t, CourseOption{CourseCode: "biol-1610"}.Matches(pc))
	assert.True(t, CourseOption{CourseCode: "BIOL 1610", Institution: "salt lake cc"}.Matches(pc))
	assert.False(t, CourseOption{CourseCode: "BIOL 1610", Institution: "Weber State"}.Matches(pc))
	assert.False(t, CourseOption{CourseCode: "BIOL 1615"}.Matches(pc))
}
