package domain

import "strings"

type CourseStatus string

const (
	CoursePlanned    CourseStatus = "planned"
	CourseInProgress CourseStatus = "in_progress"
	CourseCompleted  CourseStatus = "completed"
)

type PlanStatus string

const (
	PlanDraft    PlanStatus = "draft"
	PlanActive   PlanStatus = "active"
	PlanComplete PlanStatus = "complete"
)

type RequirementType string

const (
	RequirementSimple  RequirementType = "simple"
	RequirementGrouped RequirementType = "grouped"
)

type ConstraintType string

const (
	ConstraintMinLevelCredits ConstraintType = "min_level_credits"
	ConstraintMaxTagCredits   ConstraintType = "max_tag_credits"
)

// ViewFilter selects which plan courses count toward progress.
type ViewFilter string

const (
	FilterAll        ViewFilter = "all"
	FilterPlanned    ViewFilter = "planned"
	FilterInProgress ViewFilter = "in_progress"
	FilterCompleted  ViewFilter = "completed"
)

// ValidViewFilters is the canonical set of accepted filters.
var ValidViewFilters = map[ViewFilter]bool{
	FilterAll: true, FilterPlanned: true, FilterInProgress: true, FilterCompleted: true,
}

// Matches reports whether a course status passes the filter.
func (f ViewFilter) Matches(s CourseStatus) bool {
	switch f {
	case FilterAll, "":
		return true
	case FilterPlanned:
		return s == CoursePlanned
	case FilterInProgress:
		return s == CourseInProgress
	case FilterCompleted:
		return s == CourseCompleted
	}
	return false
}

func sameInstitution(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
