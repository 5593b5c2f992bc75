package contract

import (
	"time"

	"github.com/averyholm/telos/internal/domain"
)

// CompletionState is the derived fulfillment state of a requirement.
type CompletionState string

const (
	StateMet  CompletionState = "met"
	StatePart CompletionState = "part"
	StateNone CompletionState = "none"
)

// GroupStatus is the derived fulfillment of one requirement group.
type GroupStatus struct {
	GroupID          string
	GroupName        string
	CoursesCompleted int
	CreditsCompleted float64
	IsFull           bool
}

// ConstraintResult reports one constraint check. It is surfaced alongside
// the requirement state, never folded into it: a requirement can be
// credit-met and still carry a violated constraint.
type ConstraintResult struct {
	Type      domain.ConstraintType
	Tag       string // set for tag-scoped constraints
	Satisfied bool
	Reason    string
	Tally     float64 // credits counted toward (or against) the constraint
}

// RequirementStatus is the derived completion record for one requirement.
// Recomputed on every (plan, program, filter) change; never persisted.
type RequirementStatus struct {
	Category         string // display name, first-seen spelling
	Key              string // normalized category key
	Description      string
	Type             domain.RequirementType
	State            CompletionState
	CompletedCredits float64 // may exceed TotalCredits; clamped at display only
	TotalCredits     float64
	Groups           []GroupStatus
	Constraints      []ConstraintResult
	AppliedCourses   []string // normalized codes of counted courses
}

// FillPercent returns the display fill for this requirement, clamped to 100.
func (rs RequirementStatus) FillPercent() float64 {
	if rs.TotalCredits <= 0 {
		return 0
	}
	pct := rs.CompletedCredits / rs.TotalCredits * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// TrackProgress is one institution track of the progress view.
type TrackProgress struct {
	Institution  string
	Percent      float64 // clamped to 100
	Credits      float64
	Requirements []RequirementStatus
}

type ProgressRequest struct {
	PlanID string
	Filter domain.ViewFilter
	// CurrentInstitution overrides the attributed current institution.
	CurrentInstitution string
}

func NewProgressRequest(planID string) ProgressRequest {
	return ProgressRequest{PlanID: planID, Filter: domain.FilterAll}
}

type ProgressResponse struct {
	GeneratedAt time.Time
	PlanID      string
	PlanName    string
	ProgramID   string
	ProgramName string
	Filter      domain.ViewFilter
	Current     TrackProgress
	Transfer    TrackProgress
}

type ProgressErrorCode string

const (
	ProgressErrPlanNotFound    ProgressErrorCode = "PLAN_NOT_FOUND"
	ProgressErrProgramNotFound ProgressErrorCode = "PROGRAM_NOT_FOUND"
	ProgressErrInvalidFilter   ProgressErrorCode = "INVALID_FILTER"
)

type ProgressError struct {
	Code    ProgressErrorCode
	Message string
}

func (e *ProgressError) Error() string {
	return string(e.Code) + ": " + e.Message
}
