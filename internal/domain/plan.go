package domain

import "time"

// PlanCourse is one course slot on a transfer plan. The course reference is
// resolved at load time; Credits on the embedded course may be overridden
// per-plan (e.g. a variable-credit topics course).
type PlanCourse struct {
	ID                  string
	Course              Course
	Status              CourseStatus
	RequirementCategory string // free text as entered; normalized downstream
	RequirementGroupID  *string
	CreditsOverride     *float64
	Term                string
	Year                int
	Notes               string
}

// CreditValue returns the explicit override when present, otherwise the
// catalog course credits. Missing credits count as 0.
func (pc PlanCourse) CreditValue() float64 {
	if pc.CreditsOverride != nil {
		return *pc.CreditsOverride
	}
	return pc.Course.Credits
}

// Plan is a student's course-transfer plan against a degree program.
type Plan struct {
	ID        string
	ProgramID string
	Name      string
	Status    PlanStatus
	Courses   []PlanCourse // ordered as entered
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CourseIDs returns the set of catalog course IDs already on the plan.
func (p Plan) CourseIDs() map[string]bool {
	ids := make(map[string]bool, len(p.Courses))
	for _, pc := range p.Courses {
		if pc.Course.ID != "" {
			ids[pc.Course.ID] = true
		}
	}
	return ids
}

// CompletedCourses returns the plan courses with completed status.
func (p Plan) CompletedCourses() []PlanCourse {
	var out []PlanCourse
	for _, pc := range p.Courses {
		if pc.Status == CourseCompleted {
			out = append(out, pc)
		}
	}
	return out
}
