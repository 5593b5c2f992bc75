package domain

import "time"

// Requirement is a named degree obligation: either a flat credit target
// ("simple") or a set of alternative course groups ("grouped").
type Requirement struct {
	ID              string
	Category        string // display name
	Description     string
	Type            RequirementType
	CreditsRequired float64
	Groups          []RequirementGroup // populated for grouped requirements
	Constraints     []Constraint
}

// RequirementGroup is a sub-requirement within a grouped Requirement,
// satisfied by any combination of its listed course options. Fulfillment is
// measured in courses when CoursesRequired is set, otherwise in credits.
type RequirementGroup struct {
	ID              string
	Name            string
	CoursesRequired int     // 0 = not specified
	CreditsRequired float64 // used when CoursesRequired is 0
	Options         []CourseOption
}

// CourseOption is one acceptable course for a requirement group.
type CourseOption struct {
	CourseCode  string
	Institution string // empty = any institution
	IsPreferred bool
	Notes       string
}

// Matches reports whether a plan course satisfies this option. Codes are
// compared normalized; institution only when the option pins one.
func (o CourseOption) Matches(pc PlanCourse) bool {
	if !SameCode(o.CourseCode, pc.Course.Code) {
		return false
	}
	if o.Institution != "" && !sameInstitution(o.Institution, pc.Course.Institution) {
		return false
	}
	return true
}

// Constraint is an additional rule on a requirement, independent of the raw
// credit sum. Exactly the fields relevant to Type are populated.
type Constraint struct {
	Type     ConstraintType
	MinLevel int     // min_level_credits: count only courses at/above this level
	Credits  float64 // min_level_credits: floor; max_tag_credits: cap
	Tag      string  // max_tag_credits: the capped course tag
}

// Program is a degree program's requirement schema at a target institution.
type Program struct {
	ID                   string
	Name                 string
	Institution          string // the target ("transfer-to") institution
	TotalCreditsRequired float64
	Requirements         []Requirement // declared order is display order
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
