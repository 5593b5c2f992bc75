package progress

import (
	"github.com/averyholm/telos/internal/domain"
)

// GroupKey addresses a credit bucket scoped to one group of one category.
type GroupKey struct {
	Category string // normalized category key
	GroupID  string
}

// Buckets holds accumulated credits per requirement category and per
// requirement group under one view filter. Building buckets is pure: the
// same (plan, program, filter) always yields the same buckets, so callers
// may memoize freely.
type Buckets struct {
	Category     map[string]float64
	Group        map[GroupKey]float64
	GroupCourses map[GroupKey]int
	// Courses lists the filtered plan courses per category key, in plan
	// order. Constraint evaluation and applied-course reporting read this.
	Courses map[string][]domain.PlanCourse
}

// BuildBuckets sums course credits per category and per group for every plan
// course passing the filter. Credit value is the per-plan override when set,
// otherwise the catalog credits (0 when absent). A course counts toward at
// most one group per requirement: groups and their options are tested in
// declared order and the first match wins. Courses without a recognizable
// category land under "Uncategorized".
func BuildBuckets(plan domain.Plan, program domain.Program, filter domain.ViewFilter) Buckets {
	b := Buckets{
		Category:     make(map[string]float64),
		Group:        make(map[GroupKey]float64),
		GroupCourses: make(map[GroupKey]int),
		Courses:      make(map[string][]domain.PlanCourse),
	}

	reqByKey := indexRequirements(program)

	for _, pc := range plan.Courses {
		if !filter.Matches(pc.Status) {
			continue
		}

		key := CategoryKey(pc.RequirementCategory)
		credits := pc.CreditValue()

		b.Category[key] += credits
		b.Courses[key] = append(b.Courses[key], pc)

		req, ok := reqByKey[key]
		if !ok || req.Type != domain.RequirementGrouped {
			continue
		}
		if gid, matched := matchGroup(req, pc); matched {
			gk := GroupKey{Category: key, GroupID: gid}
			b.Group[gk] += credits
			b.GroupCourses[gk]++
		}
	}

	return b
}

// indexRequirements maps normalized category keys to requirements. When a
// program carries duplicate category spellings, the first declaration wins
// for group matching; the status entries themselves are merged later.
func indexRequirements(program domain.Program) map[string]*domain.Requirement {
	idx := make(map[string]*domain.Requirement, len(program.Requirements))
	for i := range program.Requirements {
		key := CategoryKey(program.Requirements[i].Category)
		if _, ok := idx[key]; !ok {
			idx[key] = &program.Requirements[i]
		}
	}
	return idx
}

// matchGroup finds the first group whose options accept the course. An
// explicit group assignment on the plan course pins the match to that group
// (still requiring an option match when the group declares options).
func matchGroup(req *domain.Requirement, pc domain.PlanCourse) (string, bool) {
	if pc.RequirementGroupID != nil {
		for _, g := range req.Groups {
			if g.ID == *pc.RequirementGroupID {
				return g.ID, true
			}
		}
	}
	for _, g := range req.Groups {
		for _, opt := range g.Options {
			if opt.Matches(pc) {
				return g.ID, true
			}
		}
	}
	return "", false
}
