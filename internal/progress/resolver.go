package progress

import (
	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
)

// ResolveState derives the completion state from bucketed credits.
// A requirement with no credit target resolves to none regardless of
// accumulated credits.
func ResolveState(got, need float64) contract.CompletionState {
	switch {
	case need <= 0:
		return contract.StateNone
	case got >= need:
		return contract.StateMet
	case got > 0:
		return contract.StatePart
	}
	return contract.StateNone
}

// ResolveRequirements derives a status entry per program requirement from
// the buckets, then collapses duplicate category spellings. Constraint
// results ride alongside the state: a credit-met requirement with a violated
// constraint reports both.
func ResolveRequirements(program domain.Program, b Buckets) []contract.RequirementStatus {
	entries := make([]contract.RequirementStatus, 0, len(program.Requirements))

	for _, req := range program.Requirements {
		key := CategoryKey(req.Category)
		got := b.Category[key]
		courses := b.Courses[key]

		entry := contract.RequirementStatus{
			Category:         req.Category,
			Key:              key,
			Description:      req.Description,
			Type:             req.Type,
			State:            ResolveState(got, req.CreditsRequired),
			CompletedCredits: got,
			TotalCredits:     req.CreditsRequired,
			Constraints:      EvaluateConstraints(req.Constraints, courses),
			AppliedCourses:   appliedCodes(courses),
		}

		for _, g := range req.Groups {
			gk := GroupKey{Category: key, GroupID: g.ID}
			entry.Groups = append(entry.Groups, resolveGroup(g, b.GroupCourses[gk], b.Group[gk]))
		}

		entries = append(entries, entry)
	}

	return MergeStatuses(entries)
}

// resolveGroup derives one group's status. Fulfillment is measured in
// courses when the group declares a course count, otherwise in credits.
func resolveGroup(g domain.RequirementGroup, coursesCompleted int, creditsCompleted float64) contract.GroupStatus {
	var full bool
	if g.CoursesRequired > 0 {
		full = coursesCompleted >= g.CoursesRequired
	} else {
		full = g.CreditsRequired > 0 && creditsCompleted >= g.CreditsRequired
	}
	return contract.GroupStatus{
		GroupID:          g.ID,
		GroupName:        g.Name,
		CoursesCompleted: coursesCompleted,
		CreditsCompleted: creditsCompleted,
		IsFull:           full,
	}
}

func appliedCodes(courses []domain.PlanCourse) []string {
	seen := make(map[string]bool, len(courses))
	var codes []string
	for _, pc := range courses {
		code := domain.NormalizeCode(pc.Course.Code)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}
