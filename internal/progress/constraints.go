package progress

import (
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
)

// EvaluateConstraints checks each constraint against the bucketed courses.
// Evaluation is independent of the credit state and never fails: a course
// missing the data a constraint references (unknown level, no tag) is simply
// excluded from credit toward that constraint.
func EvaluateConstraints(constraints []domain.Constraint, courses []domain.PlanCourse) []contract.ConstraintResult {
	if len(constraints) == 0 {
		return nil
	}
	results := make([]contract.ConstraintResult, 0, len(constraints))
	for _, c := range constraints {
		results = append(results, evaluateConstraint(c, courses))
	}
	return results
}

func evaluateConstraint(c domain.Constraint, courses []domain.PlanCourse) contract.ConstraintResult {
	switch c.Type {
	case domain.ConstraintMinLevelCredits:
		return evalMinLevel(c, courses)
	case domain.ConstraintMaxTagCredits:
		return evalMaxTag(c, courses)
	}
	// Unknown constraint types are reported, not guessed at.
	return contract.ConstraintResult{
		Type:      c.Type,
		Satisfied: true,
		Reason:    fmt.Sprintf("constraint type %q not evaluated", string(c.Type)),
	}
}

// evalMinLevel requires a minimum credit sum from courses at or above the
// constraint level. Courses whose level cannot be determined do not count.
func evalMinLevel(c domain.Constraint, courses []domain.PlanCourse) contract.ConstraintResult {
	var tally float64
	for _, pc := range courses {
		level := pc.Course.EffectiveLevel()
		if level >= c.MinLevel && level > 0 {
			tally += pc.CreditValue()
		}
	}
	satisfied := tally >= c.Credits
	reason := fmt.Sprintf("%.1f of %.1f credits at level %d+", tally, c.Credits, c.MinLevel)
	if !satisfied {
		reason = fmt.Sprintf("needs %.1f credits at level %d+, counted %.1f", c.Credits, c.MinLevel, tally)
	}
	return contract.ConstraintResult{
		Type:      c.Type,
		Satisfied: satisfied,
		Reason:    reason,
		Tally:     tally,
	}
}

// evalMaxTag caps the credits contributed by courses sharing a tag.
func evalMaxTag(c domain.Constraint, courses []domain.PlanCourse) contract.ConstraintResult {
	var tally float64
	for _, pc := range courses {
		if pc.Course.Tag != "" && strings.EqualFold(pc.Course.Tag, c.Tag) {
			tally += pc.CreditValue()
		}
	}
	satisfied := tally <= c.Credits
	reason := fmt.Sprintf("%.1f of %.1f allowed %q credits", tally, c.Credits, c.Tag)
	if !satisfied {
		reason = fmt.Sprintf("%q credits capped at %.1f, counted %.1f", c.Tag, c.Credits, tally)
	}
	return contract.ConstraintResult{
		Type:      c.Type,
		Tag:       c.Tag,
		Satisfied: satisfied,
		Reason:    reason,
		Tally:     tally,
	}
}

// ExcludedTags returns the tags of violated max-tag constraints. The
// suggestion matcher drops candidates carrying any of these tags, since
// adding more of them cannot advance the requirement.
func ExcludedTags(results []contract.ConstraintResult) []string {
	var tags []string
	for _, r := range results {
		if r.Type == domain.ConstraintMaxTagCredits && !r.Satisfied && r.Tag != "" {
			tags = append(tags, r.Tag)
		}
	}
	return tags
}
