package suggest

import (
	"strings"

	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/progress"
)

// applyFilters runs the universal candidate filters in their fixed order,
// regardless of which strategy produced the candidate:
//  1. already on the plan
//  2. developmental level floor (conservative when the level is unknown and
//     the requirement demands upper-division work)
//  3. tags excluded by a violated max-tag constraint
//  4. explicitly non-transferable courses
func (m *Matcher) applyFilters(candidates []contract.Candidate, req Request) []contract.Candidate {
	excluded := progress.ExcludedTags(req.Constraints)
	minLevel := requiredMinLevel(req.Requirement)

	out := candidates[:0]
	for _, c := range candidates {
		if m.onPlan(c.Course, req) {
			continue
		}
		if m.belowLevelFloor(c.Course, minLevel) {
			continue
		}
		if tagExcluded(c.Course, excluded) {
			continue
		}
		if m.nonTransferable(c.Course) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (m *Matcher) onPlan(course domain.Course, req Request) bool {
	if course.ID != "" && req.OnPlan[course.ID] {
		return true
	}
	// Imported plans may carry courses without catalog IDs; fall back to a
	// code+institution comparison.
	for _, pc := range req.Plan.Courses {
		if domain.SameCode(pc.Course.Code, course.Code) &&
			strings.EqualFold(strings.TrimSpace(pc.Course.Institution), strings.TrimSpace(course.Institution)) {
			return true
		}
	}
	return false
}

// belowLevelFloor drops developmental courses. A known level below the
// configured floor is always rejected; an unknown level is rejected only
// when the requirement demands upper-division work, a conservative call
// that prefers a missed suggestion over a useless one.
func (m *Matcher) belowLevelFloor(course domain.Course, requirementMinLevel int) bool {
	level := course.EffectiveLevel()
	if level == 0 {
		return requirementMinLevel >= upperDivisionLevel
	}
	return level < m.cfg.MinCourseLevel
}

const upperDivisionLevel = 3000

// requiredMinLevel infers the minimum course level a requirement demands:
// the highest min-level constraint, or upper-division when the category name
// says so.
func requiredMinLevel(req domain.Requirement) int {
	minLevel := 0
	for _, c := range req.Constraints {
		if c.Type == domain.ConstraintMinLevelCredits && c.MinLevel > minLevel {
			minLevel = c.MinLevel
		}
	}
	if containsAnyFold(req.Category, []string{"upper division", "upper-division", "advanced", "senior"}) {
		if minLevel < upperDivisionLevel {
			minLevel = upperDivisionLevel
		}
	}
	return minLevel
}

func tagExcluded(course domain.Course, excluded []string) bool {
	if course.Tag == "" {
		return false
	}
	for _, tag := range excluded {
		if strings.EqualFold(course.Tag, tag) {
			return true
		}
	}
	return false
}

// nonTransferable flags courses the target institution refuses: a title
// carrying the no-equivalent marker, or a code with the designated
// non-equivalent suffix.
func (m *Matcher) nonTransferable(course domain.Course) bool {
	if m.cfg.NonTransferMarker != "" &&
		strings.Contains(strings.ToLower(course.Title), strings.ToLower(m.cfg.NonTransferMarker)) {
		return true
	}
	if m.cfg.NonTransferSuffix != "" {
		code := domain.NormalizeCode(course.Code)
		if strings.HasSuffix(code, " "+m.cfg.NonTransferSuffix) ||
			strings.HasSuffix(code, m.cfg.NonTransferSuffix) && endsWithDigitBefore(code, m.cfg.NonTransferSuffix) {
			return true
		}
	}
	return false
}

// endsWithDigitBefore reports whether code ends with suffix immediately
// preceded by a digit, e.g. "MATH 1010NE". Keeps subjects that merely end in
// the suffix letters (e.g. "GENE") from being flagged.
func endsWithDigitBefore(code, suffix string) bool {
	idx := len(code) - len(suffix) - 1
	if idx < 0 {
		return false
	}
	return code[idx] >= '0' && code[idx] <= '9'
}

func containsAnyFold(s string, subs []string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
