package progress

import (
	"strings"

	"github.com/averyholm/telos/internal/contract"
)

// UncategorizedLabel is the display category for plan courses whose
// requirement category is missing or unknown.
const UncategorizedLabel = "Uncategorized"

// CategoryKey canonicalizes a free-text requirement category for use as a
// join key: trim, lowercase, and collapse runs of whitespace, slashes, and
// dashes to a single space. Raw category strings are never compared
// downstream; every lookup goes through this key.
func CategoryKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return strings.ToLower(UncategorizedLabel)
	}
	var b strings.Builder
	b.Grow(len(s))
	inSep := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '/', '-', '–':
			inSep = true
		default:
			if inSep && b.Len() > 0 {
				b.WriteByte(' ')
			}
			inSep = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MergeStatuses collapses requirement status entries that share a normalized
// key into one entry each, preserving first-seen order. Merge rule: credit
// totals take the max of the two, applied-course sets union, the first
// non-empty description wins, and the state is recomputed from the merged
// totals.
func MergeStatuses(entries []contract.RequirementStatus) []contract.RequirementStatus {
	var order []string
	byKey := make(map[string]*contract.RequirementStatus)

	for _, e := range entries {
		key := e.Key
		if key == "" {
			key = CategoryKey(e.Category)
		}
		existing, ok := byKey[key]
		if !ok {
			merged := e
			merged.Key = key
			byKey[key] = &merged
			order = append(order, key)
			continue
		}

		if e.TotalCredits > existing.TotalCredits {
			existing.TotalCredits = e.TotalCredits
		}
		if e.CompletedCredits > existing.CompletedCredits {
			existing.CompletedCredits = e.CompletedCredits
		}
		existing.AppliedCourses = unionCourses(existing.AppliedCourses, e.AppliedCourses)
		if existing.Description == "" {
			existing.Description = e.Description
		}
		if existing.Type == "" {
			existing.Type = e.Type
		}
		if len(existing.Groups) == 0 {
			existing.Groups = e.Groups
		}
		if len(existing.Constraints) == 0 {
			existing.Constraints = e.Constraints
		}
		existing.State = ResolveState(existing.CompletedCredits, existing.TotalCredits)
	}

	out := make([]contract.RequirementStatus, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}

// unionCourses merges two applied-course lists, keeping first-seen order and
// dropping duplicates.
func unionCourses(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, lst := range [][]string{a, b} {
		for _, c := range lst {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
