package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// Course is a catalog course as supplied by an institution's course inventory.
type Course struct {
	ID          string
	Code        string // e.g. "MATH 1010"
	Title       string
	Credits     float64
	Institution string
	Department  string
	Level       int    // numeric course level, 0 when unknown
	Tag         string // course type tag, e.g. "developmental", "technical"
}

// EffectiveLevel returns the explicit level when set, otherwise the level
// parsed from the course code's numeric part. Returns 0 when neither is known.
func (c Course) EffectiveLevel() int {
	if c.Level > 0 {
		return c.Level
	}
	return LevelFromCode(c.Code)
}

// LevelFromCode extracts the numeric level from a course code such as
// "MATH 1010" or "ENGL-2030H". The first run of digits is taken; trailing
// letters (honors/lab suffixes) are ignored. Returns 0 if no digits exist.
func LevelFromCode(code string) int {
	start := -1
	for i, r := range code {
		if unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}
	end := start
	for end < len(code) && code[end] >= '0' && code[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(code[start:end])
	if err != nil {
		return 0
	}
	return n
}

// NormalizeCode canonicalizes a course code for comparison: uppercase with
// separator runs (spaces, dashes) collapsed to a single space.
func NormalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	var b strings.Builder
	inSep := false
	for _, r := range code {
		if r == ' ' || r == '-' || r == '\t' {
			inSep = true
			continue
		}
		if inSep && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSep = false
		b.WriteRune(r)
	}
	return b.String()
}

// SameCode reports whether two course codes refer to the same course after
// normalization.
func SameCode(a, b string) bool {
	return NormalizeCode(a) == NormalizeCode(b)
}

// Equivalency maps a course at one institution to its equivalent at the
// target institution. Supplied externally (articulation agreements).
type Equivalency struct {
	Institution string
	CourseCode  string
	TargetCode  string
}

// EquivalencyKey builds the lookup key used by equivalency sets.
func EquivalencyKey(institution, code string) string {
	return strings.ToLower(strings.TrimSpace(institution)) + "|" + NormalizeCode(code)
}
