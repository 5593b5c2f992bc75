package suggest

import "strings"

// subjectRule maps a requirement-name keyword to catalog subject prefixes,
// optionally narrowed by title keywords.
type subjectRule struct {
	Keyword       string
	Subjects      []string
	TitleKeywords []string
}

// keywordRules is the fixed requirement-keyword → subject table for simple
// requirements. Checked in order; every matching rule contributes sources.
var keywordRules = []subjectRule{
	{Keyword: "composition", Subjects: []string{"ENGL", "ENG"}, TitleKeywords: []string{"composition", "writing", "rhetoric"}},
	{Keyword: "writing", Subjects: []string{"ENGL", "ENG"}, TitleKeywords: []string{"writing", "composition"}},
	{Keyword: "english", Subjects: []string{"ENGL", "ENG"}},
	{Keyword: "math", Subjects: []string{"MATH"}},
	{Keyword: "quantitative", Subjects: []string{"MATH", "STAT"}},
	{Keyword: "statistics", Subjects: []string{"STAT", "MATH"}, TitleKeywords: []string{"statistics"}},
	{Keyword: "lab", Subjects: []string{"BIOL", "CHEM", "PHYS", "GEOL"}, TitleKeywords: []string{"lab", "laboratory"}},
	{Keyword: "science", Subjects: []string{"BIOL", "CHEM", "PHYS", "GEOL"}},
	{Keyword: "biology", Subjects: []string{"BIOL"}},
	{Keyword: "chemistry", Subjects: []string{"CHEM"}},
	{Keyword: "physics", Subjects: []string{"PHYS"}},
	{Keyword: "social", Subjects: []string{"SOC", "PSYC", "POLS", "ECON", "ANTH"}},
	{Keyword: "history", Subjects: []string{"HIST"}},
	{Keyword: "american institutions", Subjects: []string{"HIST", "POLS", "ECON"}},
	{Keyword: "humanities", Subjects: []string{"HUM", "PHIL", "ENGL"}},
	{Keyword: "philosophy", Subjects: []string{"PHIL"}},
	{Keyword: "art", Subjects: []string{"ART", "MUS", "THEA", "DANC"}},
	{Keyword: "fine arts", Subjects: []string{"ART", "MUS", "THEA", "DANC"}},
	{Keyword: "music", Subjects: []string{"MUS"}},
	{Keyword: "language", Subjects: []string{"SPAN", "FREN", "GERM", "ASL"}},
	{Keyword: "communication", Subjects: []string{"COMM"}, TitleKeywords: []string{"communication", "speech"}},
	{Keyword: "computer", Subjects: []string{"CS", "CSIS", "IT"}},
	{Keyword: "economics", Subjects: []string{"ECON"}},
	{Keyword: "psychology", Subjects: []string{"PSYC", "PSY"}},
}

// rulesFor returns the table rules whose keyword occurs in the requirement
// category. Matching is substring-based over the lowercased category, so
// "Written Composition EN1" hits the composition rule.
func rulesFor(category string) []subjectRule {
	cat := strings.ToLower(category)
	var matched []subjectRule
	seen := make(map[string]bool)
	for _, rule := range keywordRules {
		if !strings.Contains(cat, rule.Keyword) {
			continue
		}
		if seen[rule.Keyword] {
			continue
		}
		seen[rule.Keyword] = true
		matched = append(matched, rule)
	}
	return matched
}
