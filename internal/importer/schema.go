package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a program import.
type ImportSchema struct {
	Program       ProgramImport       `json:"program"`
	Requirements  []RequirementImport `json:"requirements"`
	Plan          *PlanImport         `json:"plan,omitempty"`
	Catalog       []CourseImport      `json:"catalog,omitempty"`
	Equivalencies []EquivalencyImport `json:"equivalencies,omitempty"`
}

// ProgramImport defines the program-level fields in the import file.
type ProgramImport struct {
	Name         string  `json:"name"`
	Institution  string  `json:"institution"`
	TotalCredits float64 `json:"total_credits"`
}

// RequirementImport defines one degree requirement in the import file.
type RequirementImport struct {
	Category    string             `json:"category"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type,omitempty"`
	Credits     float64            `json:"credits"`
	Groups      []GroupImport      `json:"groups,omitempty"`
	Constraints []ConstraintImport `json:"constraints,omitempty"`
}

// GroupImport defines a requirement group with its course options.
type GroupImport struct {
	Ref             string         `json:"ref,omitempty"`
	Name            string         `json:"name"`
	CoursesRequired int            `json:"courses_required,omitempty"`
	CreditsRequired float64        `json:"credits_required,omitempty"`
	Options         []OptionImport `json:"options"`
}

// OptionImport defines one acceptable course for a group.
type OptionImport struct {
	Code        string `json:"code"`
	Institution string `json:"institution,omitempty"`
	Preferred   bool   `json:"preferred,omitempty"`
	Note        string `json:"note,omitempty"`
}

// ConstraintImport defines a credit-shape rule on a requirement.
type ConstraintImport struct {
	Type     string  `json:"type"`
	MinLevel int     `json:"min_level,omitempty"`
	Credits  float64 `json:"credits"`
	Tag      string  `json:"tag,omitempty"`
}

// PlanImport defines an optional plan bundled with the program.
type PlanImport struct {
	Name    string             `json:"name"`
	Status  string             `json:"status,omitempty"`
	Courses []PlanCourseImport `json:"courses"`
}

// PlanCourseImport defines one course placed on a plan.
type PlanCourseImport struct {
	Code            string   `json:"code"`
	Title           string   `json:"title,omitempty"`
	Credits         float64  `json:"credits"`
	Institution     string   `json:"institution,omitempty"`
	Level           int      `json:"level,omitempty"`
	Tag             string   `json:"tag,omitempty"`
	Status          string   `json:"status,omitempty"`
	Category        string   `json:"category,omitempty"`
	GroupRef        *string  `json:"group_ref,omitempty"`
	CreditsOverride *float64 `json:"credits_override,omitempty"`
	Term            string   `json:"term,omitempty"`
	Year            int      `json:"year,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// CourseImport defines one catalog course.
type CourseImport struct {
	Code        string  `json:"code"`
	Title       string  `json:"title"`
	Credits     float64 `json:"credits"`
	Institution string  `json:"institution,omitempty"`
	Department  string  `json:"department,omitempty"`
	Level       int     `json:"level,omitempty"`
	Tag         string  `json:"tag,omitempty"`
}

// EquivalencyImport maps an external course onto a target-institution code.
type EquivalencyImport struct {
	Institution string `json:"institution"`
	CourseCode  string `json:"course_code"`
	TargetCode  string `json:"target_code"`
}

// LoadImportSchema reads and parses a program import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
