package importer

import (
	"fmt"
	"strings"
)

var (
	validRequirementTypes = map[string]bool{"simple": true, "grouped": true}
	validConstraintTypes  = map[string]bool{"min_level_credits": true, "max_tag_credits": true}
	validCourseStatuses   = map[string]bool{"planned": true, "in_progress": true, "completed": true}
	validPlanStatuses     = map[string]bool{"draft": true, "active": true, "complete": true}
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateProgram(&schema.Program)...)

	groupRefs := make(map[string]bool)
	errs = append(errs, validateRequirements(schema.Requirements, groupRefs)...)

	if schema.Plan != nil {
		errs = append(errs, validatePlan(schema.Plan, groupRefs)...)
	}

	errs = append(errs, validateCatalog(schema.Catalog)...)
	errs = append(errs, validateEquivalencies(schema.Equivalencies)...)

	return errs
}

func validateProgram(p *ProgramImport) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("program.name is required"))
	}
	if p.Institution == "" {
		errs = append(errs, fmt.Errorf("program.institution is required"))
	}
	if p.TotalCredits < 0 {
		errs = append(errs, fmt.Errorf("program.total_credits must not be negative"))
	}

	return errs
}

func validateRequirements(reqs []RequirementImport, groupRefs map[string]bool) []error {
	var errs []error

	if len(reqs) == 0 {
		errs = append(errs, fmt.Errorf("at least one requirement is required"))
	}

	for i, r := range reqs {
		prefix := fmt.Sprintf("requirements[%d]", i)

		if strings.TrimSpace(r.Category) == "" {
			errs = append(errs, fmt.Errorf("%s.category is required", prefix))
		}
		if r.Type != "" && !validRequirementTypes[r.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, r.Type))
		}
		if r.Credits < 0 {
			errs = append(errs, fmt.Errorf("%s.credits must not be negative", prefix))
		}
		if r.Type == "grouped" && len(r.Groups) == 0 {
			errs = append(errs, fmt.Errorf("%s: grouped requirement has no groups", prefix))
		}
		if r.Type == "simple" && len(r.Groups) > 0 {
			errs = append(errs, fmt.Errorf("%s: groups are only allowed on grouped requirements", prefix))
		}

		for j, g := range r.Groups {
			gPrefix := fmt.Sprintf("%s.groups[%d]", prefix, j)

			if g.Ref != "" {
				if groupRefs[g.Ref] {
					errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", gPrefix, g.Ref))
				} else {
					groupRefs[g.Ref] = true
				}
			}
			if g.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", gPrefix))
			}
			if g.CoursesRequired <= 0 && g.CreditsRequired <= 0 {
				errs = append(errs, fmt.Errorf("%s: either courses_required or credits_required must be positive", gPrefix))
			}
			if len(g.Options) == 0 {
				errs = append(errs, fmt.Errorf("%s.options must not be empty", gPrefix))
			}
			for k, o := range g.Options {
				if o.Code == "" {
					errs = append(errs, fmt.Errorf("%s.options[%d].code is required", gPrefix, k))
				}
			}
		}

		for j, c := range r.Constraints {
			cPrefix := fmt.Sprintf("%s.constraints[%d]", prefix, j)

			if !validConstraintTypes[c.Type] {
				errs = append(errs, fmt.Errorf("%s.type: invalid value %q", cPrefix, c.Type))
			}
			if c.Credits <= 0 {
				errs = append(errs, fmt.Errorf("%s.credits must be positive", cPrefix))
			}
			if c.Type == "min_level_credits" && c.MinLevel <= 0 {
				errs = append(errs, fmt.Errorf("%s.min_level must be positive", cPrefix))
			}
			if c.Type == "max_tag_credits" && c.Tag == "" {
				errs = append(errs, fmt.Errorf("%s.tag is required for max_tag_credits", cPrefix))
			}
		}
	}

	return errs
}

func validatePlan(p *PlanImport, groupRefs map[string]bool) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("plan.name is required"))
	}
	if p.Status != "" && !validPlanStatuses[p.Status] {
		errs = append(errs, fmt.Errorf("plan.status: invalid value %q", p.Status))
	}

	for i, pc := range p.Courses {
		prefix := fmt.Sprintf("plan.courses[%d]", i)

		if pc.Code == "" {
			errs = append(errs, fmt.Errorf("%s.code is required", prefix))
		}
		if pc.Credits < 0 {
			errs = append(errs, fmt.Errorf("%s.credits must not be negative", prefix))
		}
		if pc.Status != "" && !validCourseStatuses[pc.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, pc.Status))
		}
		if pc.GroupRef != nil && *pc.GroupRef != "" && !groupRefs[*pc.GroupRef] {
			errs = append(errs, fmt.Errorf("%s.group_ref: ref %q not found in requirement groups", prefix, *pc.GroupRef))
		}
		if pc.CreditsOverride != nil && *pc.CreditsOverride < 0 {
			errs = append(errs, fmt.Errorf("%s.credits_override must not be negative", prefix))
		}
	}

	return errs
}

func validateCatalog(courses []CourseImport) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, c := range courses {
		prefix := fmt.Sprintf("catalog[%d]", i)

		if c.Code == "" {
			errs = append(errs, fmt.Errorf("%s.code is required", prefix))
			continue
		}
		if c.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if c.Credits < 0 {
			errs = append(errs, fmt.Errorf("%s.credits must not be negative", prefix))
		}
		key := strings.ToLower(c.Institution) + "|" + strings.ToUpper(c.Code)
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate course %q for institution %q", prefix, c.Code, c.Institution))
		}
		seen[key] = true
	}

	return errs
}

func validateEquivalencies(eqs []EquivalencyImport) []error {
	var errs []error

	for i, e := range eqs {
		prefix := fmt.Sprintf("equivalencies[%d]", i)

		if e.Institution == "" {
			errs = append(errs, fmt.Errorf("%s.institution is required", prefix))
		}
		if e.CourseCode == "" {
			errs = append(errs, fmt.Errorf("%s.course_code is required", prefix))
		}
		if e.TargetCode == "" {
			errs = append(errs, fmt.Errorf("%s.target_code is required", prefix))
		}
	}

	return errs
}
