package importer

import (
	"fmt"
	"time"

	"github.com/averyholm/telos/internal/domain"
	"github.com/google/uuid"
)

// ImportedBundle holds the domain objects produced from one import file.
type ImportedBundle struct {
	Program       *domain.Program
	Plan          *domain.Plan
	Catalog       []domain.Course
	Equivalencies []domain.Equivalency
}

// Convert transforms a validated ImportSchema into domain objects ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema
// is valid.
func Convert(schema *ImportSchema) (*ImportedBundle, error) {
	now := time.Now().UTC()

	program := &domain.Program{
		ID:                   uuid.New().String(),
		Name:                 schema.Program.Name,
		Institution:          schema.Program.Institution,
		TotalCreditsRequired: schema.Program.TotalCredits,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	refMap := make(map[string]string) // group ref -> UUID

	for _, r := range schema.Requirements {
		req := domain.Requirement{
			ID:              uuid.New().String(),
			Category:        r.Category,
			Description:     r.Description,
			Type:            requirementType(r),
			CreditsRequired: r.Credits,
		}

		for _, g := range r.Groups {
			realID := uuid.New().String()
			if g.Ref != "" {
				refMap[g.Ref] = realID
			}
			group := domain.RequirementGroup{
				ID:              realID,
				Name:            g.Name,
				CoursesRequired: g.CoursesRequired,
				CreditsRequired: g.CreditsRequired,
			}
			for _, o := range g.Options {
				group.Options = append(group.Options, domain.CourseOption{
					CourseCode:  domain.NormalizeCode(o.Code),
					Institution: o.Institution,
					IsPreferred: o.Preferred,
					Notes:       o.Note,
				})
			}
			req.Groups = append(req.Groups, group)
		}

		for _, c := range r.Constraints {
			req.Constraints = append(req.Constraints, domain.Constraint{
				Type:     domain.ConstraintType(c.Type),
				MinLevel: c.MinLevel,
				Credits:  c.Credits,
				Tag:      c.Tag,
			})
		}

		program.Requirements = append(program.Requirements, req)
	}

	var plan *domain.Plan
	if schema.Plan != nil {
		p, err := convertPlan(schema.Plan, program, refMap, now)
		if err != nil {
			return nil, err
		}
		plan = p
	}

	catalog := make([]domain.Course, 0, len(schema.Catalog))
	for _, c := range schema.Catalog {
		course := domain.Course{
			ID:          uuid.New().String(),
			Code:        domain.NormalizeCode(c.Code),
			Title:       c.Title,
			Credits:     c.Credits,
			Institution: coalesce(c.Institution, program.Institution),
			Department:  c.Department,
			Level:       c.Level,
			Tag:         c.Tag,
		}
		if course.Level == 0 {
			course.Level = domain.LevelFromCode(course.Code)
		}
		catalog = append(catalog, course)
	}

	eqs := make([]domain.Equivalency, 0, len(schema.Equivalencies))
	for _, e := range schema.Equivalencies {
		eqs = append(eqs, domain.Equivalency{
			Institution: e.Institution,
			CourseCode:  domain.NormalizeCode(e.CourseCode),
			TargetCode:  domain.NormalizeCode(e.TargetCode),
		})
	}

	return &ImportedBundle{
		Program:       program,
		Plan:          plan,
		Catalog:       catalog,
		Equivalencies: eqs,
	}, nil
}

func convertPlan(pi *PlanImport, program *domain.Program, refMap map[string]string, now time.Time) (*domain.Plan, error) {
	status := pi.Status
	if status == "" {
		status = string(domain.PlanActive)
	}

	plan := &domain.Plan{
		ID:        uuid.New().String(),
		ProgramID: program.ID,
		Name:      pi.Name,
		Status:    domain.PlanStatus(status),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, pc := range pi.Courses {
		courseStatus := pc.Status
		if courseStatus == "" {
			courseStatus = string(domain.CoursePlanned)
		}

		var groupID *string
		if pc.GroupRef != nil && *pc.GroupRef != "" {
			realID, ok := refMap[*pc.GroupRef]
			if !ok {
				return nil, fmt.Errorf("group_ref %q not found for plan course %q", *pc.GroupRef, pc.Code)
			}
			groupID = &realID
		}

		course := domain.Course{
			ID:          uuid.New().String(),
			Code:        domain.NormalizeCode(pc.Code),
			Title:       coalesce(pc.Title, pc.Code),
			Credits:     pc.Credits,
			Institution: coalesce(pc.Institution, program.Institution),
			Level:       pc.Level,
			Tag:         pc.Tag,
		}
		if course.Level == 0 {
			course.Level = domain.LevelFromCode(course.Code)
		}

		plan.Courses = append(plan.Courses, domain.PlanCourse{
			ID:                  uuid.New().String(),
			Course:              course,
			Status:              domain.CourseStatus(courseStatus),
			RequirementCategory: pc.Category,
			RequirementGroupID:  groupID,
			CreditsOverride:     pc.CreditsOverride,
			Term:                pc.Term,
			Year:                pc.Year,
			Notes:               pc.Notes,
		})
	}

	return plan, nil
}

// requirementType infers the type when the file omits it: a requirement
// with groups is grouped, anything else is simple.
func requirementType(r RequirementImport) domain.RequirementType {
	if r.Type != "" {
		return domain.RequirementType(r.Type)
	}
	if len(r.Groups) > 0 {
		return domain.RequirementGrouped
	}
	return domain.RequirementSimple
}

func coalesce(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
