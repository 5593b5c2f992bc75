package testutil

import (
	"time"

	"github.com/averyholm/telos/internal/domain"
	"github.com/google/uuid"
)

// Course options
type CourseOption func(*domain.Course)

func WithCredits(c float64) CourseOption {
	return func(course *domain.Course) {
		course.Credits = c
	}
}

func WithInstitution(inst string) CourseOption {
	return func(course *domain.Course) {
		course.Institution = inst
	}
}

func WithLevel(level int) CourseOption {
	return func(course *domain.Course) {
		course.Level = level
	}
}

func WithTag(tag string) CourseOption {
	return func(course *domain.Course) {
		course.Tag = tag
	}
}

func WithTitle(title string) CourseOption {
	return func(course *domain.Course) {
		course.Title = title
	}
}

func NewTestCourse(code string, opts ...CourseOption) domain.Course {
	c := domain.Course{
		ID:          uuid.New().String(),
		Code:        code,
		Title:       code,
		Credits:     3,
		Institution: "Salt Lake CC",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// PlanCourse options
type PlanCourseOption func(*domain.PlanCourse)

func WithStatus(s domain.CourseStatus) PlanCourseOption {
	return func(pc *domain.PlanCourse) {
		pc.Status = s
	}
}

func WithCategory(cat string) PlanCourseOption {
	return func(pc *domain.PlanCourse) {
		pc.RequirementCategory = cat
	}
}

func WithGroupID(id string) PlanCourseOption {
	return func(pc *domain.PlanCourse) {
		pc.RequirementGroupID = &id
	}
}

func WithOverride(credits float64) PlanCourseOption {
	return func(pc *domain.PlanCourse) {
		pc.CreditsOverride = &credits
	}
}

func NewTestPlanCourse(course domain.Course, opts ...PlanCourseOption) domain.PlanCourse {
	pc := domain.PlanCourse{
		ID:     uuid.New().String(),
		Course: course,
		Status: domain.CourseCompleted,
	}
	for _, opt := range opts {
		opt(&pc)
	}
	return pc
}

// Plan options
type PlanOption func(*domain.Plan)

func WithCourses(courses ...domain.PlanCourse) PlanOption {
	return func(p *domain.Plan) {
		p.Courses = courses
	}
}

func NewTestPlan(programID string, opts ...PlanOption) domain.Plan {
	now := time.Now().UTC()
	p := domain.Plan{
		ID:        uuid.New().String(),
		ProgramID: programID,
		Name:      "Test Plan",
		Status:    domain.PlanActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Requirement helpers
func NewSimpleRequirement(category string, credits float64) domain.Requirement {
	return domain.Requirement{
		ID:              uuid.New().String(),
		Category:        category,
		Type:            domain.RequirementSimple,
		CreditsRequired: credits,
	}
}

func NewGroupedRequirement(category string, credits float64, groups ...domain.RequirementGroup) domain.Requirement {
	return domain.Requirement{
		ID:              uuid.New().String(),
		Category:        category,
		Type:            domain.RequirementGrouped,
		CreditsRequired: credits,
		Groups:          groups,
	}
}

func NewTestGroup(name string, coursesRequired int, codes ...string) domain.RequirementGroup {
	g := domain.RequirementGroup{
		ID:              uuid.New().String(),
		Name:            name,
		CoursesRequired: coursesRequired,
	}
	for _, code := range codes {
		g.Options = append(g.Options, domain.CourseOption{CourseCode: code})
	}
	return g
}

// Program options
type ProgramOption func(*domain.Program)

func WithRequirements(reqs ...domain.Requirement) ProgramOption {
	return func(p *domain.Program) {
		p.Requirements = reqs
	}
}

func WithTotalCredits(c float64) ProgramOption {
	return func(p *domain.Program) {
		p.TotalCreditsRequired = c
	}
}

func NewTestProgram(name string, opts ...ProgramOption) domain.Program {
	now := time.Now().UTC()
	p := domain.Program{
		ID:                   uuid.New().String(),
		Name:                 name,
		Institution:          "Weber State",
		TotalCreditsRequired: 120,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
