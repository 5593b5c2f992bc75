package service

import (
	"context"

	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/importer"
	"github.com/averyholm/telos/internal/repository"
)

type ProgramService interface {
	Create(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	List(ctx context.Context) ([]*domain.Program, error)
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Delete(ctx context.Context, id string) error
}

type CatalogService interface {
	Upsert(ctx context.Context, c *domain.Course) error
	GetByCode(ctx context.Context, code, institution string) (*domain.Course, error)
	Search(ctx context.Context, q repository.CourseSearch) ([]domain.Course, error)
	Count(ctx context.Context) (int, error)
}

type ProgressService interface {
	GetProgress(ctx context.Context, req contract.ProgressRequest) (*contract.ProgressResponse, error)
	GetSegments(ctx context.Context, req contract.SegmentsRequest) (*contract.SegmentsResponse, error)
}

type SuggestService interface {
	Suggest(ctx context.Context, req contract.SuggestRequest) (*contract.SuggestResponse, error)
}

// ImportResult holds the outcome of a program import.
type ImportResult struct {
	Program          *domain.Program
	Plan             *domain.Plan
	RequirementCount int
	PlanCourseCount  int
	CatalogCount     int
	EquivalencyCount int
}

type ImportService interface {
	ImportProgram(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProgramFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
