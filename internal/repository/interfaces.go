package repository

import (
	"context"

	"github.com/averyholm/telos/internal/domain"
)

// CourseSearch is a catalog query: subject prefix and/or title search,
// optionally scoped to an institution and a minimum course level.
type CourseSearch struct {
	Search      string
	Subject     string
	Institution string
	MinLevel    int
	Limit       int
}

type ProgramRepo interface {
	Create(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	List(ctx context.Context) ([]*domain.Program, error)
	Delete(ctx context.Context, id string) error
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Delete(ctx context.Context, id string) error
}

type CatalogRepo interface {
	Upsert(ctx context.Context, c *domain.Course) error
	GetByCode(ctx context.Context, code, institution string) (*domain.Course, error)
	Search(ctx context.Context, q CourseSearch) ([]domain.Course, error)
	Count(ctx context.Context) (int, error)
}

type EquivalencyRepo interface {
	Upsert(ctx context.Context, e domain.Equivalency) error
	LoadAll(ctx context.Context) (map[string]domain.Equivalency, error)
}
