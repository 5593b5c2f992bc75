package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/repository"
)

type catalogService struct {
	catalog repository.CatalogRepo
}

func NewCatalogService(catalog repository.CatalogRepo) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) Upsert(ctx context.Context, c *domain.Course) error {
	if strings.TrimSpace(c.Code) == "" {
		return fmt.Errorf("course code is required")
	}
	if c.Level == 0 {
		c.Level = domain.LevelFromCode(c.Code)
	}
	return s.catalog.Upsert(ctx, c)
}

func (s *catalogService) GetByCode(ctx context.Context, code, institution string) (*domain.Course, error) {
	return s.catalog.GetByCode(ctx, code, institution)
}

func (s *catalogService) Search(ctx context.Context, q repository.CourseSearch) ([]domain.Course, error) {
	return s.catalog.Search(ctx, q)
}

func (s *catalogService) Count(ctx context.Context) (int, error) {
	return s.catalog.Count(ctx)
}
