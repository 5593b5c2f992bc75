package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/repository"
)

type planService struct {
	plans    repository.PlanRepo
	programs repository.ProgramRepo
}

func NewPlanService(plans repository.PlanRepo, programs repository.ProgramRepo) PlanService {
	return &planService{plans: plans, programs: programs}
}

func (s *planService) Create(ctx context.Context, p *domain.Plan) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("plan name is required")
	}
	if _, err := s.programs.GetByID(ctx, p.ProgramID); err != nil {
		return fmt.Errorf("resolving program %s: %w", p.ProgramID, err)
	}
	return s.plans.Create(ctx, p)
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context) ([]*domain.Plan, error) {
	return s.plans.List(ctx)
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}
