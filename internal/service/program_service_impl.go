package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/repository"
)

type programService struct {
	programs repository.ProgramRepo
}

func NewProgramService(programs repository.ProgramRepo) ProgramService {
	return &programService{programs: programs}
}

func (s *programService) Create(ctx context.Context, p *domain.Program) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("program name is required")
	}
	if strings.TrimSpace(p.Institution) == "" {
		return fmt.Errorf("program institution is required")
	}
	return s.programs.Create(ctx, p)
}

func (s *programService) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	return s.programs.GetByID(ctx, id)
}

func (s *programService) List(ctx context.Context) ([]*domain.Program, error) {
	return s.programs.List(ctx)
}

func (s *programService) Delete(ctx context.Context, id string) error {
	return s.programs.Delete(ctx, id)
}
