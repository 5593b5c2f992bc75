package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/layout"
	"github.com/averyholm/telos/internal/progress"
	"github.com/averyholm/telos/internal/repository"
)

type progressService struct {
	plans         repository.PlanRepo
	programs      repository.ProgramRepo
	equivalencies repository.EquivalencyRepo
}

func NewProgressService(
	plans repository.PlanRepo,
	programs repository.ProgramRepo,
	equivalencies repository.EquivalencyRepo,
) ProgressService {
	return &progressService{
		plans:         plans,
		programs:      programs,
		equivalencies: equivalencies,
	}
}

func (s *progressService) GetProgress(ctx context.Context, req contract.ProgressRequest) (*contract.ProgressResponse, error) {
	filter := req.Filter
	if filter == "" {
		filter = domain.FilterAll
	}
	if !domain.ValidViewFilters[filter] {
		return nil, &contract.ProgressError{
			Code:    contract.ProgressErrInvalidFilter,
			Message: fmt.Sprintf("unknown view filter %q", string(filter)),
		}
	}

	plan, program, err := s.loadPlanAndProgram(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	eqs, err := s.equivalencies.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading equivalencies: %w", err)
	}

	buckets := progress.BuildBuckets(*plan, *program, filter)
	statuses := progress.ResolveRequirements(*program, buckets)

	attr := progress.AttributeCredits(progress.AttributionInput{
		Completed:            plan.CompletedCourses(),
		TargetInstitution:    program.Institution,
		TotalCreditsRequired: program.TotalCreditsRequired,
		Equivalencies:        eqs,
		CurrentOverride:      req.CurrentInstitution,
	})

	return &contract.ProgressResponse{
		GeneratedAt: time.Now().UTC(),
		PlanID:      plan.ID,
		PlanName:    plan.Name,
		ProgramID:   program.ID,
		ProgramName: program.Name,
		Filter:      filter,
		Current: contract.TrackProgress{
			Institution:  attr.CurrentInstitution,
			Percent:      attr.CurrentPercent,
			Credits:      attr.CurrentCredits,
			Requirements: statuses,
		},
		Transfer: contract.TrackProgress{
			Institution:  program.Institution,
			Percent:      attr.TransferPercent,
			Credits:      attr.TransferCredits,
			Requirements: statuses,
		},
	}, nil
}

func (s *progressService) GetSegments(ctx context.Context, req contract.SegmentsRequest) (*contract.SegmentsResponse, error) {
	filterStr := req.Filter
	if filterStr == "" {
		filterStr = string(domain.FilterAll)
	}
	filter := domain.ViewFilter(filterStr)
	if !domain.ValidViewFilters[filter] {
		return nil, &contract.ProgressError{
			Code:    contract.ProgressErrInvalidFilter,
			Message: fmt.Sprintf("unknown view filter %q", filterStr),
		}
	}

	plan, program, err := s.loadPlanAndProgram(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	buckets := progress.BuildBuckets(*plan, *program, filter)
	statuses := progress.ResolveRequirements(*program, buckets)
	packed := layout.Pack(statuses)

	return &contract.SegmentsResponse{
		PlanID:   plan.ID,
		Segments: packed.Segments,
		Degraded: packed.Degraded,
	}, nil
}

func (s *progressService) loadPlanAndProgram(ctx context.Context, planID string) (*domain.Plan, *domain.Program, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, &contract.ProgressError{
				Code:    contract.ProgressErrPlanNotFound,
				Message: fmt.Sprintf("plan %s does not exist", planID),
			}
		}
		return nil, nil, fmt.Errorf("loading plan: %w", err)
	}

	program, err := s.programs.GetByID(ctx, plan.ProgramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, &contract.ProgressError{
				Code:    contract.ProgressErrProgramNotFound,
				Message: fmt.Sprintf("program %s does not exist", plan.ProgramID),
			}
		}
		return nil, nil, fmt.Errorf("loading program: %w", err)
	}

	return plan, program, nil
}
