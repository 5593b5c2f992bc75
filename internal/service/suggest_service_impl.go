package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
	"github.com/averyholm/telos/internal/progress"
	"github.com/averyholm/telos/internal/repository"
	"github.com/averyholm/telos/internal/suggest"
)

type suggestService struct {
	plans    repository.PlanRepo
	programs repository.ProgramRepo
	matcher  *suggest.Matcher
	cfg      suggest.Config
}

func NewSuggestService(
	plans repository.PlanRepo,
	programs repository.ProgramRepo,
	catalog repository.CatalogRepo,
	cfg suggest.Config,
) SuggestService {
	return &suggestService{
		plans:    plans,
		programs: programs,
		matcher:  suggest.NewMatcher(&catalogAdapter{repo: catalog}, cfg),
		cfg:      cfg,
	}
}

func (s *suggestService) Suggest(ctx context.Context, req contract.SuggestRequest) (*contract.SuggestResponse, error) {
	plan, err := s.plans.GetByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.SuggestError{
				Code:    contract.SuggestErrPlanNotFound,
				Message: fmt.Sprintf("plan %s does not exist", req.PlanID),
			}
		}
		return nil, fmt.Errorf("loading plan: %w", err)
	}

	program, err := s.programs.GetByID(ctx, plan.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	requirement, ok := findRequirement(program, req.Category)
	if !ok {
		return nil, &contract.SuggestError{
			Code:    contract.SuggestErrRequirementNotFound,
			Message: fmt.Sprintf("no requirement matches category %q", req.Category),
		}
	}

	var group *domain.RequirementGroup
	if req.GroupID != "" {
		group = findGroup(requirement, req.GroupID)
		if group == nil {
			return nil, &contract.SuggestError{
				Code:    contract.SuggestErrGroupNotFound,
				Message: fmt.Sprintf("requirement %q has no group %s", requirement.Category, req.GroupID),
			}
		}
	}

	filter := req.Filter
	if filter == "" {
		filter = domain.FilterAll
	}
	buckets := progress.BuildBuckets(*plan, *program, filter)
	status := statusFor(progress.ResolveRequirements(*program, buckets), requirement.Category)

	matchReq := suggest.Request{
		Requirement: *requirement,
		Group:       group,
		Plan:        *plan,
		OnPlan:      plan.CourseIDs(),
		Constraints: status.Constraints,
		Institution: program.Institution,
	}

	candidates, notes := s.matcher.Suggest(ctx, matchReq)
	if req.MaxResults > 0 && len(candidates) > req.MaxResults {
		candidates = candidates[:req.MaxResults]
	}

	return &contract.SuggestResponse{
		GeneratedAt: time.Now().UTC(),
		Category:    requirement.Category,
		State:       status.State,
		Candidates:  candidates,
		Notes:       notes,
	}, nil
}

// findRequirement matches a raw or normalized category against the program's
// requirements via the category key.
func findRequirement(program *domain.Program, category string) (*domain.Requirement, bool) {
	key := progress.CategoryKey(category)
	for i := range program.Requirements {
		if progress.CategoryKey(program.Requirements[i].Category) == key {
			return &program.Requirements[i], true
		}
	}
	return nil, false
}

func findGroup(req *domain.Requirement, groupID string) *domain.RequirementGroup {
	for i := range req.Groups {
		if req.Groups[i].ID == groupID {
			return &req.Groups[i]
		}
	}
	return nil
}

func statusFor(statuses []contract.RequirementStatus, category string) contract.RequirementStatus {
	key := progress.CategoryKey(category)
	for _, st := range statuses {
		if st.Key == key {
			return st
		}
	}
	return contract.RequirementStatus{Category: category, Key: key, State: contract.StateNone}
}

// catalogAdapter bridges the matcher's catalog port onto the repository.
// sql.DB is safe for concurrent use, so the adapter is too.
type catalogAdapter struct {
	repo repository.CatalogRepo
}

func (a *catalogAdapter) SearchCourses(ctx context.Context, q suggest.CatalogQuery) ([]domain.Course, error) {
	return a.repo.Search(ctx, repository.CourseSearch{
		Search:      q.Search,
		Subject:     q.Subject,
		Institution: q.Institution,
		MinLevel:    q.MinLevel,
		Limit:       q.Limit,
	})
}

func (a *catalogAdapter) GetByCode(ctx context.Context, code, institution string) (*domain.Course, error) {
	return a.repo.GetByCode(ctx, code, institution)
}
