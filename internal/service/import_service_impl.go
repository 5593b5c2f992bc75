package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/importer"
	"github.com/averyholm/telos/internal/repository"
)

type importService struct {
	programs      repository.ProgramRepo
	plans         repository.PlanRepo
	catalog       repository.CatalogRepo
	equivalencies repository.EquivalencyRepo
}

func NewImportService(
	programs repository.ProgramRepo,
	plans repository.PlanRepo,
	catalog repository.CatalogRepo,
	equivalencies repository.EquivalencyRepo,
) ImportService {
	return &importService{
		programs:      programs,
		plans:         plans,
		catalog:       catalog,
		equivalencies: equivalencies,
	}
}

func (s *importService) ImportProgram(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportProgramFromSchema(ctx, schema)
}

func (s *importService) ImportProgramFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return nil, fmt.Errorf("import validation failed:\n  %s", strings.Join(msgs, "\n  "))
	}

	bundle, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import: %w", err)
	}

	if err := s.programs.Create(ctx, bundle.Program); err != nil {
		return nil, fmt.Errorf("saving program: %w", err)
	}

	result := &ImportResult{
		Program:          bundle.Program,
		RequirementCount: len(bundle.Program.Requirements),
	}

	if bundle.Plan != nil {
		if err := s.plans.Create(ctx, bundle.Plan); err != nil {
			return nil, fmt.Errorf("saving plan: %w", err)
		}
		result.Plan = bundle.Plan
		result.PlanCourseCount = len(bundle.Plan.Courses)
	}

	for i := range bundle.Catalog {
		if err := s.catalog.Upsert(ctx, &bundle.Catalog[i]); err != nil {
			return nil, fmt.Errorf("saving catalog course %q: %w", bundle.Catalog[i].Code, err)
		}
	}
	result.CatalogCount = len(bundle.Catalog)

	for _, eq := range bundle.Equivalencies {
		if err := s.equivalencies.Upsert(ctx, eq); err != nil {
			return nil, fmt.Errorf("saving equivalency %s/%s: %w", eq.Institution, eq.CourseCode, err)
		}
	}
	result.EquivalencyCount = len(bundle.Equivalencies)

	return result, nil
}
