package suggest

import (
	"context"
	"fmt"
	"sync"

	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
)

// Strategy generates raw candidates for a requirement. The two
// implementations are interchangeable: explicit course options when the
// program declares them, keyword heuristics otherwise. Either can be
// extended without touching the other.
type Strategy interface {
	Name() string
	Candidates(ctx context.Context, req Request) ([]contract.Candidate, []string)
}

// optionStrategy resolves each declared course option to a concrete catalog
// course by (code, institution). Options that fail to resolve are skipped
// silently; they never abort the remaining lookups.
type optionStrategy struct {
	catalog Catalog
}

func (s *optionStrategy) Name() string { return "course_options" }

func (s *optionStrategy) Candidates(ctx context.Context, req Request) ([]contract.Candidate, []string) {
	type source struct {
		opt       domain.CourseOption
		groupID   string
		groupName string
	}
	var sources []source
	groups := req.Requirement.Groups
	if req.Group != nil {
		groups = []domain.RequirementGroup{*req.Group}
	}
	for _, g := range groups {
		for _, opt := range g.Options {
			sources = append(sources, source{opt: opt, groupID: g.ID, groupName: g.Name})
		}
	}

	// One lookup per option, run concurrently. Results land in their source
	// slot so candidate order stays deterministic regardless of completion
	// order.
	results := make([]*contract.Candidate, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src source) {
			defer wg.Done()
			course, err := s.catalog.GetByCode(ctx, src.opt.CourseCode, src.opt.Institution)
			if err != nil || course == nil {
				return
			}
			results[i] = &contract.Candidate{
				Course:      *course,
				Source:      contract.SourceGroupOption,
				GroupID:     src.groupID,
				GroupName:   src.groupName,
				IsPreferred: src.opt.IsPreferred,
				Note:        src.opt.Notes,
			}
		}(i, src)
	}
	wg.Wait()

	var candidates []contract.Candidate
	for _, r := range results {
		if r != nil {
			candidates = append(candidates, *r)
		}
	}
	return candidates, nil
}

// keywordStrategy maps requirement-name keywords to subject-code prefixes
// with optional title filters, querying the catalog per subject. When no
// keyword matches, it falls back to a narrow title search on the category
// name itself.
type keywordStrategy struct {
	catalog Catalog
	cfg     Config
}

func (s *keywordStrategy) Name() string { return "keyword_heuristic" }

func (s *keywordStrategy) Candidates(ctx context.Context, req Request) ([]contract.Candidate, []string) {
	rules := rulesFor(req.Requirement.Category)
	if len(rules) == 0 {
		return s.titleFallback(ctx, req)
	}

	type query struct {
		q             CatalogQuery
		titleKeywords []string
	}
	var queries []query
	for _, rule := range rules {
		for _, subject := range rule.Subjects {
			queries = append(queries, query{
				q: CatalogQuery{
					Subject:     subject,
					Institution: req.Institution,
					Limit:       s.cfg.PerSourceLimit,
				},
				titleKeywords: rule.TitleKeywords,
			})
		}
	}

	results := make([][]contract.Candidate, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q query) {
			defer wg.Done()
			courses, err := s.catalog.SearchCourses(ctx, q.q)
			if err != nil {
				return // failed lookup yields zero candidates from this source
			}
			var out []contract.Candidate
			for _, c := range courses {
				if !titleMatches(c.Title, q.titleKeywords) {
					continue
				}
				out = append(out, contract.Candidate{
					Course: c,
					Source: contract.SourceKeyword,
				})
			}
			results[i] = out
		}(i, q)
	}
	wg.Wait()

	var candidates []contract.Candidate
	for _, r := range results {
		candidates = append(candidates, r...)
	}
	return candidates, nil
}

func (s *keywordStrategy) titleFallback(ctx context.Context, req Request) ([]contract.Candidate, []string) {
	q := CatalogQuery{
		Search:      req.Requirement.Category,
		Institution: req.Institution,
		Limit:       s.cfg.PerSourceLimit,
	}
	courses, err := s.catalog.SearchCourses(ctx, q)
	if err != nil {
		return nil, []string{fmt.Sprintf("catalog search for %q unavailable", req.Requirement.Category)}
	}
	var candidates []contract.Candidate
	for _, c := range courses {
		candidates = append(candidates, contract.Candidate{
			Course: c,
			Source: contract.SourceTitleSearch,
		})
	}
	return candidates, nil
}

func titleMatches(title string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	return containsAnyFold(title, keywords)
}
