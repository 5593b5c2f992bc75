// Package suggest proposes catalog courses that would help satisfy an unmet
// degree requirement, subject to the requirement's active constraints.
package suggest

import (
	"context"

	"github.com/averyholm/telos/internal/contract"
	"github.com/averyholm/telos/internal/domain"
)

// CatalogQuery is one catalog lookup: by subject prefix, by title search, or
// both, optionally scoped to an institution.
type CatalogQuery struct {
	Search      string // title keyword
	Subject     string // course-code subject prefix
	Institution string
	MinLevel    int
	Limit       int
}

// Catalog is the course inventory the matcher draws candidates from.
// Implementations must be safe for concurrent use: lookups for one request
// may run in parallel.
type Catalog interface {
	SearchCourses(ctx context.Context, q CatalogQuery) ([]domain.Course, error)
	GetByCode(ctx context.Context, code, institution string) (*domain.Course, error)
}

// Config tunes candidate filtering. The developmental-level floor is
// configurable rather than hardcoded: some programs legitimately accept
// low-numbered courses.
type Config struct {
	MinCourseLevel    int    // drop candidates below this known level
	MaxResults        int    // cap on returned candidates
	PerSourceLimit    int    // cap per option/subject lookup
	NonTransferSuffix string // course-code suffix flagging non-equivalents
	NonTransferMarker string // title substring flagging non-equivalents
}

func DefaultConfig() Config {
	return Config{
		MinCourseLevel:    1000,
		MaxResults:        12,
		PerSourceLimit:    10,
		NonTransferSuffix: "NE",
		NonTransferMarker: "no equivalent",
	}
}

// Request bundles everything needed to suggest courses for one requirement.
type Request struct {
	Requirement domain.Requirement
	Group       *domain.RequirementGroup // restrict to one group when set
	Plan        domain.Plan
	OnPlan      map[string]bool // catalog course IDs already planned
	Constraints []contract.ConstraintResult
	Institution string // institution scope for keyword lookups
}

// Matcher generates, filters, and caps suggestion candidates.
type Matcher struct {
	catalog Catalog
	cfg     Config
}

func NewMatcher(catalog Catalog, cfg Config) *Matcher {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultConfig().MaxResults
	}
	if cfg.PerSourceLimit <= 0 {
		cfg.PerSourceLimit = DefaultConfig().PerSourceLimit
	}
	return &Matcher{catalog: catalog, cfg: cfg}
}

// Suggest runs the applicable strategy, applies the universal filters, and
// caps the result. It never fails: a failed or empty lookup for one source
// yields nothing from that source and processing continues, so the worst
// outcome is an empty candidate list.
func (m *Matcher) Suggest(ctx context.Context, req Request) ([]contract.Candidate, []string) {
	strategy := m.strategyFor(req)
	candidates, notes := strategy.Candidates(ctx, req)
	candidates = m.applyFilters(candidates, req)
	candidates = dedupeByID(candidates)
	if len(candidates) > m.cfg.MaxResults {
		candidates = candidates[:m.cfg.MaxResults]
	}
	return candidates, notes
}

// strategyFor picks the candidate source: explicit course options are
// authoritative for grouped requirements; simple requirements fall back to
// the keyword heuristic.
func (m *Matcher) strategyFor(req Request) Strategy {
	if req.Requirement.Type == domain.RequirementGrouped && hasOptions(req) {
		return &optionStrategy{catalog: m.catalog}
	}
	return &keywordStrategy{catalog: m.catalog, cfg: m.cfg}
}

func hasOptions(req Request) bool {
	if req.Group != nil {
		return len(req.Group.Options) > 0
	}
	for _, g := range req.Requirement.Groups {
		if len(g.Options) > 0 {
			return true
		}
	}
	return false
}

func dedupeByID(candidates []contract.Candidate) []contract.Candidate {
	seen := make(map[string]bool, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		if c.Course.ID != "" && seen[c.Course.ID] {
			continue
		}
		if c.Course.ID != "" {
			seen[c.Course.ID] = true
		}
		out = append(out, c)
	}
	return out
}
