package contract

import (
	"time"

	"github.com/averyholm/telos/internal/domain"
)

// CandidateSource identifies which strategy produced a candidate.
type CandidateSource string

const (
	SourceGroupOption CandidateSource = "group_option"
	SourceKeyword     CandidateSource = "keyword"
	SourceTitleSearch CandidateSource = "title_search"
)

// Candidate is a catalog course proposed to help satisfy an unmet
// requirement.
type Candidate struct {
	Course      domain.Course
	Source      CandidateSource
	GroupID     string // originating group, empty for simple requirements
	GroupName   string
	IsPreferred bool
	Note        string // carried from the source course option
}

type SuggestRequest struct {
	PlanID     string
	Category   string // requirement category, raw or normalized
	GroupID    string // optional: restrict to one group
	Filter     domain.ViewFilter
	MaxResults int
}

func NewSuggestRequest(planID, category string) SuggestRequest {
	return SuggestRequest{
		PlanID:     planID,
		Category:   category,
		Filter:     domain.FilterAll,
		MaxResults: 12,
	}
}

type SuggestResponse struct {
	GeneratedAt time.Time
	Category    string
	State       CompletionState
	Candidates  []Candidate
	// Notes carries non-fatal advisories, e.g. a skipped catalog source.
	Notes []string
}

type SuggestErrorCode string

const (
	SuggestErrPlanNotFound        SuggestErrorCode = "PLAN_NOT_FOUND"
	SuggestErrRequirementNotFound SuggestErrorCode = "REQUIREMENT_NOT_FOUND"
	SuggestErrGroupNotFound       SuggestErrorCode = "GROUP_NOT_FOUND"
)

type SuggestError struct {
	Code    SuggestErrorCode
	Message string
}

func (e *SuggestError) Error() string {
	return string(e.Code) + ": " + e.Message
}
