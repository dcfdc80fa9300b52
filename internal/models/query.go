package models

import (
	"math"
	"time"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SortBy values accepted by the commit listing
const (
	SortByDay    = "day"
	SortByMonth  = "month"
	SortByYear   = "year"
	SortByLatest = "latest"
)

// CommitFilter selects commits for listing. Nil predicates are not applied;
// all set predicates are combined by conjunction.
type CommitFilter struct {
	From          time.Time
	To            *time.Time
	Repository    *string
	Branch        *string
	CommitType    *CommitType
	Search        *string
	IncludeMerges *bool
	SortBy        string
	Page          int
	PageSize      int
}

// Offset returns the number of rows skipped before the requested page.
// It saturates at math.MaxInt instead of overflowing.
func (f CommitFilter) Offset() int {
	if f.Page < 1 || f.PageSize < 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.PageSize {
		return math.MaxInt
	}
	return (f.Page - 1) * f.PageSize
}

// MaxPage is the largest page whose offset fits in an int for the page size
func MaxPage(pageSize int) int {
	if pageSize <= 1 {
		return math.MaxInt
	}
	return math.MaxInt/pageSize + 1
}

// FacetField names a filterable column whose distinct values are reported
type FacetField string

const (
	FacetRepository FacetField = "repository"
	FacetBranch     FacetField = "branch"
	FacetCommitType FacetField = "commitType"
)

// WithoutFacet returns a copy of the filter with the facet's own predicate cleared
func (f CommitFilter) WithoutFacet(field FacetField) CommitFilter {
	switch field {
	case FacetRepository:
		f.Repository = nil
	case FacetBranch:
		f.Branch = nil
	case FacetCommitType:
		f.CommitType = nil
	}
	return f
}

// CommitPage is one page of listed commits plus the facet values for the window
type CommitPage struct {
	Total        int64           `json:"total"`
	Page         int             `json:"page"`
	PageSize     int             `json:"pageSize"`
	SortBy       string          `json:"sortBy"`
	From         time.Time       `json:"from"`
	To           *time.Time      `json:"to"`
	Commits      []*CommitRecord `json:"commits"`
	Repositories []string        `json:"repositories"`
	Branches     []string        `json:"branches"`
	CommitTypes  []string        `json:"commitTypes"`
}
