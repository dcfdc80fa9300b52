package db

import (
	"context"
	"time"

	"github.com/Kamar-Folarin/commit-insights/internal/models"
)

// Store defines the interface for commit record persistence
type Store interface {
	// UpsertCommits creates or fully overwrites each record keyed by SHA.
	// The batch is applied atomically.
	UpsertCommits(ctx context.Context, commits []*models.CommitRecord) error

	// GetCommit returns the record for sha or a not found error
	GetCommit(ctx context.Context, sha string) (*models.CommitRecord, error)

	// QueryCommits returns one page of matching records, newest first, and the total match count
	QueryCommits(ctx context.Context, filter models.CommitFilter) ([]*models.CommitRecord, int64, error)

	// DistinctValues returns the sorted distinct values of field among records matching filter
	DistinctValues(ctx context.Context, field models.FacetField, filter models.CommitFilter) ([]string, error)

	// ListCommitsInRange returns every record committed in [from, to], newest first.
	// A nil to leaves the range open-ended.
	ListCommitsInRange(ctx context.Context, from time.Time, to *time.Time) ([]*models.CommitRecord, error)

	Close() error
}
