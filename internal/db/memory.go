package db

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	apperrors "github.com/Kamar-Folarin/commit-insights/internal/errors"
	"github.com/Kamar-Folarin/commit-insights/internal/models"
)

// MemoryStore keeps commit records in process memory. Used for local runs
// without Postgres and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	commits map[string]*models.CommitRecord
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		commits: make(map[string]*models.CommitRecord),
	}
}

// UpsertCommits stores copies of the records under a single lock
func (s *MemoryStore) UpsertCommits(ctx context.Context, commits []*models.CommitRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, commit := range commits {
		if commit == nil || commit.SHA == "" {
			return fmt.Errorf("commit record must have a sha")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, commit := range commits {
		s.commits[commit.SHA] = commit.Clone()
	}
	return nil
}

func (s *MemoryStore) GetCommit(ctx context.Context, sha string) (*models.CommitRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	commit, ok := s.commits[sha]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("commit not found: %s", sha), nil)
	}
	return commit.Clone(), nil
}

func (s *MemoryStore) QueryCommits(ctx context.Context, filter models.CommitFilter) ([]*models.CommitRecord, int64, error) {
	matches := s.filter(filter)
	total := int64(len(matches))

	offset := filter.Offset()
	if offset < 0 || offset >= len(matches) {
		return []*models.CommitRecord{}, total, nil
	}
	end := len(matches)
	if filter.PageSize > 0 && filter.PageSize < end-offset {
		end = offset + filter.PageSize
	}
	return matches[offset:end], total, nil
}

func (s *MemoryStore) DistinctValues(ctx context.Context, field models.FacetField, filter models.CommitFilter) ([]string, error) {
	seen := make(map[string]struct{})
	for _, commit := range s.filter(filter) {
		switch field {
		case models.FacetRepository:
			seen[commit.Repository] = struct{}{}
		case models.FacetBranch:
			seen[commit.Branch] = struct{}{}
		case models.FacetCommitType:
			seen[string(commit.CommitType)] = struct{}{}
		default:
			return nil, fmt.Errorf("unsupported facet field %q", field)
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

func (s *MemoryStore) ListCommitsInRange(ctx context.Context, from time.Time, to *time.Time) ([]*models.CommitRecord, error) {
	return s.filter(models.CommitFilter{From: from, To: to}), nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// filter returns copies of matching records ordered newest first, ties by sha
func (s *MemoryStore) filter(f models.CommitFilter) []*models.CommitRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var search string
	if f.Search != nil {
		search = strings.ToLower(*f.Search)
	}

	matches := make([]*models.CommitRecord, 0)
	for _, c := range s.commits {
		if c.CommittedAt.Before(f.From) {
			continue
		}
		if f.To != nil && c.CommittedAt.After(*f.To) {
			continue
		}
		if f.Repository != nil && c.Repository != *f.Repository {
			continue
		}
		if f.Branch != nil && c.Branch != *f.Branch {
			continue
		}
		if f.CommitType != nil && c.CommitType != *f.CommitType {
			continue
		}
		if f.IncludeMerges != nil && !*f.IncludeMerges && c.IsMergeCommit {
			continue
		}
		if f.Search != nil && !strings.Contains(strings.ToLower(c.MessageFull), search) {
			continue
		}
		matches = append(matches, c.Clone())
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CommittedAt.Equal(matches[j].CommittedAt) {
			return matches[i].CommittedAt.After(matches[j].CommittedAt)
		}
		return matches[i].SHA < matches[j].SHA
	})
	return matches
}
