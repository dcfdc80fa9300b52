package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Kamar-Folarin/commit-insights/internal/analytics"
	"github.com/Kamar-Folarin/commit-insights/internal/db"
	apperrors "github.com/Kamar-Folarin/commit-insights/internal/errors"
	"github.com/Kamar-Folarin/commit-insights/internal/models"
	"github.com/Kamar-Folarin/commit-insights/pkg/utils"
)

// Service answers listing and overview queries over stored commits
type Service struct {
	store  db.Store
	logger *logrus.Logger
	now    func() time.Time
}

// NewService creates a reporting service
func NewService(store db.Store, logger *logrus.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// DefaultFrom is the window start used when the caller gives none
func (s *Service) DefaultFrom() time.Time {
	return utils.StartOfMonthUTC(s.now())
}

// ListCommits returns one page of matching commits together with the distinct
// repositories, branches and commit types available in the window. Each facet
// ignores its own predicate so the caller can switch between values.
func (s *Service) ListCommits(ctx context.Context, filter models.CommitFilter) (*models.CommitPage, error) {
	filter = s.normalize(filter)
	if err := checkWindow(filter.From, filter.To); err != nil {
		return nil, err
	}

	page := &models.CommitPage{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		SortBy:   filter.SortBy,
		From:     filter.From,
		To:       filter.To,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		commits, total, err := s.store.QueryCommits(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to query commits: %w", err)
		}
		page.Commits = commits
		page.Total = total
		return nil
	})

	facets := []struct {
		field models.FacetField
		dst   *[]string
	}{
		{models.FacetRepository, &page.Repositories},
		{models.FacetBranch, &page.Branches},
		{models.FacetCommitType, &page.CommitTypes},
	}
	for _, f := range facets {
		f := f
		g.Go(func() error {
			values, err := s.store.DistinctValues(gctx, f.field, filter.WithoutFacet(f.field))
			if err != nil {
				return fmt.Errorf("failed to load %s facet: %w", f.field, err)
			}
			*f.dst = values
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.WithError(err).Error("Failed to list commits")
		return nil, apperrors.NewInternalError("failed to list commits", err)
	}

	return page, nil
}

// GetCommit returns the stored record for sha
func (s *Service) GetCommit(ctx context.Context, sha string) (*models.CommitRecord, error) {
	commit, err := s.store.GetCommit(ctx, sha)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithError(err).WithField("sha", sha).Error("Failed to load commit")
		return nil, apperrors.NewInternalError("failed to load commit", err)
	}
	return commit, nil
}

// Overview summarizes every commit in [from, to]. A zero from defaults to the
// start of the current month.
func (s *Service) Overview(ctx context.Context, from time.Time, to *time.Time) (*models.OverviewResponse, error) {
	if from.IsZero() {
		from = s.DefaultFrom()
	}
	if err := checkWindow(from, to); err != nil {
		return nil, err
	}

	commits, err := s.store.ListCommitsInRange(ctx, from, to)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load commits for overview")
		return nil, apperrors.NewInternalError("failed to load commits", err)
	}

	s.logger.WithFields(logrus.Fields{
		"from":    from,
		"commits": len(commits),
	}).Debug("Computing overview")

	return &models.OverviewResponse{
		From:            from,
		To:              to,
		OverviewSummary: analytics.Summarize(commits, s.now()),
	}, nil
}

// checkWindow rejects a window that ends before it starts, including when
// the start was defaulted
func checkWindow(from time.Time, to *time.Time) error {
	if to == nil || !to.Before(from) {
		return nil
	}
	verr := apperrors.NewValidationError()
	verr.Add("to", "must not be before from ("+from.Format(time.RFC3339)+")")
	return verr
}

func (s *Service) normalize(f models.CommitFilter) models.CommitFilter {
	if f.From.IsZero() {
		f.From = s.DefaultFrom()
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = models.DefaultPageSize
	}
	if f.PageSize > models.MaxPageSize {
		f.PageSize = models.MaxPageSize
	}
	if f.SortBy == "" {
		f.SortBy = models.SortByLatest
	}
	return f
}
