package github

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/commit-insights/internal/models"
)

// Enricher adds file and line statistics and the associated pull request to a
// pushed commit. Enrichment is best-effort: lookup failures are logged and
// replaced by fallback values, never returned.
type Enricher struct {
	lookup CommitLookup
	logger *logrus.Logger
}

// NewEnricher creates an enricher. A nil lookup disables the API calls and
// only the local fallback is used.
func NewEnricher(lookup CommitLookup, logger *logrus.Logger) *Enricher {
	return &Enricher{
		lookup: lookup,
		logger: logger,
	}
}

// Enrich returns the statistics for a commit. fallbackFiles are the paths the
// push event reported as added, removed or modified.
func (e *Enricher) Enrich(ctx context.Context, owner, name, sha string, fallbackFiles []string) models.CommitStats {
	fallbackCount := countDistinct(fallbackFiles)

	if e.lookup == nil {
		return models.CommitStats{FilesChangedCount: fallbackCount}
	}

	logger := e.logger.WithFields(logrus.Fields{
		"owner": owner,
		"repo":  name,
		"sha":   sha,
	})

	var stats models.CommitStats
	detail, err := e.lookup.GetCommitDetail(ctx, owner, name, sha)
	if IsNotFoundError(err) {
		// pushes to private or just-deleted refs are not always visible to the token
		logger.WithError(err).Debug("Commit not found, using push event file list")
	} else if err != nil {
		logger.WithError(err).WithField("rate_limited", IsRateLimitError(err)).
			Warn("Commit detail lookup failed, using push event file list")
	} else {
		stats.FilesChangedCount = detail.FilesChanged
		stats.Insertions = detail.Additions
		stats.Deletions = detail.Deletions
	}
	if stats.FilesChangedCount == 0 {
		stats.FilesChangedCount = fallbackCount
	}

	urls, err := e.lookup.ListPullRequestURLs(ctx, owner, name, sha)
	if err != nil {
		logger.WithError(err).WithField("rate_limited", IsRateLimitError(err)).
			Warn("Pull request lookup failed, leaving pull request unset")
	} else if len(urls) > 0 {
		prURL := urls[0]
		stats.PullRequestURL = &prURL
	}

	return stats
}

func countDistinct(paths []string) int {
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		seen[p] = struct{}{}
	}
	return len(seen)
}
