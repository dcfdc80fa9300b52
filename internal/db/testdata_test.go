package db

import (
	"time"

	"github.com/Kamar-Folarin/commit-insights/internal/models"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func typePtr(t models.CommitType) *models.CommitType { return &t }

var baseTime = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func sampleCommits() []*models.CommitRecord {
	return []*models.CommitRecord{
		{
			SHA: "aaa111", Repository: "octo/api", Branch: "main", Author: "Ada",
			MessageShort: "feat: add overview", MessageFull: "feat: add overview\n\nIncludes heatmap",
			CommitURL: "https://github.com/octo/api/commit/aaa111", CommitType: models.CommitTypeFeat,
			FilesChangedCount: 3, Insertions: 120, Deletions: 4, CommittedAt: baseTime,
		},
		{
			SHA: "bbb222", Repository: "octo/api", Branch: "develop", Author: "Grace",
			MessageShort: "fix: 100% CPU in streak loop", MessageFull: "fix: 100% CPU in streak loop",
			CommitURL: "https://github.com/octo/api/commit/bbb222", CommitType: models.CommitTypeFix,
			PullRequestURL:    strPtr("https://github.com/octo/api/pull/7"),
			FilesChangedCount: 1, Insertions: 2, Deletions: 2, CommittedAt: baseTime.Add(-time.Hour),
		},
		{
			SHA: "ccc333", Repository: "octo/web", Branch: "main", Author: "Linus",
			MessageShort: "Merge pull request #4 from octo/feature", MessageFull: "Merge pull request #4 from octo/feature",
			CommitURL: "https://github.com/octo/web/commit/ccc333", CommitType: models.CommitTypeMerge,
			IsMergeCommit: true, CommittedAt: baseTime.Add(-48 * time.Hour),
		},
		{
			SHA: "ddd444", Repository: "octo/web", Branch: "main", Author: "unknown",
			MessageShort: "docs: snake_case names", MessageFull: "docs: snake_case names",
			CommitURL: "https://github.com/octo/web/commit/ddd444", CommitType: models.CommitTypeDocs,
			CommittedAt: baseTime.AddDate(0, -1, 0),
		},
	}
}
