package api

import (
	"time"

	"github.com/Kamar-Folarin/commit-insights/internal/models"
)

// WebhookResponse acknowledges a webhook delivery
// @Description Outcome of a webhook delivery
type WebhookResponse struct {
	OK bool `json:"ok" example:"true"`
	// Number of commits written
	Processed int `json:"processed" example:"2"`
	// Set when the event type is not ingested
	Ignored bool `json:"ignored,omitempty" example:"false"`
}

// ErrorResponse represents an API error
// @Description Error response from the API
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid query parameters"`
	// Reason per failing query parameter
	Fields map[string]string `json:"fields,omitempty"`
}

// Commit is the documented shape of a stored commit
// @Description A normalized commit received through a push webhook
type Commit struct {
	SHA               string    `json:"sha" example:"a1b2c3d4e5f6"`
	Repository        string    `json:"repository" example:"octo/api"`
	Branch            string    `json:"branch" example:"main"`
	Author            string    `json:"author" example:"Ada Lovelace"`
	MessageShort      string    `json:"messageShort" example:"fix: handle empty payloads"`
	MessageFull       string    `json:"messageFull" example:"fix: handle empty payloads"`
	CommitURL         string    `json:"commitUrl" example:"https://github.com/octo/api/commit/a1b2c3d4e5f6"`
	PullRequestURL    *string   `json:"pullRequestUrl" example:"https://github.com/octo/api/pull/42"`
	CommitType        string    `json:"commitType" example:"fix" enums:"feat,fix,refactor,chore,docs,style,test,perf,build,ci,merge,revert,other"`
	FilesChangedCount int       `json:"filesChangedCount" example:"3"`
	Insertions        int       `json:"insertions" example:"42"`
	Deletions         int       `json:"deletions" example:"7"`
	IsMergeCommit     bool      `json:"isMergeCommit" example:"false"`
	CommittedAt       time.Time `json:"committedAt" example:"2024-03-20T12:00:00Z"`
}

// CommitListResponse represents a page of commits with filter facets
// @Description A paginated list of commits
type CommitListResponse struct {
	Total        int64      `json:"total" example:"134"`
	Page         int        `json:"page" example:"1"`
	PageSize     int        `json:"pageSize" example:"20"`
	SortBy       string     `json:"sortBy" example:"latest"`
	From         time.Time  `json:"from" example:"2024-03-01T00:00:00Z"`
	To           *time.Time `json:"to"`
	Commits      []Commit   `json:"commits"`
	Repositories []string   `json:"repositories" example:"octo/api,octo/web"`
	Branches     []string   `json:"branches" example:"develop,main"`
	CommitTypes  []string   `json:"commitTypes" example:"feat,fix"`
}

// OverviewResponse represents the analytics overview for a window
// @Description Analytics computed over the commits in a window
type OverviewResponse struct {
	From                   time.Time                `json:"from" example:"2024-03-01T00:00:00Z"`
	To                     *time.Time               `json:"to"`
	TotalCommits           int                      `json:"totalCommits" example:"134"`
	MostActiveRepository   string                   `json:"mostActiveRepository" example:"octo/api"`
	MostActiveBranch       string                   `json:"mostActiveBranch" example:"main"`
	CommitStreakDays       int                      `json:"commitStreakDays" example:"4"`
	CodeChurn              models.CodeChurn         `json:"codeChurn"`
	CommitsByDay           []models.DayCount        `json:"commitsByDay"`
	CommitsByMonth         []models.MonthCount      `json:"commitsByMonth"`
	RepositoryDistribution []models.RepositoryShare `json:"repositoryDistribution"`
	ActivityHistogram      []models.HourCount       `json:"activityHistogram"`
	ContributionHeatmap    []models.HeatmapCell     `json:"contributionHeatmap"`
}
