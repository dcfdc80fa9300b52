package models

import "time"

// OverviewSummary is the analytics view computed over a window of commits
type OverviewSummary struct {
	TotalCommits           int               `json:"totalCommits"`
	MostActiveRepository   string            `json:"mostActiveRepository"`
	MostActiveBranch       string            `json:"mostActiveBranch"`
	CommitStreakDays       int               `json:"commitStreakDays"`
	CodeChurn              CodeChurn         `json:"codeChurn"`
	CommitsByDay           []DayCount        `json:"commitsByDay"`
	CommitsByMonth         []MonthCount      `json:"commitsByMonth"`
	RepositoryDistribution []RepositoryShare `json:"repositoryDistribution"`
	ActivityHistogram      []HourCount       `json:"activityHistogram"`
	ContributionHeatmap    []HeatmapCell     `json:"contributionHeatmap"`
}

type CodeChurn struct {
	Insertions int `json:"insertions"`
	Deletions  int `json:"deletions"`
}

type DayCount struct {
	Day     string `json:"day"`
	Commits int    `json:"commits"`
}

type MonthCount struct {
	Month   string `json:"month"`
	Commits int    `json:"commits"`
}

type RepositoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type HourCount struct {
	Hour    int    `json:"hour"`
	Label   string `json:"label"`
	Commits int    `json:"commits"`
}

type HeatmapCell struct {
	Date    string `json:"date"`
	Commits int    `json:"commits"`
	Age     int    `json:"age"`
}

// OverviewResponse wraps a summary with the window it was computed for
type OverviewResponse struct {
	From time.Time  `json:"from"`
	To   *time.Time `json:"to"`
	*OverviewSummary
}
