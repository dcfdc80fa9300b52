package analytics

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/commit-insights/internal/models"
)

var now = time.Date(2024, 3, 20, 15, 30, 0, 0, time.UTC)

func commit(repo, branch string, at time.Time) *models.CommitRecord {
	return &models.CommitRecord{
		SHA:         at.Format(time.RFC3339Nano) + repo + branch,
		Repository:  repo,
		Branch:      branch,
		CommitType:  models.CommitTypeOther,
		CommittedAt: at,
	}
}

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, now)

	assert.Equal(t, 0, summary.TotalCommits)
	assert.Equal(t, NotAvailable, summary.MostActiveRepository)
	assert.Equal(t, NotAvailable, summary.MostActiveBranch)
	assert.Equal(t, 0, summary.CommitStreakDays)
	assert.Equal(t, models.CodeChurn{}, summary.CodeChurn)
	assert.Empty(t, summary.CommitsByDay)
	assert.Empty(t, summary.CommitsByMonth)
	assert.Empty(t, summary.RepositoryDistribution)
	assert.Empty(t, summary.ActivityHistogram)

	require.Len(t, summary.ContributionHeatmap, HeatmapDays)
	for _, cell := range summary.ContributionHeatmap {
		assert.Zero(t, cell.Commits)
	}
}

func TestSummarize_Streak(t *testing.T) {
	tests := []struct {
		name    string
		commits []*models.CommitRecord
		want    int
	}{
		{
			name: "three consecutive days ending today",
			commits: []*models.CommitRecord{
				commit("octo/api", "main", daysAgo(0)),
				commit("octo/api", "main", daysAgo(1)),
				commit("octo/api", "main", daysAgo(2)),
				commit("octo/api", "main", daysAgo(4)),
			},
			want: 3,
		},
		{
			name: "nothing today",
			commits: []*models.CommitRecord{
				commit("octo/api", "main", daysAgo(1)),
				commit("octo/api", "main", daysAgo(2)),
			},
			want: 0,
		},
		{
			name: "multiple commits on one day count once",
			commits: []*models.CommitRecord{
				commit("octo/api", "main", daysAgo(0)),
				commit("octo/web", "main", daysAgo(0).Add(-time.Hour)),
			},
			want: 1,
		},
		{
			name: "early UTC commit counts for today",
			commits: []*models.CommitRecord{
				commit("octo/api", "main", time.Date(2024, 3, 20, 0, 0, 1, 0, time.UTC)),
				commit("octo/api", "main", time.Date(2024, 3, 19, 23, 59, 59, 0, time.UTC)),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.commits, now).CommitStreakDays)
		})
	}
}

func TestSummarize_StreakUsesUTCDayOfNow(t *testing.T) {
	// 01:00 in UTC+3 is still the previous UTC day
	offsetNow := time.Date(2024, 3, 21, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
	commits := []*models.CommitRecord{commit("octo/api", "main", now)}

	summary := Summarize(commits, offsetNow)
	assert.Equal(t, 1, summary.CommitStreakDays)
	assert.Equal(t, "2024-03-20", summary.ContributionHeatmap[HeatmapDays-1].Date)
}

func TestSummarize_LeaderTieBreak(t *testing.T) {
	commits := []*models.CommitRecord{
		commit("octo/web", "develop", daysAgo(0)),
		commit("octo/api", "main", daysAgo(1)),
		commit("octo/api", "develop", daysAgo(2)),
		commit("octo/web", "main", daysAgo(3)),
	}

	summary := Summarize(commits, now)
	assert.Equal(t, "octo/web", summary.MostActiveRepository)
	assert.Equal(t, "develop", summary.MostActiveBranch)

	commits = append(commits, commit("octo/api", "main", daysAgo(4)))
	summary = Summarize(commits, now)
	assert.Equal(t, "octo/api", summary.MostActiveRepository)
	assert.Equal(t, "main", summary.MostActiveBranch)
}

func TestSummarize_LeaderIsStableAcrossRuns(t *testing.T) {
	commits := []*models.CommitRecord{
		commit("c/c", "x", daysAgo(0)),
		commit("a/a", "y", daysAgo(0)),
		commit("b/b", "z", daysAgo(0)),
	}
	for i := 0; i < 50; i++ {
		assert.Equal(t, "c/c", Summarize(commits, now).MostActiveRepository)
	}
}

func TestSummarize_CodeChurn(t *testing.T) {
	big := commit("octo/api", "main", daysAgo(0))
	big.Insertions = math.MaxInt32
	big.Deletions = 1_000_000

	zero := commit("octo/api", "main", daysAgo(1))

	small := commit("octo/web", "main", daysAgo(2))
	small.Insertions = 7
	small.Deletions = 3

	summary := Summarize([]*models.CommitRecord{big, zero, small}, now)
	assert.Equal(t, math.MaxInt32+7, summary.CodeChurn.Insertions)
	assert.Equal(t, 1_000_003, summary.CodeChurn.Deletions)
}

func TestSummarize_Series(t *testing.T) {
	commits := []*models.CommitRecord{
		commit("octo/api", "main", time.Date(2024, 3, 20, 9, 15, 0, 0, time.UTC)),
		commit("octo/web", "main", time.Date(2024, 2, 28, 23, 5, 0, 0, time.UTC)),
		commit("octo/api", "main", time.Date(2024, 3, 20, 9, 45, 0, 0, time.UTC)),
		// 02:30 in UTC+5 is 21:30 UTC on the previous day
		commit("octo/api", "main", time.Date(2024, 3, 1, 2, 30, 0, 0, time.FixedZone("UTC+5", 5*3600))),
	}

	summary := Summarize(commits, now)

	assert.Equal(t, 4, summary.TotalCommits)
	assert.Equal(t, []models.DayCount{
		{Day: "2024-02-28", Commits: 1},
		{Day: "2024-02-29", Commits: 1},
		{Day: "2024-03-20", Commits: 2},
	}, summary.CommitsByDay)
	assert.Equal(t, []models.MonthCount{
		{Month: "2024-02", Commits: 2},
		{Month: "2024-03", Commits: 2},
	}, summary.CommitsByMonth)
	assert.Equal(t, []models.RepositoryShare{
		{Name: "octo/api", Value: 3},
		{Name: "octo/web", Value: 1},
	}, summary.RepositoryDistribution)
	assert.Equal(t, []models.HourCount{
		{Hour: 9, Label: "9:00", Commits: 2},
		{Hour: 21, Label: "21:00", Commits: 1},
		{Hour: 23, Label: "23:00", Commits: 1},
	}, summary.ActivityHistogram)
}

func TestSummarize_Heatmap(t *testing.T) {
	commits := []*models.CommitRecord{
		commit("octo/api", "main", daysAgo(0)),
		commit("octo/api", "main", daysAgo(0)),
		commit("octo/api", "main", daysAgo(119)),
		commit("octo/api", "main", daysAgo(120)),
		commit("octo/api", "main", daysAgo(400)),
	}

	cells := Summarize(commits, now).ContributionHeatmap
	require.Len(t, cells, HeatmapDays)

	assert.Equal(t, models.HeatmapCell{Date: "2023-11-22", Commits: 1, Age: 119}, cells[0])
	assert.Equal(t, models.HeatmapCell{Date: "2024-03-20", Commits: 2, Age: 0}, cells[HeatmapDays-1])

	total := 0
	for i, cell := range cells {
		assert.Equal(t, HeatmapDays-1-i, cell.Age)
		if i > 0 {
			prev, err := time.Parse(dayLayout, cells[i-1].Date)
			require.NoError(t, err)
			cur, err := time.Parse(dayLayout, cell.Date)
			require.NoError(t, err)
			assert.Equal(t, 24*time.Hour, cur.Sub(prev), "dates must be contiguous at %d", i)
		}
		total += cell.Commits
	}
	assert.Equal(t, 3, total, "commits outside the window are not counted")
}

func TestSummarize_Concurrent(t *testing.T) {
	commits := []*models.CommitRecord{
		commit("octo/api", "main", daysAgo(0)),
		commit("octo/web", "main", daysAgo(1)),
	}
	want := Summarize(commits, now)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Summarize(commits, now))
		}()
	}
	wg.Wait()
}
