package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/Kamar-Folarin/commit-insights/internal/models"
)

const (
	// HeatmapDays is the fixed length of the contribution heatmap
	HeatmapDays = 120

	// NotAvailable is reported for leaders when there are no commits
	NotAvailable = "N/A"

	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// Summarize computes the overview for an already windowed list of commits.
// now anchors the streak and the heatmap. Summarize does no I/O and is safe
// for concurrent use.
func Summarize(commits []*models.CommitRecord, now time.Time) *models.OverviewSummary {
	repos := newTally()
	branches := newTally()
	daily := make(map[string]int)
	monthly := make(map[string]int)
	hourly := make(map[int]int)

	var churn models.CodeChurn
	for _, c := range commits {
		at := c.CommittedAt.UTC()

		repos.add(c.Repository)
		branches.add(c.Branch)
		daily[at.Format(dayLayout)]++
		monthly[at.Format(monthLayout)]++
		hourly[at.Hour()]++

		churn.Insertions += c.Insertions
		churn.Deletions += c.Deletions
	}

	today := startOfDay(now)

	return &models.OverviewSummary{
		TotalCommits:           len(commits),
		MostActiveRepository:   repos.leader(),
		MostActiveBranch:       branches.leader(),
		CommitStreakDays:       streak(daily, today),
		CodeChurn:              churn,
		CommitsByDay:           byDay(daily),
		CommitsByMonth:         byMonth(monthly),
		RepositoryDistribution: repos.shares(),
		ActivityHistogram:      histogram(hourly),
		ContributionHeatmap:    heatmap(daily, today),
	}
}

// tally counts keys and remembers the order they were first seen in
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// leader returns the key with the highest count. Among equal counts the key
// seen first wins.
func (t *tally) leader() string {
	best, bestCount := NotAvailable, 0
	for _, key := range t.order {
		if t.counts[key] > bestCount {
			best, bestCount = key, t.counts[key]
		}
	}
	return best
}

func (t *tally) shares() []models.RepositoryShare {
	out := make([]models.RepositoryShare, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, models.RepositoryShare{Name: key, Value: t.counts[key]})
	}
	return out
}

func streak(daily map[string]int, today time.Time) int {
	days := 0
	for cursor := today; daily[cursor.Format(dayLayout)] > 0; cursor = cursor.AddDate(0, 0, -1) {
		days++
	}
	return days
}

func byDay(daily map[string]int) []models.DayCount {
	keys := sortedKeys(daily)
	out := make([]models.DayCount, 0, len(keys))
	for _, day := range keys {
		out = append(out, models.DayCount{Day: day, Commits: daily[day]})
	}
	return out
}

func byMonth(monthly map[string]int) []models.MonthCount {
	keys := sortedKeys(monthly)
	out := make([]models.MonthCount, 0, len(keys))
	for _, month := range keys {
		out = append(out, models.MonthCount{Month: month, Commits: monthly[month]})
	}
	return out
}

func histogram(hourly map[int]int) []models.HourCount {
	out := make([]models.HourCount, 0, len(hourly))
	for hour := 0; hour < 24; hour++ {
		if n := hourly[hour]; n > 0 {
			out = append(out, models.HourCount{Hour: hour, Label: fmt.Sprintf("%d:00", hour), Commits: n})
		}
	}
	return out
}

func heatmap(daily map[string]int, today time.Time) []models.HeatmapCell {
	out := make([]models.HeatmapCell, 0, HeatmapDays)
	for age := HeatmapDays - 1; age >= 0; age-- {
		date := today.AddDate(0, 0, -age).Format(dayLayout)
		out = append(out, models.HeatmapCell{Date: date, Commits: daily[date], Age: age})
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
