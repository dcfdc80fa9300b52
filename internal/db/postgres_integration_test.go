//go:build database

package db

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	apperrors "github.com/Kamar-Folarin/commit-insights/internal/errors"
	"github.com/Kamar-Folarin/commit-insights/internal/models"
)

func setupTestDB(t *testing.T) *PostgresStore {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil))

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres sslmode=disable", host, port.Port())
	store, err := NewPostgresStore(connStr, logger)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Migrate())
	return store
}

func TestPostgresStore(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, store.UpsertCommits(ctx, sampleCommits()))

	t.Run("get commit", func(t *testing.T) {
		got, err := store.GetCommit(ctx, "bbb222")
		require.NoError(t, err)
		assert.Equal(t, sampleCommits()[1], got)

		_, err = store.GetCommit(ctx, "missing")
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("upsert overwrites every field", func(t *testing.T) {
		replacement := sampleCommits()[1]
		replacement.PullRequestURL = nil
		replacement.Branch = "main"
		replacement.Insertions = 0
		require.NoError(t, store.UpsertCommits(ctx, []*models.CommitRecord{replacement}))
		require.NoError(t, store.UpsertCommits(ctx, []*models.CommitRecord{replacement}))

		got, err := store.GetCommit(ctx, "bbb222")
		require.NoError(t, err)
		assert.Equal(t, replacement, got)

		all, err := store.ListCommitsInRange(ctx, time.Time{}, nil)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("failed batch leaves no partial writes", func(t *testing.T) {
		bad := []*models.CommitRecord{
			{SHA: "eee555", Repository: "octo/api", Branch: "main", Author: "a", CommitType: models.CommitTypeOther, CommittedAt: baseTime},
			{SHA: "fff666", Repository: "octo/api", Branch: "main", Author: "a", CommitType: models.CommitTypeOther, Insertions: -1, CommittedAt: baseTime},
		}
		assert.Error(t, store.UpsertCommits(ctx, bad))

		_, err := store.GetCommit(ctx, "eee555")
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("query with filters and paging", func(t *testing.T) {
		windowStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		commits, total, err := store.QueryCommits(ctx, models.CommitFilter{
			From: windowStart, IncludeMerges: boolPtr(false), Page: 1, PageSize: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, []string{"aaa111"}, shas(commits))

		commits, _, err = store.QueryCommits(ctx, models.CommitFilter{
			From: time.Time{}, Search: strPtr("snake_case"), Page: 1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"ddd444"}, shas(commits))
	})

	t.Run("distinct values", func(t *testing.T) {
		repos, err := store.DistinctValues(ctx, models.FacetRepository, models.CommitFilter{From: time.Time{}})
		require.NoError(t, err)
		assert.Equal(t, []string{"octo/api", "octo/web"}, repos)
	})
}
