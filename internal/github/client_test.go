package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/commit-insights/internal/config"
)

func setupTestClient(t *testing.T, handler http.Handler) *GitHubClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.GitHubConfig{
		Token:          "test-token",
		APIBaseURL:     server.URL,
		RequestTimeout: 5 * time.Second,
	}
	client, err := NewGitHubClient(cfg, quietLogger())
	require.NoError(t, err)
	return client
}

func TestNewGitHubClient_RequiresToken(t *testing.T) {
	_, err := NewGitHubClient(config.DefaultGitHubConfig(), quietLogger())
	assert.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestGitHubClient_GetCommitDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("successful request", func(t *testing.T) {
		client := setupTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/repos/test-owner/test-repo/commits/abc123", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"sha": "abc123",
				"stats": {"additions": 42, "deletions": 7, "total": 49},
				"files": [
					{"filename": "main.go", "additions": 40, "deletions": 5},
					{"filename": "README.md", "additions": 2, "deletions": 2}
				]
			}`))
		}))

		detail, err := client.GetCommitDetail(ctx, "test-owner", "test-repo", "abc123")
		require.NoError(t, err)
		assert.Equal(t, 2, detail.FilesChanged)
		assert.Equal(t, 42, detail.Additions)
		assert.Equal(t, 7, detail.Deletions)
	})

	t.Run("commit not found", func(t *testing.T) {
		client := setupTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "Not Found"}`))
		}))

		_, err := client.GetCommitDetail(ctx, "test-owner", "test-repo", "abc123")
		require.Error(t, err)
		assert.True(t, IsNotFoundError(err))
	})

	t.Run("validation error", func(t *testing.T) {
		client := setupTestClient(t, http.NotFoundHandler())

		_, err := client.GetCommitDetail(ctx, "", "test-repo", "abc123")
		assert.IsType(t, &ValidationError{}, err)

		_, err = client.GetCommitDetail(ctx, "test-owner", "test-repo", "")
		assert.IsType(t, &ValidationError{}, err)
	})
}

func TestGitHubClient_ListPullRequestURLs(t *testing.T) {
	ctx := context.Background()

	t.Run("associated pull requests", func(t *testing.T) {
		client := setupTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/test-owner/test-repo/commits/abc123/pulls", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"number": 4, "html_url": "https://github.com/test-owner/test-repo/pull/4"},
				{"number": 9, "html_url": "https://github.com/test-owner/test-repo/pull/9"}
			]`))
		}))

		urls, err := client.ListPullRequestURLs(ctx, "test-owner", "test-repo", "abc123")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://github.com/test-owner/test-repo/pull/4",
			"https://github.com/test-owner/test-repo/pull/9",
		}, urls)
	})

	t.Run("no pull requests", func(t *testing.T) {
		client := setupTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		}))

		urls, err := client.ListPullRequestURLs(ctx, "test-owner", "test-repo", "abc123")
		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("server error", func(t *testing.T) {
		client := setupTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.ListPullRequestURLs(ctx, "test-owner", "test-repo", "abc123")
		require.Error(t, err)
		assert.IsType(t, &GitHubError{}, err)
	})
}

func TestEnricher_AgainstAPI(t *testing.T) {
	client := setupTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/repos/octo/repo/commits/abc123":
			w.WriteHeader(http.StatusServiceUnavailable)
		case "/repos/octo/repo/commits/abc123/pulls":
			w.Write([]byte(`[{"html_url": "https://github.com/octo/repo/pull/12"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	stats := NewEnricher(client, quietLogger()).Enrich(context.Background(), "octo", "repo", "abc123", []string{"a", "b"})

	assert.Equal(t, 2, stats.FilesChangedCount)
	assert.Zero(t, stats.Insertions)
	require.NotNil(t, stats.PullRequestURL)
	assert.Equal(t, "https://github.com/octo/repo/pull/12", *stats.PullRequestURL)
}
