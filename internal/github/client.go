package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/Kamar-Folarin/commit-insights/internal/config"
)

// CommitDetail is the part of GitHub's commit detail the enricher uses
type CommitDetail struct {
	FilesChanged int
	Additions    int
	Deletions    int
}

// CommitLookup retrieves commit statistics and associated pull requests
type CommitLookup interface {
	GetCommitDetail(ctx context.Context, owner, name, sha string) (*CommitDetail, error)
	ListPullRequestURLs(ctx context.Context, owner, name, sha string) ([]string, error)
}

// GitHubClient represents a client for interacting with the GitHub API
type GitHubClient struct {
	client  *gh.Client
	logger  *logrus.Logger
	timeout time.Duration
}

var _ CommitLookup = (*GitHubClient)(nil)

// NewGitHubClient creates a token-authenticated client. The token must be non-empty.
func NewGitHubClient(cfg *config.GitHubConfig, logger *logrus.Logger) (*GitHubClient, error) {
	if !cfg.EnrichmentEnabled() {
		return nil, NewValidationError("token", "cannot be empty")
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.Token},
	)
	httpClient := oauth2.NewClient(context.Background(), ts)

	client := gh.NewClient(httpClient)
	if cfg.APIBaseURL != "" {
		baseURL := cfg.APIBaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API base URL: %w", err)
		}
		client.BaseURL = u
	}

	return &GitHubClient{
		client:  client,
		logger:  logger,
		timeout: cfg.RequestTimeout,
	}, nil
}

func (c *GitHubClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func validateCommitRef(owner, name, sha string) error {
	if owner == "" {
		return NewValidationError("owner", "cannot be empty")
	}
	if name == "" {
		return NewValidationError("name", "cannot be empty")
	}
	if sha == "" {
		return NewValidationError("sha", "cannot be empty")
	}
	return nil
}

// GetCommitDetail gets the changed file count and line totals of a commit
func (c *GitHubClient) GetCommitDetail(ctx context.Context, owner, name, sha string) (*CommitDetail, error) {
	if err := validateCommitRef(owner, name, sha); err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	commit, resp, err := c.client.Repositories.GetCommit(ctx, owner, name, sha, nil)
	if err != nil {
		return nil, NewGitHubError(resp, fmt.Sprintf("failed to get commit %s", sha), err)
	}

	c.logger.WithFields(logrus.Fields{
		"owner": owner,
		"repo":  name,
		"sha":   sha,
		"files": len(commit.Files),
	}).Debug("Fetched commit detail")

	return &CommitDetail{
		FilesChanged: len(commit.Files),
		Additions:    commit.GetStats().GetAdditions(),
		Deletions:    commit.GetStats().GetDeletions(),
	}, nil
}

// ListPullRequestURLs lists the html URLs of pull requests associated with a commit
func (c *GitHubClient) ListPullRequestURLs(ctx context.Context, owner, name, sha string) ([]string, error) {
	if err := validateCommitRef(owner, name, sha); err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	pulls, resp, err := c.client.PullRequests.ListPullRequestsWithCommit(ctx, owner, name, sha, nil)
	if err != nil {
		return nil, NewGitHubError(resp, fmt.Sprintf("failed to list pull requests for commit %s", sha), err)
	}

	urls := make([]string, 0, len(pulls))
	for _, pr := range pulls {
		if u := pr.GetHTMLURL(); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}
