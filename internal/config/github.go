package config

import "time"

// GitHubConfig holds GitHub-specific configuration
type GitHubConfig struct {
	// Token enables commit enrichment; empty disables the API lookups
	Token          string
	APIBaseURL     string
	RequestTimeout time.Duration
}

// DefaultGitHubConfig returns the default GitHub configuration
func DefaultGitHubConfig() *GitHubConfig {
	return &GitHubConfig{
		APIBaseURL:     "https://api.github.com/",
		RequestTimeout: 10 * time.Second,
	}
}

// EnrichmentEnabled reports whether a credential is configured
func (c *GitHubConfig) EnrichmentEnabled() bool {
	return c != nil && c.Token != ""
}
