package github

import (
	"errors"
	"fmt"

	gh "github.com/google/go-github/v57/github"
)

// GitHubError wraps a failed GitHub API call
type GitHubError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *GitHubError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *GitHubError) Unwrap() error {
	return e.Err
}

// ValidationError represents invalid input to GitHub client methods
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: invalid %s: %s", e.Field, e.Value)
}

// NewGitHubError creates a new GitHubError from a go-github response and error
func NewGitHubError(resp *gh.Response, message string, err error) error {
	statusCode := 0
	if resp != nil && resp.Response != nil {
		statusCode = resp.StatusCode
	}
	return &GitHubError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, value string) error {
	return &ValidationError{
		Field: field,
		Value: value,
	}
}

// IsRateLimitError checks if an error was caused by GitHub's primary or secondary rate limit
func IsRateLimitError(err error) bool {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *gh.AbuseRateLimitError
	return errors.As(err, &abuseErr)
}

// IsNotFoundError checks if the API answered 404
func IsNotFoundError(err error) bool {
	var ghErr *GitHubError
	return errors.As(err, &ghErr) && ghErr.StatusCode == 404
}
