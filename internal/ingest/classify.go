package ingest

import (
	"regexp"
	"strings"

	"github.com/Kamar-Folarin/commit-insights/internal/models"
)

var (
	conventionalPrefix = regexp.MustCompile(`(?i)^(feat|fix|refactor|chore|docs|style|test|perf|build|ci)(\(.+\))?:`)
	mergePattern       = regexp.MustCompile(`(?i)merge`)
	revertPattern      = regexp.MustCompile(`(?i)revert`)
)

const mergeCommitPrefix = "Merge "

// Classify derives the commit type from the trimmed first line of a message.
// Every message maps to exactly one type.
func Classify(message string) models.CommitType {
	head := strings.TrimSpace(FirstLine(message))

	if m := conventionalPrefix.FindStringSubmatch(head); m != nil {
		return models.CommitType(strings.ToLower(m[1]))
	}
	if mergePattern.MatchString(head) {
		return models.CommitTypeMerge
	}
	if revertPattern.MatchString(head) {
		return models.CommitTypeRevert
	}
	return models.CommitTypeOther
}

// FirstLine returns the message up to its first newline
func FirstLine(message string) string {
	head, _, _ := strings.Cut(message, "\n")
	return head
}

// IsMergeCommit reports whether the message starts with the literal "Merge "
func IsMergeCommit(message string) bool {
	return strings.HasPrefix(message, mergeCommitPrefix)
}
