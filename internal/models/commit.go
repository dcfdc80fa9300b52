package models

import "time"

// CommitType is the coarse category derived from a commit message
type CommitType string

const (
	CommitTypeFeat     CommitType = "feat"
	CommitTypeFix      CommitType = "fix"
	CommitTypeRefactor CommitType = "refactor"
	CommitTypeChore    CommitType = "chore"
	CommitTypeDocs     CommitType = "docs"
	CommitTypeStyle    CommitType = "style"
	CommitTypeTest     CommitType = "test"
	CommitTypePerf     CommitType = "perf"
	CommitTypeBuild    CommitType = "build"
	CommitTypeCI       CommitType = "ci"
	CommitTypeMerge    CommitType = "merge"
	CommitTypeRevert   CommitType = "revert"
	CommitTypeOther    CommitType = "other"
)

// AllCommitTypes returns every known commit type
func AllCommitTypes() []CommitType {
	return []CommitType{
		CommitTypeFeat, CommitTypeFix, CommitTypeRefactor, CommitTypeChore,
		CommitTypeDocs, CommitTypeStyle, CommitTypeTest, CommitTypePerf,
		CommitTypeBuild, CommitTypeCI, CommitTypeMerge, CommitTypeRevert,
		CommitTypeOther,
	}
}

// Valid reports whether t is one of the known commit types
func (t CommitType) Valid() bool {
	for _, known := range AllCommitTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// CommitRecord is the persisted, normalized form of a pushed commit.
// SHA is the natural key.
type CommitRecord struct {
	SHA               string     `json:"sha"`
	Repository        string     `json:"repository"`
	Branch            string     `json:"branch"`
	Author            string     `json:"author"`
	MessageShort      string     `json:"messageShort"`
	MessageFull       string     `json:"messageFull"`
	CommitURL         string     `json:"commitUrl"`
	PullRequestURL    *string    `json:"pullRequestUrl"`
	CommitType        CommitType `json:"commitType"`
	FilesChangedCount int        `json:"filesChangedCount"`
	Insertions        int        `json:"insertions"`
	Deletions         int        `json:"deletions"`
	IsMergeCommit     bool       `json:"isMergeCommit"`
	CommittedAt       time.Time  `json:"committedAt"`
}

// Clone returns a deep copy of the record
func (c *CommitRecord) Clone() *CommitRecord {
	out := *c
	if c.PullRequestURL != nil {
		url := *c.PullRequestURL
		out.PullRequestURL = &url
	}
	return &out
}

// CommitStats holds the enrichment results for a single commit
type CommitStats struct {
	FilesChangedCount int
	Insertions        int
	Deletions         int
	PullRequestURL    *string
}
