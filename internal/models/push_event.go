package models

// PushEvent is the subset of a GitHub push webhook payload the ingestion pipeline reads
type PushEvent struct {
	Ref        string         `json:"ref"`
	Repository PushRepository `json:"repository"`
	Commits    []PushCommit   `json:"commits"`
}

type PushRepository struct {
	FullName string    `json:"full_name"`
	Name     string    `json:"name"`
	Owner    PushOwner `json:"owner"`
}

type PushOwner struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

type PushCommit struct {
	ID        string      `json:"id"`
	Message   string      `json:"message"`
	Timestamp string      `json:"timestamp"`
	URL       string      `json:"url"`
	Author    *PushAuthor `json:"author,omitempty"`
	Added     []string    `json:"added"`
	Removed   []string    `json:"removed"`
	Modified  []string    `json:"modified"`
}

type PushAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ChangedFiles returns every added, removed and modified path in delivery order
func (c PushCommit) ChangedFiles() []string {
	files := make([]string, 0, len(c.Added)+len(c.Removed)+len(c.Modified))
	files = append(files, c.Added...)
	files = append(files, c.Removed...)
	files = append(files, c.Modified...)
	return files
}
