package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	apperrors "github.com/Kamar-Folarin/commit-insights/internal/errors"
	"github.com/Kamar-Folarin/commit-insights/internal/models"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const commitColumns = `
	sha, repository, branch, author, message_short, message_full, commit_url,
	pull_request_url, commit_type, files_changed_count, insertions, deletions,
	is_merge_commit, committed_at`

var facetColumns = map[models.FacetField]string{
	models.FacetRepository: "repository",
	models.FacetBranch:     "branch",
	models.FacetCommitType: "commit_type",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type PostgresStore struct {
	db     *sql.DB
	logger *logrus.Logger
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(connectionString string, logger *logrus.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewPostgresStoreFromDB(db, logger), nil
}

// NewPostgresStoreFromDB wraps an already opened database handle
func NewPostgresStoreFromDB(db *sql.DB, logger *logrus.Logger) *PostgresStore {
	return &PostgresStore{db: db, logger: logger}
}

// Migrate applies the embedded goose migrations
func (s *PostgresStore) Migrate() error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(s.logger)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// UpsertCommits writes the batch in one transaction. Existing rows are fully
// overwritten; concurrent writers on the same sha resolve last-write-wins.
func (s *PostgresStore) UpsertCommits(ctx context.Context, commits []*models.CommitRecord) error {
	if len(commits) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO commits (`+commitColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (sha) DO UPDATE SET
			repository = EXCLUDED.repository,
			branch = EXCLUDED.branch,
			author = EXCLUDED.author,
			message_short = EXCLUDED.message_short,
			message_full = EXCLUDED.message_full,
			commit_url = EXCLUDED.commit_url,
			pull_request_url = EXCLUDED.pull_request_url,
			commit_type = EXCLUDED.commit_type,
			files_changed_count = EXCLUDED.files_changed_count,
			insertions = EXCLUDED.insertions,
			deletions = EXCLUDED.deletions,
			is_merge_commit = EXCLUDED.is_merge_commit,
			committed_at = EXCLUDED.committed_at,
			updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("failed to prepare commit upsert statement: %w", err)
	}
	defer stmt.Close()

	for _, commit := range commits {
		var prURL sql.NullString
		if commit.PullRequestURL != nil {
			prURL = sql.NullString{String: *commit.PullRequestURL, Valid: true}
		}

		_, err := stmt.ExecContext(ctx,
			commit.SHA,
			commit.Repository,
			commit.Branch,
			commit.Author,
			commit.MessageShort,
			commit.MessageFull,
			commit.CommitURL,
			prURL,
			string(commit.CommitType),
			commit.FilesChangedCount,
			commit.Insertions,
			commit.Deletions,
			commit.IsMergeCommit,
			commit.CommittedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert commit %s: %w", commit.SHA, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.WithField("commits", len(commits)).Debug("Upserted commits")
	return nil
}

func (s *PostgresStore) GetCommit(ctx context.Context, sha string) (*models.CommitRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+commitColumns+` FROM commits WHERE sha = $1`, sha)

	commit, err := scanCommit(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("commit not found: %s", sha), err)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get commit: %w", err)
	}
	return commit, nil
}

// QueryCommits retrieves one page of commits and the total number of matches
func (s *PostgresStore) QueryCommits(ctx context.Context, filter models.CommitFilter) ([]*models.CommitRecord, int64, error) {
	where, args := buildWhere(filter)

	var total int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM commits"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	argCount := len(args)
	query := fmt.Sprintf("SELECT %s FROM commits%s ORDER BY committed_at DESC, sha ASC LIMIT $%d OFFSET $%d",
		commitColumns, where, argCount+1, argCount+2)
	args = append(args, filter.PageSize, filter.Offset())

	commits, err := s.queryCommits(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return commits, total, nil
}

func (s *PostgresStore) DistinctValues(ctx context.Context, field models.FacetField, filter models.CommitFilter) ([]string, error) {
	column, ok := facetColumns[field]
	if !ok {
		return nil, fmt.Errorf("unsupported facet field %q", field)
	}

	where, args := buildWhere(filter)
	query := fmt.Sprintf("SELECT DISTINCT %s FROM commits%s ORDER BY %s", column, where, column)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan distinct %s: %w", column, err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distinct %s: %w", column, err)
	}
	return values, nil
}

func (s *PostgresStore) ListCommitsInRange(ctx context.Context, from time.Time, to *time.Time) ([]*models.CommitRecord, error) {
	where, args := buildWhere(models.CommitFilter{From: from, To: to})
	query := fmt.Sprintf("SELECT %s FROM commits%s ORDER BY committed_at DESC, sha ASC", commitColumns, where)
	return s.queryCommits(ctx, query, args...)
}

func (s *PostgresStore) queryCommits(ctx context.Context, query string, args ...interface{}) ([]*models.CommitRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query commits: %w", err)
	}
	defer rows.Close()

	commits := make([]*models.CommitRecord, 0)
	for rows.Next() {
		commit, err := scanCommit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commit: %w", err)
		}
		commits = append(commits, commit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating commits: %w", err)
	}
	return commits, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCommit(row rowScanner) (*models.CommitRecord, error) {
	var c models.CommitRecord
	var prURL sql.NullString
	var commitType string
	if err := row.Scan(
		&c.SHA,
		&c.Repository,
		&c.Branch,
		&c.Author,
		&c.MessageShort,
		&c.MessageFull,
		&c.CommitURL,
		&prURL,
		&commitType,
		&c.FilesChangedCount,
		&c.Insertions,
		&c.Deletions,
		&c.IsMergeCommit,
		&c.CommittedAt,
	); err != nil {
		return nil, err
	}

	if prURL.Valid {
		c.PullRequestURL = &prURL.String
	}
	c.CommitType = models.CommitType(commitType)
	c.CommittedAt = c.CommittedAt.UTC()
	return &c, nil
}

// buildWhere turns a filter into a WHERE clause with positional arguments
func buildWhere(f models.CommitFilter) (string, []interface{}) {
	clauses := []string{"committed_at >= $1"}
	args := []interface{}{f.From.UTC()}

	add := func(clause string, arg interface{}) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if f.To != nil {
		add("committed_at <= $%d", f.To.UTC())
	}
	if f.Repository != nil {
		add("repository = $%d", *f.Repository)
	}
	if f.Branch != nil {
		add("branch = $%d", *f.Branch)
	}
	if f.CommitType != nil {
		add("commit_type = $%d", string(*f.CommitType))
	}
	if f.IncludeMerges != nil && !*f.IncludeMerges {
		clauses = append(clauses, "is_merge_commit = FALSE")
	}
	if f.Search != nil {
		add(`message_full ILIKE '%%' || $%d || '%%' ESCAPE '\'`, likeEscaper.Replace(*f.Search))
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}
