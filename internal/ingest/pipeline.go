package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	apperrors "github.com/Kamar-Folarin/commit-insights/internal/errors"
	"github.com/Kamar-Folarin/commit-insights/internal/github"
	"github.com/Kamar-Folarin/commit-insights/internal/models"
	"github.com/Kamar-Folarin/commit-insights/internal/utils"
)

const (
	// PushEventType is the only event type that produces records
	PushEventType = "push"

	unknownAuthor = "unknown"
)

// StatsEnricher adds change statistics to a pushed commit
type StatsEnricher interface {
	Enrich(ctx context.Context, owner, name, sha string, fallbackFiles []string) models.CommitStats
}

// CommitWriter persists normalized commits. UpsertCommits must apply the whole
// batch or nothing.
type CommitWriter interface {
	UpsertCommits(ctx context.Context, commits []*models.CommitRecord) error
}

// Delivery is one inbound webhook request
type Delivery struct {
	EventType string
	Signature string
	Body      []byte
}

// Result reports the outcome of a delivery
type Result struct {
	Processed int  `json:"processed"`
	Ignored   bool `json:"ignored,omitempty"`
}

// Pipeline verifies, normalizes, enriches and stores pushed commits
type Pipeline struct {
	secret   string
	enricher StatsEnricher
	store    CommitWriter
	logger   *logrus.Logger
}

// NewPipeline creates a pipeline. An empty secret makes every delivery fail
// with a configuration error.
func NewPipeline(secret string, enricher StatsEnricher, store CommitWriter, logger *logrus.Logger) *Pipeline {
	return &Pipeline{
		secret:   secret,
		enricher: enricher,
		store:    store,
		logger:   logger,
	}
}

// HandleDelivery authenticates a raw delivery and ingests it when it is a push event
func (p *Pipeline) HandleDelivery(ctx context.Context, d Delivery) (*Result, error) {
	if p.secret == "" {
		return nil, apperrors.NewConfigurationError("webhook secret is not configured", nil)
	}

	if !github.VerifySignature(d.Body, d.Signature, p.secret) {
		return nil, apperrors.NewUnauthorizedError("invalid signature", nil)
	}

	if d.EventType != PushEventType {
		p.logger.WithField("event_type", d.EventType).Info("Ignoring non-push event")
		return &Result{Ignored: true}, nil
	}

	var event models.PushEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		return nil, apperrors.NewInvalidInputError("malformed push payload", err)
	}

	return p.Ingest(ctx, &event)
}

// Ingest normalizes every commit of a push event and upserts them as one batch
func (p *Pipeline) Ingest(ctx context.Context, event *models.PushEvent) (*Result, error) {
	repository := event.Repository.FullName
	branch := utils.BranchFromRef(event.Ref)
	owner := eventOwner(event)
	name := event.Repository.Name

	logger := p.logger.WithFields(logrus.Fields{
		"repository": repository,
		"branch":     branch,
		"commits":    len(event.Commits),
	})
	logger.Info("Processing push event")

	records := make([]*models.CommitRecord, 0, len(event.Commits))
	for _, commit := range event.Commits {
		record, err := p.normalize(ctx, commit, repository, branch, owner, name)
		if err != nil {
			logger.WithError(err).WithField("sha", commit.ID).Warn("Rejecting push event")
			return nil, err
		}
		records = append(records, record)
	}

	if len(records) > 0 {
		if err := p.store.UpsertCommits(ctx, records); err != nil {
			logger.WithError(err).Error("Failed to save commits")
			return nil, apperrors.NewInternalError("failed to save commits", err)
		}
	}

	logger.WithField("processed", len(records)).Info("Push event ingested")
	return &Result{Processed: len(records)}, nil
}

func (p *Pipeline) normalize(ctx context.Context, commit models.PushCommit, repository, branch, owner, name string) (*models.CommitRecord, error) {
	if commit.ID == "" {
		return nil, apperrors.NewInvalidInputError("commit id is missing", nil)
	}

	committedAt, err := time.Parse(time.RFC3339, commit.Timestamp)
	if err != nil {
		return nil, apperrors.NewInvalidInputError(fmt.Sprintf("invalid timestamp for commit %s", commit.ID), err)
	}

	stats := p.enricher.Enrich(ctx, owner, name, commit.ID, commit.ChangedFiles())

	author := unknownAuthor
	if commit.Author != nil && commit.Author.Name != "" {
		author = commit.Author.Name
	}

	return &models.CommitRecord{
		SHA:               commit.ID,
		Repository:        repository,
		Branch:            branch,
		Author:            author,
		MessageShort:      FirstLine(commit.Message),
		MessageFull:       commit.Message,
		CommitURL:         commit.URL,
		PullRequestURL:    stats.PullRequestURL,
		CommitType:        Classify(commit.Message),
		FilesChangedCount: stats.FilesChangedCount,
		Insertions:        stats.Insertions,
		Deletions:         stats.Deletions,
		IsMergeCommit:     IsMergeCommit(commit.Message),
		CommittedAt:       committedAt.UTC(),
	}, nil
}

func eventOwner(event *models.PushEvent) string {
	if event.Repository.Owner.Login != "" {
		return event.Repository.Owner.Login
	}
	if event.Repository.Owner.Name != "" {
		return event.Repository.Owner.Name
	}
	owner, _, err := utils.SplitFullName(event.Repository.FullName)
	if err != nil {
		return ""
	}
	return owner
}
