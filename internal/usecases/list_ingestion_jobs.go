package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListIngestionJobs returns the ingestion jobs of a project, newest first.
type ListIngestionJobs interface {
	// Query accepts a free-form since filter such as "yesterday", "3 days ago" or "2026-01-15".
	Query(ctx context.Context, projectID, since string) ([]domain.IngestionJob, error)
}

// ListIngestionJobsImpl is the implementation of the ListIngestionJobs use case.
type ListIngestionJobsImpl struct {
	repo         domain.IngestionJobRepository
	timeProvider domain.CurrentTimeProvider
}

// NewListIngestionJobsImpl creates a new instance of ListIngestionJobsImpl.
func NewListIngestionJobsImpl(repo domain.IngestionJobRepository, tp domain.CurrentTimeProvider) ListIngestionJobsImpl {
	return ListIngestionJobsImpl{repo: repo, timeProvider: tp}
}

// Query implements ListIngestionJobs.
func (l ListIngestionJobsImpl) Query(ctx context.Context, projectID, since string) ([]domain.IngestionJob, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(projectID) == "" {
		err := domain.NewValidationErr("project id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	sinceTime, err := domain.ParseSince(since, l.timeProvider.Now(), time.UTC)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	jobs, err := l.repo.ListJobs(spanCtx, projectID, sinceTime)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return jobs, nil
}

// InitListIngestionJobs initializes the ListIngestionJobs use case.
type InitListIngestionJobs struct {
	Repo         domain.IngestionJobRepository `resolve:""`
	TimeProvider domain.CurrentTimeProvider    `resolve:""`
}

// Initialize registers the ListIngestionJobs use case implementation.
func (i InitListIngestionJobs) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListIngestionJobs](NewListIngestionJobsImpl(i.Repo, i.TimeProvider))
	return ctx, nil
}
