package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// GetIngestionJob returns the current state of an ingestion job.
type GetIngestionJob interface {
	Query(ctx context.Context, id uuid.UUID) (domain.IngestionJob, error)
}

// GetIngestionJobImpl is the implementation of the GetIngestionJob use case.
type GetIngestionJobImpl struct {
	repo domain.IngestionJobRepository
}

// NewGetIngestionJobImpl creates a new instance of GetIngestionJobImpl.
func NewGetIngestionJobImpl(repo domain.IngestionJobRepository) GetIngestionJobImpl {
	return GetIngestionJobImpl{repo: repo}
}

// Query implements GetIngestionJob.
func (g GetIngestionJobImpl) Query(ctx context.Context, id uuid.UUID) (domain.IngestionJob, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	job, found, err := g.repo.GetJob(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.IngestionJob{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("ingestion job %s not found", id))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.IngestionJob{}, err
	}
	return job, nil
}

// InitGetIngestionJob initializes the GetIngestionJob use case.
type InitGetIngestionJob struct {
	Repo domain.IngestionJobRepository `resolve:""`
}

// Initialize registers the GetIngestionJob use case implementation.
func (i InitGetIngestionJob) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetIngestionJob](NewGetIngestionJobImpl(i.Repo))
	return ctx, nil
}
