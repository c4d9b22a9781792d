package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListEmbeddingRecords returns every embedding record of a project.
type ListEmbeddingRecords interface {
	Query(ctx context.Context, projectID string) ([]domain.EmbeddingRecord, error)
}

// ListEmbeddingRecordsImpl is the implementation of the ListEmbeddingRecords use case.
type ListEmbeddingRecordsImpl struct {
	repo domain.EmbeddingRecordRepository
}

// NewListEmbeddingRecordsImpl creates a new instance of ListEmbeddingRecordsImpl.
func NewListEmbeddingRecordsImpl(repo domain.EmbeddingRecordRepository) ListEmbeddingRecordsImpl {
	return ListEmbeddingRecordsImpl{repo: repo}
}

// Query implements ListEmbeddingRecords.
func (l ListEmbeddingRecordsImpl) Query(ctx context.Context, projectID string) ([]domain.EmbeddingRecord, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(projectID) == "" {
		err := domain.NewValidationErr("project id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	records, err := l.repo.ListByProject(spanCtx, projectID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return records, nil
}

// InitListEmbeddingRecords initializes the ListEmbeddingRecords use case.
type InitListEmbeddingRecords struct {
	Repo domain.EmbeddingRecordRepository `resolve:""`
}

// Initialize registers the ListEmbeddingRecords use case implementation.
func (i InitListEmbeddingRecords) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListEmbeddingRecords](NewListEmbeddingRecordsImpl(i.Repo))
	return ctx, nil
}
