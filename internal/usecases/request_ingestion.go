package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// RequestIngestion schedules the ingestion of a repository into a project and returns at once.
// Completion is observed through the job status or the project's embedding records.
type RequestIngestion interface {
	Execute(ctx context.Context, projectID, repositoryURL, credential string) (domain.IngestionJob, error)
}

// RequestIngestionImpl is the implementation of the RequestIngestion use case.
type RequestIngestionImpl struct {
	uow          domain.UnitOfWork
	loader       domain.RepositoryLoader
	timeProvider domain.CurrentTimeProvider
}

// NewRequestIngestionImpl creates a new instance of RequestIngestionImpl.
func NewRequestIngestionImpl(uow domain.UnitOfWork, loader domain.RepositoryLoader, tp domain.CurrentTimeProvider) RequestIngestionImpl {
	return RequestIngestionImpl{
		uow:          uow,
		loader:       loader,
		timeProvider: tp,
	}
}

// Execute validates the request, checks the repository is reachable with the caller credential
// and with the service credential the worker loads it with, then stores a PENDING job together
// with the event that starts it. The caller credential is not stored.
func (ri RequestIngestionImpl) Execute(ctx context.Context, projectID, repositoryURL, credential string) (domain.IngestionJob, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		err := domain.NewValidationErr("project id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.IngestionJob{}, err
	}

	ref, err := domain.ParseRepositoryURL(repositoryURL)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.IngestionJob{}, err
	}

	branch, err := ri.loader.ResolveDefaultBranch(spanCtx, ref, credential)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.IngestionJob{}, err
	}
	if credential != "" {
		err := ri.checkServiceAccess(spanCtx, ref)
		if telemetry.RecordErrorAndStatus(span, err) {
			return domain.IngestionJob{}, err
		}
	}

	now := ri.timeProvider.Now()
	job := domain.IngestionJob{
		ID:            uuid.New(),
		ProjectID:     projectID,
		RepositoryURL: fmt.Sprintf("https://github.com/%s", ref),
		Branch:        branch,
		Status:        domain.IngestionJobStatus_PENDING,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = ri.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.IngestionJob().CreateJob(spanCtx, job); err != nil {
			return err
		}
		return uow.Outbox().CreateIngestionEvent(spanCtx, domain.IngestionRequestedEvent{
			Type:          domain.EventType_INGESTION_REQUESTED,
			JobID:         job.ID,
			ProjectID:     job.ProjectID,
			RepositoryURL: job.RepositoryURL,
			Branch:        job.Branch,
			RequestedAt:   now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.IngestionJob{}, err
	}

	return job, nil
}

// checkServiceAccess verifies that the worker, which only holds the service credential,
// will be able to load the repository.
func (ri RequestIngestionImpl) checkServiceAccess(ctx context.Context, ref domain.RepositoryRef) error {
	_, err := ri.loader.ResolveDefaultBranch(ctx, ref, "")
	var notFound *domain.NotFoundErr
	if errors.As(err, &notFound) {
		return domain.NewValidationErr(fmt.Sprintf("repository %s is not accessible to the indexing service", ref))
	}
	return err
}

// InitRequestIngestion initializes the RequestIngestion use case.
type InitRequestIngestion struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Loader       domain.RepositoryLoader    `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the RequestIngestion use case implementation.
func (i InitRequestIngestion) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RequestIngestion](NewRequestIngestionImpl(i.Uow, i.Loader, i.TimeProvider))
	return ctx, nil
}
