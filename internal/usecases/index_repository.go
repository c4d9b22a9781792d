package usecases

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// IndexingCompletedChannel receives every ingestion job that reached a final status.
// It is used in integration tests to wait for background ingestion.
type IndexingCompletedChannel chan domain.IngestionJob

// IndexRepository runs the ingestion pipeline for a requested job:
// load documents, summarize and embed them, store the records.
type IndexRepository interface {
	// Execute returns an error only when the job could not be read or started, so that the
	// request is delivered again. Repository-level failures mark the job as FAILED. Saving the
	// final status is best effort.
	Execute(ctx context.Context, event domain.IngestionRequestedEvent) error
}

// IndexRepositoryConfig holds the tunables of the ingestion pipeline.
type IndexRepositoryConfig struct {
	IgnoreFiles    []string
	MaxConcurrency int
	JobTimeout     time.Duration
}

// IndexRepositoryImpl is the implementation of the IndexRepository use case.
type IndexRepositoryImpl struct {
	uow          domain.UnitOfWork
	loader       domain.RepositoryLoader
	processor    DocumentBatchProcessor
	writer       EmbeddingRecordWriter
	timeProvider domain.CurrentTimeProvider
	cfg          IndexRepositoryConfig
	logger       *log.Logger
	completedCh  IndexingCompletedChannel
}

// NewIndexRepositoryImpl creates a new instance of IndexRepositoryImpl.
func NewIndexRepositoryImpl(
	uow domain.UnitOfWork,
	loader domain.RepositoryLoader,
	processor DocumentBatchProcessor,
	writer EmbeddingRecordWriter,
	tp domain.CurrentTimeProvider,
	cfg IndexRepositoryConfig,
	logger *log.Logger,
	completedCh IndexingCompletedChannel,
) IndexRepositoryImpl {
	return IndexRepositoryImpl{
		uow:          uow,
		loader:       loader,
		processor:    processor,
		writer:       writer,
		timeProvider: tp,
		cfg:          cfg,
		logger:       logger,
		completedCh:  completedCh,
	}
}

// Execute implements IndexRepository.
func (ir IndexRepositoryImpl) Execute(ctx context.Context, event domain.IngestionRequestedEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.String("job.id", event.JobID.String()))

	job, found, err := ir.uow.IngestionJob().GetJob(spanCtx, event.JobID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to get ingestion job: %w", err)
	}
	if !found {
		ir.logger.Printf("IndexRepository: job %s not found, ignoring request", event.JobID)
		return nil
	}
	if job.Finished() {
		ir.logger.Printf("IndexRepository: job %s already %s, ignoring request", job.ID, job.Status)
		return nil
	}

	job.Start(ir.timeProvider.Now())
	if err := ir.uow.IngestionJob().UpdateJob(spanCtx, job); telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to start ingestion job: %w", err)
	}

	report, persisted, err := ir.run(spanCtx, job)
	if err != nil {
		ir.logger.Printf("IndexRepository: job %s failed: %v", job.ID, err)
		job.Fail(err, ir.timeProvider.Now())
	} else {
		ir.logger.Printf(
			"IndexRepository: job %s completed: %d documents, %d indexed, %d skipped %v, %d records failed",
			job.ID, report.Total, persisted.Stored, report.SkippedCount(), report.SkippedReasons(), len(persisted.Failed),
		)
		job.Complete(report, persisted, ir.timeProvider.Now())
	}

	// Records are already stored at this point; a redelivery would store them a second time.
	if err := ir.uow.IngestionJob().UpdateJob(spanCtx, job); telemetry.RecordErrorAndStatus(span, err) {
		ir.logger.Printf("IndexRepository: job %s finished as %s but its status could not be saved: %v", job.ID, job.Status, err)
	}

	RecordIngestionJobFinished(spanCtx, job.Status)
	if ir.completedCh != nil {
		ir.completedCh <- job
	}
	return nil
}

// run executes the pipeline within the job timeout. The returned error is repository-level.
func (ir IndexRepositoryImpl) run(ctx context.Context, job domain.IngestionJob) (domain.IngestionReport, domain.PersistReport, error) {
	if ir.cfg.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ir.cfg.JobTimeout)
		defer cancel()
	}

	ref, err := domain.ParseRepositoryURL(job.RepositoryURL)
	if err != nil {
		return domain.IngestionReport{}, domain.PersistReport{}, err
	}

	docs, err := ir.loader.LoadDocuments(ctx, domain.RepositoryLoadRequest{
		Repository:     ref,
		Branch:         job.Branch,
		IgnoreFiles:    ir.cfg.IgnoreFiles,
		MaxConcurrency: ir.cfg.MaxConcurrency,
	})
	if err != nil {
		return domain.IngestionReport{}, domain.PersistReport{}, err
	}

	report, err := ir.processor.Process(ctx, docs)
	if err != nil {
		return report, domain.PersistReport{}, err
	}

	persisted := ir.writer.Store(ctx, job.ProjectID, report.Artifacts)
	return report, persisted, nil
}

// ParseIgnoreFiles splits a comma separated list of file names; "-" selects the defaults.
func ParseIgnoreFiles(raw string) []string {
	if strings.TrimSpace(raw) == "-" {
		return domain.DefaultIgnoredFiles
	}
	files := []string{}
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	return files
}

// InitIndexRepository initializes the IndexRepository use case.
type InitIndexRepository struct {
	Uow            domain.UnitOfWork          `resolve:""`
	Loader         domain.RepositoryLoader    `resolve:""`
	Processor      DocumentBatchProcessor     `resolve:""`
	Writer         EmbeddingRecordWriter      `resolve:""`
	TimeProvider   domain.CurrentTimeProvider `resolve:""`
	Logger         *log.Logger                `resolve:""`
	IgnoreFiles    string                     `config:"INGESTION_IGNORE_FILES" default:"-"`
	MaxConcurrency int                        `config:"INGESTION_MAX_CONCURRENCY" default:"5"`
	JobTimeout     time.Duration              `config:"INGESTION_JOB_TIMEOUT" default:"30m"`
}

// Initialize registers the IndexRepository use case implementation.
func (i InitIndexRepository) Initialize(ctx context.Context) (context.Context, error) {
	completedCh, _ := depend.Resolve[IndexingCompletedChannel]()
	depend.Register[IndexRepository](NewIndexRepositoryImpl(
		i.Uow,
		i.Loader,
		i.Processor,
		i.Writer,
		i.TimeProvider,
		IndexRepositoryConfig{
			IgnoreFiles:    ParseIgnoreFiles(i.IgnoreFiles),
			MaxConcurrency: i.MaxConcurrency,
			JobTimeout:     i.JobTimeout,
		},
		i.Logger,
		completedCh,
	))
	return ctx, nil
}
