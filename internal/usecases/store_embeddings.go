package usecases

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// EmbeddingRecordWriter stores processed artifacts as embedding records of a project.
type EmbeddingRecordWriter interface {
	// Store writes every artifact independently. A failed record never prevents the others
	// from being written; failures are reported instead of returned.
	Store(ctx context.Context, projectID string, artifacts []domain.CodeArtifact) domain.PersistReport
}

// EmbeddingRecordWriterImpl is the implementation of the EmbeddingRecordWriter use case.
type EmbeddingRecordWriterImpl struct {
	uow            domain.UnitOfWork
	timeProvider   domain.CurrentTimeProvider
	maxConcurrency int
	logger         *log.Logger
}

// NewEmbeddingRecordWriterImpl creates a new instance of EmbeddingRecordWriterImpl.
func NewEmbeddingRecordWriterImpl(uow domain.UnitOfWork, tp domain.CurrentTimeProvider, maxConcurrency int, logger *log.Logger) EmbeddingRecordWriterImpl {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return EmbeddingRecordWriterImpl{
		uow:            uow,
		timeProvider:   tp,
		maxConcurrency: maxConcurrency,
		logger:         logger,
	}
}

// Store implements EmbeddingRecordWriter.
func (w EmbeddingRecordWriterImpl) Store(ctx context.Context, projectID string, artifacts []domain.CodeArtifact) domain.PersistReport {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var (
		mu       sync.Mutex
		stored   int
		failures = make([]error, len(artifacts))
	)

	g := errgroup.Group{}
	g.SetLimit(w.maxConcurrency)
	for i, artifact := range artifacts {
		g.Go(func() error {
			err := w.storeArtifact(spanCtx, projectID, artifact)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[i] = err
				w.logger.Printf("EmbeddingRecordWriter: failed to store %s: %v", artifact.FileName, err)
				return nil
			}
			stored++
			return nil
		})
	}
	_ = g.Wait()

	report := domain.PersistReport{Stored: stored}
	for i, err := range failures {
		if err != nil {
			report.Failed = append(report.Failed, domain.FailedRecord{
				FileName: artifacts[i].FileName,
				Err:      err,
			})
		}
	}

	RecordPersistReport(spanCtx, report)
	span.SetAttributes(
		attribute.Int("records.stored", report.Stored),
		attribute.Int("records.failed", len(report.Failed)),
	)
	return report
}

// storeArtifact inserts the record and then attaches its vector, in a single unit of work.
func (w EmbeddingRecordWriterImpl) storeArtifact(ctx context.Context, projectID string, artifact domain.CodeArtifact) error {
	record := domain.EmbeddingRecord{
		ID:         uuid.New(),
		ProjectID:  projectID,
		FileName:   artifact.FileName,
		SourceCode: artifact.SourceCode,
		Summary:    artifact.Summary,
		CreatedAt:  w.timeProvider.Now(),
	}

	return w.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		id, err := uow.EmbeddingRecord().CreateRecord(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to create record: %w", err)
		}
		if err := uow.EmbeddingRecord().UpdateRecordEmbedding(ctx, id, artifact.Embedding); err != nil {
			return fmt.Errorf("failed to update record embedding: %w", err)
		}
		return nil
	})
}

// InitEmbeddingRecordWriter initializes the EmbeddingRecordWriter use case.
type InitEmbeddingRecordWriter struct {
	Uow            domain.UnitOfWork          `resolve:""`
	TimeProvider   domain.CurrentTimeProvider `resolve:""`
	Logger         *log.Logger                `resolve:""`
	MaxConcurrency int                        `config:"PERSIST_MAX_CONCURRENCY" default:"10"`
}

// Initialize registers the EmbeddingRecordWriter use case implementation.
func (i InitEmbeddingRecordWriter) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[EmbeddingRecordWriter](NewEmbeddingRecordWriterImpl(
		i.Uow, i.TimeProvider, i.MaxConcurrency, i.Logger,
	))
	return ctx, nil
}
