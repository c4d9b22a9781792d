package usecases

import (
	"context"
	"errors"
	"log"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// DocumentBatchProcessor runs the summarize and embed pipeline over a set of documents.
type DocumentBatchProcessor interface {
	// Process returns the artifacts of every document that was summarized and embedded, in input
	// order, plus the documents that were skipped. Per-document failures never fail the batch;
	// only a cancelled context does, in which case the partial report is returned with the error.
	Process(ctx context.Context, docs []domain.Document) (domain.IngestionReport, error)
}

// DocumentBatchProcessorImpl is the implementation of the DocumentBatchProcessor use case.
type DocumentBatchProcessorImpl struct {
	summarizer CodeSummarizer
	embedder   SummaryEmbedder
	workers    int
	logger     *log.Logger
}

// NewDocumentBatchProcessorImpl creates a new instance of DocumentBatchProcessorImpl.
// A workers value below 2 processes documents strictly one after another.
func NewDocumentBatchProcessorImpl(s CodeSummarizer, e SummaryEmbedder, workers int, logger *log.Logger) DocumentBatchProcessorImpl {
	if workers < 1 {
		workers = 1
	}
	return DocumentBatchProcessorImpl{
		summarizer: s,
		embedder:   e,
		workers:    workers,
		logger:     logger,
	}
}

// documentOutcome is the result of one document; exactly one of artifact or skipped is set.
type documentOutcome struct {
	artifact *domain.CodeArtifact
	skipped  *domain.SkippedDocument
}

// Process implements DocumentBatchProcessor.
func (p DocumentBatchProcessorImpl) Process(ctx context.Context, docs []domain.Document) (domain.IngestionReport, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(
		attribute.Int("documents", len(docs)),
		attribute.Int("workers", p.workers),
	)

	outcomes := make([]documentOutcome, len(docs))

	g := errgroup.Group{}
	g.SetLimit(p.workers)
	for i, doc := range docs {
		if spanCtx.Err() != nil {
			outcomes[i] = skippedOutcome(doc.Path, domain.SkipReason_CONTEXT_CANCELLED, spanCtx.Err())
			continue
		}
		g.Go(func() error {
			outcomes[i] = p.processDocument(spanCtx, doc)
			return nil
		})
	}
	_ = g.Wait()

	report := domain.IngestionReport{
		Total:     len(docs),
		Artifacts: []domain.CodeArtifact{},
	}
	for _, o := range outcomes {
		if o.artifact != nil {
			report.Artifacts = append(report.Artifacts, *o.artifact)
			continue
		}
		report.Skipped = append(report.Skipped, *o.skipped)
	}

	RecordIngestionReport(spanCtx, report)
	span.SetAttributes(
		attribute.Int("documents.indexed", report.Succeeded()),
		attribute.Int("documents.skipped", report.SkippedCount()),
	)

	if err := spanCtx.Err(); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return report, err
	}
	return report, nil
}

// processDocument summarizes and embeds one document.
func (p DocumentBatchProcessorImpl) processDocument(ctx context.Context, doc domain.Document) documentOutcome {
	summary, err := p.summarizer.Summarize(ctx, doc)
	if err != nil {
		reason := domain.SkipReason_SUMMARY_FAILED
		var emptyErr *domain.EmptyContentErr
		switch {
		case errors.As(err, &emptyErr):
			reason = domain.SkipReason_EMPTY_CONTENT
		case ctx.Err() != nil:
			reason = domain.SkipReason_CONTEXT_CANCELLED
		}
		p.logger.Printf("DocumentBatchProcessor: skipping %s (%s): %v", doc.Path, reason, err)
		return skippedOutcome(doc.Path, reason, err)
	}

	vector, err := p.embedder.Embed(ctx, summary.Summary)
	if err != nil {
		reason := domain.SkipReason_EMBEDDING_FAILED
		if ctx.Err() != nil {
			reason = domain.SkipReason_CONTEXT_CANCELLED
		}
		p.logger.Printf("DocumentBatchProcessor: skipping %s (%s): %v", doc.Path, reason, err)
		return skippedOutcome(doc.Path, reason, err)
	}

	return documentOutcome{
		artifact: &domain.CodeArtifact{
			FileName:   doc.Path,
			SourceCode: doc.Content,
			Summary:    summary.Summary,
			Embedding:  vector.Vector,
		},
	}
}

func skippedOutcome(path string, reason domain.SkipReason, err error) documentOutcome {
	return documentOutcome{
		skipped: &domain.SkippedDocument{Path: path, Reason: reason, Err: err},
	}
}

// InitDocumentBatchProcessor initializes the DocumentBatchProcessor use case.
type InitDocumentBatchProcessor struct {
	Summarizer CodeSummarizer  `resolve:""`
	Embedder   SummaryEmbedder `resolve:""`
	Logger     *log.Logger     `resolve:""`
	Workers    int             `config:"INGESTION_WORKERS" default:"1"`
}

// Initialize registers the DocumentBatchProcessor use case implementation.
func (i InitDocumentBatchProcessor) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DocumentBatchProcessor](NewDocumentBatchProcessorImpl(
		i.Summarizer, i.Embedder, i.Workers, i.Logger,
	))
	return ctx, nil
}
