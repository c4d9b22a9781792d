package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// EstimateCost counts the files of a repository so the caller can decide whether to ingest it.
type EstimateCost interface {
	Execute(ctx context.Context, repositoryURL, credential string) (domain.CostEstimate, error)
}

// EstimateCostImpl is the implementation of the EstimateCost use case.
type EstimateCostImpl struct {
	counter domain.RepositoryFileCounter
}

// NewEstimateCostImpl creates a new instance of EstimateCostImpl.
func NewEstimateCostImpl(counter domain.RepositoryFileCounter) EstimateCostImpl {
	return EstimateCostImpl{counter: counter}
}

// Execute parses the repository URL and counts its files from the root.
// Rate-limit and fetch errors are returned unchanged so the caller can show the reason.
func (ec EstimateCostImpl) Execute(ctx context.Context, repositoryURL, credential string) (domain.CostEstimate, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	ref, err := domain.ParseRepositoryURL(repositoryURL)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CostEstimate{}, err
	}
	span.SetAttributes(attribute.String("repository", ref.String()))

	count, err := ec.counter.CountFiles(spanCtx, ref, "", credential)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CostEstimate{}, err
	}

	return domain.CostEstimate{Repository: ref, FileCount: count}, nil
}

// InitEstimateCost initializes the EstimateCost use case.
type InitEstimateCost struct {
	Counter domain.RepositoryFileCounter `resolve:""`
}

// Initialize registers the EstimateCost use case implementation.
func (i InitEstimateCost) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[EstimateCost](NewEstimateCostImpl(i.Counter))
	return ctx, nil
}
