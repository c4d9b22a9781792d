package usecases

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/retry"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// SummaryEmbedder converts a file summary into a semantic vector.
type SummaryEmbedder interface {
	Embed(ctx context.Context, summary string) (domain.EmbeddingVector, error)
}

// SummaryEmbedderImpl is the implementation of the SummaryEmbedder use case.
type SummaryEmbedderImpl struct {
	encoder domain.SemanticEncoder
	model   string
	policy  retry.Policy
	logger  *log.Logger
}

// NewSummaryEmbedderImpl creates a new instance of SummaryEmbedderImpl.
func NewSummaryEmbedderImpl(e domain.SemanticEncoder, model string, policy retry.Policy, logger *log.Logger) SummaryEmbedderImpl {
	return SummaryEmbedderImpl{
		encoder: e,
		model:   model,
		policy:  policy,
		logger:  logger,
	}
}

// Embed vectorizes the summary with the embedding model, retrying transient failures.
func (se SummaryEmbedderImpl) Embed(ctx context.Context, summary string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	vector, err := retry.Do(spanCtx, se.policy, func(ctx context.Context) (domain.EmbeddingVector, error) {
		return se.encoder.VectorizeSummary(ctx, se.model, summary)
	},
		retry.WithLogger(se.logger),
		retry.WithOperationName("SummaryEmbedder"),
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}

	RecordLLMTokensEmbedding(spanCtx, vector.TotalTokens)
	return vector, nil
}

// InitSummaryEmbedder initializes the SummaryEmbedder use case.
type InitSummaryEmbedder struct {
	Encoder     domain.SemanticEncoder `resolve:""`
	Logger      *log.Logger            `resolve:""`
	Model       string                 `config:"LLM_EMBEDDING_MODEL"`
	MaxAttempts int                    `config:"SUMMARY_MAX_ATTEMPTS" default:"3"`
	BaseDelay   time.Duration          `config:"SUMMARY_RETRY_BASE_DELAY" default:"10s"`
}

// Initialize registers the SummaryEmbedder use case implementation.
func (ise InitSummaryEmbedder) Initialize(ctx context.Context) (context.Context, error) {
	policy := retry.Policy{MaxAttempts: ise.MaxAttempts, BaseDelay: ise.BaseDelay}
	if policy.MaxAttempts < 1 {
		return ctx, retry.ErrInvalidPolicy
	}
	depend.Register[SummaryEmbedder](NewSummaryEmbedderImpl(ise.Encoder, ise.Model, policy, ise.Logger))
	return ctx, nil
}
