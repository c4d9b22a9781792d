package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// SearchCode answers a natural-language question with the project's most similar files.
type SearchCode interface {
	Execute(ctx context.Context, projectID, question string, limit int) ([]domain.CodeSearchResult, error)
}

// SearchCodeImpl is the implementation of the SearchCode use case.
type SearchCodeImpl struct {
	repo          domain.EmbeddingRecordRepository
	encoder       domain.SemanticEncoder
	model         string
	minSimilarity float64
}

// NewSearchCodeImpl creates a new instance of SearchCodeImpl.
func NewSearchCodeImpl(repo domain.EmbeddingRecordRepository, encoder domain.SemanticEncoder, model string, minSimilarity float64) SearchCodeImpl {
	return SearchCodeImpl{
		repo:          repo,
		encoder:       encoder,
		model:         model,
		minSimilarity: minSimilarity,
	}
}

// Execute vectorizes the question, loads the nearest records and keeps those whose cosine
// similarity is above the configured minimum, most similar first.
func (sc SearchCodeImpl) Execute(ctx context.Context, projectID, question string, limit int) ([]domain.CodeSearchResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(projectID) == "" {
		err := domain.NewValidationErr("project id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if domain.IsBlank(question) {
		err := domain.NewValidationErr("question cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultSearchLimit
	case limit > maxSearchLimit:
		err := domain.NewValidationErr(fmt.Sprintf("limit cannot be greater than %d", maxSearchLimit))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	vector, err := sc.encoder.VectorizeQuery(spanCtx, sc.model, question)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	RecordLLMTokensEmbedding(spanCtx, vector.TotalTokens)

	records, err := sc.repo.SearchNearest(spanCtx, domain.EmbeddingSearchParams{
		ProjectID: projectID,
		Embedding: vector.Vector,
		Limit:     limit,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	results := []domain.CodeSearchResult{}
	for _, r := range records {
		similarity, ok := vector.SimilarityTo(r.Embedding)
		if !ok || similarity <= sc.minSimilarity {
			continue
		}
		results = append(results, domain.CodeSearchResult{Record: r, Similarity: similarity})
	}

	return results, nil
}

// InitSearchCode initializes the SearchCode use case.
type InitSearchCode struct {
	Repo          domain.EmbeddingRecordRepository `resolve:""`
	Encoder       domain.SemanticEncoder           `resolve:""`
	Model         string                           `config:"LLM_EMBEDDING_MODEL"`
	MinSimilarity string                           `config:"SEARCH_MIN_SIMILARITY" default:"0.5"`
}

// Initialize registers the SearchCode use case implementation.
func (i InitSearchCode) Initialize(ctx context.Context) (context.Context, error) {
	minSimilarity, err := strconv.ParseFloat(i.MinSimilarity, 64)
	if err != nil {
		return ctx, fmt.Errorf("invalid SEARCH_MIN_SIMILARITY %q: %w", i.MinSimilarity, err)
	}
	depend.Register[SearchCode](NewSearchCodeImpl(i.Repo, i.Encoder, i.Model, minSimilarity))
	return ctx, nil
}
