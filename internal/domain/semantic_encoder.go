package domain

import (
	"context"
	"math"
)

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// SimilarityTo returns the cosine similarity between the vector and a stored embedding.
// ok is false when the embeddings cannot be compared: different dimensions or a zero vector.
func (v EmbeddingVector) SimilarityTo(embedding []float64) (similarity float64, ok bool) {
	if len(v.Vector) == 0 || len(v.Vector) != len(embedding) {
		return 0, false
	}

	var dot, normV, normE float64
	for i, x := range v.Vector {
		dot += x * embedding[i]
		normV += x * x
		normE += embedding[i] * embedding[i]
	}
	if normV == 0 || normE == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normV) * math.Sqrt(normE)), true
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
type SemanticEncoder interface {
	// VectorizeSummary generates the semantic vector stored alongside a file summary.
	VectorizeSummary(ctx context.Context, model, summary string) (EmbeddingVector, error)
	// VectorizeQuery generates a semantic vector for one search question.
	VectorizeQuery(ctx context.Context, model, query string) (EmbeddingVector, error)
}
