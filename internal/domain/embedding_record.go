package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CodeArtifact is a document that produced both a summary and an embedding.
type CodeArtifact struct {
	FileName   string
	SourceCode string
	Summary    string
	Embedding  []float64
}

// EmbeddingRecord is the persisted form of a CodeArtifact, owned by a project.
// Records are never mutated after the embedding is attached.
type EmbeddingRecord struct {
	ID         uuid.UUID
	ProjectID  string
	FileName   string
	SourceCode string
	Summary    string
	Embedding  []float64
	CreatedAt  time.Time
}

// CodeSearchResult is an EmbeddingRecord matched by a similarity search.
type CodeSearchResult struct {
	Record     EmbeddingRecord
	Similarity float64
}

// EmbeddingSearchParams holds the parameters of a similarity search.
type EmbeddingSearchParams struct {
	ProjectID string
	Embedding []float64
	Limit     int
}

// EmbeddingRecordRepository defines the persistence operations for embedding records.
type EmbeddingRecordRepository interface {
	// CreateRecord inserts the record without its embedding and returns its identifier.
	CreateRecord(ctx context.Context, record EmbeddingRecord) (uuid.UUID, error)
	// UpdateRecordEmbedding sets the vector column of the record identified by id.
	UpdateRecordEmbedding(ctx context.Context, id uuid.UUID, embedding []float64) error
	// ListByProject returns every record of a project ordered by file name.
	ListByProject(ctx context.Context, projectID string) ([]EmbeddingRecord, error)
	// SearchNearest returns up to params.Limit records of the project ordered by cosine
	// distance to params.Embedding. Records of a different dimension are ignored.
	SearchNearest(ctx context.Context, params EmbeddingSearchParams) ([]EmbeddingRecord, error)
}
