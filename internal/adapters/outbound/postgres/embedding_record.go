package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	embeddingRecordFields = []string{
		"id",
		"project_id",
		"file_name",
		"source_code",
		"summary",
		"summary_embedding",
		"created_at",
	}
)

// EmbeddingRecordRepository implements domain.EmbeddingRecordRepository using PostgreSQL and pgvector.
type EmbeddingRecordRepository struct {
	sb squirrel.StatementBuilderType
}

// NewEmbeddingRecordRepository creates a new instance of EmbeddingRecordRepository.
func NewEmbeddingRecordRepository(br squirrel.BaseRunner) EmbeddingRecordRepository {
	return EmbeddingRecordRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateRecord inserts the record without its vector and returns the stored id.
func (r EmbeddingRecordRepository) CreateRecord(ctx context.Context, record domain.EmbeddingRecord) (uuid.UUID, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project_id", record.ProjectID),
		attribute.String("file_name", record.FileName),
	))
	defer span.End()

	var id uuid.UUID
	err := r.sb.
		Insert("source_code_embeddings").
		Columns(
			"id",
			"project_id",
			"file_name",
			"source_code",
			"summary",
			"created_at",
		).
		Values(
			record.ID,
			record.ProjectID,
			record.FileName,
			record.SourceCode,
			record.Summary,
			record.CreatedAt,
		).
		Suffix("RETURNING id").
		QueryRowContext(spanCtx).
		Scan(&id)

	if telemetry.RecordErrorAndStatus(span, err) {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateRecordEmbedding sets the summary_embedding column of the record.
func (r EmbeddingRecordRepository) UpdateRecordEmbedding(ctx context.Context, id uuid.UUID, embedding []float64) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("dimensions", len(embedding)),
	))
	defer span.End()

	res, err := r.sb.
		Update("source_code_embeddings").
		Set("summary_embedding", pgvector.NewVector(toFloat32(embedding))).
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if affected == 0 {
		err := domain.NewNotFoundErr(fmt.Sprintf("embedding record %s not found", id))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// ListByProject returns every record of the project ordered by file name.
func (r EmbeddingRecordRepository) ListByProject(ctx context.Context, projectID string) ([]domain.EmbeddingRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project_id", projectID),
	))
	defer span.End()

	rows, err := r.sb.
		Select(embeddingRecordFields...).
		From("source_code_embeddings").
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("file_name ASC", "created_at ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	records, err := scanEmbeddingRecords(rows)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return records, nil
}

// SearchNearest returns the project's records closest to the query vector by cosine distance.
func (r EmbeddingRecordRepository) SearchNearest(ctx context.Context, params domain.EmbeddingSearchParams) ([]domain.EmbeddingRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project_id", params.ProjectID),
		attribute.Int("limit", params.Limit),
	))
	defer span.End()

	if len(params.Embedding) == 0 {
		err := domain.NewValidationErr("embedding must be provided for similarity search")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if params.Limit <= 0 {
		err := domain.NewValidationErr("limit must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	query := pgvector.NewVector(toFloat32(params.Embedding))
	rows, err := r.sb.
		Select(embeddingRecordFields...).
		From("source_code_embeddings").
		Where(squirrel.Eq{"project_id": params.ProjectID}).
		Where("summary_embedding IS NOT NULL").
		Where(squirrel.Eq{"vector_dims(summary_embedding)": len(params.Embedding)}).
		OrderByClause("summary_embedding <=> ?", query).
		Limit(uint64(params.Limit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	records, err := scanEmbeddingRecords(rows)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return records, nil
}

func scanEmbeddingRecords(rows *sql.Rows) ([]domain.EmbeddingRecord, error) {
	var records []domain.EmbeddingRecord
	for rows.Next() {
		var (
			record    domain.EmbeddingRecord
			embedding nullVector
		)
		err := rows.Scan(
			&record.ID,
			&record.ProjectID,
			&record.FileName,
			&record.SourceCode,
			&record.Summary,
			&embedding,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		record.Embedding = embedding.Float64s()
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// nullVector scans a nullable vector column; a NULL leaves it empty.
type nullVector struct {
	vector pgvector.Vector
	valid  bool
}

// Scan implements sql.Scanner.
func (v *nullVector) Scan(src any) error {
	if src == nil {
		v.valid = false
		return nil
	}
	v.valid = true
	return v.vector.Scan(src)
}

// Float64s returns the vector as float64 values, or nil for NULL.
func (v nullVector) Float64s() []float64 {
	if !v.valid {
		return nil
	}
	f32 := v.vector.Slice()
	out := make([]float64, len(f32))
	for i, f := range f32 {
		out[i] = float64(f)
	}
	return out
}

func toFloat32(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}

// InitEmbeddingRecordRepository is a Symbiont initializer for EmbeddingRecordRepository.
type InitEmbeddingRecordRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the EmbeddingRecordRepository in the dependency container.
func (i InitEmbeddingRecordRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EmbeddingRecordRepository](NewEmbeddingRecordRepository(i.DB))
	return ctx, nil
}
