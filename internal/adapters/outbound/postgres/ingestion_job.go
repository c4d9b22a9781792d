package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

var (
	ingestionJobFields = []string{
		"id",
		"project_id",
		"repository_url",
		"branch",
		"status",
		"total_documents",
		"indexed_documents",
		"skipped_documents",
		"failed_records",
		"last_error",
		"created_at",
		"updated_at",
	}
)

// IngestionJobRepository implements domain.IngestionJobRepository using PostgreSQL.
type IngestionJobRepository struct {
	sb squirrel.StatementBuilderType
}

// NewIngestionJobRepository creates a new instance of IngestionJobRepository.
func NewIngestionJobRepository(br squirrel.BaseRunner) IngestionJobRepository {
	return IngestionJobRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateJob inserts a new ingestion job.
func (r IngestionJobRepository) CreateJob(ctx context.Context, job domain.IngestionJob) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := r.sb.
		Insert("ingestion_jobs").
		Columns(ingestionJobFields...).
		Values(
			job.ID,
			job.ProjectID,
			job.RepositoryURL,
			job.Branch,
			string(job.Status),
			job.TotalDocuments,
			job.IndexedDocuments,
			job.SkippedDocuments,
			job.FailedRecords,
			job.LastError,
			job.CreatedAt,
			job.UpdatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// UpdateJob persists the status, counters and last error of a job.
func (r IngestionJobRepository) UpdateJob(ctx context.Context, job domain.IngestionJob) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := r.sb.
		Update("ingestion_jobs").
		Set("status", string(job.Status)).
		Set("total_documents", job.TotalDocuments).
		Set("indexed_documents", job.IndexedDocuments).
		Set("skipped_documents", job.SkippedDocuments).
		Set("failed_records", job.FailedRecords).
		Set("last_error", job.LastError).
		Set("updated_at", job.UpdatedAt).
		Where(squirrel.Eq{"id": job.ID}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if affected == 0 {
		err := domain.NewNotFoundErr(fmt.Sprintf("ingestion job %s not found", job.ID))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// GetJob retrieves a job by its ID.
func (r IngestionJobRepository) GetJob(ctx context.Context, id uuid.UUID) (domain.IngestionJob, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	job, err := scanIngestionJob(
		r.sb.
			Select(ingestionJobFields...).
			From("ingestion_jobs").
			Where(squirrel.Eq{"id": id}).
			QueryRowContext(spanCtx),
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.IngestionJob{}, false, nil
		}
		return domain.IngestionJob{}, false, err
	}
	return job, true, nil
}

// ListJobs returns the jobs of a project, newest first, optionally created at or after since.
func (r IngestionJobRepository) ListJobs(ctx context.Context, projectID string, since *time.Time) ([]domain.IngestionJob, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	qry := r.sb.
		Select(ingestionJobFields...).
		From("ingestion_jobs").
		Where(squirrel.Eq{"project_id": projectID})
	if since != nil {
		qry = qry.Where(squirrel.GtOrEq{"created_at": *since})
	}

	rows, err := qry.OrderBy("created_at DESC").QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	jobs, err := scanIngestionJobs(rows)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return jobs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIngestionJob(row rowScanner) (domain.IngestionJob, error) {
	var (
		job       domain.IngestionJob
		lastError sql.NullString
	)
	err := row.Scan(
		&job.ID,
		&job.ProjectID,
		&job.RepositoryURL,
		&job.Branch,
		&job.Status,
		&job.TotalDocuments,
		&job.IndexedDocuments,
		&job.SkippedDocuments,
		&job.FailedRecords,
		&lastError,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return domain.IngestionJob{}, err
	}
	if lastError.Valid {
		job.LastError = &lastError.String
	}
	return job, nil
}

func scanIngestionJobs(rows *sql.Rows) ([]domain.IngestionJob, error) {
	var jobs []domain.IngestionJob
	for rows.Next() {
		job, err := scanIngestionJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

// InitIngestionJobRepository is a Symbiont initializer for IngestionJobRepository.
type InitIngestionJobRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the IngestionJobRepository in the dependency container.
func (i InitIngestionJobRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.IngestionJobRepository](NewIngestionJobRepository(i.DB))
	return ctx, nil
}
