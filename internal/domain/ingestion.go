package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IngestionJobStatus represents the lifecycle status of an ingestion job.
type IngestionJobStatus string

const (
	IngestionJobStatus_PENDING   IngestionJobStatus = "PENDING"
	IngestionJobStatus_RUNNING   IngestionJobStatus = "RUNNING"
	IngestionJobStatus_COMPLETED IngestionJobStatus = "COMPLETED"
	IngestionJobStatus_FAILED    IngestionJobStatus = "FAILED"
)

// IngestionJob tracks one fire-and-forget ingestion of a repository into a project.
type IngestionJob struct {
	ID               uuid.UUID
	ProjectID        string
	RepositoryURL    string
	Branch           string
	Status           IngestionJobStatus
	TotalDocuments   int
	IndexedDocuments int
	SkippedDocuments int
	FailedRecords    int
	LastError        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Start moves the job to RUNNING.
func (j *IngestionJob) Start(now time.Time) {
	j.Status = IngestionJobStatus_RUNNING
	j.LastError = nil
	j.UpdatedAt = now
}

// Complete moves the job to COMPLETED with the outcome of the run.
func (j *IngestionJob) Complete(report IngestionReport, persisted PersistReport, now time.Time) {
	j.Status = IngestionJobStatus_COMPLETED
	j.TotalDocuments = report.Total
	j.IndexedDocuments = persisted.Stored
	j.SkippedDocuments = report.SkippedCount()
	j.FailedRecords = len(persisted.Failed)
	j.UpdatedAt = now
}

// Fail moves the job to FAILED, keeping the repository-level error message.
func (j *IngestionJob) Fail(err error, now time.Time) {
	msg := err.Error()
	j.Status = IngestionJobStatus_FAILED
	j.LastError = &msg
	j.UpdatedAt = now
}

// Finished reports whether the job reached a final status.
func (j IngestionJob) Finished() bool {
	return j.Status == IngestionJobStatus_COMPLETED || j.Status == IngestionJobStatus_FAILED
}

// IngestionJobRepository defines the persistence operations for ingestion jobs.
type IngestionJobRepository interface {
	// CreateJob persists a new ingestion job.
	CreateJob(ctx context.Context, job IngestionJob) error
	// UpdateJob persists the status and counters of an existing job.
	UpdateJob(ctx context.Context, job IngestionJob) error
	// GetJob returns the job by id and whether it was found.
	GetJob(ctx context.Context, id uuid.UUID) (IngestionJob, bool, error)
	// ListJobs returns the jobs of a project created at or after since, newest first.
	ListJobs(ctx context.Context, projectID string, since *time.Time) ([]IngestionJob, error)
}

// SkipReason classifies why a document is missing from the ingestion output.
type SkipReason string

const (
	SkipReason_EMPTY_CONTENT     SkipReason = "empty_content"
	SkipReason_SUMMARY_FAILED    SkipReason = "summary_failed"
	SkipReason_EMBEDDING_FAILED  SkipReason = "embedding_failed"
	SkipReason_CONTEXT_CANCELLED SkipReason = "context_cancelled"
)

// SkippedDocument describes a document that failed summarization or embedding.
type SkippedDocument struct {
	Path   string
	Reason SkipReason
	Err    error
}

// IngestionReport is the outcome of processing a batch of documents.
// Artifacts keep the order of the input documents.
type IngestionReport struct {
	Total     int
	Artifacts []CodeArtifact
	Skipped   []SkippedDocument
}

// Succeeded returns the number of documents that produced an artifact.
func (r IngestionReport) Succeeded() int {
	return len(r.Artifacts)
}

// SkippedCount returns the number of documents that were skipped.
func (r IngestionReport) SkippedCount() int {
	return len(r.Skipped)
}

// SkippedReasons returns the number of skipped documents per reason.
func (r IngestionReport) SkippedReasons() map[SkipReason]int {
	reasons := make(map[SkipReason]int, len(r.Skipped))
	for _, s := range r.Skipped {
		reasons[s.Reason]++
	}
	return reasons
}

// FailedRecord is an artifact the persistence writer could not store.
type FailedRecord struct {
	FileName string
	Err      error
}

// PersistReport is the outcome of storing a set of artifacts.
type PersistReport struct {
	Stored int
	Failed []FailedRecord
}
