package http

import (
	"time"

	"github.com/google/uuid"
)

// ErrorCode is the machine readable code of an API error.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	RATELIMITED   ErrorCode = "RATE_LIMITED"
	UPSTREAMERROR ErrorCode = "UPSTREAM_ERROR"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// Error is the body of an API error.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps an Error.
type ErrorResp struct {
	Error Error `json:"error"`
}

// RepositoryReq is the body of the cost estimate and ingestion requests.
// GithubToken is optional and only used for the request it comes with.
type RepositoryReq struct {
	RepositoryURL string `json:"repository_url"`
	GithubToken   string `json:"github_token,omitempty"`
}

// CommitSummaryReq is the body of the commit summary request.
type CommitSummaryReq struct {
	Diff string `json:"diff"`
}

// CommitSummary describes the changes of a git diff.
type CommitSummary struct {
	Summary      string   `json:"summary"`
	ChangedFiles []string `json:"changed_files"`
	Truncated    bool     `json:"truncated"`
}

// CostEstimate is the advisory size of a repository.
type CostEstimate struct {
	RepositoryURL string `json:"repository_url"`
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	FileCount     int    `json:"file_count"`
}

// IngestionJob is the API representation of an ingestion job.
type IngestionJob struct {
	ID               uuid.UUID `json:"id"`
	ProjectID        string    `json:"project_id"`
	RepositoryURL    string    `json:"repository_url"`
	Branch           string    `json:"branch"`
	Status           string    `json:"status"`
	TotalDocuments   int       `json:"total_documents"`
	IndexedDocuments int       `json:"indexed_documents"`
	SkippedDocuments int       `json:"skipped_documents"`
	FailedRecords    int       `json:"failed_records"`
	LastError        *string   `json:"last_error,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ListIngestionJobsParams are the query parameters of ListIngestionJobs.
// Since accepts free-form dates such as "2026-01-02" or "yesterday".
type ListIngestionJobsParams struct {
	Since *string
}

// SearchCodeParams are the query parameters of SearchCode.
type SearchCodeParams struct {
	Q     *string
	Limit *int
}

// ListIngestionJobsResp lists the jobs of a project.
type ListIngestionJobsResp struct {
	Items []IngestionJob `json:"items"`
}

// EmbeddingRecord is the API representation of a stored record. Vectors are not exposed.
type EmbeddingRecord struct {
	ID                  uuid.UUID `json:"id"`
	ProjectID           string    `json:"project_id"`
	FileName            string    `json:"file_name"`
	Summary             string    `json:"summary"`
	SourceCode          string    `json:"source_code"`
	EmbeddingDimensions int       `json:"embedding_dimensions"`
	CreatedAt           time.Time `json:"created_at"`
}

// ListEmbeddingRecordsResp lists the records of a project.
type ListEmbeddingRecordsResp struct {
	Items []EmbeddingRecord `json:"items"`
}

// SearchResult is a record matched by a code search.
type SearchResult struct {
	RecordID   uuid.UUID `json:"record_id"`
	FileName   string    `json:"file_name"`
	Summary    string    `json:"summary"`
	Similarity float64   `json:"similarity"`
}

// SearchCodeResp lists the matches of a code search, most similar first.
type SearchCodeResp struct {
	Items []SearchResult `json:"items"`
}
