package http

import (
	"errors"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/retry"
)

func toError(err error) ErrorResp {
	var (
		errResp       ErrorResp
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
		rateLimitErr  *domain.RateLimitedErr
		fetchErr      *domain.ContentFetchErr
		exhaustedErr  *retry.ExhaustedErr
	)
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	case errors.As(err, &rateLimitErr):
		// surfaced verbatim, it tells the user when the quota resets
		errResp.Error.Code = RATELIMITED
		errResp.Error.Message = rateLimitErr.Error()
	case errors.As(err, &fetchErr):
		errResp.Error.Code = UPSTREAMERROR
		errResp.Error.Message = fetchErr.Error()
	case errors.As(err, &exhaustedErr):
		errResp.Error.Code = UPSTREAMERROR
		errResp.Error.Message = fmt.Sprintf("language model unavailable after %d attempts", exhaustedErr.Attempts)
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toCostEstimate(rawURL string, e domain.CostEstimate) CostEstimate {
	return CostEstimate{
		RepositoryURL: rawURL,
		Owner:         e.Repository.Owner,
		Name:          e.Repository.Name,
		FileCount:     e.FileCount,
	}
}

func toIngestionJob(j domain.IngestionJob) IngestionJob {
	return IngestionJob{
		ID:               j.ID,
		ProjectID:        j.ProjectID,
		RepositoryURL:    j.RepositoryURL,
		Branch:           j.Branch,
		Status:           string(j.Status),
		TotalDocuments:   j.TotalDocuments,
		IndexedDocuments: j.IndexedDocuments,
		SkippedDocuments: j.SkippedDocuments,
		FailedRecords:    j.FailedRecords,
		LastError:        j.LastError,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func toEmbeddingRecord(r domain.EmbeddingRecord) EmbeddingRecord {
	return EmbeddingRecord{
		ID:                  r.ID,
		ProjectID:           r.ProjectID,
		FileName:            r.FileName,
		Summary:             r.Summary,
		SourceCode:          r.SourceCode,
		EmbeddingDimensions: len(r.Embedding),
		CreatedAt:           r.CreatedAt,
	}
}

func toSearchResult(r domain.CodeSearchResult) SearchResult {
	return SearchResult{
		RecordID:   r.Record.ID,
		FileName:   r.Record.FileName,
		Summary:    r.Record.Summary,
		Similarity: r.Similarity,
	}
}

func toCommitSummary(s domain.CommitSummary) CommitSummary {
	return CommitSummary{
		Summary:      s.Summary,
		ChangedFiles: s.ChangedFiles,
		Truncated:    s.Truncated,
	}
}
