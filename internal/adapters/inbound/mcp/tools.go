package mcp

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/retry"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type estimateCostInput struct {
	RepositoryURL string `json:"repository_url" jsonschema:"GitHub repository URL, e.g. https://github.com/owner/name"`
	GithubToken   string `json:"github_token,omitempty" jsonschema:"optional GitHub token used for this call only"`
}

type estimateCostOutput struct {
	Owner     string `json:"owner"`
	Name      string `json:"name"`
	FileCount int    `json:"file_count" jsonschema:"number of files that would be summarized and embedded"`
}

type requestIngestionInput struct {
	ProjectID     string `json:"project_id" jsonschema:"project that will own the embedding records"`
	RepositoryURL string `json:"repository_url" jsonschema:"GitHub repository URL, e.g. https://github.com/owner/name"`
	GithubToken   string `json:"github_token,omitempty" jsonschema:"optional GitHub token used for this request only, never stored"`
}

type requestIngestionOutput struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
	Branch string `json:"branch"`
}

type searchCodeInput struct {
	ProjectID string `json:"project_id" jsonschema:"project whose embedding records are searched"`
	Question  string `json:"question" jsonschema:"natural-language question about the code"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum number of files to return (default 10)"`
}

type searchCodeMatch struct {
	FileName   string  `json:"file_name"`
	Summary    string  `json:"summary"`
	Similarity float64 `json:"similarity"`
}

type searchCodeOutput struct {
	Results []searchCodeMatch `json:"results"`
}

type summarizeCommitDiffInput struct {
	Diff string `json:"diff" jsonschema:"unified diff as printed by git diff or git show"`
}

type summarizeCommitDiffOutput struct {
	Summary      string   `json:"summary" jsonschema:"bullet list describing the changes"`
	ChangedFiles []string `json:"changed_files"`
	Truncated    bool     `json:"truncated" jsonschema:"true when the diff was too long and only its beginning was summarized"`
}

func (s RepoIndexerMCPServer) registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "estimate_repository_cost",
		Description: "Count the files of a GitHub repository to estimate the cost of indexing it. Nothing is downloaded.",
	}, s.estimateCost)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "request_repository_ingestion",
		Description: "Start indexing a GitHub repository into a project. Returns immediately with a job id; the summaries and embeddings are produced in the background.",
	}, s.requestIngestion)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_code",
		Description: "Find the files of an indexed project whose summaries best answer a question.",
	}, s.searchCode)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize_commit_diff",
		Description: "Describe the changes of a git diff as a short bullet list, one line per change.",
	}, s.summarizeCommitDiff)
}

func (s RepoIndexerMCPServer) estimateCost(ctx context.Context, _ *mcp.CallToolRequest, in estimateCostInput) (*mcp.CallToolResult, estimateCostOutput, error) {
	estimate, err := s.EstimateCostUseCase.Execute(ctx, in.RepositoryURL, in.GithubToken)
	if err != nil {
		s.Logger.Printf("RepoIndexerMCPServer: estimate_repository_cost failed: %v", err)
		return nil, estimateCostOutput{}, toolErr(err)
	}
	return nil, estimateCostOutput{
		Owner:     estimate.Repository.Owner,
		Name:      estimate.Repository.Name,
		FileCount: estimate.FileCount,
	}, nil
}

func (s RepoIndexerMCPServer) requestIngestion(ctx context.Context, _ *mcp.CallToolRequest, in requestIngestionInput) (*mcp.CallToolResult, requestIngestionOutput, error) {
	job, err := s.RequestIngestionUseCase.Execute(ctx, in.ProjectID, in.RepositoryURL, in.GithubToken)
	if err != nil {
		s.Logger.Printf("RepoIndexerMCPServer: request_repository_ingestion failed: %v", err)
		return nil, requestIngestionOutput{}, toolErr(err)
	}
	return nil, requestIngestionOutput{
		JobID:  job.ID.String(),
		Status: string(job.Status),
		Branch: job.Branch,
	}, nil
}

func (s RepoIndexerMCPServer) searchCode(ctx context.Context, _ *mcp.CallToolRequest, in searchCodeInput) (*mcp.CallToolResult, searchCodeOutput, error) {
	results, err := s.SearchCodeUseCase.Execute(ctx, in.ProjectID, in.Question, in.Limit)
	if err != nil {
		s.Logger.Printf("RepoIndexerMCPServer: search_code failed: %v", err)
		return nil, searchCodeOutput{}, toolErr(err)
	}

	out := searchCodeOutput{Results: []searchCodeMatch{}}
	for _, r := range results {
		out.Results = append(out.Results, searchCodeMatch{
			FileName:   r.Record.FileName,
			Summary:    r.Record.Summary,
			Similarity: r.Similarity,
		})
	}
	return nil, out, nil
}

func (s RepoIndexerMCPServer) summarizeCommitDiff(ctx context.Context, _ *mcp.CallToolRequest, in summarizeCommitDiffInput) (*mcp.CallToolResult, summarizeCommitDiffOutput, error) {
	summary, err := s.SummarizeCommitDiffUseCase.Execute(ctx, in.Diff)
	if err != nil {
		s.Logger.Printf("RepoIndexerMCPServer: summarize_commit_diff failed: %v", err)
		return nil, summarizeCommitDiffOutput{}, toolErr(err)
	}
	return nil, summarizeCommitDiffOutput{
		Summary:      summary.Summary,
		ChangedFiles: summary.ChangedFiles,
		Truncated:    summary.Truncated,
	}, nil
}

// toolErr keeps the message of errors the caller can act on and hides the rest.
func toolErr(err error) error {
	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
		rateLimitErr  *domain.RateLimitedErr
		fetchErr      *domain.ContentFetchErr
		exhaustedErr  *retry.ExhaustedErr
	)
	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &notFoundErr),
		errors.As(err, &rateLimitErr),
		errors.As(err, &fetchErr),
		errors.As(err, &exhaustedErr):
		return err
	default:
		return errors.New("internal error")
	}
}
