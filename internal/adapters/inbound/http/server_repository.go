package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// EstimateCost counts the files of a repository without downloading them.
func (api RepoIndexerServer) EstimateCost(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRepositoryReq(w, r)
	if !ok {
		return
	}

	estimate, err := api.EstimateCostUseCase.Execute(r.Context(), req.RepositoryURL, req.GithubToken)
	if err != nil {
		api.Logger.Printf("RepoIndexerServer: error estimating cost of %s: %v", req.RepositoryURL, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toCostEstimate(req.RepositoryURL, estimate))
}

// RequestIngestion schedules the ingestion of a repository into the project and returns the PENDING job.
func (api RepoIndexerServer) RequestIngestion(w http.ResponseWriter, r *http.Request, projectID string) {
	req, ok := decodeRepositoryReq(w, r)
	if !ok {
		return
	}

	job, err := api.RequestIngestionUseCase.Execute(r.Context(), projectID, req.RepositoryURL, req.GithubToken)
	if err != nil {
		api.Logger.Printf("RepoIndexerServer: error requesting ingestion of %s: %v", req.RepositoryURL, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusAccepted, toIngestionJob(job))
}

// ListIngestionJobs lists the jobs of a project, optionally filtered by the since query parameter.
func (api RepoIndexerServer) ListIngestionJobs(w http.ResponseWriter, r *http.Request, projectID string, params ListIngestionJobsParams) {
	var since string
	if params.Since != nil {
		since = *params.Since
	}

	jobs, err := api.ListIngestionJobsUseCase.Query(r.Context(), projectID, since)
	if err != nil {
		api.Logger.Printf("RepoIndexerServer: error listing ingestion jobs: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListIngestionJobsResp{Items: []IngestionJob{}}
	for _, j := range jobs {
		resp.Items = append(resp.Items, toIngestionJob(j))
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetIngestionJob returns a single job.
func (api RepoIndexerServer) GetIngestionJob(w http.ResponseWriter, r *http.Request, jobID openapi_types.UUID) {
	job, err := api.GetIngestionJobUseCase.Query(r.Context(), jobID)
	if err != nil {
		api.Logger.Printf("RepoIndexerServer: error getting ingestion job: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toIngestionJob(job))
}

func decodeRepositoryReq(w http.ResponseWriter, r *http.Request) (RepositoryReq, bool) {
	var req RepositoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return RepositoryReq{}, false
	}
	return req, true
}
