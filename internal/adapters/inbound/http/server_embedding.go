package http

import (
	"net/http"
)

// ListEmbeddingRecords lists the stored records of a project without their vectors.
func (api RepoIndexerServer) ListEmbeddingRecords(w http.ResponseWriter, r *http.Request, projectID string) {
	records, err := api.ListEmbeddingRecordsUseCase.Query(r.Context(), projectID)
	if err != nil {
		api.Logger.Printf("RepoIndexerServer: error listing embedding records: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListEmbeddingRecordsResp{Items: []EmbeddingRecord{}}
	for _, rec := range records {
		resp.Items = append(resp.Items, toEmbeddingRecord(rec))
	}
	respondJSON(w, http.StatusOK, resp)
}

// SearchCode answers the q query parameter with the project's most similar files.
func (api RepoIndexerServer) SearchCode(w http.ResponseWriter, r *http.Request, projectID string, params SearchCodeParams) {
	var question string
	if params.Q != nil {
		question = *params.Q
	}
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	results, err := api.SearchCodeUseCase.Execute(r.Context(), projectID, question, limit)
	if err != nil {
		api.Logger.Printf("RepoIndexerServer: error searching code: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := SearchCodeResp{Items: []SearchResult{}}
	for _, res := range results {
		resp.Items = append(resp.Items, toSearchResult(res))
	}
	respondJSON(w, http.StatusOK, resp)
}
