package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// SummarizeCommitDiff describes the changes of the git diff in the request body.
func (api RepoIndexerServer) SummarizeCommitDiff(w http.ResponseWriter, r *http.Request) {
	var req CommitSummaryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	summary, err := api.SummarizeCommitDiffUseCase.Execute(r.Context(), req.Diff)
	if err != nil {
		api.Logger.Printf("RepoIndexerServer: error summarizing commit diff: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toCommitSummary(summary))
}
