//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/app"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

const (
	apiURL        = "http://localhost:8080/api/v1"
	mcpURL        = "http://localhost:8090/mcp"
	repositoryURL = "https://github.com/octocat/Hello-World"
	projectID     = "integration"
)

// completedJobs receives ingestion jobs that reached a final status.
var completedJobs usecases.IndexingCompletedChannel

func TestMain(m *testing.M) {
	repoIndexerApp := app.NewRepoIndexerApp(
		&initEnvVars{
			envVars: map[string]string{
				"VAULT_ADDR":             "http://localhost:8200",
				"VAULT_TOKEN":            "root-token",
				"VAULT_MOUNT_PATH":       "secret",
				"VAULT_SECRET_PATH":      "repoindexer",
				"DB_HOST":                "localhost",
				"DB_PORT":                "5432",
				"DB_NAME":                "repoindexerdb",
				"PUBSUB_EMULATOR_HOST":   "localhost:8681",
				"PUBSUB_PROJECT_ID":      "local-dev",
				"PUBSUB_SUBSCRIPTION_ID": "ingestion-requests-sub",
				"FETCH_OUTBOX_INTERVAL":  "200ms",
				"LLM_MODEL_HOST":         "http://localhost:12434",
				"LLM_SUMMARY_MODEL":      "ai/gpt-oss",
				"LLM_EMBEDDING_MODEL":    "ai/qwen3-embedding",
				"SEARCH_MIN_SIMILARITY":  "0",
			},
		},
		&InitDockerCompose{},
	)

	completedJobs = make(usecases.IndexingCompletedChannel, 5)
	depend.Register(completedJobs)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := repoIndexerApp.RunAsync(cancelCtx)

	err := repoIndexerApp.WaitForReadiness(cancelCtx, 10*time.Minute)
	if err != nil {
		cancel()
		log.Fatalf("RepoIndexer app failed to become ready: %v", err)
	}

	code := m.Run()

	cancel()

	select {
	case <-time.After(1 * time.Minute):
		log.Fatalf("RepoIndexer app did not shut down in time")
	case err = <-shutdownCh:
		if err != nil {
			log.Fatalf("RepoIndexer app shutdown with error: %v", err)
		} else {
			log.Printf("RepoIndexer app shut down gracefully")
		}
	}

	os.Exit(code)
}

func TestRepoIndexer_RestAPI(t *testing.T) {
	t.Run("estimate-cost", func(t *testing.T) {
		var estimate map[string]any
		status := call(t, http.MethodPost, apiURL+"/cost-estimates", map[string]string{"repository_url": repositoryURL}, &estimate)
		require.Equal(t, http.StatusOK, status)
		require.Greater(t, estimate["file_count"], float64(0), "expected at least one file")
	})

	var jobID string
	t.Run("request-ingestion", func(t *testing.T) {
		var job map[string]any
		status := call(t, http.MethodPost, apiURL+"/projects/"+projectID+"/ingestions", map[string]string{"repository_url": repositoryURL}, &job)
		require.Equal(t, http.StatusAccepted, status)
		require.Equal(t, "PENDING", job["status"])
		jobID = job["id"].(string)
	})

	t.Run("wait-for-ingestion", func(t *testing.T) {
		select {
		case job := <-completedJobs:
			require.Equal(t, jobID, job.ID.String())
			require.Equal(t, domain.IngestionJobStatus_COMPLETED, job.Status, "job failed: %v", job.LastError)
		case <-time.After(10 * time.Minute):
			t.Fatalf("timed out waiting for ingestion job %s", jobID)
		}

		var job map[string]any
		status := call(t, http.MethodGet, apiURL+"/ingestions/"+jobID, nil, &job)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "COMPLETED", job["status"])
	})

	t.Run("list-embeddings", func(t *testing.T) {
		var resp struct {
			Items []map[string]any `json:"items"`
		}
		status := call(t, http.MethodGet, apiURL+"/projects/"+projectID+"/embeddings", nil, &resp)
		require.Equal(t, http.StatusOK, status)
		require.NotEmpty(t, resp.Items)
	})

	t.Run("search-code", func(t *testing.T) {
		var resp struct {
			Items []map[string]any `json:"items"`
		}
		query := url.Values{"q": {"what does this repository contain?"}, "limit": {"3"}}
		status := call(t, http.MethodGet, apiURL+"/projects/"+projectID+"/search?"+query.Encode(), nil, &resp)
		require.Equal(t, http.StatusOK, status)
		require.NotEmpty(t, resp.Items)
	})

	t.Run("summarize-commit-diff", func(t *testing.T) {
		diff := "diff --git a/README.md b/README.md\n--- a/README.md\n+++ b/README.md\n@@ -1 +1,2 @@\n # Demo\n+Run `make up` to start the stack.\n"
		var summary map[string]any
		status := call(t, http.MethodPost, apiURL+"/commit-summaries", map[string]string{"diff": diff}, &summary)
		require.Equal(t, http.StatusOK, status)
		require.NotEmpty(t, summary["summary"])
		require.Equal(t, []any{"README.md"}, summary["changed_files"])
	})

	t.Run("unknown-job", func(t *testing.T) {
		status := call(t, http.MethodGet, apiURL+"/ingestions/00000000-0000-0000-0000-000000000000", nil, nil)
		require.Equal(t, http.StatusNotFound, status)
	})
}

func TestRepoIndexer_MCP(t *testing.T) {
	client := mcp.NewClient(&mcp.Implementation{Name: "integration", Version: "1.0.0"}, nil)
	session, err := client.Connect(t.Context(), &mcp.StreamableClientTransport{Endpoint: mcpURL}, nil)
	require.NoError(t, err)
	defer session.Close() //nolint:errcheck

	res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "estimate_repository_cost",
		Arguments: map[string]any{"repository_url": repositoryURL},
	})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool returned an error: %v", res.Content)

	res, err = session.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "estimate_repository_cost",
		Arguments: map[string]any{"repository_url": "not a url"},
	})
	require.NoError(t, err)
	require.True(t, res.IsError)
}

// call sends a JSON request and decodes the JSON response into out when out is not nil.
func call(t *testing.T, method, target string, body any, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, target, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err, fmt.Sprintf("%s %s", method, target))
	defer resp.Body.Close() //nolint:errcheck

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
