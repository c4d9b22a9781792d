package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/usecases"
	"github.com/rs/cors"
)

// RepoIndexerServer is the REST API of the repository indexer.
type RepoIndexerServer struct {
	Port                        int                           `config:"HTTP_PORT" default:"8080"`
	Logger                      *log.Logger                   `resolve:""`
	EstimateCostUseCase         usecases.EstimateCost         `resolve:""`
	RequestIngestionUseCase     usecases.RequestIngestion     `resolve:""`
	GetIngestionJobUseCase      usecases.GetIngestionJob      `resolve:""`
	ListIngestionJobsUseCase    usecases.ListIngestionJobs    `resolve:""`
	ListEmbeddingRecordsUseCase usecases.ListEmbeddingRecords `resolve:""`
	SearchCodeUseCase           usecases.SearchCode           `resolve:""`
	SummarizeCommitDiffUseCase  usecases.SummarizeCommitDiff  `resolve:""`
}

// Handler returns the API routes wrapped with the telemetry and CORS middlewares.
func (api RepoIndexerServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)
	mux.HandleFunc("GET /healthz", HealthzHandler)

	pw := paramWrapper{api: api}
	routes := map[string]http.HandlerFunc{
		"POST /api/v1/cost-estimates":                  api.EstimateCost,
		"POST /api/v1/projects/{projectID}/ingestions": pw.RequestIngestion,
		"GET /api/v1/projects/{projectID}/ingestions":  pw.ListIngestionJobs,
		"GET /api/v1/ingestions/{jobID}":               pw.GetIngestionJob,
		"GET /api/v1/projects/{projectID}/embeddings":  pw.ListEmbeddingRecords,
		"GET /api/v1/projects/{projectID}/search":      pw.SearchCode,
		"POST /api/v1/commit-summaries":                api.SummarizeCommitDiff,
	}
	middleware := telemetry.Middleware("repoindexer-api")
	for pattern, h := range routes {
		mux.Handle(pattern, middleware(h))
	}

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(mux)
}

// Run starts the HTTP server for the RepoIndexerServer.
func (api RepoIndexerServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("RepoIndexerServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("RepoIndexerServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("RepoIndexerServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the RepoIndexerServer is ready by performing a health check.
func (api RepoIndexerServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// HealthzHandler reports that the process is serving requests.
func HealthzHandler(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
