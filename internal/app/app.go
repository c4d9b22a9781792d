package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/adapters/outbound/github"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/usecases"
)

// NewRepoIndexerApp creates and returns a new instance of the RepoIndexer application.
// Extra initializers run first, so tests can register their own dependencies.
func NewRepoIndexerApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitIngestionJobRepository{},
			&postgres.InitEmbeddingRecordRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&modelrunner.InitLLMClient{},
			&github.InitGitHub{},

			&usecases.InitCodeSummarizer{},
			&usecases.InitSummaryEmbedder{},
			&usecases.InitDocumentBatchProcessor{},
			&usecases.InitEmbeddingRecordWriter{},

			&usecases.InitEstimateCost{},
			&usecases.InitRequestIngestion{},
			&usecases.InitGetIngestionJob{},
			&usecases.InitListIngestionJobs{},
			&usecases.InitListEmbeddingRecords{},
			&usecases.InitSearchCode{},
			&usecases.InitSummarizeCommitDiff{},
			&usecases.InitIndexRepository{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.RepoIndexerServer{},
			&mcp.RepoIndexerMCPServer{},
			&workers.MessageRelay{},
			&workers.IngestionRequestSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{}).
		Introspect(&ConfigDefaultsLogger{})
}
