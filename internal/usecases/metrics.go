package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter              = otel.Meter("usecases")
	LLMTokensUsed      metric.Int64Counter
	DocumentsProcessed metric.Int64Counter
	RecordsPersisted   metric.Int64Counter
	IngestionJobsDone  metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	DocumentsProcessed, err = meter.Int64Counter(
		"ingestion_documents_processed_total",
		metric.WithDescription("Documents processed by the batch processor, by outcome and skip reason"),
	)
	if err != nil {
		panic(err)
	}

	RecordsPersisted, err = meter.Int64Counter(
		"ingestion_records_persisted_total",
		metric.WithDescription("Embedding records written, by result"),
	)
	if err != nil {
		panic(err)
	}

	IngestionJobsDone, err = meter.Int64Counter(
		"ingestion_jobs_finished_total",
		metric.WithDescription("Ingestion jobs that reached a final status"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordIngestionReport records how many documents were indexed and skipped, per reason.
func RecordIngestionReport(ctx context.Context, report domain.IngestionReport) {
	DocumentsProcessed.Add(ctx, int64(report.Succeeded()), metric.WithAttributes(
		attribute.String("outcome", "indexed"),
	))
	for reason, count := range report.SkippedReasons() {
		DocumentsProcessed.Add(ctx, int64(count), metric.WithAttributes(
			attribute.String("outcome", "skipped"),
			attribute.String("reason", string(reason)),
		))
	}
}

// RecordPersistReport records how many embedding records were stored or failed.
func RecordPersistReport(ctx context.Context, report domain.PersistReport) {
	RecordsPersisted.Add(ctx, int64(report.Stored), metric.WithAttributes(
		attribute.String("result", "stored"),
	))
	RecordsPersisted.Add(ctx, int64(len(report.Failed)), metric.WithAttributes(
		attribute.String("result", "failed"),
	))
}

// RecordIngestionJobFinished records a job reaching a final status.
func RecordIngestionJobFinished(ctx context.Context, status domain.IngestionJobStatus) {
	IngestionJobsDone.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", string(status)),
	))
}
