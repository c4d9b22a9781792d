package modelrunner

import (
	"context"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// LLMClient adapts DRMAPIClient to the domain.LLMClient and domain.SemanticEncoder interfaces.
type LLMClient struct {
	client           DRMAPIClient
	embeddingFactory EmbeddingFactory
}

// NewLLMClientAdapter creates a new adapter.
func NewLLMClientAdapter(client DRMAPIClient) LLMClient {
	return LLMClient{client: client, embeddingFactory: embeddingFactory{}}
}

// Chat implements domain.LLMClient.
func (a LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		adapterReq.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := a.client.Chat(spanCtx, adapterReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMChatResponse{}, err
	}
	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	res := domain.LLMChatResponse{Content: resp.Choices[0].Message.Content}
	switch {
	case resp.Usage != nil:
		res.Usage = domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	case resp.Timings != nil:
		res.Usage = domain.LLMUsage{
			PromptTokens:     resp.Timings.PromptN,
			CompletionTokens: resp.Timings.PredictedN,
			TotalTokens:      resp.Timings.PromptN + resp.Timings.PredictedN,
		}
	}
	return res, nil
}

// Embed implements domain.LLMClient.
func (a LLMClient) Embed(ctx context.Context, model, input string) (domain.EmbedResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.Embeddings(spanCtx, EmbeddingsRequest{Model: model, Input: input})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbedResponse{}, err
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		err := errors.New("no embedding data in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbedResponse{}, err
	}
	return domain.EmbedResponse{
		Embedding:   resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// VectorizeSummary implements domain.SemanticEncoder.
func (a LLMClient) VectorizeSummary(ctx context.Context, model, summary string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt := a.embeddingFactory.Get(model).GenerateSummaryPrompt(summary)
	vec, err := a.vectorize(spanCtx, model, prompt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

// VectorizeQuery implements domain.SemanticEncoder.
func (a LLMClient) VectorizeQuery(ctx context.Context, model, query string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt := a.embeddingFactory.Get(model).GenerateSearchPrompt(query)
	vec, err := a.vectorize(spanCtx, model, prompt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

func (a LLMClient) vectorize(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	resp, err := a.Embed(ctx, model, input)
	if err != nil {
		return domain.EmbeddingVector{}, err
	}
	return domain.EmbeddingVector{
		Vector:      resp.Embedding,
		TotalTokens: resp.TotalTokens,
	}, nil
}

// InitLLMClient initializes the LLMClient dependency
type InitLLMClient struct {
	HttpClient *http.Client `resolve:""`
	ModelHost  string       `config:"LLM_MODEL_HOST"`
	APIKey     string       `config:"LLM_API_KEY" default:"-"`
}

// Initialize registers the LLMClient and SemanticEncoder implementations.
func (i InitLLMClient) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	adapter := NewLLMClientAdapter(NewDRMAPIClient(i.ModelHost, apiKey, i.HttpClient))
	depend.Register[domain.LLMClient](adapter)
	depend.Register[domain.SemanticEncoder](adapter)
	return ctx, nil
}
