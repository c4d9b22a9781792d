package domain

import "context"

// ChatRole represents the author of a message sent to the language model.
type ChatRole string

const (
	ChatRole_System    ChatRole = "system"
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
)

// LLMChatMessage represents a message in a chat request to the LLM API.
type LLMChatMessage struct {
	Role    ChatRole
	Content string
}

// LLMChatRequest represents a request to the LLM API.
type LLMChatRequest struct {
	Model    string
	Messages []LLMChatMessage
	// Optional parameters.
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// LLMUsage contains token usage information.
type LLMUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// LLMChatResponse represents the response from a chat request to the LLM API.
type LLMChatResponse struct {
	Content string
	Usage   LLMUsage
}

// EmbedResponse represents the response from an embedding request to the LLM API.
type EmbedResponse struct {
	Embedding   []float64
	TotalTokens int
}

// LLMClient defines the interface for interacting with an LLM API.
type LLMClient interface {
	// Chat sends a chat request to the LLM and returns the full assistant response.
	Chat(ctx context.Context, req LLMChatRequest) (LLMChatResponse, error)
	// Embed creates an embedding for the already prompted input.
	Embed(ctx context.Context, model, input string) (EmbedResponse, error)
}
