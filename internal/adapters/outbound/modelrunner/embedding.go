package modelrunner

import (
	"fmt"
	"strings"
)

// EmbeddingGenerator builds the model-specific input text for an embedding request.
type EmbeddingGenerator interface {
	// GenerateSummaryPrompt creates the input used to index a file summary.
	GenerateSummaryPrompt(summary string) string
	// GenerateSearchPrompt creates the input used to embed a search question.
	GenerateSearchPrompt(query string) string
}

// EmbeddingFactory provides a method to get an EmbeddingGenerator based on the model name.
type EmbeddingFactory interface {
	// Get returns an EmbeddingGenerator for the specified model name.
	Get(model string) EmbeddingGenerator
}

// embeddingFactory is the default implementation of EmbeddingFactory.
type embeddingFactory struct{}

func (f embeddingFactory) Get(model string) EmbeddingGenerator {
	if strings.Contains(model, "embeddinggemma") {
		return gemmaEmbedding{}
	}
	return defaultEmbeddingGenerator{}
}

// gemmaEmbedding follows the task prefixes the Gemma embedding model was trained with.
type gemmaEmbedding struct{}

func (a gemmaEmbedding) GenerateSummaryPrompt(summary string) string {
	return fmt.Sprintf("title: none | text: %s", summary)
}

func (a gemmaEmbedding) GenerateSearchPrompt(query string) string {
	return fmt.Sprintf("task: code retrieval | query: %s", query)
}

// defaultEmbeddingGenerator sends the text unchanged.
type defaultEmbeddingGenerator struct{}

func (a defaultEmbeddingGenerator) GenerateSummaryPrompt(summary string) string {
	return summary
}

func (a defaultEmbeddingGenerator) GenerateSearchPrompt(query string) string {
	return query
}
