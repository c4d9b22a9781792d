package usecases

import (
	"context"
	"embed"
	"fmt"
	"log"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/common"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/retry"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

// CodeSummarizer produces a short onboarding-oriented description of one file.
type CodeSummarizer interface {
	// Summarize returns a non-empty summary of the document or an error.
	Summarize(ctx context.Context, doc domain.Document) (domain.SummaryResult, error)
}

// CodeSummarizerImpl is the implementation of the CodeSummarizer use case.
type CodeSummarizerImpl struct {
	llmClient domain.LLMClient
	model     string
	policy    retry.Policy
	logger    *log.Logger
}

// NewCodeSummarizerImpl creates a new instance of CodeSummarizerImpl.
func NewCodeSummarizerImpl(c domain.LLMClient, model string, policy retry.Policy, logger *log.Logger) CodeSummarizerImpl {
	return CodeSummarizerImpl{
		llmClient: c,
		model:     model,
		policy:    policy,
		logger:    logger,
	}
}

// Summarize truncates the document content and asks the language model for a summary,
// retrying transient failures. Content that is blank once truncated fails immediately
// without calling the model.
func (cs CodeSummarizerImpl) Summarize(ctx context.Context, doc domain.Document) (domain.SummaryResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	summary, err := retry.Do(spanCtx, cs.policy, func(ctx context.Context) (string, error) {
		return cs.summarize(ctx, doc)
	},
		retry.WithLogger(cs.logger),
		retry.WithOperationName(fmt.Sprintf("CodeSummarizer[%s]", doc.Path)),
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SummaryResult{}, err
	}

	return domain.SummaryResult{Path: doc.Path, Summary: summary}, nil
}

func (cs CodeSummarizerImpl) summarize(ctx context.Context, doc domain.Document) (string, error) {
	code := domain.TruncateRunes(doc.Content, domain.MaxSummaryInputChars)
	if domain.IsBlank(code) {
		return "", domain.NewEmptyContentErr(doc.Path, "Empty code content")
	}

	messages, err := buildCodeSummaryMessages(doc, code)
	if err != nil {
		return "", err
	}

	resp, err := cs.llmClient.Chat(ctx, domain.LLMChatRequest{
		Model:       cs.model,
		Messages:    messages,
		Temperature: common.Ptr(0.2),
	})
	if err != nil {
		return "", err
	}

	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	summary := strings.TrimSpace(resp.Content)
	if summary == "" {
		return "", domain.NewEmptyContentErr(doc.Path, fmt.Sprintf("Empty summary generated for %s", doc.Path))
	}
	return summary, nil
}

//go:embed prompts/summary.yml
var codeSummaryPrompt embed.FS

// fileContext is the metadata block handed to the model next to the code.
type fileContext struct {
	Path       string `toon:"path"`
	Extension  string `toon:"extension"`
	Lines      int    `toon:"lines"`
	Characters int    `toon:"characters"`
	Truncated  bool   `toon:"truncated"`
}

// buildCodeSummaryMessages renders the summary prompt for the document and its truncated code.
func buildCodeSummaryMessages(doc domain.Document, code string) ([]domain.LLMChatMessage, error) {
	contextTOON, err := toon.MarshalString(fileContext{
		Path:       doc.Path,
		Extension:  path.Ext(doc.Path),
		Lines:      strings.Count(doc.Content, "\n") + 1,
		Characters: utf8.RuneCountInString(doc.Content),
		Truncated:  len(code) < len(doc.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal file context: %w", err)
	}

	file, err := codeSummaryPrompt.Open("prompts/summary.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open summary prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode summary prompt: %w", err)
	}

	for i, msg := range messages {
		if msg.Role != domain.ChatRole_User {
			continue
		}
		msg.Content = fmt.Sprintf(msg.Content, doc.Path, contextTOON, code)
		messages[i] = msg
	}

	return messages, nil
}

// InitCodeSummarizer initializes the CodeSummarizer use case.
type InitCodeSummarizer struct {
	LLMClient   domain.LLMClient `resolve:""`
	Logger      *log.Logger      `resolve:""`
	Model       string           `config:"LLM_SUMMARY_MODEL"`
	MaxAttempts int              `config:"SUMMARY_MAX_ATTEMPTS" default:"3"`
	BaseDelay   time.Duration    `config:"SUMMARY_RETRY_BASE_DELAY" default:"10s"`
}

// Initialize registers the CodeSummarizer use case implementation.
func (ics InitCodeSummarizer) Initialize(ctx context.Context) (context.Context, error) {
	policy := retry.Policy{MaxAttempts: ics.MaxAttempts, BaseDelay: ics.BaseDelay}
	if policy.MaxAttempts < 1 {
		return ctx, retry.ErrInvalidPolicy
	}
	depend.Register[CodeSummarizer](NewCodeSummarizerImpl(ics.LLMClient, ics.Model, policy, ics.Logger))
	return ctx, nil
}
