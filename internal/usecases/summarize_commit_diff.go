package usecases

import (
	"context"
	"embed"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/common"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/retry"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

// SummarizeCommitDiff describes the changes of a git diff as a short list of comments.
type SummarizeCommitDiff interface {
	Execute(ctx context.Context, diff string) (domain.CommitSummary, error)
}

// SummarizeCommitDiffImpl is the implementation of the SummarizeCommitDiff use case.
type SummarizeCommitDiffImpl struct {
	llmClient domain.LLMClient
	model     string
	policy    retry.Policy
	logger    *log.Logger
}

// NewSummarizeCommitDiffImpl creates a new instance of SummarizeCommitDiffImpl.
func NewSummarizeCommitDiffImpl(c domain.LLMClient, model string, policy retry.Policy, logger *log.Logger) SummarizeCommitDiffImpl {
	return SummarizeCommitDiffImpl{
		llmClient: c,
		model:     model,
		policy:    policy,
		logger:    logger,
	}
}

// Execute asks the language model for a summary of the diff, retrying transient failures.
// Diffs longer than domain.MaxCommitDiffInputChars are truncated before they are sent.
func (sc SummarizeCommitDiffImpl) Execute(ctx context.Context, diff string) (domain.CommitSummary, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if domain.IsBlank(diff) {
		err := domain.NewValidationErr("diff cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.CommitSummary{}, err
	}

	files := domain.ChangedFiles(diff)
	truncatedDiff := domain.TruncateRunes(diff, domain.MaxCommitDiffInputChars)
	truncated := len(truncatedDiff) < len(diff)

	messages, err := buildCommitSummaryMessages(files, truncatedDiff, truncated)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CommitSummary{}, err
	}

	summary, err := retry.Do(spanCtx, sc.policy, func(ctx context.Context) (string, error) {
		resp, err := sc.llmClient.Chat(ctx, domain.LLMChatRequest{
			Model:       sc.model,
			Messages:    messages,
			Temperature: common.Ptr(0.2),
		})
		if err != nil {
			return "", err
		}

		RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

		if domain.IsBlank(resp.Content) {
			return "", domain.NewEmptyContentErr("", "Empty summary generated for commit diff")
		}
		return resp.Content, nil
	},
		retry.WithLogger(sc.logger),
		retry.WithOperationName("SummarizeCommitDiff"),
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CommitSummary{}, err
	}

	return domain.CommitSummary{
		Summary:      strings.TrimSpace(summary),
		ChangedFiles: files,
		Truncated:    truncated,
	}, nil
}

//go:embed prompts/commit_summary.yml
var commitSummaryPrompt embed.FS

// diffContext is the metadata block handed to the model next to the diff.
type diffContext struct {
	ChangedFiles []string `toon:"changed_files"`
	Truncated    bool     `toon:"truncated"`
}

// buildCommitSummaryMessages renders the commit summary prompt for the diff.
func buildCommitSummaryMessages(files []string, diff string, truncated bool) ([]domain.LLMChatMessage, error) {
	contextTOON, err := toon.MarshalString(diffContext{
		ChangedFiles: files,
		Truncated:    truncated,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal diff context: %w", err)
	}

	file, err := commitSummaryPrompt.Open("prompts/commit_summary.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open commit summary prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode commit summary prompt: %w", err)
	}

	for i, msg := range messages {
		if msg.Role != domain.ChatRole_User {
			continue
		}
		msg.Content = fmt.Sprintf(msg.Content, contextTOON, diff)
		messages[i] = msg
	}

	return messages, nil
}

// InitSummarizeCommitDiff initializes the SummarizeCommitDiff use case.
type InitSummarizeCommitDiff struct {
	LLMClient   domain.LLMClient `resolve:""`
	Logger      *log.Logger      `resolve:""`
	Model       string           `config:"LLM_SUMMARY_MODEL"`
	MaxAttempts int              `config:"SUMMARY_MAX_ATTEMPTS" default:"3"`
	BaseDelay   time.Duration    `config:"SUMMARY_RETRY_BASE_DELAY" default:"10s"`
}

// Initialize registers the SummarizeCommitDiff use case implementation.
func (i InitSummarizeCommitDiff) Initialize(ctx context.Context) (context.Context, error) {
	policy := retry.Policy{MaxAttempts: i.MaxAttempts, BaseDelay: i.BaseDelay}
	if policy.MaxAttempts < 1 {
		return ctx, retry.ErrInvalidPolicy
	}
	depend.Register[SummarizeCommitDiff](NewSummarizeCommitDiffImpl(i.LLMClient, i.Model, policy, i.Logger))
	return ctx, nil
}
