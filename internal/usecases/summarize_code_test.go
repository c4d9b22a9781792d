package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/retry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCodeSummarizerImpl_Summarize(t *testing.T) {
	policy := retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	llmErr := errors.New("model unavailable")

	tests := map[string]struct {
		doc             domain.Document
		setExpectations func(c *domain_mocks.MockLLMClient)
		expected        domain.SummaryResult
		expectedErr     func(t *testing.T, err error)
	}{
		"success": {
			doc: domain.Document{Path: "a.ts", Content: "export const x=1"},
			setExpectations: func(c *domain_mocks.MockLLMClient) {
				c.EXPECT().Chat(mock.Anything, mock.MatchedBy(func(req domain.LLMChatRequest) bool {
					if req.Model != "summary-model" || len(req.Messages) != 2 {
						return false
					}
					user := req.Messages[1]
					return req.Messages[0].Role == domain.ChatRole_System &&
						user.Role == domain.ChatRole_User &&
						strings.Contains(user.Content, "purpose of the a.ts file") &&
						strings.Contains(user.Content, "export const x=1") &&
						strings.Contains(user.Content, "no more than 100 words")
				})).Return(domain.LLMChatResponse{
					Content: "  Exports the constant x.  ",
					Usage:   domain.LLMUsage{PromptTokens: 120, CompletionTokens: 8, TotalTokens: 128},
				}, nil).Once()
			},
			expected: domain.SummaryResult{Path: "a.ts", Summary: "Exports the constant x."},
		},
		"content-is-truncated": {
			doc: domain.Document{Path: "big.go", Content: strings.Repeat("a", domain.MaxSummaryInputChars) + "TAIL"},
			setExpectations: func(c *domain_mocks.MockLLMClient) {
				c.EXPECT().Chat(mock.Anything, mock.MatchedBy(func(req domain.LLMChatRequest) bool {
					user := req.Messages[1].Content
					return strings.Contains(user, strings.Repeat("a", domain.MaxSummaryInputChars)) &&
						!strings.Contains(user, "TAIL")
				})).Return(domain.LLMChatResponse{Content: "A large file."}, nil).Once()
			},
			expected: domain.SummaryResult{Path: "big.go", Summary: "A large file."},
		},
		"whitespace-content-skips-model": {
			doc:             domain.Document{Path: "b.ts", Content: "  \n\t"},
			setExpectations: func(c *domain_mocks.MockLLMClient) {},
			expectedErr: func(t *testing.T, err error) {
				var emptyErr *domain.EmptyContentErr
				require.ErrorAs(t, err, &emptyErr)
				assert.Equal(t, "Empty code content", emptyErr.Error())
				assert.Equal(t, "b.ts", emptyErr.Path)
			},
		},
		"blank-after-truncation-skips-model": {
			doc:             domain.Document{Path: "padded.go", Content: strings.Repeat(" ", domain.MaxSummaryInputChars) + "package padded"},
			setExpectations: func(c *domain_mocks.MockLLMClient) {},
			expectedErr: func(t *testing.T, err error) {
				var emptyErr *domain.EmptyContentErr
				require.ErrorAs(t, err, &emptyErr)
				assert.Equal(t, "padded.go", emptyErr.Path)
			},
		},
		"blank-summary-is-not-retried": {
			doc: domain.Document{Path: "c.ts", Content: "let y = 2"},
			setExpectations: func(c *domain_mocks.MockLLMClient) {
				c.EXPECT().Chat(mock.Anything, mock.Anything).Return(domain.LLMChatResponse{Content: "   "}, nil).Once()
			},
			expectedErr: func(t *testing.T, err error) {
				var emptyErr *domain.EmptyContentErr
				require.ErrorAs(t, err, &emptyErr)
				assert.Equal(t, "Empty summary generated for c.ts", emptyErr.Error())
			},
		},
		"transient-error-then-success": {
			doc: domain.Document{Path: "d.go", Content: "package d"},
			setExpectations: func(c *domain_mocks.MockLLMClient) {
				c.EXPECT().Chat(mock.Anything, mock.Anything).Return(domain.LLMChatResponse{}, llmErr).Once()
				c.EXPECT().Chat(mock.Anything, mock.Anything).Return(domain.LLMChatResponse{Content: "Declares package d."}, nil).Once()
			},
			expected: domain.SummaryResult{Path: "d.go", Summary: "Declares package d."},
		},
		"retries-exhausted": {
			doc: domain.Document{Path: "e.go", Content: "package e"},
			setExpectations: func(c *domain_mocks.MockLLMClient) {
				c.EXPECT().Chat(mock.Anything, mock.Anything).Return(domain.LLMChatResponse{}, llmErr).Times(3)
			},
			expectedErr: func(t *testing.T, err error) {
				var exhausted *retry.ExhaustedErr
				require.ErrorAs(t, err, &exhausted)
				assert.Equal(t, 3, exhausted.Attempts)
				assert.ErrorIs(t, err, llmErr)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := domain_mocks.NewMockLLMClient(t)
			tt.setExpectations(c)

			cs := NewCodeSummarizerImpl(c, "summary-model", policy, log.New(io.Discard, "", 0))
			got, err := cs.Summarize(context.Background(), tt.doc)
			if tt.expectedErr != nil {
				require.Error(t, err)
				tt.expectedErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildCodeSummaryMessages(t *testing.T) {
	doc := domain.Document{Path: "pkg/util.go", Content: "package util\n\nfunc A() {}\n"}
	messages, err := buildCodeSummaryMessages(doc, doc.Content)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, domain.ChatRole_System, messages[0].Role)
	assert.Contains(t, messages[0].Content, "senior software engineer")
	assert.NotContains(t, messages[0].Content, "%!")

	assert.Equal(t, domain.ChatRole_User, messages[1].Role)
	assert.Contains(t, messages[1].Content, "pkg/util.go")
	assert.Contains(t, messages[1].Content, ".go")
	assert.Contains(t, messages[1].Content, "func A() {}")
	assert.NotContains(t, messages[1].Content, "%!")
}

func TestInitCodeSummarizer_Initialize(t *testing.T) {
	i := InitCodeSummarizer{MaxAttempts: 3, BaseDelay: time.Second}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[CodeSummarizer]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)

	_, err = InitCodeSummarizer{MaxAttempts: 0}.Initialize(context.Background())
	assert.ErrorIs(t, err, retry.ErrInvalidPolicy)
}
