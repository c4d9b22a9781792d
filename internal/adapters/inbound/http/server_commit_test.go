package http

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/retry"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRepoIndexerServer_SummarizeCommitDiff(t *testing.T) {
	diff := "diff --git a/main.go b/main.go\n+fmt.Println(\"hi\")\n"

	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockSummarizeCommitDiff)
		expectedStatus int
		expectedBody   *CommitSummary
		expectedError  *ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, CommitSummaryReq{Diff: diff}),
			setupMocks: func(m *mocks.MockSummarizeCommitDiff) {
				m.EXPECT().
					Execute(mock.Anything, diff).
					Return(domain.CommitSummary{
						Summary:      "* Printed a greeting [main.go]",
						ChangedFiles: []string{"main.go"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &CommitSummary{
				Summary:      "* Printed a greeting [main.go]",
				ChangedFiles: []string{"main.go"},
			},
		},
		"empty-diff": {
			requestBody: serializeJSON(t, CommitSummaryReq{}),
			setupMocks: func(m *mocks.MockSummarizeCommitDiff) {
				m.EXPECT().
					Execute(mock.Anything, "").
					Return(domain.CommitSummary{}, domain.NewValidationErr("diff cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "diff cannot be empty"}},
		},
		"model-unavailable": {
			requestBody: serializeJSON(t, CommitSummaryReq{Diff: diff}),
			setupMocks: func(m *mocks.MockSummarizeCommitDiff) {
				m.EXPECT().
					Execute(mock.Anything, diff).
					Return(domain.CommitSummary{}, &retry.ExhaustedErr{Operation: "SummarizeCommitDiff", Attempts: 3, Err: errors.New("503")})
			},
			expectedStatus: http.StatusBadGateway,
			expectedError: &ErrorResp{Error: Error{
				Code:    UPSTREAMERROR,
				Message: "language model unavailable after 3 attempts",
			}},
		},
		"invalid-json-body": {
			requestBody:    []byte(`{"diff": 42}`),
			setupMocks:     func(m *mocks.MockSummarizeCommitDiff) {},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{Error: Error{
				Code:    BADREQUEST,
				Message: "invalid request body: json: cannot unmarshal number into Go struct field CommitSummaryReq.diff of type string",
			}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockSummarize := mocks.NewMockSummarizeCommitDiff(t)
			tt.setupMocks(mockSummarize)

			server := RepoIndexerServer{
				SummarizeCommitDiffUseCase: mockSummarize,
				Logger:                     log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/commit-summaries", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[CommitSummary](t, w.Body))
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeJSON[ErrorResp](t, w.Body))
			}
		})
	}
}
