package http

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/retry"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/usecases/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	recordID     = uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	domainRecord = domain.EmbeddingRecord{
		ID:         recordID,
		ProjectID:  "proj-1",
		FileName:   "src/auth.go",
		SourceCode: "package auth",
		Summary:    "Handles authentication.",
		Embedding:  []float64{0.1, 0.2, 0.3},
		CreatedAt:  createdAt,
	}
)

func TestRepoIndexerServer_ListEmbeddingRecords(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*mocks.MockListEmbeddingRecords)
		expectedStatus int
		expectedBody   *ListEmbeddingRecordsResp
		expectedError  *ErrorResp
	}{
		"success": {
			setupMocks: func(m *mocks.MockListEmbeddingRecords) {
				m.EXPECT().Query(mock.Anything, "proj-1").Return([]domain.EmbeddingRecord{domainRecord}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &ListEmbeddingRecordsResp{Items: []EmbeddingRecord{{
				ID:                  recordID,
				ProjectID:           "proj-1",
				FileName:            "src/auth.go",
				Summary:             "Handles authentication.",
				SourceCode:          "package auth",
				EmbeddingDimensions: 3,
				CreatedAt:           createdAt,
			}}},
		},
		"database-error": {
			setupMocks: func(m *mocks.MockListEmbeddingRecords) {
				m.EXPECT().Query(mock.Anything, "proj-1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &ErrorResp{Error: Error{Code: INTERNALERROR, Message: "internal server error"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockList := mocks.NewMockListEmbeddingRecords(t)
			tt.setupMocks(mockList)

			server := RepoIndexerServer{
				ListEmbeddingRecordsUseCase: mockList,
				Logger:                      log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/proj-1/embeddings", nil)
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotContains(t, w.Body.String(), "0.1")
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[ListEmbeddingRecordsResp](t, w.Body))
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeJSON[ErrorResp](t, w.Body))
			}
		})
	}
}

func TestRepoIndexerServer_SearchCode(t *testing.T) {
	tests := map[string]struct {
		url            string
		setupMocks     func(*mocks.MockSearchCode)
		expectedStatus int
		expectedBody   *SearchCodeResp
		expectedError  *ErrorResp
	}{
		"success": {
			url: "/api/v1/projects/proj-1/search?q=where+is+login&limit=3",
			setupMocks: func(m *mocks.MockSearchCode) {
				m.EXPECT().
					Execute(mock.Anything, "proj-1", "where is login", 3).
					Return([]domain.CodeSearchResult{{Record: domainRecord, Similarity: 0.92}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &SearchCodeResp{Items: []SearchResult{{
				RecordID:   recordID,
				FileName:   "src/auth.go",
				Summary:    "Handles authentication.",
				Similarity: 0.92,
			}}},
		},
		"default-limit": {
			url: "/api/v1/projects/proj-1/search?q=login",
			setupMocks: func(m *mocks.MockSearchCode) {
				m.EXPECT().
					Execute(mock.Anything, "proj-1", "login", 0).
					Return([]domain.CodeSearchResult{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &SearchCodeResp{Items: []SearchResult{}},
		},
		"invalid-limit": {
			url:            "/api/v1/projects/proj-1/search?q=login&limit=many",
			setupMocks:     func(m *mocks.MockSearchCode) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "invalid format for parameter limit"}},
		},
		"negative-limit": {
			url:            "/api/v1/projects/proj-1/search?q=login&limit=-1",
			setupMocks:     func(m *mocks.MockSearchCode) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "invalid format for parameter limit"}},
		},
		"escaped-question": {
			url: "/api/v1/projects/proj-1/search?q=sql%20%26%20migrations",
			setupMocks: func(m *mocks.MockSearchCode) {
				m.EXPECT().
					Execute(mock.Anything, "proj-1", "sql & migrations", 0).
					Return([]domain.CodeSearchResult{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &SearchCodeResp{Items: []SearchResult{}},
		},
		"empty-question": {
			url: "/api/v1/projects/proj-1/search",
			setupMocks: func(m *mocks.MockSearchCode) {
				m.EXPECT().
					Execute(mock.Anything, "proj-1", "", 0).
					Return(nil, domain.NewValidationErr("question cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "question cannot be empty"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockSearch := mocks.NewMockSearchCode(t)
			tt.setupMocks(mockSearch)

			server := RepoIndexerServer{
				SearchCodeUseCase: mockSearch,
				Logger:            log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[SearchCodeResp](t, w.Body))
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeJSON[ErrorResp](t, w.Body))
			}
		})
	}
}

func TestToError(t *testing.T) {
	tests := map[string]struct {
		err      error
		expected ErrorResp
	}{
		"validation": {
			err:      domain.NewValidationErr("bad input"),
			expected: ErrorResp{Error: Error{Code: BADREQUEST, Message: "bad input"}},
		},
		"wrapped-not-found": {
			err:      errors.Join(errors.New("lookup"), domain.NewNotFoundErr("missing")),
			expected: ErrorResp{Error: Error{Code: NOTFOUND, Message: "missing"}},
		},
		"rate-limited": {
			err:      domain.NewRateLimitedErr("try again later"),
			expected: ErrorResp{Error: Error{Code: RATELIMITED, Message: "try again later"}},
		},
		"content-fetch": {
			err:      domain.NewContentFetchErr(errors.New("eof")),
			expected: ErrorResp{Error: Error{Code: UPSTREAMERROR, Message: "failed to fetch repository contents"}},
		},
		"retries-exhausted": {
			err:      &retry.ExhaustedErr{Operation: "SummarizeCommitDiff", Attempts: 3, Err: errors.New("503")},
			expected: ErrorResp{Error: Error{Code: UPSTREAMERROR, Message: "language model unavailable after 3 attempts"}},
		},
		"unknown": {
			err:      errors.New("boom"),
			expected: ErrorResp{Error: Error{Code: INTERNALERROR, Message: "internal server error"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toError(tt.err))
		})
	}
}

func TestRepoIndexerServer_Healthz(t *testing.T) {
	server := RepoIndexerServer{Logger: log.New(io.Discard, "", 0)}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRepoIndexerServer_CORSPreflight(t *testing.T) {
	server := RepoIndexerServer{Logger: log.New(io.Discard, "", 0)}

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/cost-estimates", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
