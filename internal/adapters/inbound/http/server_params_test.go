package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindPathParam(t *testing.T) {
	tests := map[string]struct {
		value       string
		expectedID  openapi_types.UUID
		expectedErr bool
	}{
		"valid-uuid": {
			value:      "123e4567-e89b-12d3-a456-426614174000",
			expectedID: uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		},
		"malformed-uuid": {
			value:       "not-a-uuid",
			expectedErr: true,
		},
		"missing-value": {
			value:       "",
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/ingestions/x", nil)
			req.SetPathValue("jobID", tt.value)

			var jobID openapi_types.UUID
			err := bindPathParam(req, "jobID", &jobID)
			if tt.expectedErr {
				require.NotNil(t, err)
				assert.Equal(t, "jobID", err.ParamName)
				assert.Error(t, err.Unwrap())
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.expectedID, jobID)
		})
	}
}

func TestBindQueryParam(t *testing.T) {
	tests := map[string]struct {
		target        string
		expectedLimit *int
		expectedErr   bool
	}{
		"present": {
			target:        "/search?limit=7",
			expectedLimit: func() *int { n := 7; return &n }(),
		},
		"absent": {
			target: "/search",
		},
		"not-a-number": {
			target:      "/search?limit=seven",
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)

			var limit *int
			err := bindQueryParam(req, "limit", &limit)
			if tt.expectedErr {
				require.NotNil(t, err)
				assert.Contains(t, err.Error(), "invalid format for parameter limit")
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}
