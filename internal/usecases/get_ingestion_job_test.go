package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetIngestionJobImpl_Query(t *testing.T) {
	jobID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	job := domain.IngestionJob{ID: jobID, ProjectID: "project-1", Status: domain.IngestionJobStatus_RUNNING}

	tests := map[string]struct {
		setExpectations func(repo *domain_mocks.MockIngestionJobRepository)
		expected        domain.IngestionJob
		expectedErr     error
	}{
		"found": {
			setExpectations: func(repo *domain_mocks.MockIngestionJobRepository) {
				repo.EXPECT().GetJob(mock.Anything, jobID).Return(job, true, nil)
			},
			expected: job,
		},
		"not-found": {
			setExpectations: func(repo *domain_mocks.MockIngestionJobRepository) {
				repo.EXPECT().GetJob(mock.Anything, jobID).Return(domain.IngestionJob{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("ingestion job 123e4567-e89b-12d3-a456-426614174000 not found"),
		},
		"repository-error": {
			setExpectations: func(repo *domain_mocks.MockIngestionJobRepository) {
				repo.EXPECT().GetJob(mock.Anything, jobID).Return(domain.IngestionJob{}, false, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockIngestionJobRepository(t)
			tt.setExpectations(repo)

			got, err := NewGetIngestionJobImpl(repo).Query(context.Background(), jobID)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitGetIngestionJob_Initialize(t *testing.T) {
	ctx, err := InitGetIngestionJob{}.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[GetIngestionJob]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
