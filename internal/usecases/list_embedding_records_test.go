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

func TestListEmbeddingRecordsImpl_Query(t *testing.T) {
	records := []domain.EmbeddingRecord{
		{ID: uuid.New(), ProjectID: "project-1", FileName: "a.ts", Summary: "Exports x."},
	}

	tests := map[string]struct {
		projectID       string
		setExpectations func(repo *domain_mocks.MockEmbeddingRecordRepository)
		expected        []domain.EmbeddingRecord
		expectedErr     error
	}{
		"success": {
			projectID: "project-1",
			setExpectations: func(repo *domain_mocks.MockEmbeddingRecordRepository) {
				repo.EXPECT().ListByProject(mock.Anything, "project-1").Return(records, nil)
			},
			expected: records,
		},
		"empty-project-id": {
			projectID:       "",
			setExpectations: func(repo *domain_mocks.MockEmbeddingRecordRepository) {},
			expectedErr:     domain.NewValidationErr("project id cannot be empty"),
		},
		"repository-error": {
			projectID: "project-1",
			setExpectations: func(repo *domain_mocks.MockEmbeddingRecordRepository) {
				repo.EXPECT().ListByProject(mock.Anything, "project-1").Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockEmbeddingRecordRepository(t)
			tt.setExpectations(repo)

			got, err := NewListEmbeddingRecordsImpl(repo).Query(context.Background(), tt.projectID)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitListEmbeddingRecords_Initialize(t *testing.T) {
	ctx, err := InitListEmbeddingRecords{}.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[ListEmbeddingRecords]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
