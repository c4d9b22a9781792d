package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
)

const (
	selectEmbeddingRecords = "SELECT id, project_id, file_name, source_code, summary, summary_embedding, created_at FROM source_code_embeddings"
)

func TestEmbeddingRecordRepository_CreateRecord(t *testing.T) {
	recordID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	record := domain.EmbeddingRecord{
		ID:         recordID,
		ProjectID:  "proj-1",
		FileName:   "src/auth.go",
		SourceCode: "package auth",
		Summary:    "Handles authentication.",
		CreatedAt:  fixedTime,
	}
	insertSQL := "INSERT INTO source_code_embeddings (id,project_id,file_name,source_code,summary,created_at) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedID      uuid.UUID
		expectedErr     bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WithArgs(recordID, "proj-1", "src/auth.go", "package auth", "Handles authentication.", fixedTime).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(recordID))
			},
			expectedID: recordID,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WithArgs(recordID, "proj-1", "src/auth.go", "package auth", "Handles authentication.", fixedTime).
					WillReturnError(errors.New("database error"))
			},
			expectedID:  uuid.Nil,
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewEmbeddingRecordRepository(db)
			id, err := repo.CreateRecord(context.Background(), record)
			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedID, id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmbeddingRecordRepository_UpdateRecordEmbedding(t *testing.T) {
	recordID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	embedding := []float64{0.25, 0.5, 1}
	updateSQL := "UPDATE source_code_embeddings SET summary_embedding = $1 WHERE id = $2"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedErr     error
		expectNotFound  bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).
					WithArgs(pgvector.NewVector([]float32{0.25, 0.5, 1}), recordID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).
					WithArgs(pgvector.NewVector([]float32{0.25, 0.5, 1}), recordID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectNotFound: true,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).
					WithArgs(pgvector.NewVector([]float32{0.25, 0.5, 1}), recordID).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewEmbeddingRecordRepository(db)
			err = repo.UpdateRecordEmbedding(context.Background(), recordID, embedding)
			switch {
			case tt.expectNotFound:
				var nf *domain.NotFoundErr
				assert.ErrorAs(t, err, &nf)
				assert.Equal(t, "embedding record 123e4567-e89b-12d3-a456-426614174000 not found", err.Error())
			case tt.expectedErr != nil:
				assert.Equal(t, tt.expectedErr, err)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmbeddingRecordRepository_ListByProject(t *testing.T) {
	id1 := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	id2 := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	listSQL := selectEmbeddingRecords + " WHERE project_id = $1 ORDER BY file_name ASC, created_at ASC"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expected        []domain.EmbeddingRecord
		expectedErr     bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(embeddingRecordFields).
					AddRow(id1, "proj-1", "a.go", "package a", "A summary.", "[1,0.5]", fixedTime).
					AddRow(id2, "proj-1", "b.go", "package b", "B summary.", nil, fixedTime)
				mock.ExpectQuery(listSQL).
					WithArgs("proj-1").
					WillReturnRows(rows)
			},
			expected: []domain.EmbeddingRecord{
				{ID: id1, ProjectID: "proj-1", FileName: "a.go", SourceCode: "package a", Summary: "A summary.", Embedding: []float64{1, 0.5}, CreatedAt: fixedTime},
				{ID: id2, ProjectID: "proj-1", FileName: "b.go", SourceCode: "package b", Summary: "B summary.", CreatedAt: fixedTime},
			},
		},
		"empty-project": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(listSQL).
					WithArgs("proj-1").
					WillReturnRows(sqlmock.NewRows(embeddingRecordFields))
			},
			expected: nil,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(listSQL).
					WithArgs("proj-1").
					WillReturnError(errors.New("database error"))
			},
			expectedErr: true,
		},
		"scan-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(embeddingRecordFields).
					AddRow(id1, "proj-1", "a.go", "package a", "A summary.", "not-a-vector", fixedTime)
				mock.ExpectQuery(listSQL).
					WithArgs("proj-1").
					WillReturnRows(rows)
			},
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewEmbeddingRecordRepository(db)
			got, err := repo.ListByProject(context.Background(), "proj-1")
			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmbeddingRecordRepository_SearchNearest(t *testing.T) {
	id1 := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	searchSQL := selectEmbeddingRecords +
		" WHERE project_id = $1 AND summary_embedding IS NOT NULL AND vector_dims(summary_embedding) = $2" +
		" ORDER BY summary_embedding <=> $3 LIMIT 5"

	tests := map[string]struct {
		params          domain.EmbeddingSearchParams
		setExpectations func(mock sqlmock.Sqlmock)
		expected        []domain.EmbeddingRecord
		expectedErr     string
	}{
		"success": {
			params: domain.EmbeddingSearchParams{ProjectID: "proj-1", Embedding: []float64{1, 0}, Limit: 5},
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(embeddingRecordFields).
					AddRow(id1, "proj-1", "auth.go", "package auth", "Auth.", "[1,0]", fixedTime)
				mock.ExpectQuery(searchSQL).
					WithArgs("proj-1", 2, pgvector.NewVector([]float32{1, 0})).
					WillReturnRows(rows)
			},
			expected: []domain.EmbeddingRecord{
				{ID: id1, ProjectID: "proj-1", FileName: "auth.go", SourceCode: "package auth", Summary: "Auth.", Embedding: []float64{1, 0}, CreatedAt: fixedTime},
			},
		},
		"empty-embedding": {
			params:          domain.EmbeddingSearchParams{ProjectID: "proj-1", Limit: 5},
			setExpectations: func(mock sqlmock.Sqlmock) {},
			expectedErr:     "embedding must be provided for similarity search",
		},
		"zero-limit": {
			params:          domain.EmbeddingSearchParams{ProjectID: "proj-1", Embedding: []float64{1, 0}},
			setExpectations: func(mock sqlmock.Sqlmock) {},
			expectedErr:     "limit must be greater than 0",
		},
		"database-error": {
			params: domain.EmbeddingSearchParams{ProjectID: "proj-1", Embedding: []float64{1, 0}, Limit: 5},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(searchSQL).
					WithArgs("proj-1", 2, pgvector.NewVector([]float32{1, 0})).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: "database error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewEmbeddingRecordRepository(db)
			got, err := repo.SearchNearest(context.Background(), tt.params)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitEmbeddingRecordRepository_Initialize(t *testing.T) {
	i := InitEmbeddingRecordRepository{
		DB: &sql.DB{},
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.EmbeddingRecordRepository]()
	assert.NoError(t, err)
}
