package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIngestionReport(t *testing.T) {
	report := IngestionReport{
		Total: 4,
		Artifacts: []CodeArtifact{
			{FileName: "a.ts"},
		},
		Skipped: []SkippedDocument{
			{Path: "b.ts", Reason: SkipReason_EMPTY_CONTENT},
			{Path: "c.ts", Reason: SkipReason_SUMMARY_FAILED},
			{Path: "d.ts", Reason: SkipReason_EMPTY_CONTENT},
		},
	}

	assert.Equal(t, 1, report.Succeeded())
	assert.Equal(t, 3, report.SkippedCount())
	assert.Equal(t, map[SkipReason]int{
		SkipReason_EMPTY_CONTENT:  2,
		SkipReason_SUMMARY_FAILED: 1,
	}, report.SkippedReasons())
}

func TestIngestionJob_Transitions(t *testing.T) {
	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	later := created.Add(time.Minute)

	tests := map[string]struct {
		apply  func(j *IngestionJob)
		assert func(t *testing.T, j IngestionJob)
	}{
		"start": {
			apply: func(j *IngestionJob) { j.Start(later) },
			assert: func(t *testing.T, j IngestionJob) {
				assert.Equal(t, IngestionJobStatus_RUNNING, j.Status)
				assert.Equal(t, later, j.UpdatedAt)
				assert.False(t, j.Finished())
			},
		},
		"complete": {
			apply: func(j *IngestionJob) {
				j.Complete(
					IngestionReport{Total: 3, Artifacts: make([]CodeArtifact, 2), Skipped: make([]SkippedDocument, 1)},
					PersistReport{Stored: 1, Failed: []FailedRecord{{FileName: "x.go"}}},
					later,
				)
			},
			assert: func(t *testing.T, j IngestionJob) {
				assert.Equal(t, IngestionJobStatus_COMPLETED, j.Status)
				assert.Equal(t, 3, j.TotalDocuments)
				assert.Equal(t, 1, j.IndexedDocuments)
				assert.Equal(t, 1, j.SkippedDocuments)
				assert.Equal(t, 1, j.FailedRecords)
				assert.True(t, j.Finished())
			},
		},
		"fail": {
			apply: func(j *IngestionJob) { j.Fail(errors.New("branch not found"), later) },
			assert: func(t *testing.T, j IngestionJob) {
				assert.Equal(t, IngestionJobStatus_FAILED, j.Status)
				if assert.NotNil(t, j.LastError) {
					assert.Equal(t, "branch not found", *j.LastError)
				}
				assert.True(t, j.Finished())
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			job := IngestionJob{Status: IngestionJobStatus_PENDING, CreatedAt: created, UpdatedAt: created}
			tt.apply(&job)
			tt.assert(t, job)
		})
	}
}

func TestEmptyContentErr_Terminal(t *testing.T) {
	err := NewEmptyContentErr("b.ts", "Empty code content")
	assert.True(t, err.Terminal())
	assert.Equal(t, "Empty code content", err.Error())
	assert.Equal(t, "b.ts", err.Path)
}

func TestContentFetchErr_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewContentFetchErr(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to fetch repository contents", err.Error())
}
