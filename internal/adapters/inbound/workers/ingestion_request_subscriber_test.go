package workers

import (
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/usecases/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIngestionRequestSubscriber_Run(t *testing.T) {
	firstJobID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	secondJobID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	requestedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	event := func(id uuid.UUID) domain.IngestionRequestedEvent {
		return domain.IngestionRequestedEvent{
			Type:          domain.EventType_INGESTION_REQUESTED,
			JobID:         id,
			ProjectID:     "proj-1",
			RepositoryURL: "https://github.com/acme/widgets",
			Branch:        "main",
			RequestedAt:   requestedAt,
		}
	}
	forJob := func(id uuid.UUID) any {
		return mock.MatchedBy(func(e domain.IngestionRequestedEvent) bool { return e.JobID == id })
	}

	tests := map[string]struct {
		payloads        [][]byte
		setupMocks      func(*mocks.MockIndexRepository)
		expectedSignals int
		expectedJobs    []uuid.UUID
	}{
		"indexes-each-request": {
			payloads: [][]byte{
				ingestionEventPayload(t, event(firstJobID)),
				ingestionEventPayload(t, event(secondJobID)),
			},
			setupMocks: func(m *mocks.MockIndexRepository) {
				m.EXPECT().Execute(mock.Anything, forJob(firstJobID)).Return(nil).Once()
				m.EXPECT().Execute(mock.Anything, forJob(secondJobID)).Return(nil).Once()
			},
			expectedSignals: 2,
			expectedJobs:    []uuid.UUID{firstJobID, secondJobID},
		},
		"failed-request-is-redelivered": {
			payloads: [][]byte{
				ingestionEventPayload(t, event(firstJobID)),
			},
			setupMocks: func(m *mocks.MockIndexRepository) {
				m.EXPECT().Execute(mock.Anything, forJob(firstJobID)).Return(assert.AnError).Once()
				m.EXPECT().Execute(mock.Anything, forJob(firstJobID)).Return(nil).Once()
			},
			expectedSignals: 2,
			expectedJobs:    []uuid.UUID{firstJobID, firstJobID},
		},
		"invalid-payload-is-dropped": {
			payloads: [][]byte{
				[]byte(`{"Type"`),
			},
			setupMocks:      func(*mocks.MockIndexRepository) {},
			expectedSignals: 1,
		},
		"unrelated-event-type-is-ignored": {
			payloads: [][]byte{
				ingestionEventPayload(t, domain.IngestionRequestedEvent{Type: "OTHER.EVENT", JobID: firstJobID}),
			},
			setupMocks:      func(*mocks.MockIndexRepository) {},
			expectedSignals: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			subscriptionID := "ingestion-sub-" + name
			client, topicName := setupPubSubServer(t, ctx, "ingestion-topic-"+name, subscriptionID)

			var (
				mu       sync.Mutex
				received []uuid.UUID
			)
			indexRepository := mocks.NewMockIndexRepository(t)
			tt.setupMocks(indexRepository)
			for _, c := range indexRepository.ExpectedCalls {
				c.Run(func(args mock.Arguments) {
					mu.Lock()
					defer mu.Unlock()
					received = append(received, args.Get(1).(domain.IngestionRequestedEvent).JobID)
				})
			}

			signalChan := make(chan struct{}, 10)
			subscriber := IngestionRequestSubscriber{
				Logger:              log.New(io.Discard, "", 0),
				Client:              client,
				SubscriptionID:      subscriptionID,
				MaxOutstandingJobs:  1,
				IndexRepository:     indexRepository,
				workerExecutionChan: signalChan,
			}

			cancel, doneChan := run(t, ctx, subscriber)

			require.NoError(t, publishMessages(ctx, client, topicName, tt.payloads))
			waitForSignals(t, signalChan, tt.expectedSignals, 5*time.Second)

			cancel()
			waitRunnableStop(t, doneChan)

			mu.Lock()
			defer mu.Unlock()
			assert.ElementsMatch(t, tt.expectedJobs, received)
		})
	}
}
