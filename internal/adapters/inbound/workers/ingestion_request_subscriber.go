package workers

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/usecases"
)

// IngestionRequestSubscriber consumes ingestion requests from Pub/Sub
// and runs the indexing pipeline for each of them.
type IngestionRequestSubscriber struct {
	Logger              *log.Logger              `resolve:""`
	Client              *pubsub.Client           `resolve:""`
	SubscriptionID      string                   `config:"PUBSUB_SUBSCRIPTION_ID" default:"ingestion-requests-sub"`
	MaxOutstandingJobs  int                      `config:"INGESTION_MAX_OUTSTANDING_JOBS" default:"2"`
	IndexRepository     usecases.IndexRepository `resolve:""`
	workerExecutionChan chan struct{}
}

// Run receives messages until ctx is cancelled.
func (s IngestionRequestSubscriber) Run(ctx context.Context) error {
	s.Logger.Println("IngestionRequestSubscriber: running...")

	if s.MaxOutstandingJobs <= 0 {
		s.MaxOutstandingJobs = 1
	}

	sub := s.Client.Subscriber(s.SubscriptionID)
	sub.ReceiveSettings.MaxOutstandingMessages = s.MaxOutstandingJobs
	sub.ReceiveSettings.NumGoroutines = 1

	err := sub.Receive(ctx, s.handle)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	s.Logger.Println("IngestionRequestSubscriber: stopped")
	return nil
}

// handle processes one message. Payloads that can never be processed are acked and dropped.
func (s IngestionRequestSubscriber) handle(ctx context.Context, msg *pubsub.Message) {
	defer func() {
		if s.workerExecutionChan != nil {
			select {
			case s.workerExecutionChan <- struct{}{}:
			case <-ctx.Done():
			}
		}
	}()

	var event domain.IngestionRequestedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		s.Logger.Printf("IngestionRequestSubscriber: dropping undecodable message %s: %v", msg.ID, err)
		msg.Ack()
		return
	}

	if event.Type != domain.EventType_INGESTION_REQUESTED {
		msg.Ack()
		return
	}

	if err := s.IndexRepository.Execute(ctx, event); err != nil {
		msg.Nack()
		if !errors.Is(err, context.Canceled) {
			s.Logger.Printf("IngestionRequestSubscriber: job %s will be retried: %v", event.JobID, err)
		}
		return
	}

	msg.Ack()
}
