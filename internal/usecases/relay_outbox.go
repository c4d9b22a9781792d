package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// RelayOutbox defines the interface for relaying outbox events
type RelayOutbox interface {
	// Execute processes pending outbox events and relays them
	Execute(ctx context.Context) error
}

// RelayOutboxImpl publishes pending outbox events, deleting them once published.
type RelayOutboxImpl struct {
	uow       domain.UnitOfWork
	publisher domain.EventPublisher
	logger    *log.Logger
	batchSize int
}

// NewRelayOutboxImpl creates a new instance
func NewRelayOutboxImpl(uow domain.UnitOfWork, publisher domain.EventPublisher, logger *log.Logger, batchSize int) RelayOutboxImpl {
	if batchSize < 1 {
		batchSize = 100
	}
	return RelayOutboxImpl{
		uow:       uow,
		publisher: publisher,
		logger:    logger,
		batchSize: batchSize,
	}
}

// Execute processes pending outbox events and relays them
func (r RelayOutboxImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := r.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		events, err := uow.Outbox().FetchPendingEvents(spanCtx, r.batchSize)
		if err != nil {
			return err
		}

		for _, event := range events {
			if err := r.relayEvent(spanCtx, uow, event); err != nil {
				r.logger.Printf("RelayOutbox: relay failed for event %s (%s): %v", event.ID, event.EventType, err)
			}
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// relayEvent processes and relays a single outbox event
func (r RelayOutboxImpl) relayEvent(ctx context.Context, uow domain.UnitOfWork, event domain.OutboxEvent) error {

	if err := r.publisher.PublishEvent(ctx, event); err != nil {
		status := domain.OutboxStatus_Pending
		if event.RetryCount+1 >= event.MaxRetries {
			status = domain.OutboxStatus_Failed
		}
		if updateErr := uow.Outbox().UpdateEvent(ctx, event.ID, status, event.RetryCount+1, err.Error()); updateErr != nil {
			return fmt.Errorf("failed to record publish error %q: %w", err, updateErr)
		}
		return err
	}
	return uow.Outbox().DeleteEvent(ctx, event.ID)
}

// InitRelayOutbox is used to initialize the RelayOutbox in the dependency container
type InitRelayOutbox struct {
	Uow       domain.UnitOfWork     `resolve:""`
	Logger    *log.Logger           `resolve:""`
	Publisher domain.EventPublisher `resolve:""`
	BatchSize int                   `config:"OUTBOX_BATCH_SIZE" default:"100"`
}

// Initialize registers the RelayOutbox implementation in the dependency container
func (iro InitRelayOutbox) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RelayOutbox](NewRelayOutboxImpl(iro.Uow, iro.Publisher, iro.Logger, iro.BatchSize))
	return ctx, nil
}
