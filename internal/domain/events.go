package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_INGESTION_REQUESTED represents the event when a repository ingestion is requested.
	EventType_INGESTION_REQUESTED EventType = "INGESTION.REQUESTED"
)

// IngestionRequestedEvent carries the work of one ingestion job to the background workers.
// It never holds credentials.
type IngestionRequestedEvent struct {
	Type          EventType
	JobID         uuid.UUID
	ProjectID     string
	RepositoryURL string
	Branch        string
	RequestedAt   time.Time
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
