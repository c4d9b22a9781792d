package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitClient creates the shared Pub/Sub client. PUBSUB_EMULATOR_HOST is honored by the client library.
// Topics are provisioned outside the application; Initialize fails when the ingestion topic is missing.
type InitClient struct {
	Logger    *log.Logger `resolve:""`
	ProjectID string      `config:"PUBSUB_PROJECT_ID"`
	client    *pubsubV2.Client
}

// Initialize registers the *pubsub.Client in the dependency container.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	topic := topicName(i.client.Project(), domain.OutboxTopic_IngestionRequests)
	if _, err := i.client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		return ctx, fmt.Errorf("pubsub topic %s is not available: %w", topic, err)
	}

	depend.Register(i.client)

	return ctx, nil
}

// Close releases the client connection.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}

func topicName(projectID string, topic domain.OutboxTopic) string {
	return "projects/" + projectID + "/topics/" + string(topic)
}
