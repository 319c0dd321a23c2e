package pubsub

import (
	"context"
	"log/slog"

	"citycard/internal/domain/service"
	"citycard/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// topicPublisher publishes to a Google Cloud Pub/Sub topic.
type topicPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewTopicPublisher connects to projectID and fails fast when topicID does not exist.
func NewTopicPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", topic)
	}

	return &topicPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// PublishTransitLedgerEvent blocks until the server acknowledges the message.
func (p *topicPublisher) PublishTransitLedgerEvent(ctx context.Context, event *service.TransitLedgerEvent) error {
	msg, err := encodeLedgerEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.data,
		Attributes: msg.attributes,
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish ledger event for card %d", event.CardID)
	}

	p.logger.DebugContext(ctx, "Ledger event published",
		slog.Int64("card_id", event.CardID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *topicPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
