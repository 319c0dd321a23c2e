// Package pubsub publishes transit ledger events after a wallet change commits.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"citycard/config"
	"citycard/internal/domain/constants"
	"citycard/internal/domain/service"
	"citycard/internal/errors"

	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher named by pubsub.provider and closes it on stop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Ledger events disabled")

		return discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Ledger events pushed over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewPushPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Ledger events published to Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewTopicPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}

	return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
}

// ledgerMessage is the payload and attributes shared by every transport.
type ledgerMessage struct {
	data       []byte
	attributes map[string]string
}

func encodeLedgerEvent(event *service.TransitLedgerEvent) (ledgerMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return ledgerMessage{}, errors.Wrap(err, "encode ledger event")
	}

	attributes := map[string]string{
		"card_id": strconv.FormatInt(event.CardID, 10),
		"type":    event.Type,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return ledgerMessage{data: data, attributes: attributes}, nil
}

// discardPublisher only logs; used when no provider is configured.
type discardPublisher struct {
	logger *slog.Logger
}

func (p discardPublisher) PublishTransitLedgerEvent(ctx context.Context, event *service.TransitLedgerEvent) error {
	p.logger.DebugContext(ctx, "Ledger event dropped",
		slog.Int64("card_id", event.CardID),
		slog.String("type", event.Type),
	)

	return nil
}

func (discardPublisher) Close() error { return nil }

// Module provides the ledger EventPublisher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
