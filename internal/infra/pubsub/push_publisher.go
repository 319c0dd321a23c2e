package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "citycard/internal/delivery/context"
	"citycard/internal/domain/service"
	"citycard/internal/errors"

	"github.com/google/uuid"
)

const (
	pushSubscription = "projects/local/subscriptions/transit-ledger-sub"
	pushTimeout      = 10 * time.Second
)

// PushEnvelope is the body a Pub/Sub push subscription delivers.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage is the message part of PushEnvelope; Data is base64.
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// pushPublisher posts push envelopes straight to a consumer for local development.
type pushPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewPushPublisher returns a publisher that POSTs each event to endpoint.
func NewPushPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &pushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: pushTimeout},
		logger:   logger,
	}
}

// PublishTransitLedgerEvent fails on any non-2xx response.
func (p *pushPublisher) PublishTransitLedgerEvent(ctx context.Context, event *service.TransitLedgerEvent) error {
	msg, err := encodeLedgerEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushEnvelope{
		Subscription: pushSubscription,
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(msg.data),
			Attributes:  msg.attributes,
			MessageID:   uuid.NewString(),
			PublishTime: time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return errors.Wrap(err, "encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push ledger event to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint %s answered %d", p.endpoint, resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Ledger event pushed", slog.Int64("card_id", event.CardID))

	return nil
}

func (p *pushPublisher) Close() error { return nil }
