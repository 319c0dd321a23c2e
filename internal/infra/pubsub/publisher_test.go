package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"citycard/config"
	"citycard/internal/domain/constants"
	"citycard/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.TransitLedgerEvent {
	return &service.TransitLedgerEvent{
		RequestID:  "req-1",
		CardID:     9,
		Type:       "payment",
		Amount:     -60,
		Balance:    40,
		OccurredAt: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestPushPublisher_PushesEnvelope(t *testing.T) {
	var received PushEnvelope
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewPushPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishTransitLedgerEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, pushSubscription, received.Subscription)
	assert.Equal(t, "9", received.Message.Attributes["card_id"])
	assert.Equal(t, "payment", received.Message.Attributes["type"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.TransitLedgerEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestPushPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewPushPublisher(server.URL, discardLogger())
	err := publisher.PublishTransitLedgerEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		}
	}

	t.Run("unconfigured discards", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(nil))
		require.NoError(t, err)
		assert.IsType(t, discardPublisher{}, publisher)
		assert.NoError(t, publisher.PublishTransitLedgerEvent(context.Background(), testEvent()))
	})

	t.Run("local requires an endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
		assert.Error(t, err)
	})

	t.Run("local", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(&config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:8085/push",
		}))
		require.NoError(t, err)
		assert.IsType(t, &pushPublisher{}, publisher)
	})

	t.Run("google requires a topic", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.PubSubConfig{
			Provider:  constants.PubSubProviderGoogle,
			ProjectID: "citycard",
		}))
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
		assert.Error(t, err)
	})
}

func TestEncodeLedgerEvent_OmitsEmptyRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""

	msg, err := encodeLedgerEvent(event)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"card_id": "9", "type": "payment"}, msg.attributes)
	assert.NotContains(t, string(msg.data), "request_id")
}
