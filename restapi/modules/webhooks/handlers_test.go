package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/ortelius/ghwire/events/modules/webhooks"
	"github.com/ortelius/ghwire/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const pingBody = `{"zen":"Design for failure.","hook_id":7,` +
	`"hook":{"type":"Repository","id":7,"name":"web","active":true,"events":["push"],` +
	`"created_at":"2015-05-05T23:40:12Z","updated_at":1430869212},` +
	`"sender":{"login":"octocat","id":1}}`

func deliver(t *testing.T, recorder webhooks.EventRecorder, event, id, body string) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Post("/api/v1/webhooks/github", PostWebhook(recorder, zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/github", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if event != "" {
		req.Header.Set(HeaderEvent, event)
	}
	if id != "" {
		req.Header.Set(HeaderDelivery, id)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &out))
	return resp.StatusCode, out
}

func TestPostWebhookRecordsEvent(t *testing.T) {
	store := services.NewEventStore(10)
	status, out := deliver(t, store, "ping", "d-1", pingBody)

	assert.Equal(t, fiber.StatusAccepted, status)
	assert.Equal(t, "d-1", out["id"])
	assert.Equal(t, "ping", out["event"])

	event, ok := store.Get("d-1")
	require.True(t, ok)
	ping, ok := event.Payload.(*webhooks.PingEvent)
	require.True(t, ok)
	require.NotNil(t, ping.Hook)
	assert.True(t, ping.Hook.CreatedAt.Equal(ping.Hook.UpdatedAt))
}

func TestPostWebhookDuplicate(t *testing.T) {
	store := services.NewEventStore(10)
	status, _ := deliver(t, store, "ping", "d-1", pingBody)
	require.Equal(t, fiber.StatusAccepted, status)

	status, out := deliver(t, store, "ping", "d-1", pingBody)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, out["duplicate"])
	assert.Equal(t, 1, store.Len())
}

func TestPostWebhookAssignsID(t *testing.T) {
	store := services.NewEventStore(10)
	status, out := deliver(t, store, "ping", "", pingBody)
	require.Equal(t, fiber.StatusAccepted, status)

	id, _ := out["id"].(string)
	assert.NotEmpty(t, id)
	_, ok := store.Get(id)
	assert.True(t, ok)
}

func TestPostWebhookIgnoresUnsupportedEvent(t *testing.T) {
	store := services.NewEventStore(10)
	status, out := deliver(t, store, "fork", "d-2", `{}`)

	assert.Equal(t, fiber.StatusAccepted, status)
	assert.Equal(t, true, out["ignored"])
	assert.Equal(t, 0, store.Len())
}

func TestPostWebhookMissingEventHeader(t *testing.T) {
	status, out := deliver(t, services.NewEventStore(10), "", "d-3", pingBody)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, out["error"], HeaderEvent)
}

func TestPostWebhookBadTimestamp(t *testing.T) {
	store := services.NewEventStore(10)
	body := strings.Replace(pingBody, `"updated_at":1430869212`, `"updated_at":true`, 1)
	status, out := deliver(t, store, "ping", "d-4", body)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "hook.updated_at", out["field"])
	assert.Equal(t, "true", out["value"])
	assert.Equal(t, 0, store.Len())
}

func TestPostWebhookMalformedJSON(t *testing.T) {
	status, out := deliver(t, services.NewEventStore(10), "ping", "d-5", `{"zen":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotContains(t, out, "field")
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, webhooks.Event) error {
	return errors.New("disk full")
}

func TestPostWebhookRecorderFailure(t *testing.T) {
	status, out := deliver(t, failingRecorder{}, "ping", "d-6", pingBody)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Failed to record delivery", out["error"])
}
