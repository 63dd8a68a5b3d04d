package webhooks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ortelius/ghwire/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

type memRecorder struct {
	events []Event
	err    error
}

func (m *memRecorder) Record(_ context.Context, e Event) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, e)
	return nil
}

func TestDecodePushWithEpochRepository(t *testing.T) {
	event, err := DecodeEvent("push", fixture(t, "push.json"))
	require.NoError(t, err)

	assert.Equal(t, "push", event.Name)
	require.NotNil(t, event.Repository)
	assert.Equal(t, "octo/hello", event.Repository.FullName)
	assert.Equal(t, "2015-05-05T23:40:12Z", event.Repository.CreatedAt.String())
	assert.True(t, event.Repository.CreatedAt.Equal(event.Repository.UpdatedAt))
	require.NotNil(t, event.Repository.PushedAt)
	assert.Equal(t, "2015-05-05T23:40:17Z", event.Repository.PushedAt.String())

	push, ok := event.Payload.(*PushEvent)
	require.True(t, ok)
	require.Len(t, push.Commits, 1)
	assert.Equal(t, "2015-05-05T23:40:15Z", push.Commits[0].Timestamp.String())
	assert.Nil(t, push.HeadCommit)
	assert.Equal(t, "octocat", push.Pusher.Name)
}

func TestDecodeDeploymentStatus(t *testing.T) {
	event, err := DecodeEvent("deployment_status", fixture(t, "deployment_status.json"))
	require.NoError(t, err)

	assert.Equal(t, "created", event.Action)
	p := event.Payload.(*DeploymentStatusEvent)
	assert.Equal(t, model.StateSuccess, p.DeploymentStatus.State)
	assert.Equal(t, "main", p.Deployment.Ref)
	assert.Nil(t, p.Deployment.Description)
	assert.True(t, p.Deployment.CreatedAt.Before(p.DeploymentStatus.CreatedAt))
}

func TestDecodeReleaseAndPing(t *testing.T) {
	event, err := DecodeEvent("release", fixture(t, "release.json"))
	require.NoError(t, err)
	rel := event.Payload.(*ReleaseEvent)
	assert.Equal(t, "v1.4.0-rc.1", rel.Release.TagName)
	assert.True(t, rel.Release.Prerelease)
	require.NotNil(t, rel.Release.PublishedAt)

	event, err = DecodeEvent("ping", fixture(t, "ping.json"))
	require.NoError(t, err)
	assert.Nil(t, event.Repository)
	require.NotNil(t, event.Sender)
	assert.Equal(t, "octocat", event.Sender.Login)
	assert.Equal(t, []string{"push", "release"}, event.Payload.(*PingEvent).Hook.Events)
}

func TestDecodeEventErrors(t *testing.T) {
	_, err := DecodeEvent("fork", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnsupportedEvent)

	_, err = DecodeEvent("star", []byte(`{"action":"created","starred_at":"last tuesday"}`))
	var de *model.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "starred_at", de.Field)
	assert.ErrorIs(t, err, model.ErrParseFailure)

	_, err = DecodeEvent("push", []byte(`{"commits":[{"id":"a","timestamp":false}]}`))
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "commits[0].timestamp", de.Field)

	_, err = DecodeEvent("status", []byte(`{"state":"exploded"}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestSupportedEvents(t *testing.T) {
	assert.Equal(t,
		[]string{"deployment", "deployment_status", "ping", "push", "release", "star", "status", "watch"},
		SupportedEvents())
}

func TestHandleWebhookDelivery(t *testing.T) {
	rec := &memRecorder{}
	logger := zap.NewNop()

	event, err := HandleWebhookDelivery(context.Background(), logger, rec, Delivery{
		ID:   "72d3162e-cc78-11e3-81ab-4c9367dc0958",
		Name: "watch",
		Body: []byte(`{"action":"started","repository":{"full_name":"octo/hello","created_at":0,"updated_at":0},"sender":{"login":"hubot"}}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "72d3162e-cc78-11e3-81ab-4c9367dc0958", event.ID)
	assert.Equal(t, "started", event.Action)
	assert.False(t, event.ReceivedAt.IsZero())
	require.Len(t, rec.events, 1)
	assert.Equal(t, event.ID, rec.events[0].ID)

	event, err = HandleWebhookDelivery(context.Background(), logger, rec, Delivery{
		Name: "ping",
		Body: fixture(t, "ping.json"),
	})
	require.NoError(t, err)
	assert.Len(t, event.ID, 36, "generated ids are UUIDs")
}

func TestHandleWebhookDeliveryFailures(t *testing.T) {
	logger := zap.NewNop()

	rec := &memRecorder{}
	_, err := HandleWebhookDelivery(context.Background(), logger, rec, Delivery{ID: "x", Name: "push", Body: []byte(`{`)})
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Empty(t, rec.events)

	rec = &memRecorder{err: ErrDuplicateDelivery}
	_, err = HandleWebhookDelivery(context.Background(), logger, rec, Delivery{ID: "x", Name: "ping", Body: []byte(`{}`)})
	assert.ErrorIs(t, err, ErrDuplicateDelivery)

	rec = &memRecorder{err: errors.New("disk full")}
	_, err = HandleWebhookDelivery(context.Background(), logger, rec, Delivery{ID: "x", Name: "ping", Body: []byte(`{}`)})
	assert.EqualError(t, err, "failed to record ping event x: disk full")
}
