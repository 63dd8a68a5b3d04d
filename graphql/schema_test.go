package graphql

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/ortelius/ghwire/events/modules/webhooks"
	"github.com/ortelius/ghwire/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seededSchema(t *testing.T) graphql.Schema {
	t.Helper()
	store := services.NewEventStore(10)
	for id, name := range map[string]string{"d-push": "push", "d-release": "release", "d-status": "deployment_status"} {
		body, err := os.ReadFile(filepath.Join("..", "events", "modules", "webhooks", "testdata", name+".json"))
		require.NoError(t, err)
		_, err = webhooks.HandleWebhookDelivery(context.Background(), zap.NewNop(), store, webhooks.Delivery{ID: id, Name: name, Body: body})
		require.NoError(t, err)
	}

	schema, err := CreateSchema(store)
	require.NoError(t, err)
	return schema
}

func run(t *testing.T, schema graphql.Schema, query string, vars map[string]interface{}) map[string]interface{} {
	t.Helper()
	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        context.Background(),
	})
	require.Empty(t, result.Errors)

	// Normalize through JSON so assertions see plain maps and slices.
	data, err := json.Marshal(result.Data)
	require.NoError(t, err)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestEventQueryRelease(t *testing.T) {
	out := run(t, seededSchema(t), `{
		event(id: "d-release") {
			event action
			repository { full_name purl created_at }
			release { tag_name version major minor patch semver_prerelease purl published_at }
		}
	}`, nil)

	event := out["event"].(map[string]interface{})
	assert.Equal(t, "release", event["event"])
	assert.Equal(t, "published", event["action"])

	repo := event["repository"].(map[string]interface{})
	assert.Equal(t, "pkg:github/octo/hello", repo["purl"])
	assert.Equal(t, "2015-05-05T23:40:12Z", repo["created_at"])

	release := event["release"].(map[string]interface{})
	assert.Equal(t, "v1.4.0-rc.1", release["tag_name"])
	assert.Equal(t, "1.4.0-rc.1", release["version"])
	assert.Equal(t, float64(1), release["major"])
	assert.Equal(t, float64(4), release["minor"])
	assert.Equal(t, float64(0), release["patch"])
	assert.Equal(t, "rc.1", release["semver_prerelease"])
	assert.Equal(t, "pkg:github/octo/hello@v1.4.0-rc.1", release["purl"])
	assert.Equal(t, "2015-05-05T23:40:38Z", release["published_at"])
}

func TestEventQueryPushNormalizesEpochSeconds(t *testing.T) {
	out := run(t, seededSchema(t), `{
		event(id: "d-push") { ref repository { created_at pushed_at } commits { timestamp } release { tag_name } }
	}`, nil)

	event := out["event"].(map[string]interface{})
	assert.Nil(t, event["release"])
	repo := event["repository"].(map[string]interface{})
	assert.Equal(t, "2015-05-05T23:40:12Z", repo["created_at"])
	assert.Equal(t, "2015-05-05T23:40:17Z", repo["pushed_at"])

	commits := event["commits"].([]interface{})
	require.Len(t, commits, 1)
	assert.Equal(t, "2015-05-05T23:40:15Z", commits[0].(map[string]interface{})["timestamp"])
}

func TestEventQueryDeploymentStatus(t *testing.T) {
	out := run(t, seededSchema(t), `{
		event(id: "d-status") { deployment { id ref environment } deployment_status { id state target_url } }
	}`, nil)

	event := out["event"].(map[string]interface{})
	deployment := event["deployment"].(map[string]interface{})
	assert.Equal(t, "1", deployment["id"])
	assert.Equal(t, "main", deployment["ref"])
	status := event["deployment_status"].(map[string]interface{})
	assert.Equal(t, "success", status["state"])
	assert.Equal(t, "https://example.com/deploy/2", status["target_url"])
}

func TestEventsQueryFilters(t *testing.T) {
	schema := seededSchema(t)

	out := run(t, schema, `{ events { id } }`, nil)
	assert.Len(t, out["events"], 3)

	out = run(t, schema, `{ events(event: "push") { id } }`, nil)
	require.Len(t, out["events"], 1)
	assert.Equal(t, "d-push", out["events"].([]interface{})[0].(map[string]interface{})["id"])

	out = run(t, schema, `{ events(limit: 2) { id } }`, nil)
	assert.Len(t, out["events"], 2)

	// Events are received now, so a since in the past keeps them all and one
	// far in the future drops them all.
	out = run(t, schema, `{ events(since: 0) { id } }`, nil)
	assert.Len(t, out["events"], 3)

	out = run(t, schema, `query($since: DateTime) { events(since: $since) { id } }`,
		map[string]interface{}{"since": "9999-01-01T00:00:00Z"})
	assert.Empty(t, out["events"])

	out = run(t, schema, `query($since: DateTime) { events(since: $since) { id } }`,
		map[string]interface{}{"since": float64(1430483696)})
	assert.Len(t, out["events"], 3)
}

func TestEventsQueryRejectsNonPositiveLimit(t *testing.T) {
	schema := seededSchema(t)
	for _, query := range []string{`{ events(limit: 0) { id } }`, `{ events(limit: -1) { id } }`} {
		result := graphql.Do(graphql.Params{Schema: schema, RequestString: query})
		assert.NotEmpty(t, result.Errors, query)
	}
}

func TestReleasesQueryOrdersByVersion(t *testing.T) {
	fixture, err := os.ReadFile(filepath.Join("..", "events", "modules", "webhooks", "testdata", "release.json"))
	require.NoError(t, err)

	store := services.NewEventStore(10)
	deliver := func(delivery, id, tag string) {
		body := strings.ReplaceAll(string(fixture), "1261438", id)
		body = strings.ReplaceAll(body, "v1.4.0-rc.1", tag)
		_, err := webhooks.HandleWebhookDelivery(context.Background(), zap.NewNop(), store,
			webhooks.Delivery{ID: delivery, Name: "release", Body: []byte(body)})
		require.NoError(t, err)
	}
	deliver("d1", "1", "v1.4.0-rc.1")
	deliver("d2", "2", "v1.10.0")
	deliver("d3", "3", "nightly")
	deliver("d4", "4", "release-v1.9.2")
	deliver("d5", "2", "v1.10.0")

	schema, err := CreateSchema(store)
	require.NoError(t, err)

	out := run(t, schema, `{ releases(repository: "octo/hello") { id tag_name } }`, nil)
	var tags []string
	for _, r := range out["releases"].([]interface{}) {
		tags = append(tags, r.(map[string]interface{})["tag_name"].(string))
	}
	assert.Equal(t, []string{"v1.10.0", "release-v1.9.2", "v1.4.0-rc.1", "nightly"}, tags)

	out = run(t, schema, `{ releases(repository: "octo/other") { id } }`, nil)
	assert.Empty(t, out["releases"])
}

func TestEventsQueryRejectsBadSince(t *testing.T) {
	result := graphql.Do(graphql.Params{
		Schema:        seededSchema(t),
		RequestString: `{ events(since: "last tuesday") { id } }`,
	})
	assert.NotEmpty(t, result.Errors)
}

func TestEventQueryUnknownID(t *testing.T) {
	out := run(t, seededSchema(t), `{ event(id: "nope") { id } }`, nil)
	assert.Nil(t, out["event"])
}

func TestSupportedEventsQuery(t *testing.T) {
	out := run(t, seededSchema(t), `{ supportedEvents }`, nil)
	assert.Contains(t, out["supportedEvents"], "push")
	assert.Contains(t, out["supportedEvents"], "deployment_status")
}
