package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deploymentJSON = `{
  "url": "https://api.github.com/repos/octo/hello/deployments/1",
  "id": 1,
  "sha": "a84d88e7554fc1fa21bcbc4efae3c782a70d2b9d",
  "ref": "topic-branch",
  "task": "deploy",
  "payload": {"deploy": "migrate"},
  "environment": "production",
  "description": "Deploy request from hubot",
  "creator": {"login": "octocat", "id": 1},
  "created_at": "2012-07-20T01:19:13Z",
  "updated_at": 1342747153,
  "statuses_url": "https://api.github.com/repos/octo/hello/deployments/1/statuses",
  "repository_url": "https://api.github.com/repos/octo/hello"
}`

func TestDecodeDeployment(t *testing.T) {
	var d Deployment
	require.NoError(t, Decode([]byte(deploymentJSON), &d))

	assert.Equal(t, uint64(1), d.ID)
	assert.Equal(t, "topic-branch", d.Ref)
	assert.Equal(t, "octocat", d.Creator.Login)
	assert.JSONEq(t, `{"deploy":"migrate"}`, string(d.Payload))
	assert.Equal(t, "2012-07-20T01:19:13Z", d.CreatedAt.String())
	assert.True(t, d.UpdatedAt.Equal(d.CreatedAt))
}

func TestDecodeNamesFailingField(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		v     any
		field string
		value string
		err   error
	}{
		{
			name:  "top level",
			doc:   `{"id":1,"created_at":"soon","updated_at":"2012-07-20T01:19:13Z"}`,
			v:     &Deployment{},
			field: "created_at",
			value: `"soon"`,
			err:   ErrParseFailure,
		},
		{
			name:  "nested pointer",
			doc:   `{"id":1,"closed_at":true}`,
			v:     &Pull{},
			field: "closed_at",
			value: "true",
			err:   ErrFormatMismatch,
		},
		{
			name:  "slice element",
			doc:   `{"id":1,"created_at":"2012-07-20T01:19:13Z","assets":[{"id":1,"created_at":0,"updated_at":0},{"id":2,"created_at":0,"updated_at":99999999999999}]}`,
			v:     &Release{},
			field: "assets[1].updated_at",
			value: "99999999999999",
			err:   ErrIllegalInstant,
		},
		{
			name:  "unsigned overflow",
			doc:   `{"files":{"a.txt":{"size":1}},"created_at":0,"updated_at":18446744073709551615}`,
			v:     &Gist{},
			field: "updated_at",
			value: "18446744073709551615",
			err:   ErrRangeFailure,
		},
		{
			name:  "nested record",
			doc:   `{"head":{"label":"x","repo":{"id":1,"created_at":0,"updated_at":0,"pushed_at":[]}}}`,
			v:     &Pull{},
			field: "head.repo.pushed_at",
			value: "[]",
			err:   ErrFormatMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decode([]byte(tt.doc), tt.v)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.field, de.Field)
			assert.Equal(t, tt.value, de.Value)
			assert.Contains(t, err.Error(), `field "`+tt.field+`"`)
		})
	}
}

func TestDecodeLeavesTargetUntouchedOnFailure(t *testing.T) {
	k := Key{ID: 7, Title: "kept"}
	err := Decode([]byte(`{"id":8,"title":"replaced","created_at":"bad"}`), &k)
	require.Error(t, err)
	assert.Equal(t, uint64(7), k.ID)
	assert.Equal(t, "kept", k.Title)
}

func TestDecodeOtherErrors(t *testing.T) {
	var k Key
	err := Decode([]byte(`{"id":"seven"}`), &k)
	require.Error(t, err)
	var te *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &te)

	assert.Error(t, Decode([]byte(`{`), &k))

	var invalid *json.InvalidUnmarshalError
	assert.ErrorAs(t, Decode([]byte(`{}`), k), &invalid)
	assert.ErrorAs(t, Decode([]byte(`{}`), (*Key)(nil)), &invalid)
}

func TestDecodeEmbeddedFields(t *testing.T) {
	type wrapped struct {
		Key
		Extra string `json:"extra"`
	}
	var w wrapped
	err := Decode([]byte(`{"extra":"x","created_at":{}}`), &w)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "created_at", de.Field)
}
