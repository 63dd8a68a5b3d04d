package scalars

import (
	"testing"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/ortelius/ghwire/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeParseValue(t *testing.T) {
	want, err := model.DateTimeFromUnix(1430483696)
	require.NoError(t, err)

	for _, in := range []interface{}{"2015-05-01T12:34:56Z", "2015-05-01T14:34:56+02:00", float64(1430483696), 1430483696, int64(1430483696)} {
		got, ok := DateTime.ParseValue(in).(model.DateTime)
		require.True(t, ok, "%v", in)
		assert.True(t, got.Equal(want), "%v", in)
	}

	for _, in := range []interface{}{"yesterday", 1.5, true, nil, float64(1e300)} {
		assert.Nil(t, DateTime.ParseValue(in), "%v", in)
	}
}

func TestDateTimeParseLiteral(t *testing.T) {
	got, ok := DateTime.ParseLiteral(&ast.IntValue{Kind: "IntValue", Value: "1430483696"}).(model.DateTime)
	require.True(t, ok)
	assert.Equal(t, "2015-05-01T12:34:56Z", got.String())

	got, ok = DateTime.ParseLiteral(&ast.StringValue{Kind: "StringValue", Value: "2015-05-01T12:34:56Z"}).(model.DateTime)
	require.True(t, ok)
	assert.Equal(t, int64(1430483696), got.Unix())

	assert.Nil(t, DateTime.ParseLiteral(&ast.IntValue{Kind: "IntValue", Value: "99999999999999999999"}))
	assert.Nil(t, DateTime.ParseLiteral(&ast.BooleanValue{Kind: "BooleanValue", Value: true}))
}

func TestDateTimeSerialize(t *testing.T) {
	d, err := model.DateTimeFromUnix(0)
	require.NoError(t, err)

	assert.Equal(t, "1970-01-01T00:00:00Z", DateTime.Serialize(d))
	assert.Equal(t, "1970-01-01T00:00:00Z", DateTime.Serialize(&d))
	assert.Nil(t, DateTime.Serialize((*model.DateTime)(nil)))
	assert.Nil(t, DateTime.Serialize("not a date"))
}
