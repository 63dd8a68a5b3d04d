// Package scalars defines custom GraphQL scalars.
package scalars

import (
	"math"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/ortelius/ghwire/model"
)

// DateTime is serialized as an RFC 3339 UTC string. Inputs may be an RFC 3339
// string or integer seconds since the Unix epoch.
var DateTime = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "DateTime",
	Description: "An RFC 3339 date-time in UTC. Accepts a date-time string or seconds since the Unix epoch.",
	Serialize:   serializeDateTime,
	ParseValue: func(value interface{}) interface{} {
		// JSON variables arrive as float64
		if f, ok := value.(float64); ok && f == math.Trunc(f) && f > math.MinInt64 && f < math.MaxInt64 {
			value = int64(f)
		}
		v, err := model.FromGo(value)
		if err != nil {
			return nil
		}
		return decodeOrNil(v)
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		switch lit := valueAST.(type) {
		case *ast.StringValue:
			return decodeOrNil(model.String(lit.Value))
		case *ast.IntValue:
			v, err := model.ParseJSON([]byte(lit.Value))
			if err != nil {
				return nil
			}
			return decodeOrNil(v)
		}
		return nil
	},
})

func serializeDateTime(value interface{}) interface{} {
	switch v := value.(type) {
	case model.DateTime:
		return v.String()
	case *model.DateTime:
		if v == nil {
			return nil
		}
		return v.String()
	}
	return nil
}

// decodeOrNil returns nil on failure, which graphql-go reports as an invalid value.
func decodeOrNil(v model.Value) interface{} {
	d, err := model.DecodeDateTime(v, true)
	if err != nil {
		return nil
	}
	return d
}
