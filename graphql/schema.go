// Package graphql assembles the root GraphQL schema.
package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/ghwire/graphql/modules/events"
)

// CreateSchema builds the root schema over the given event source.
func CreateSchema(source events.EventSource) (graphql.Schema, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "RootQuery",
		Fields: events.GetQueryFields(source),
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: rootQuery,
	})
}
