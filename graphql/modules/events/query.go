// Package events defines the GraphQL queries for recorded webhook events.
package events

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/ghwire/events/modules/webhooks"
	"github.com/ortelius/ghwire/graphql/modules/scalars"
	"github.com/ortelius/ghwire/model"
)

// GetQueryFields returns the event queries to be mounted in the root schema.
func GetQueryFields(source EventSource) graphql.Fields {
	return graphql.Fields{
		"events": &graphql.Field{
			Type: graphql.NewList(EventType),
			Args: graphql.FieldConfigArgument{
				"event":      &graphql.ArgumentConfig{Type: graphql.String},
				"repository": &graphql.ArgumentConfig{Type: graphql.String},
				"since":      &graphql.ArgumentConfig{Type: scalars.DateTime},
				"limit": &graphql.ArgumentConfig{
					Type:         graphql.Int,
					DefaultValue: DefaultLimit,
					Description:  "Maximum number of events, newest first. Must be positive.",
				},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				name, _ := p.Args["event"].(string)
				repository, _ := p.Args["repository"].(string)
				limit, _ := p.Args["limit"].(int)

				var since *model.DateTime
				if d, ok := p.Args["since"].(model.DateTime); ok {
					since = &d
				}
				return ResolveEvents(source, name, repository, since, limit)
			},
		},
		"event": &graphql.Field{
			Type: EventType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, _ := p.Args["id"].(string)
				return ResolveEvent(source, id)
			},
		},
		"releases": &graphql.Field{
			Type: graphql.NewList(ReleaseType),
			Args: graphql.FieldConfigArgument{
				"repository": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				repository, _ := p.Args["repository"].(string)
				return ResolveReleases(source, repository)
			},
		},
		"supportedEvents": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return webhooks.SupportedEvents(), nil
			},
		},
	}
}
