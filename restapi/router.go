// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	eventhooks "github.com/ortelius/ghwire/events/modules/webhooks"
	"github.com/ortelius/ghwire/restapi/modules/github"
	"github.com/ortelius/ghwire/restapi/modules/requests"
	"github.com/ortelius/ghwire/restapi/modules/webhooks"
	"go.uber.org/zap"
)

// Deps holds the services the routes are wired to.
type Deps struct {
	Stars    *github.Stars
	Recorder eventhooks.EventRecorder
	Logger   *zap.Logger
}

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
func SetupRoutes(app *fiber.App, deps Deps, schema graphql.Schema) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// API Group /api/v1
	api := app.Group("/api/v1")

	api.Post("/graphql", GraphQLHandler(schema))

	// Webhook intake
	api.Post("/webhooks/github", webhooks.PostWebhook(deps.Recorder, logger))

	// Request previews
	api.Post("/requests/:kind", requests.PostPreview(logger))

	// Stars for the authenticated GitHub user
	if deps.Stars != nil {
		starred := api.Group("/github/starred")
		starred.Get("/:owner/:repo", github.GetStar(deps.Stars, logger))
		starred.Put("/:owner/:repo", github.PutStar(deps.Stars, logger))
		starred.Delete("/:owner/:repo", github.DeleteStar(deps.Stars, logger))
		starred.Post("/:owner/:repo/toggle", github.ToggleStar(deps.Stars, logger))
	}

	logger.Info("API routes initialized successfully")
}
