// Package api assembles the HTTP application.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ortelius/ghwire/graphql"
	"github.com/ortelius/ghwire/internal/config"
	"github.com/ortelius/ghwire/internal/services"
	"github.com/ortelius/ghwire/restapi"
	"github.com/ortelius/ghwire/restapi/modules/github"
	"go.uber.org/zap"
)

// NewFiberApp creates and configures a Fiber app with REST and GraphQL routes
func NewFiberApp(cfg *config.Config, store *services.EventStore, log *zap.Logger) (*fiber.App, error) {
	schema, err := graphql.CreateSchema(store)
	if err != nil {
		return nil, err
	}

	client, err := github.NewClient(github.ClientConfig{
		Token:   cfg.GitHub.Token,
		APIURL:  cfg.GitHub.APIURL,
		Timeout: cfg.GitHub.Timeout,
	})
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:     "ghwire API v1.0",
		BodyLimit:   25 * 1024 * 1024, // GitHub caps payloads at 25MB
		ReadTimeout: 60 * time.Second,
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-GitHub-Event, X-GitHub-Delivery",
		AllowMethods: "GET, POST, HEAD, PUT, DELETE, OPTIONS",
	}))

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("graphql_op", "-")
		return c.Next()
	})
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} - ${latency} ${method} ${path} ${locals:graphql_op}\n",
	}))

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "events": store.Len()})
	})

	restapi.SetupRoutes(app, restapi.Deps{
		Stars:    github.NewStars(client.Activity, log),
		Recorder: store,
		Logger:   log,
	}, schema)

	return app, nil
}
