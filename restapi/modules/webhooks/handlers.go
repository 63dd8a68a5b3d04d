// Package webhooks provides the HTTP intake for GitHub webhook deliveries.
package webhooks

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ortelius/ghwire/events/modules/webhooks"
	"github.com/ortelius/ghwire/model"
	"go.uber.org/zap"
)

// Delivery headers set by GitHub.
const (
	HeaderEvent    = "X-GitHub-Event"
	HeaderDelivery = "X-GitHub-Delivery"
)

// PostWebhook decodes a delivery and records it.
func PostWebhook(recorder webhooks.EventRecorder, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Get(HeaderEvent)
		if name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing " + HeaderEvent + " header"})
		}

		// fiber reuses the request buffer once the handler returns
		delivery := webhooks.Delivery{
			ID:   c.Get(HeaderDelivery),
			Name: name,
			Body: append([]byte{}, c.Body()...),
		}

		event, err := webhooks.HandleWebhookDelivery(c.UserContext(), logger, recorder, delivery)
		switch {
		case err == nil:
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"id": event.ID, "event": event.Name})

		case errors.Is(err, webhooks.ErrUnsupportedEvent):
			logger.Debug("Ignoring webhook delivery", zap.String("event", name))
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"id": event.ID, "event": name, "ignored": true})

		case errors.Is(err, webhooks.ErrDuplicateDelivery):
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": event.ID, "event": name, "duplicate": true})

		case errors.Is(err, webhooks.ErrInvalidPayload):
			logger.Warn("Rejected webhook delivery", zap.String("id", event.ID), zap.String("event", name), zap.Error(err))
			resp := fiber.Map{"error": err.Error()}
			var de *model.DecodeError
			if errors.As(err, &de) {
				resp["field"] = de.Field
				resp["value"] = de.Value
			}
			return c.Status(fiber.StatusBadRequest).JSON(resp)
		}

		logger.Error("Failed to record webhook delivery", zap.String("id", event.ID), zap.String("event", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record delivery"})
	}
}
