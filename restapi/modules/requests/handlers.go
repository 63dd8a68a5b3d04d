package requests

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ortelius/ghwire/model"
	"go.uber.org/zap"
)

// PostPreview builds the request named by the :kind parameter and responds with
// its wire body.
func PostPreview(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in PreviewInput
		if err := json.Unmarshal(c.Body(), &in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body: " + err.Error()})
		}

		kind := c.Params("kind")
		req, err := Build(kind, in)
		if err != nil {
			if errors.Is(err, ErrUnknownKind) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error(), "kinds": Kinds})
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		body, err := model.Encode(req).MarshalJSON()
		if err != nil {
			logger.Error("Failed to encode request preview", zap.String("kind", kind), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}
}
