// Package github provides GitHub integration handlers for the REST API.
package github

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/ortelius/ghwire/util"
	"go.uber.org/zap"
)

func repoParam(c *fiber.Ctx) (util.RepoName, error) {
	return util.ParseRepoName(c.Params("owner") + "/" + c.Params("repo"))
}

// upstreamError maps a failed GitHub call to a response. Client errors reported
// by GitHub keep their status; everything else is a bad gateway.
func upstreamError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	status := UpstreamStatus(err)
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusTooManyRequests:
	default:
		status = fiber.StatusBadGateway
	}
	logger.Warn("GitHub request failed", zap.Error(err), zap.Int("status", status))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// GetStar reports whether the repository is starred.
func GetStar(stars *Stars, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo, err := repoParam(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		starred, err := stars.IsStarred(c.UserContext(), repo)
		if err != nil {
			return upstreamError(c, logger, err)
		}
		return c.JSON(StarState{Repository: repo.String(), Starred: starred})
	}
}

// PutStar stars the repository.
func PutStar(stars *Stars, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo, err := repoParam(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if err := stars.Star(c.UserContext(), repo); err != nil {
			return upstreamError(c, logger, err)
		}
		return c.JSON(StarState{Repository: repo.String(), Starred: true})
	}
}

// DeleteStar unstars the repository.
func DeleteStar(stars *Stars, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo, err := repoParam(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if err := stars.Unstar(c.UserContext(), repo); err != nil {
			return upstreamError(c, logger, err)
		}
		return c.JSON(StarState{Repository: repo.String(), Starred: false})
	}
}

// ToggleStar flips the star on the repository.
func ToggleStar(stars *Stars, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo, err := repoParam(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		starred, err := stars.Toggle(c.UserContext(), repo)
		if err != nil {
			return upstreamError(c, logger, err)
		}
		return c.JSON(StarState{Repository: repo.String(), Starred: starred})
	}
}
