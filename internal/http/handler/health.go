package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthCheck godoc
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} statusPayload
// @Router /health [get]
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return writeStatus(c, fiber.StatusOK, statusOK, "App is running!")
	}
}

// Readiness godoc
// @Summary Readiness probe, checks database connectivity
// @Produce json
// @Success 200 {object} statusPayload
// @Failure 503 {object} statusPayload
// @Router /ready [get]
func Readiness(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "dependency unavailable")
		}
		return writeStatus(c, fiber.StatusOK, statusOK, "database reachable")
	}
}
