package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	serviceName string
	db          Pinger
}

func NewHealthHandler(serviceName string, db Pinger) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, db: db}
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("Hello Next Level Programmers!")
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if err := h.db.PingContext(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "unavailable",
			"service": h.serviceName,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "ok", "service": h.serviceName})
}
