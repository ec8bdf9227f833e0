package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// healthChecker contrato mínimo para o healthcheck (implementado pelo pool).
type healthChecker interface {
	Healthcheck(ctx context.Context) error
}

// HealthHandler responde o estado do serviço e do banco.
type HealthHandler struct {
	db healthChecker
}

// NewHealthHandler constrói o handler de health.
func NewHealthHandler(db healthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health executa SELECT 1 no banco; degrada para 503 quando indisponível.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if err := h.db.Healthcheck(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "degraded",
			"database": "down",
		})
	}
	return c.JSON(fiber.Map{
		"status":   "ok",
		"database": "up",
	})
}
