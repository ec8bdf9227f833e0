package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lucashmelo/painel-gestao/pkg/logger"
)

// RequestLogger loga cada request com método, rota, status, duração e o
// request-id do middleware requestid. Respostas 5xx sobem para nível error.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		rid, _ := c.Locals("requestid").(string)
		evt.
			Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
