package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucashmelo/painel-gestao/internal/application/dto"
)

// RequirePermission devolve um middleware Fiber que verifica se o token do
// usuário carrega a capacidade do módulo. Deve ser usado DEPOIS de
// AuthMiddleware (precisa de LocalPermissions).
//
// Comportamento:
//   - 401 Unauthorized → sem usuário no contexto (auth não rodou).
//   - 403 Forbidden    → usuário autenticado sem a capacidade do módulo.
func RequirePermission(module string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUsername(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "usuário não encontrado no token",
			})
		}
		for _, p := range GetPermissions(c) {
			if p == module {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "MODULE_FORBIDDEN",
			Message: "sem permissão para o módulo '" + module + "'",
		})
	}
}
