package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lucashmelo/painel-gestao/internal/application/dto"
	"github.com/lucashmelo/painel-gestao/pkg/jwt"
)

// Locals keys para usuário e permissões no Fiber.
const (
	LocalUsername    = "username"
	LocalPermissions = "permissions"
)

// AuthMiddleware valida o Bearer Token JWT e coloca usuário e permissões em
// c.Locals. A chave de sessão dos relatórios é o username autenticado.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		username, permissions, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUsername, username)
		c.Locals(LocalPermissions, permissions)
		return c.Next()
	}
}

// GetUsername devolve o usuário do contexto (após o middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPermissions devolve as permissões do contexto (após o middleware de auth).
func GetPermissions(c *fiber.Ctx) []string {
	v := c.Locals(LocalPermissions)
	if v == nil {
		return nil
	}
	s, _ := v.([]string)
	return s
}
