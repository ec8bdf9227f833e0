package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lucashmelo/painel-gestao/internal/application/dto"
	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/internal/domain"
	"github.com/lucashmelo/painel-gestao/internal/infrastructure/export"
)

// respondError traduz a taxonomia de erros do domínio em status HTTP com o
// envelope padrão. Erros desconhecidos viram 500 sem vazar detalhes internos.
func respondError(c *fiber.Ctx, err error) error {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validation.Error()})
	}
	var rule *domain.BusinessRuleError
	if errors.As(err, &rule) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "BUSINESS_RULE", Message: rule.Message})
	}
	var dbErr *domain.DatabaseError
	if errors.As(err, &dbErr) {
		if dbErr.Timeout {
			return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Code: "DB_TIMEOUT", Message: "a consulta excedeu o tempo limite"})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_ERROR", Message: "falha ao consultar o banco de dados"})
	}
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuário ou senha inválidos"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "usuário desativado"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro não encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno"})
}

// parseFilter decodifica e valida o corpo do formulário de filtro.
func parseFilter(c *fiber.Ctx) (dto.FilterRequest, error) {
	var in dto.FilterRequest
	if err := c.BodyParser(&in); err != nil {
		return in, &domain.ValidationError{Field: "body", Message: "corpo inválido"}
	}
	return in, nil
}

// sendExport serializa a tabela no formato pedido e responde como download.
func sendExport(c *fiber.Ctx, t grid.Table, prefix, format string) error {
	now := time.Now()
	var (
		payload     []byte
		contentType string
		err         error
	)
	switch format {
	case "csv":
		payload, err = export.CSV(t)
		contentType = "text/csv; charset=utf-8"
	case "xlsx":
		payload, err = export.XLSX(t)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		payload, err = export.PDF(t, now)
		contentType = "application/pdf"
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de exportação desconhecido: " + format})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: "falha ao gerar o arquivo"})
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename(prefix, format, now)+`"`)
	return c.Send(payload)
}
