package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucashmelo/painel-gestao/internal/application/dto"
	"github.com/lucashmelo/painel-gestao/internal/application/report"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
)

// CustomersHandler módulo de clientes: listagem, busca e consulta por id.
type CustomersHandler struct {
	svc *report.CustomersService
}

// NewCustomersHandler constrói o handler de clientes.
func NewCustomersHandler(svc *report.CustomersService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

// Grid devolve a listagem; ?q=termo aplica a busca por nome, razão social,
// CPF/CNPJ ou email.
func (h *CustomersHandler) Grid(c *fiber.Ctx) error {
	user := GetUsername(c)
	term := c.Query("q")

	var (
		r   *report.Result[entity.Customer]
		err error
	)
	if term != "" {
		r, err = h.svc.Search(c.Context(), user, term)
	} else {
		r, err = h.svc.Bootstrap(c.Context(), user)
	}
	if err != nil {
		return respondError(c, err)
	}
	table, err := h.svc.Table(user)
	if err != nil {
		return respondError(c, err)
	}
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	return c.JSON(dto.FromTable(table, r.LoadCounter, r.Warning, page))
}

// ByID consulta um cliente pela chave de negócio.
func (h *CustomersHandler) ByID(c *fiber.Ctx) error {
	customer, err := h.svc.ByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Totals cards do módulo: ativos e por tipo de pessoa.
func (h *CustomersHandler) Totals(c *fiber.Ctx) error {
	user := GetUsername(c)
	if _, err := h.svc.Bootstrap(c.Context(), user); err != nil {
		return respondError(c, err)
	}
	totals, err := h.svc.Totals(user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(totals)
}

// UpdateInfo frescor da fonte do módulo.
func (h *CustomersHandler) UpdateInfo(c *fiber.Ctx) error {
	info, err := h.svc.UpdateInfo(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromUpdateLog(info))
}

// Export baixa a listagem corrente em csv, xlsx ou pdf.
func (h *CustomersHandler) Export(c *fiber.Ctx) error {
	table, err := h.svc.Table(GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, table, "clientes", c.Params("format"))
}
