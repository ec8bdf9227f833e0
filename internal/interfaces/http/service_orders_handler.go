package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucashmelo/painel-gestao/internal/application/dto"
	"github.com/lucashmelo/painel-gestao/internal/application/report"
)

// ServiceOrdersHandler módulo de ordens de serviço e seu drill-down de itens.
type ServiceOrdersHandler struct {
	svc *report.ServiceOrdersService
}

// NewServiceOrdersHandler constrói o handler de OS.
func NewServiceOrdersHandler(svc *report.ServiceOrdersService) *ServiceOrdersHandler {
	return &ServiceOrdersHandler{svc: svc}
}

// Refresh submete o período e o status único; limpa a seleção de drill-down.
func (h *ServiceOrdersHandler) Refresh(c *fiber.Ctx) error {
	in, err := parseFilter(c)
	if err != nil {
		return respondError(c, err)
	}
	spec, err := in.ToSpec()
	if err != nil {
		return respondError(c, err)
	}
	r, err := h.svc.Refresh(c.Context(), GetUsername(c), spec)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RefreshResponse{LoadCounter: r.LoadCounter, RowCount: len(r.Rows), Warning: r.Warning})
}

// Grid devolve a tabela formatada; na primeira entrada carrega o mês corrente.
func (h *ServiceOrdersHandler) Grid(c *fiber.Ctx) error {
	user := GetUsername(c)
	r, err := h.svc.Bootstrap(c.Context(), user)
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

// Selection registra os códigos de OS selecionados no grid; eles parametrizam
// a consulta filha de itens.
func (h *ServiceOrdersHandler) Selection(c *fiber.Ctx) error {
	var in dto.SelectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.svc.Select(GetUsername(c), in.IDs); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"selected": h.svc.Selected(GetUsername(c))})
}

// ProductsGrid itens das OS selecionadas; vazio quando não há seleção.
func (h *ServiceOrdersHandler) ProductsGrid(c *fiber.Ctx) error {
	user := GetUsername(c)
	r, err := h.svc.Bootstrap(c.Context(), user)
	if err != nil {
		return respondError(c, err)
	}
	table, err := h.svc.ProductsTable(c.Context(), user)
	if err != nil {
		return respondError(c, err)
	}
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	return c.JSON(dto.FromTable(table, r.LoadCounter, r.Warning, page))
}

// Totals cards do módulo: contagem de OS por status.
func (h *ServiceOrdersHandler) Totals(c *fiber.Ctx) error {
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
func (h *ServiceOrdersHandler) UpdateInfo(c *fiber.Ctx) error {
	info, err := h.svc.UpdateInfo(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromUpdateLog(info))
}

// Export baixa o Result corrente em csv, xlsx ou pdf.
func (h *ServiceOrdersHandler) Export(c *fiber.Ctx) error {
	table, err := h.svc.Table(GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, table, "ordens_servico", c.Params("format"))
}

// ProductsExport baixa os itens das OS selecionadas em csv, xlsx ou pdf.
func (h *ServiceOrdersHandler) ProductsExport(c *fiber.Ctx) error {
	table, err := h.svc.ProductsTable(c.Context(), GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, table, "produtos_os", c.Params("format"))
}
