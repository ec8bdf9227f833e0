package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucashmelo/painel-gestao/internal/application/dto"
	"github.com/lucashmelo/painel-gestao/internal/application/report"
)

// OrdersHandler módulo de pedidos e a consolidação de produtos em pedidos.
type OrdersHandler struct {
	svc      *report.OrdersService
	products *report.OrderProductsService
}

// NewOrdersHandler constrói o handler de pedidos.
func NewOrdersHandler(svc *report.OrdersService, products *report.OrderProductsService) *OrdersHandler {
	return &OrdersHandler{svc: svc, products: products}
}

// Refresh submete o formulário de filtro (inclui período de prazo de entrega
// e status único) e recarrega o Result do usuário.
func (h *OrdersHandler) Refresh(c *fiber.Ctx) error {
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
func (h *OrdersHandler) Grid(c *fiber.Ctx) error {
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

// Totals cards do módulo: contagem e soma dos pedidos.
func (h *OrdersHandler) Totals(c *fiber.Ctx) error {
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
func (h *OrdersHandler) UpdateInfo(c *fiber.Ctx) error {
	info, err := h.svc.UpdateInfo(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromUpdateLog(info))
}

// Export baixa o Result corrente em csv, xlsx ou pdf.
func (h *OrdersHandler) Export(c *fiber.Ctx) error {
	table, err := h.svc.Table(GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, table, "pedidos", c.Params("format"))
}

// ProductsGrid consolidação de produtos nos pedidos do Result corrente.
func (h *OrdersHandler) ProductsGrid(c *fiber.Ctx) error {
	user := GetUsername(c)
	r, err := h.svc.Bootstrap(c.Context(), user)
	if err != nil {
		return respondError(c, err)
	}
	table, err := h.products.Table(c.Context(), user)
	if err != nil {
		return respondError(c, err)
	}
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	return c.JSON(dto.FromTable(table, r.LoadCounter, r.Warning, page))
}

// ProductsExport baixa a consolidação em csv, xlsx ou pdf.
func (h *OrdersHandler) ProductsExport(c *fiber.Ctx) error {
	table, err := h.products.Table(c.Context(), GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, table, "produtos_pedidos", c.Params("format"))
}
