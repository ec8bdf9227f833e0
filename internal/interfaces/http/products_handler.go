package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucashmelo/painel-gestao/internal/application/dto"
	"github.com/lucashmelo/painel-gestao/internal/application/report"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
)

// ProductsHandler módulo de catálogo de produtos: listagem, busca e recorte
// de estoque baixo.
type ProductsHandler struct {
	svc *report.ProductsService
}

// NewProductsHandler constrói o handler de produtos.
func NewProductsHandler(svc *report.ProductsService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Grid devolve o catálogo; ?q=termo busca por nome/código interno/código de
// barras e ?low_stock=1 (com ?threshold=n opcional) aplica o recorte de
// estoque baixo.
func (h *ProductsHandler) Grid(c *fiber.Ctx) error {
	user := GetUsername(c)

	var (
		r   *report.Result[entity.Product]
		err error
	)
	switch {
	case c.QueryBool("low_stock"):
		r, err = h.svc.LowStock(c.Context(), user, int64(c.QueryInt("threshold")))
	case c.Query("q") != "":
		r, err = h.svc.Search(c.Context(), user, c.Query("q"))
	default:
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

// Totals cards do módulo: contagem, estoque baixo e valorização do estoque;
// ?threshold=n ajusta o limiar.
func (h *ProductsHandler) Totals(c *fiber.Ctx) error {
	user := GetUsername(c)
	if _, err := h.svc.Bootstrap(c.Context(), user); err != nil {
		return respondError(c, err)
	}
	totals, err := h.svc.Totals(user, int64(c.QueryInt("threshold")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(totals)
}

// UpdateInfo frescor da fonte do módulo.
func (h *ProductsHandler) UpdateInfo(c *fiber.Ctx) error {
	info, err := h.svc.UpdateInfo(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromUpdateLog(info))
}

// Export baixa o catálogo corrente em csv, xlsx ou pdf.
func (h *ProductsHandler) Export(c *fiber.Ctx) error {
	table, err := h.svc.Table(GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, table, "produtos", c.Params("format"))
}
