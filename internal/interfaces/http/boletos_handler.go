package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucashmelo/painel-gestao/internal/application/dto"
	"github.com/lucashmelo/painel-gestao/internal/application/report"
)

// BoletosHandler módulo de boletos.
type BoletosHandler struct {
	svc *report.BoletosService
}

// NewBoletosHandler constrói o handler de boletos.
func NewBoletosHandler(svc *report.BoletosService) *BoletosHandler {
	return &BoletosHandler{svc: svc}
}

// Refresh submete o período; o filtro age sobre o timestamp de envio.
func (h *BoletosHandler) Refresh(c *fiber.Ctx) error {
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
func (h *BoletosHandler) Grid(c *fiber.Ctx) error {
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

// Totals cards do módulo: contagens por status do fluxo de cobrança.
func (h *BoletosHandler) Totals(c *fiber.Ctx) error {
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
func (h *BoletosHandler) UpdateInfo(c *fiber.Ctx) error {
	info, err := h.svc.UpdateInfo(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromUpdateLog(info))
}

// Export baixa o Result corrente em csv, xlsx ou pdf.
func (h *BoletosHandler) Export(c *fiber.Ctx) error {
	table, err := h.svc.Table(GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, table, "boletos", c.Params("format"))
}
