package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucashmelo/painel-gestao/internal/application/dto"
	"github.com/lucashmelo/painel-gestao/internal/application/report"
)

// ReceivablesHandler módulo de contas a receber.
type ReceivablesHandler struct {
	svc *report.ReceivablesService
}

// NewReceivablesHandler constrói o handler de contas a receber.
func NewReceivablesHandler(svc *report.ReceivablesService) *ReceivablesHandler {
	return &ReceivablesHandler{svc: svc}
}

// Refresh submete o formulário (período de vencimento + formas de pagamento).
func (h *ReceivablesHandler) Refresh(c *fiber.Ctx) error {
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
func (h *ReceivablesHandler) Grid(c *fiber.Ctx) error {
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

// Totals cards do módulo: quantidade de títulos e soma a receber.
func (h *ReceivablesHandler) Totals(c *fiber.Ctx) error {
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
func (h *ReceivablesHandler) UpdateInfo(c *fiber.Ctx) error {
	info, err := h.svc.UpdateInfo(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromUpdateLog(info))
}

// Export baixa o Result corrente em csv, xlsx ou pdf.
func (h *ReceivablesHandler) Export(c *fiber.Ctx) error {
	table, err := h.svc.Table(GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, table, "contas_receber", c.Params("format"))
}
