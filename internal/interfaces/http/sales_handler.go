package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucashmelo/painel-gestao/internal/application/dto"
	"github.com/lucashmelo/painel-gestao/internal/application/report"
	"github.com/lucashmelo/painel-gestao/internal/domain/aggregate"
)

// SalesHandler módulo de vendas: refresh, grid, cards, ranking, série
// temporal e exportação.
type SalesHandler struct {
	svc *report.SalesService
}

// NewSalesHandler constrói o handler de vendas.
func NewSalesHandler(svc *report.SalesService) *SalesHandler {
	return &SalesHandler{svc: svc}
}

// Refresh submete o formulário de filtro e recarrega o Result do usuário.
func (h *SalesHandler) Refresh(c *fiber.Ctx) error {
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
func (h *SalesHandler) Grid(c *fiber.Ctx) error {
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

// Metrics devolve os cards do módulo (contagem, total, ticket médio,
// entradas×parcelado e margem).
func (h *SalesHandler) Metrics(c *fiber.Ctx) error {
	user := GetUsername(c)
	if _, err := h.svc.Bootstrap(c.Context(), user); err != nil {
		return respondError(c, err)
	}
	metrics, err := h.svc.Metrics(c.Context(), user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(metrics)
}

// ByPerson ranking de vendedores; ?top=n trunca a lista.
func (h *SalesHandler) ByPerson(c *fiber.Ctx) error {
	summaries, err := h.svc.ByPerson(GetUsername(c), c.QueryInt("top"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summaries)
}

// Trend série temporal; ?bucket=day|week|month (padrão day).
func (h *SalesHandler) Trend(c *fiber.Ctx) error {
	bucket := aggregate.TrendBucket(c.Query("bucket", string(aggregate.BucketDay)))
	switch bucket {
	case aggregate.BucketDay, aggregate.BucketWeek, aggregate.BucketMonth:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bucket deve ser day, week ou month"})
	}
	points, err := h.svc.Trend(GetUsername(c), bucket)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(points)
}

// UpdateInfo frescor da fonte do módulo.
func (h *SalesHandler) UpdateInfo(c *fiber.Ctx) error {
	info, err := h.svc.UpdateInfo(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromUpdateLog(info))
}

// UpdateHistory histórico de cargas; ?limit=n.
func (h *SalesHandler) UpdateHistory(c *fiber.Ctx) error {
	logs, err := h.svc.UpdateHistory(c.Context(), c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.UpdateInfoResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.FromUpdateLog(l))
	}
	return c.JSON(out)
}

// Export baixa o Result corrente em csv, xlsx ou pdf.
func (h *SalesHandler) Export(c *fiber.Ctx) error {
	table, err := h.svc.Table(GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, table, "vendas", c.Params("format"))
}
