package report

import (
	"context"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/internal/domain/aggregate"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
	"github.com/lucashmelo/painel-gestao/internal/domain/normalize"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

// SalesService módulo de vendas: período + vendedores ativos + gate
// "Em andamento", com métricas de entradas×parcelado e margem.
type SalesService struct {
	engine   *Engine[entity.Sale]
	sales    repository.SalesRepository
	payments repository.SalePaymentsRepository
	updates  repository.UpdateLogRepository
}

// NewSalesService constrói o serviço de vendas.
func NewSalesService(
	sales repository.SalesRepository,
	payments repository.SalePaymentsRepository,
	updates repository.UpdateLogRepository,
	opts ...Option[entity.Sale],
) *SalesService {
	s := &SalesService{sales: sales, payments: payments, updates: updates}
	opts = append([]Option[entity.Sale]{WithHistorical[entity.Sale]()}, opts...)
	s.engine = NewEngine(headers(saleGridColumns), s.fetch, opts...)
	return s
}

func (s *SalesService) fetch(ctx context.Context, spec filter.Spec) ([]entity.Sale, error) {
	records, err := s.sales.Filtered(ctx, spec)
	if err != nil {
		return nil, err
	}
	return normalize.SaleRows(records), nil
}

// Bootstrap primeira entrada do usuário no módulo (mês corrente).
func (s *SalesService) Bootstrap(ctx context.Context, user string) (*Result[entity.Sale], error) {
	return s.engine.Bootstrap(ctx, user)
}

// Refresh recarrega o Result do usuário com o spec do formulário.
func (s *SalesService) Refresh(ctx context.Context, user string, spec filter.Spec) (*Result[entity.Sale], error) {
	return s.engine.Refresh(ctx, user, spec)
}

// Current devolve o Result corrente do usuário.
func (s *SalesService) Current(user string) (*Result[entity.Sale], bool) {
	return s.engine.Current(user)
}

// Metrics calcula (memoizado por carga) as métricas dos cards: contagem,
// total, ticket médio, entradas×parcelado e margem. A divisão entradas×
// parcelado busca as parcelas das vendas do Result corrente.
func (s *SalesService) Metrics(ctx context.Context, user string) (aggregate.SalesMetrics, error) {
	return Memoized(s.engine, user, "metrics", func(r *Result[entity.Sale]) (aggregate.SalesMetrics, error) {
		records, err := s.payments.ForSaleIDs(ctx, saleIDs(r.Rows))
		if err != nil {
			return aggregate.SalesMetrics{}, err
		}
		payments := normalize.SalePaymentRows(records)
		return aggregate.ComputeSalesMetrics(r.Rows, payments, s.engine.Clock()), nil
	})
}

// ByPerson ranking de vendedores do Result corrente; topN <= 0 devolve todos.
func (s *SalesService) ByPerson(user string, topN int) ([]aggregate.SellerSummary, error) {
	r, ok := s.engine.Current(user)
	if !ok {
		return nil, domainNotLoaded()
	}
	return aggregate.SalesByPerson(r.Rows, topN), nil
}

// Trend série temporal de vendas do Result corrente, no bucket pedido.
func (s *SalesService) Trend(user string, bucket aggregate.TrendBucket) ([]aggregate.TrendPoint, error) {
	r, ok := s.engine.Current(user)
	if !ok {
		return nil, domainNotLoaded()
	}
	return aggregate.SalesTrend(r.Rows, bucket), nil
}

// UpdateInfo frescor da fonte de vendas.
func (s *SalesService) UpdateInfo(ctx context.Context) (entity.UpdateLog, error) {
	return updateInfo(ctx, s.updates, SourceSales)
}

// UpdateHistory histórico de cargas da fonte de vendas.
func (s *SalesService) UpdateHistory(ctx context.Context, limit int) ([]entity.UpdateLog, error) {
	return updateHistory(ctx, s.updates, SourceSales, limit)
}

// Table monta a tabela apresentável do Result corrente do usuário.
func (s *SalesService) Table(user string) (grid.Table, error) {
	r, ok := s.engine.Current(user)
	if !ok {
		return grid.Table{}, domainNotLoaded()
	}
	return grid.Build("Vendas", saleGridColumns, r.Rows), nil
}

var saleGridColumns = []grid.Column[entity.Sale]{
	{Header: "Código", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(s entity.Sale) any { return s.Code }},
	{Header: "Data", Width: 1, Align: grid.AlignCenter, Kind: grid.KindDate, Value: func(s entity.Sale) any { return s.Date }},
	{Header: "Cliente", Width: 2, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(s entity.Sale) any { return s.CustomerName }},
	{Header: "Vendedor", Width: 2, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(s entity.Sale) any { return s.SellerName }},
	{Header: "Status", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(s entity.Sale) any { return s.Status }},
	{Header: "Canal", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(s entity.Sale) any { return s.SalesChannel }},
	{Header: "Prazo Entrega", Width: 1, Align: grid.AlignCenter, Kind: grid.KindDate, Value: func(s entity.Sale) any { return s.DeliveryDeadline }},
	{Header: "Desconto", Width: 1, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(s entity.Sale) any { return s.DiscountValue }},
	{Header: "Total", Width: 2, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(s entity.Sale) any { return s.TotalValue }},
}
