package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
	"github.com/lucashmelo/painel-gestao/internal/domain/normalize"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

// OrdersService módulo de pedidos: lê a mesma tabela de vendas, mas com
// filtros próprios (período de prazo de entrega, status único) e serve de
// base para a consolidação de produtos em pedidos.
type OrdersService struct {
	engine  *Engine[entity.Sale]
	sales   repository.SalesRepository
	updates repository.UpdateLogRepository
}

// NewOrdersService constrói o serviço de pedidos.
func NewOrdersService(
	sales repository.SalesRepository,
	updates repository.UpdateLogRepository,
	opts ...Option[entity.Sale],
) *OrdersService {
	s := &OrdersService{sales: sales, updates: updates}
	s.engine = NewEngine(headers(orderGridColumns), s.fetch, opts...)
	return s
}

func (s *OrdersService) fetch(ctx context.Context, spec filter.Spec) ([]entity.Sale, error) {
	records, err := s.sales.Filtered(ctx, spec)
	if err != nil {
		return nil, err
	}
	return normalize.SaleRows(records), nil
}

// Bootstrap primeira entrada do usuário no módulo (mês corrente).
func (s *OrdersService) Bootstrap(ctx context.Context, user string) (*Result[entity.Sale], error) {
	return s.engine.Bootstrap(ctx, user)
}

// Refresh recarrega os pedidos do usuário. O spec pode trazer o período de
// prazo de entrega e um status único; escolher status limpa o gate padrão.
func (s *OrdersService) Refresh(ctx context.Context, user string, spec filter.Spec) (*Result[entity.Sale], error) {
	return s.engine.Refresh(ctx, user, spec)
}

// Current devolve o Result corrente do usuário.
func (s *OrdersService) Current(user string) (*Result[entity.Sale], bool) {
	return s.engine.Current(user)
}

// SaleIDs chaves de negócio dos pedidos do Result corrente; é o parâmetro da
// consolidação de produtos em pedidos.
func (s *OrdersService) SaleIDs(user string) ([]string, error) {
	r, ok := s.engine.Current(user)
	if !ok {
		return nil, domainNotLoaded()
	}
	return saleIDs(r.Rows), nil
}

// OrdersTotals totais dos cards do módulo de pedidos.
type OrdersTotals struct {
	Count      int
	TotalValue decimal.Decimal
}

// Totals contagem e soma dos pedidos do Result corrente (memoizado).
func (s *OrdersService) Totals(user string) (OrdersTotals, error) {
	return Memoized(s.engine, user, "totals", func(r *Result[entity.Sale]) (OrdersTotals, error) {
		t := OrdersTotals{Count: len(r.Rows)}
		for _, row := range r.Rows {
			t.TotalValue = t.TotalValue.Add(row.TotalValue)
		}
		return t, nil
	})
}

// UpdateInfo frescor da fonte de vendas (pedidos compartilham o ETL).
func (s *OrdersService) UpdateInfo(ctx context.Context) (entity.UpdateLog, error) {
	return updateInfo(ctx, s.updates, SourceSales)
}

// Table monta a tabela apresentável do Result corrente do usuário.
func (s *OrdersService) Table(user string) (grid.Table, error) {
	r, ok := s.engine.Current(user)
	if !ok {
		return grid.Table{}, domainNotLoaded()
	}
	return grid.Build("Pedidos", orderGridColumns, r.Rows), nil
}

var orderGridColumns = []grid.Column[entity.Sale]{
	{Header: "Código", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(s entity.Sale) any { return s.Code }},
	{Header: "Data", Width: 1, Align: grid.AlignCenter, Kind: grid.KindDate, Value: func(s entity.Sale) any { return s.Date }},
	{Header: "Prazo Entrega", Width: 1, Align: grid.AlignCenter, Kind: grid.KindDate, Value: func(s entity.Sale) any { return s.DeliveryDeadline }},
	{Header: "Cliente", Width: 3, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(s entity.Sale) any { return s.CustomerName }},
	{Header: "Vendedor", Width: 2, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(s entity.Sale) any { return s.SellerName }},
	{Header: "Status", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(s entity.Sale) any { return s.Status }},
	{Header: "Cond. Pagamento", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(s entity.Sale) any { return s.PaymentTerm }},
	{Header: "Total", Width: 2, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(s entity.Sale) any { return s.TotalValue }},
}
