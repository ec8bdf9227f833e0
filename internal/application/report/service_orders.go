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

// ServiceOrdersService módulo de ordens de serviço, com a consulta filha de
// itens parametrizada pelas linhas selecionadas no grid.
type ServiceOrdersService struct {
	engine   *Engine[entity.ServiceOrder]
	orders   repository.ServiceOrdersRepository
	products repository.ServiceOrderProductsRepository
	updates  repository.UpdateLogRepository
}

// NewServiceOrdersService constrói o serviço de OS.
func NewServiceOrdersService(
	orders repository.ServiceOrdersRepository,
	products repository.ServiceOrderProductsRepository,
	updates repository.UpdateLogRepository,
	opts ...Option[entity.ServiceOrder],
) *ServiceOrdersService {
	s := &ServiceOrdersService{orders: orders, products: products, updates: updates}
	s.engine = NewEngine(headers(serviceOrderGridColumns), s.fetch, opts...)
	return s
}

func (s *ServiceOrdersService) fetch(ctx context.Context, spec filter.Spec) ([]entity.ServiceOrder, error) {
	records, err := s.orders.Filtered(ctx, spec)
	if err != nil {
		return nil, err
	}
	return normalize.ServiceOrderRows(records), nil
}

// Bootstrap primeira entrada do usuário no módulo (mês corrente).
func (s *ServiceOrdersService) Bootstrap(ctx context.Context, user string) (*Result[entity.ServiceOrder], error) {
	return s.engine.Bootstrap(ctx, user)
}

// Refresh recarrega as OS do período; o spec pode trazer um status único.
// Um refresh limpa a seleção de drill-down.
func (s *ServiceOrdersService) Refresh(ctx context.Context, user string, spec filter.Spec) (*Result[entity.ServiceOrder], error) {
	return s.engine.Refresh(ctx, user, spec)
}

// Current devolve o Result corrente do usuário.
func (s *ServiceOrdersService) Current(user string) (*Result[entity.ServiceOrder], bool) {
	return s.engine.Current(user)
}

// Select registra os códigos de OS selecionados no grid. Códigos fora do
// Result corrente são descartados.
func (s *ServiceOrdersService) Select(user string, osCodes []string) error {
	r, ok := s.engine.Current(user)
	if !ok {
		return domainNotLoaded()
	}
	valid := make(map[string]bool, len(r.Rows))
	for _, o := range r.Rows {
		valid[o.OSCode] = true
	}
	kept := make([]string, 0, len(osCodes))
	for _, code := range osCodes {
		if valid[code] {
			kept = append(kept, code)
		}
	}
	s.engine.SetSelected(user, kept)
	return nil
}

// Selected devolve os códigos de OS selecionados.
func (s *ServiceOrdersService) Selected(user string) []string {
	return s.engine.Selected(user)
}

// Products devolve os itens das OS selecionadas. Sem seleção, devolve vazio
// sem tocar o banco.
func (s *ServiceOrdersService) Products(ctx context.Context, user string) ([]entity.ServiceOrderProduct, error) {
	ids := s.engine.Selected(user)
	if len(ids) == 0 {
		return nil, nil
	}
	records, err := s.products.ForOSIDs(ctx, ids)
	if err != nil {
		return nil, translateErr(err)
	}
	return normalize.ServiceOrderProductRows(records), nil
}

// ServiceOrdersTotals totais dos cards do módulo de OS.
type ServiceOrdersTotals struct {
	Count    int
	ByStatus map[string]int
}

// Totals contagem de OS por status (memoizado).
func (s *ServiceOrdersService) Totals(user string) (ServiceOrdersTotals, error) {
	return Memoized(s.engine, user, "totals", func(r *Result[entity.ServiceOrder]) (ServiceOrdersTotals, error) {
		t := ServiceOrdersTotals{Count: len(r.Rows), ByStatus: make(map[string]int)}
		for _, o := range r.Rows {
			t.ByStatus[o.Status]++
		}
		return t, nil
	})
}

// ProductsTotal soma do valor dos itens das OS selecionadas.
func (s *ServiceOrdersService) ProductsTotal(ctx context.Context, user string) (decimal.Decimal, error) {
	items, err := s.Products(ctx, user)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalValue)
	}
	return total, nil
}

// UpdateInfo frescor da fonte de OS.
func (s *ServiceOrdersService) UpdateInfo(ctx context.Context) (entity.UpdateLog, error) {
	return updateInfo(ctx, s.updates, SourceServiceOrders)
}

// Table monta a tabela apresentável do Result corrente do usuário.
func (s *ServiceOrdersService) Table(user string) (grid.Table, error) {
	r, ok := s.engine.Current(user)
	if !ok {
		return grid.Table{}, domainNotLoaded()
	}
	return grid.Build("Ordens de Serviço", serviceOrderGridColumns, r.Rows), nil
}

// ProductsTable monta a tabela de itens das OS selecionadas.
func (s *ServiceOrdersService) ProductsTable(ctx context.Context, user string) (grid.Table, error) {
	items, err := s.Products(ctx, user)
	if err != nil {
		return grid.Table{}, err
	}
	return grid.Build("Produtos em OS", serviceOrderProductColumns, items), nil
}

var serviceOrderGridColumns = []grid.Column[entity.ServiceOrder]{
	{Header: "OS", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(o entity.ServiceOrder) any { return o.OSCode }},
	{Header: "Data", Width: 1, Align: grid.AlignCenter, Kind: grid.KindDate, Value: func(o entity.ServiceOrder) any { return o.Date }},
	{Header: "Cliente", Width: 6, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(o entity.ServiceOrder) any { return o.CustomerName }},
	{Header: "Status", Width: 4, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(o entity.ServiceOrder) any { return o.Status }},
}

var serviceOrderProductColumns = []grid.Column[entity.ServiceOrderProduct]{
	{Header: "OS", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(p entity.ServiceOrderProduct) any { return p.OS }},
	{Header: "Produto", Width: 5, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(p entity.ServiceOrderProduct) any { return p.Name }},
	{Header: "Un.", Width: 1, Align: grid.AlignCenter, Kind: grid.KindText, Value: func(p entity.ServiceOrderProduct) any { return p.UnitSymbol }},
	{Header: "Quantidade", Width: 1, Align: grid.AlignRight, Kind: grid.KindNumber, Value: func(p entity.ServiceOrderProduct) any { return p.Quantity }},
	{Header: "Valor Unitário", Width: 1, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(p entity.ServiceOrderProduct) any { return p.UnitSaleValue }},
	{Header: "Desconto", Width: 1, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(p entity.ServiceOrderProduct) any { return p.DiscountAmount }},
	{Header: "Total", Width: 2, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(p entity.ServiceOrderProduct) any { return p.TotalValue }},
}
