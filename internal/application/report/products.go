package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
	"github.com/lucashmelo/painel-gestao/internal/domain/normalize"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

// DefaultLowStockThreshold limiar padrão do alerta de estoque baixo.
const DefaultLowStockThreshold = 5

// ProductsService módulo de catálogo de produtos: listagem completa, busca e
// recorte de estoque baixo, com valorização do estoque nos cards.
type ProductsService struct {
	engine   *Engine[entity.Product]
	products repository.ProductsRepository
	updates  repository.UpdateLogRepository
}

// NewProductsService constrói o serviço de produtos.
func NewProductsService(
	products repository.ProductsRepository,
	updates repository.UpdateLogRepository,
	opts ...Option[entity.Product],
) *ProductsService {
	s := &ProductsService{products: products, updates: updates}
	s.engine = NewEngine(headers(productGridColumns), s.fetchAll, opts...)
	return s
}

// fetchAll ignora o período do spec: o catálogo não tem recorte temporal.
func (s *ProductsService) fetchAll(ctx context.Context, _ filter.Spec) ([]entity.Product, error) {
	records, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}
	return normalize.ProductRows(records), nil
}

// Bootstrap primeira entrada do usuário no módulo (catálogo completo).
func (s *ProductsService) Bootstrap(ctx context.Context, user string) (*Result[entity.Product], error) {
	return s.engine.Bootstrap(ctx, user)
}

// Refresh recarrega o catálogo completo.
func (s *ProductsService) Refresh(ctx context.Context, user string) (*Result[entity.Product], error) {
	return s.engine.Refresh(ctx, user, filter.CurrentMonth(s.engine.Clock()))
}

// Search recarrega o Result com a busca por nome, código interno ou código de
// barras. Termo em branco equivale a Refresh.
func (s *ProductsService) Search(ctx context.Context, user, term string) (*Result[entity.Product], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.Refresh(ctx, user)
	}
	fetch := func(ctx context.Context, _ filter.Spec) ([]entity.Product, error) {
		records, err := s.products.Search(ctx, term)
		if err != nil {
			return nil, err
		}
		return normalize.ProductRows(records), nil
	}
	return s.engine.RefreshWith(ctx, user, filter.CurrentMonth(s.engine.Clock()), fetch)
}

// LowStock recarrega o Result com os produtos de estoque de depósito até o
// limiar; threshold <= 0 usa o padrão.
func (s *ProductsService) LowStock(ctx context.Context, user string, threshold int64) (*Result[entity.Product], error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	fetch := func(ctx context.Context, _ filter.Spec) ([]entity.Product, error) {
		records, err := s.products.LowStock(ctx, threshold)
		if err != nil {
			return nil, err
		}
		return normalize.ProductRows(records), nil
	}
	return s.engine.RefreshWith(ctx, user, filter.CurrentMonth(s.engine.Clock()), fetch)
}

// Current devolve o Result corrente do usuário.
func (s *ProductsService) Current(user string) (*Result[entity.Product], bool) {
	return s.engine.Current(user)
}

// ProductsTotals totais dos cards: contagem, estoque baixo e valorização do
// estoque de depósito a custo e a venda.
type ProductsTotals struct {
	Count          int
	LowStock       int
	StockCostValue decimal.Decimal
	StockSaleValue decimal.Decimal
}

// Totals valoriza o estoque do Result corrente (memoizado por limiar).
func (s *ProductsService) Totals(user string, threshold int64) (ProductsTotals, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	key := fmt.Sprintf("totals:%d", threshold)
	return Memoized(s.engine, user, key, func(r *Result[entity.Product]) (ProductsTotals, error) {
		t := ProductsTotals{Count: len(r.Rows)}
		for _, p := range r.Rows {
			if p.WarehouseStock <= threshold {
				t.LowStock++
			}
			stock := decimal.NewFromInt(p.WarehouseStock)
			t.StockCostValue = t.StockCostValue.Add(p.CostValue.Mul(stock))
			t.StockSaleValue = t.StockSaleValue.Add(p.SaleValue.Mul(stock))
		}
		return t, nil
	})
}

// UpdateInfo frescor da fonte de produtos.
func (s *ProductsService) UpdateInfo(ctx context.Context) (entity.UpdateLog, error) {
	return updateInfo(ctx, s.updates, SourceProducts)
}

// Table monta a tabela apresentável do Result corrente do usuário.
func (s *ProductsService) Table(user string) (grid.Table, error) {
	r, ok := s.engine.Current(user)
	if !ok {
		return grid.Table{}, domainNotLoaded()
	}
	return grid.Build("Produtos", productGridColumns, r.Rows), nil
}

var productGridColumns = []grid.Column[entity.Product]{
	{Header: "Produto", Width: 3, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(p entity.Product) any { return p.Name }},
	{Header: "Cód. Interno", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(p entity.Product) any { return p.InternalCode }},
	{Header: "Grupo", Width: 2, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(p entity.Product) any { return p.GroupName }},
	{Header: "Depósito", Width: 1, Align: grid.AlignRight, Kind: grid.KindInt, Value: func(p entity.Product) any { return p.WarehouseStock }},
	{Header: "Separado", Width: 1, Align: grid.AlignRight, Kind: grid.KindInt, Value: func(p entity.Product) any { return p.SeparatedStock }},
	{Header: "Disponível", Width: 1, Align: grid.AlignRight, Kind: grid.KindInt, Value: func(p entity.Product) any { return p.AvailableStock }},
	{Header: "Custo", Width: 1, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(p entity.Product) any { return p.CostValue }},
	{Header: "Venda", Width: 1, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(p entity.Product) any { return p.SaleValue }},
	{Header: "Localização", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(p entity.Product) any { return p.Location }},
}
