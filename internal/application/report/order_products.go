package report

import (
	"context"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/internal/domain/aggregate"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/normalize"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

// OrderProductsService consolidação de produtos nos pedidos do Result
// corrente do módulo de pedidos. Não tem Result próprio: a chave de memo vive
// no engine de pedidos, então um refresh lá invalida a consolidação aqui.
type OrderProductsService struct {
	orders   *OrdersService
	products repository.SaleProductsRepository
}

// NewOrderProductsService constrói a consolidação de produtos em pedidos.
func NewOrderProductsService(orders *OrdersService, products repository.SaleProductsRepository) *OrderProductsService {
	return &OrderProductsService{orders: orders, products: products}
}

// Groups agrupa os itens dos pedidos correntes por (produto, código de
// expedição, grupo), memoizado pela carga dos pedidos.
func (s *OrderProductsService) Groups(ctx context.Context, user string) ([]aggregate.ProductGroup, error) {
	return Memoized(s.orders.engine, user, "products", func(r *Result[entity.Sale]) ([]aggregate.ProductGroup, error) {
		records, err := s.products.ForSaleIDs(ctx, saleIDs(r.Rows))
		if err != nil {
			return nil, err
		}
		return aggregate.Products(normalize.SaleProductRows(records)), nil
	})
}

// Table monta a tabela apresentável da consolidação.
func (s *OrderProductsService) Table(ctx context.Context, user string) (grid.Table, error) {
	groups, err := s.Groups(ctx, user)
	if err != nil {
		return grid.Table{}, err
	}
	return grid.Build("Produtos em Pedidos", productGroupColumns, groups), nil
}

var productGroupColumns = []grid.Column[aggregate.ProductGroup]{
	{Header: "Produto", Width: 3, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(g aggregate.ProductGroup) any { return g.Name }},
	{Header: "Cód. Expedição", Width: 2, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(g aggregate.ProductGroup) any { return g.ExpeditionCode }},
	{Header: "Grupo", Width: 2, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(g aggregate.ProductGroup) any { return g.GroupName }},
	{Header: "Quantidade", Width: 1, Align: grid.AlignRight, Kind: grid.KindNumber, Value: func(g aggregate.ProductGroup) any { return g.Quantity }},
	{Header: "Estoque Depósito", Width: 1, Align: grid.AlignRight, Kind: grid.KindInt, Value: func(g aggregate.ProductGroup) any { return g.WarehouseStock }},
	{Header: "Desconto", Width: 1, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(g aggregate.ProductGroup) any { return g.DiscountValue }},
	{Header: "Total", Width: 2, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(g aggregate.ProductGroup) any { return g.TotalValue }},
}
