// Package aggregate calcula agrupamentos e métricas escalares sobre linhas
// já normalizadas. Funções puras, sem I/O e sem relógio: o instante de
// referência é sempre injetado para manter os resultados determinísticos.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
)

// ProductGroup consolidação de um produto através das vendas do período.
type ProductGroup struct {
	Name           string
	ExpeditionCode string
	GroupName      string
	Quantity       decimal.Decimal
	CostValue      decimal.Decimal
	SaleValue      decimal.Decimal
	DiscountValue  decimal.Decimal
	TotalValue     decimal.Decimal
	WarehouseStock int64 // primeiro valor visto; o estoque é o mesmo em todas as linhas
}

type productKey struct {
	name, expedition, group string
}

// Products agrupa itens de venda por (Name, ExpeditionCode, GroupName),
// somando quantidades e valores. Ordenação: TotalValue decrescente, com
// desempate por Name crescente para manter a saída estável.
func Products(rows []entity.SaleProduct) []ProductGroup {
	groups := make(map[productKey]*ProductGroup)
	order := make([]productKey, 0)

	for _, r := range rows {
		k := productKey{r.Name, r.ExpeditionCode, r.GroupName}
		g, ok := groups[k]
		if !ok {
			g = &ProductGroup{
				Name:           r.Name,
				ExpeditionCode: r.ExpeditionCode,
				GroupName:      r.GroupName,
				WarehouseStock: r.WarehouseStock,
			}
			groups[k] = g
			order = append(order, k)
		}
		g.Quantity = g.Quantity.Add(r.Quantity)
		g.CostValue = g.CostValue.Add(r.CostValue)
		g.SaleValue = g.SaleValue.Add(r.SaleValue)
		g.DiscountValue = g.DiscountValue.Add(r.DiscountValue)
		g.TotalValue = g.TotalValue.Add(r.TotalValue)
	}

	out := make([]ProductGroup, 0, len(order))
	for _, k := range order {
		out = append(out, *groups[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].TotalValue.Equal(out[j].TotalValue) {
			return out[i].TotalValue.GreaterThan(out[j].TotalValue)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
