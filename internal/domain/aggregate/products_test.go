package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashmelo/painel-gestao/internal/domain/aggregate"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
)

func item(name, expedition, group, qty, total string, stock int64) entity.SaleProduct {
	return entity.SaleProduct{
		Name:           name,
		ExpeditionCode: expedition,
		GroupName:      group,
		Quantity:       dec(qty),
		TotalValue:     dec(total),
		WarehouseStock: stock,
	}
}

func TestProducts_AgrupaPorNomeExpedicaoEGrupo(t *testing.T) {
	rows := []entity.SaleProduct{
		item("Cadeira", "EXP-1", "Móveis", "2", "200.00", 10),
		item("Cadeira", "EXP-1", "Móveis", "3", "300.00", 10),
		item("Cadeira", "EXP-2", "Móveis", "1", "100.00", 4),
	}

	groups := aggregate.Products(rows)
	require.Len(t, groups, 2, "expedição diferente separa o grupo")

	assert.Equal(t, "EXP-1", groups[0].ExpeditionCode)
	assert.True(t, groups[0].Quantity.Equal(dec("5")))
	assert.True(t, groups[0].TotalValue.Equal(dec("500.00")))
	assert.True(t, groups[1].TotalValue.Equal(dec("100.00")))
}

func TestProducts_OrdenaPorTotalComDesempatePorNome(t *testing.T) {
	rows := []entity.SaleProduct{
		item("Zebra", "E", "G", "1", "100.00", 0),
		item("Abajur", "E", "G", "1", "100.00", 0),
		item("Mesa", "E", "G", "1", "900.00", 0),
	}

	groups := aggregate.Products(rows)
	require.Len(t, groups, 3)
	assert.Equal(t, "Mesa", groups[0].Name, "maior total primeiro")
	assert.Equal(t, "Abajur", groups[1].Name, "empate no total desempata por nome")
	assert.Equal(t, "Zebra", groups[2].Name)
}

func TestProducts_PreservaSomaTotal(t *testing.T) {
	rows := []entity.SaleProduct{
		item("A", "E", "G", "1", "10.10", 0),
		item("A", "E", "G", "1", "20.20", 0),
		item("B", "E", "G", "1", "30.30", 0),
	}

	var before, after = dec("0"), dec("0")
	for _, r := range rows {
		before = before.Add(r.TotalValue)
	}
	for _, g := range aggregate.Products(rows) {
		after = after.Add(g.TotalValue)
	}
	assert.True(t, before.Equal(after), "agrupar não pode alterar a soma: %s != %s", before, after)
}

func TestProducts_EstoqueUsaPrimeiraLinha(t *testing.T) {
	rows := []entity.SaleProduct{
		item("A", "E", "G", "1", "10.00", 7),
		item("A", "E", "G", "1", "10.00", 99), // estoque divergente é ignorado
	}
	groups := aggregate.Products(rows)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(7), groups[0].WarehouseStock)
}

func TestProducts_Vazio(t *testing.T) {
	assert.Empty(t, aggregate.Products(nil))
}
