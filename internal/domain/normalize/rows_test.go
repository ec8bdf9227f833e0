package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/normalize"
)

func TestSaleRows_GateEmTotalValue(t *testing.T) {
	records := []entity.SaleRecord{
		{GestionID: "1", TotalValue: "100,00", Date: "2026-01-10"},
		{GestionID: "2", TotalValue: "   "}, // descartada
		{GestionID: "3", TotalValue: ""},    // descartada
		{GestionID: "4", TotalValue: "abc", Date: "2026-01-12"},
	}

	sales := normalize.SaleRows(records)
	require.Len(t, sales, 2, "somente TotalValue em branco descarta a linha")
	assert.Equal(t, "1", sales[0].GestionID)
	// "abc" não está em branco: a linha fica, com valor zero.
	assert.Equal(t, "4", sales[1].GestionID)
	assert.True(t, sales[1].TotalValue.IsZero())
}

func TestSaleRows_PrazoDeEntregaOpcional(t *testing.T) {
	records := []entity.SaleRecord{
		{GestionID: "1", TotalValue: "10", DeliveryDeadline: "2026-02-01"},
		{GestionID: "2", TotalValue: "10", DeliveryDeadline: ""},
	}
	sales := normalize.SaleRows(records)
	require.Len(t, sales, 2)
	require.NotNil(t, sales[0].DeliveryDeadline)
	assert.Nil(t, sales[1].DeliveryDeadline, "coluna vazia vira prazo nil")
}

func TestSalePaymentRows_GateEmAmount(t *testing.T) {
	records := []entity.SalePaymentRecord{
		{SaleID: "1", Amount: "50,00", DueDate: "2026-01-15"},
		{SaleID: "1", Amount: ""},
	}
	payments := normalize.SalePaymentRows(records)
	require.Len(t, payments, 1)
	assert.Equal(t, "1", payments[0].SaleID)
}

func TestProductRows_EstoqueDisponivelNuncaNegativo(t *testing.T) {
	records := []entity.ProductRecord{
		{GestionID: "1", WarehouseStock: "10", SeparatedStock: "3", DispatchedStock: "2"},
		{GestionID: "2", WarehouseStock: "1", SeparatedStock: "5", DispatchedStock: "5"},
		{GestionID: "3", WarehouseStock: "", SeparatedStock: "", DispatchedStock: ""},
	}
	products := normalize.ProductRows(records)
	require.Len(t, products, 3)
	assert.Equal(t, int64(5), products[0].AvailableStock)
	assert.Equal(t, int64(0), products[1].AvailableStock, "disponível não pode ficar negativo")
	assert.Equal(t, int64(0), products[2].AvailableStock)
}

func TestServiceOrderProductRows_GateEmTotalValue(t *testing.T) {
	records := []entity.ServiceOrderProductRecord{
		{OS: "OS-1", Name: "Peça", TotalValue: "100,00", Quantity: "2"},
		{OS: "OS-1", Name: "Sem valor", TotalValue: " "},
	}
	items := normalize.ServiceOrderProductRows(records)
	require.Len(t, items, 1)
	assert.Equal(t, "Peça", items[0].Name)
}

func TestCustomerRows_AtivoAceitaVariantes(t *testing.T) {
	records := []entity.CustomerRecord{
		{GestionID: "1", Active: "true"},
		{GestionID: "2", Active: "Sim"},
		{GestionID: "3", Active: "1"},
		{GestionID: "4", Active: "0"},
		{GestionID: "5", Active: ""},
	}
	customers := normalize.CustomerRows(records)
	require.Len(t, customers, 5)
	assert.True(t, customers[0].Active)
	assert.True(t, customers[1].Active)
	assert.True(t, customers[2].Active)
	assert.False(t, customers[3].Active)
	assert.False(t, customers[4].Active)
}

func TestStatementRows_GateEmAmount(t *testing.T) {
	records := []entity.StatementRecord{
		{Bank: "001", Amount: "150,00", DebitCredit: "D", Date: "2026-01-05"},
		{Bank: "001", Amount: "", DebitCredit: "C"},
	}
	lines := normalize.StatementRows(records)
	require.Len(t, lines, 1)
	assert.Equal(t, entity.StatementDebit, lines[0].DebitCredit)
}
