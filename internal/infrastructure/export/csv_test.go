package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/internal/infrastructure/export"
)

type venda struct {
	Cliente string
	Valor   decimal.Decimal
	Data    time.Time
}

func tabelaDeVendas() grid.Table {
	dec := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}
	cols := []grid.Column[venda]{
		{Header: "Cliente", Kind: grid.KindText, Value: func(v venda) any { return v.Cliente }},
		{Header: "Valor", Kind: grid.KindMoney, Value: func(v venda) any { return v.Valor }},
		{Header: "Data", Kind: grid.KindDate, Value: func(v venda) any { return v.Data }},
	}
	rows := []venda{
		{Cliente: "Maria, LTDA", Valor: dec("1234.56"), Data: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{Cliente: "João", Valor: dec("99.9")},
	}
	return grid.Build("Vendas", cols, rows)
}

func TestCSV_ValoresCrus(t *testing.T) {
	out, err := export.CSV(tabelaDeVendas())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err, "a saída precisa ser CSV válido mesmo com vírgula no dado")
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Cliente", "Valor", "Data"}, records[0])
	assert.Equal(t, []string{"Maria, LTDA", "1234.56", "2026-03-15"}, records[1],
		"números com ponto e data ISO, sem formatação pt-BR")
	assert.Equal(t, []string{"João", "99.90", ""}, records[2], "data zero sai vazia")
}

func TestCSV_TabelaVazia(t *testing.T) {
	tb := grid.Build("Vendas", []grid.Column[venda]{
		{Header: "Cliente", Kind: grid.KindText, Value: func(v venda) any { return v.Cliente }},
	}, nil)

	out, err := export.CSV(tb)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "só o cabeçalho")
}
