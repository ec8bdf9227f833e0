package grid_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
)

type linha struct {
	Nome  string
	Valor decimal.Decimal
	Qtde  int64
	Data  time.Time
	Prazo *time.Time
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func colunas() []grid.Column[linha] {
	return []grid.Column[linha]{
		{Header: "Nome", Width: 4, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(l linha) any { return l.Nome }},
		{Header: "Valor", Width: 3, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(l linha) any { return l.Valor }},
		{Header: "Qtde", Width: 2, Align: grid.AlignRight, Kind: grid.KindInt, Value: func(l linha) any { return l.Qtde }},
		{Header: "Data", Width: 2, Align: grid.AlignCenter, Kind: grid.KindDate, Value: func(l linha) any { return l.Data }},
		{Header: "Prazo", Width: 1, Align: grid.AlignCenter, Kind: grid.KindDate, Value: func(l linha) any { return l.Prazo }},
	}
}

func TestBuild(t *testing.T) {
	prazo := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	rows := []linha{
		{Nome: "Cadeira", Valor: dec("1234.56"), Qtde: 2, Data: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Prazo: &prazo},
		{Nome: "Mesa", Valor: dec("100.00"), Qtde: 1},
	}

	tb := grid.Build("Vendas", colunas(), rows)

	assert.Equal(t, "Vendas", tb.Title)
	require.Len(t, tb.Columns, 5)
	assert.Equal(t, "Valor", tb.Columns[1].Header)
	assert.Equal(t, grid.KindMoney, tb.Columns[1].Kind)

	require.Len(t, tb.Rows, 2)
	first := tb.Rows[0]
	assert.Equal(t, "Cadeira", first[0].Display())
	assert.Equal(t, "R$ 1.234,56", first[1].Display())
	assert.Equal(t, "2", first[2].Display())
	assert.Equal(t, "15/03/2026", first[3].Display())
	assert.Equal(t, "01/04/2026", first[4].Display())

	second := tb.Rows[1]
	assert.Equal(t, "", second[3].Display(), "data zero exibe vazio")
	assert.Equal(t, "", second[4].Display(), "ponteiro nil exibe vazio")
}

func TestCell_Raw(t *testing.T) {
	prazo := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	rows := []linha{{Nome: "Cadeira", Valor: dec("1234.5"), Qtde: 2, Data: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Prazo: &prazo}}

	tb := grid.Build("Vendas", colunas(), rows)
	row := tb.Rows[0]

	assert.Equal(t, "Cadeira", row[0].Raw())
	assert.Equal(t, "1234.50", row[1].Raw(), "moeda crua sai com ponto e duas casas")
	assert.Equal(t, "2", row[2].Raw())
	assert.Equal(t, "2026-03-15", row[3].Raw(), "data crua em ISO")
}

func TestCell_KindNumber(t *testing.T) {
	cols := []grid.Column[linha]{
		{Header: "Qtde", Kind: grid.KindNumber, Value: func(l linha) any { return l.Valor }},
	}
	tb := grid.Build("", cols, []linha{{Valor: dec("2.5")}})
	assert.Equal(t, "2,5", tb.Rows[0][0].Display(), "quantidade usa vírgula sem prefixo R$")
	assert.Equal(t, "2.5", tb.Rows[0][0].Raw())
}

func TestTotalRow(t *testing.T) {
	rows := []linha{
		{Nome: "A", Valor: dec("10.10")},
		{Nome: "B", Valor: dec("20.20")},
	}
	tb := grid.Build("Vendas", colunas(), rows)

	total, ok := tb.TotalRow()
	require.True(t, ok)
	assert.Equal(t, "TOTAL", total[0].Text, "primeira coluna de texto recebe o rótulo")
	assert.Equal(t, "R$ 30,30", total[1].Display())
	assert.Equal(t, "", total[2].Display(), "colunas não monetárias ficam em branco")
}

func TestTotalRow_SemColunaMonetaria(t *testing.T) {
	cols := []grid.Column[linha]{
		{Header: "Nome", Kind: grid.KindText, Value: func(l linha) any { return l.Nome }},
	}
	tb := grid.Build("", cols, []linha{{Nome: "A"}})
	_, ok := tb.TotalRow()
	assert.False(t, ok)
}
