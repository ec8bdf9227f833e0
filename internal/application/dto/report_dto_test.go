package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashmelo/painel-gestao/internal/application/dto"
	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/internal/domain"
)

func TestFilterRequest_ToSpec(t *testing.T) {
	req := dto.FilterRequest{
		DateStart: "2026-03-01",
		DateEnd:   "2026-03-31",
		Sellers:   []string{"Ana"},
		Status:    "Concluída",
	}

	spec, err := req.ToSpec()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), spec.DateStart)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), spec.DateEnd)
	assert.Equal(t, []string{"Ana"}, spec.Sellers)
	assert.True(t, spec.OnlyActiveSellers, "omitido assume true")
}

func TestFilterRequest_ToSpec_DesligaVendedoresAtivos(t *testing.T) {
	off := false
	req := dto.FilterRequest{DateStart: "2026-03-01", DateEnd: "2026-03-31", OnlyActiveSellers: &off}

	spec, err := req.ToSpec()
	require.NoError(t, err)
	assert.False(t, spec.OnlyActiveSellers)
}

func TestFilterRequest_ToSpec_DataInvalida(t *testing.T) {
	for _, in := range []string{"31/03/2026", "2026-13-01", "ontem"} {
		req := dto.FilterRequest{DateStart: in, DateEnd: "2026-03-31"}
		_, err := req.ToSpec()
		require.Error(t, err, "data %q deve falhar", in)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	}
}

func TestFromTable_Paginacao(t *testing.T) {
	type item struct {
		Nome  string
		Valor decimal.Decimal
	}
	cols := []grid.Column[item]{
		{Header: "Nome", Kind: grid.KindText, Value: func(i item) any { return i.Nome }},
		{Header: "Valor", Kind: grid.KindMoney, Value: func(i item) any { return i.Valor }},
	}
	rows := make([]item, 5)
	for i := range rows {
		rows[i] = item{Nome: string(rune('A' + i)), Valor: decimal.NewFromInt(10)}
	}
	table := grid.Build("Vendas", cols, rows)

	resp := dto.FromTable(table, 3, "aviso", dto.PageRequest{Limit: 2, Offset: 2})

	assert.Equal(t, int64(3), resp.LoadCounter)
	assert.Equal(t, "aviso", resp.Warning)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "C", resp.Rows[0][0], "a página começa no offset pedido")
	assert.Equal(t, 5, resp.Page.Total)
	require.NotEmpty(t, resp.Total)
	assert.Equal(t, "R$ 50,00", resp.Total[1], "o total soma todas as linhas, não só a página")
}

func TestFromTable_OffsetAlemDoFim(t *testing.T) {
	table := grid.Build("Vendas", []grid.Column[struct{}]{
		{Header: "X", Kind: grid.KindText, Value: func(struct{}) any { return "" }},
	}, make([]struct{}, 2))

	resp := dto.FromTable(table, 1, "", dto.PageRequest{Limit: 10, Offset: 99})
	assert.Empty(t, resp.Rows)
	assert.Equal(t, 2, resp.Page.Total)
}
