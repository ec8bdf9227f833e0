package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
)

var salesCols = FilterColumns{
	Date:          `"Date"`,
	Seller:        `"SellerName"`,
	Status:        `"Status"`,
	PaymentMethod: `"PaymentMethod"`,
	Deadline:      `"DeliveryDeadline"`,
}

func buildSQL(t *testing.T, spec filter.Spec, cols FilterColumns) (string, []any) {
	t.Helper()
	p := NewPlanner()
	qb, err := p.Apply(p.Select(`"Sales"`, `"GestionID"`), spec, cols)
	require.NoError(t, err)
	sql, args, err := qb.ToSql()
	require.NoError(t, err)
	return sql, args
}

func baseSpec() filter.Spec {
	return filter.Spec{
		DateStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestApply_PeriodoObrigatorio(t *testing.T) {
	sql, args := buildSQL(t, baseSpec(), salesCols)

	assert.Contains(t, sql, `"Date"::DATE BETWEEN $1 AND $2`)
	assert.Len(t, args, 2)
}

func TestApply_VendedoresAtivos(t *testing.T) {
	spec := baseSpec()
	spec.OnlyActiveSellers = true
	sql, _ := buildSQL(t, spec, salesCols)

	assert.Contains(t, sql, `TRIM("SellerName") IN (SELECT "Name" FROM "ActiveSellers")`)

	spec.OnlyActiveSellers = false
	sql, _ = buildSQL(t, spec, salesCols)
	assert.NotContains(t, sql, "ActiveSellers")
}

func TestApply_ListaDeVendedoresExpandeIN(t *testing.T) {
	spec := baseSpec()
	spec.Sellers = []string{"Ana", "Bruno"}
	sql, args := buildSQL(t, spec, salesCols)

	assert.Contains(t, sql, `TRIM("SellerName") IN ($3,$4)`)
	assert.Len(t, args, 4)
	assert.Equal(t, "Ana", args[2])
	assert.Equal(t, "Bruno", args[3])
}

func TestApply_StatusUnicoEExclusoes(t *testing.T) {
	spec := baseSpec()
	spec.Status = "Concluída"
	spec.ExcludeStatuses = []string{"Cancelada"}
	sql, args := buildSQL(t, spec, salesCols)

	assert.Contains(t, sql, `"Status" = $3`)
	assert.Contains(t, sql, `"Status" NOT IN ($4)`)
	assert.Equal(t, []any{
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		"Concluída",
		"Cancelada",
	}, args)
}

func TestApply_PrazoDeEntregaNullSafe(t *testing.T) {
	spec := baseSpec()
	spec.DeadlineStart = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	spec.DeadlineEnd = time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	sql, args := buildSQL(t, spec, salesCols)

	assert.Contains(t, sql, `NULLIF(TRIM("DeliveryDeadline"), '')::DATE BETWEEN $3 AND $4`)
	assert.Len(t, args, 4)
}

func TestApply_ColunaAusenteDesativaFiltro(t *testing.T) {
	// Recebíveis não têm coluna de vendedor: o filtro é ignorado em silêncio.
	spec := baseSpec()
	spec.Sellers = []string{"Ana"}
	spec.OnlyActiveSellers = true

	cols := FilterColumns{Date: `"DueDate"`}
	sql, args := buildSQL(t, spec, cols)

	assert.NotContains(t, sql, "SellerName")
	assert.NotContains(t, sql, "ActiveSellers")
	assert.Len(t, args, 2)
}

func TestApply_IdentificadorInvalidoRejeitado(t *testing.T) {
	p := NewPlanner()
	bad := FilterColumns{Date: `"Date"; DROP TABLE "Sales"`}

	_, err := p.Apply(p.Select(`"Sales"`, `"GestionID"`), baseSpec(), bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identificador inválido")
}

func TestApply_SemColunaDeData(t *testing.T) {
	p := NewPlanner()
	_, err := p.Apply(p.Select(`"Sales"`, `"GestionID"`), baseSpec(), FilterColumns{})
	assert.Error(t, err)
}

func TestSelect_EnvolveColunasComCoalesce(t *testing.T) {
	p := NewPlanner()
	sql, _, err := p.Select(`"Sales"`, `"GestionID"`, `"TotalValue"`).ToSql()
	require.NoError(t, err)
	assert.Equal(t, `SELECT COALESCE("GestionID", ''), COALESCE("TotalValue", '') FROM "Sales"`, sql)
}
