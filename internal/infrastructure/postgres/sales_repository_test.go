package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
)

func salesSpec() filter.Spec {
	return filter.Spec{
		DateStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func salesSQL(t *testing.T, spec filter.Spec) (string, []interface{}) {
	t.Helper()
	sql, args, err := NewSalesRepository(nil).filteredQuery(spec)
	require.NoError(t, err)
	return sql, args
}

func TestFilteredQuery_GatePadraoDeStatus(t *testing.T) {
	sql, args := salesSQL(t, salesSpec())

	assert.Contains(t, sql, `"Status" = $1`)
	require.NotEmpty(t, args)
	assert.Equal(t, entity.StatusEmAndamento, args[0])
}

func TestFilteredQuery_ExclusaoNaoLimpaOGate(t *testing.T) {
	spec := salesSpec()
	spec.ExcludeStatuses = []string{"Cancelada"}
	sql, args := salesSQL(t, spec)

	// Excluir status restringe por cima do gate; não o substitui.
	assert.Contains(t, sql, `"Status" = $1`)
	assert.Contains(t, sql, `"Status" NOT IN ($4)`)
	assert.Equal(t, entity.StatusEmAndamento, args[0])
	assert.Contains(t, args, "Cancelada")
}

func TestFilteredQuery_StatusExplicitoLimpaOGate(t *testing.T) {
	spec := salesSpec()
	spec.Status = "Concluída"
	sql, args := salesSQL(t, spec)

	assert.NotContains(t, args, entity.StatusEmAndamento,
		"status explícito substitui o gate padrão")
	assert.Contains(t, sql, `"Status" = $3`)
	assert.Contains(t, args, "Concluída")
}

func TestFilteredQuery_ListaDeStatusLimpaOGate(t *testing.T) {
	spec := salesSpec()
	spec.Statuses = []string{"Aberta", "Concluída"}
	_, args := salesSQL(t, spec)

	assert.NotContains(t, args, entity.StatusEmAndamento)
}

func TestFilteredQuery_OrdenacaoDeterministica(t *testing.T) {
	sql, _ := salesSQL(t, salesSpec())
	assert.Contains(t, sql, `ORDER BY "Date"::DATE DESC, "GestionId" ASC`)
}
