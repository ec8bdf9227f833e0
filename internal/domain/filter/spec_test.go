package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashmelo/painel-gestao/internal/domain"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// Validate
// ---------------------------------------------------------------------------

func TestValidate_DatasObrigatorias(t *testing.T) {
	now := day(2026, 3, 15)

	err := filter.Spec{DateEnd: now}.Validate(false, now)
	require.Error(t, err, "sem data inicial deve falhar")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)

	err = filter.Spec{DateStart: now}.Validate(false, now)
	assert.Error(t, err, "sem data final deve falhar")
}

func TestValidate_PeriodoInvertido(t *testing.T) {
	now := day(2026, 3, 15)
	spec := filter.Spec{DateStart: day(2026, 3, 10), DateEnd: day(2026, 3, 1)}
	assert.Error(t, spec.Validate(false, now))
}

func TestValidate_InicioNoFuturo(t *testing.T) {
	now := day(2026, 3, 15)
	spec := filter.Spec{DateStart: day(2026, 4, 1), DateEnd: day(2026, 4, 30)}

	assert.Error(t, spec.Validate(true, now), "módulo histórico rejeita início futuro")
	assert.NoError(t, spec.Validate(false, now), "sem a exigência, o futuro é permitido")
}

func TestValidate_InicioHojeNaoEhFuturo(t *testing.T) {
	// now com hora: o corte é por dia, não por instante.
	now := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	spec := filter.Spec{DateStart: day(2026, 3, 15), DateEnd: day(2026, 3, 15)}
	assert.NoError(t, spec.Validate(true, now))
}

func TestValidate_PrazoDeEntregaInvertido(t *testing.T) {
	now := day(2026, 3, 15)
	spec := filter.Spec{
		DateStart:     day(2026, 3, 1),
		DateEnd:       day(2026, 3, 15),
		DeadlineStart: day(2026, 3, 20),
		DeadlineEnd:   day(2026, 3, 10),
	}
	assert.Error(t, spec.Validate(false, now))
}

// ---------------------------------------------------------------------------
// Derivados
// ---------------------------------------------------------------------------

func TestHasStatusOverride(t *testing.T) {
	assert.False(t, filter.Spec{}.HasStatusOverride())
	assert.True(t, filter.Spec{Status: "Concluída"}.HasStatusOverride())
	assert.True(t, filter.Spec{Statuses: []string{"Aberta"}}.HasStatusOverride())
	assert.False(t, filter.Spec{ExcludeStatuses: []string{"Cancelada"}}.HasStatusOverride(),
		"excluir status não limpa o gate padrão")
}

func TestLongWindow(t *testing.T) {
	start := day(2025, 1, 1)
	assert.False(t, filter.Spec{DateStart: start, DateEnd: start.AddDate(0, 0, 365)}.LongWindow())
	assert.True(t, filter.Spec{DateStart: start, DateEnd: start.AddDate(0, 0, 366)}.LongWindow())
	assert.False(t, filter.Spec{}.LongWindow(), "sem datas não há aviso")
}

// ---------------------------------------------------------------------------
// CurrentMonth
// ---------------------------------------------------------------------------

func TestCurrentMonth(t *testing.T) {
	spec := filter.CurrentMonth(time.Date(2026, 3, 15, 18, 45, 0, 0, time.UTC))
	assert.Equal(t, day(2026, 3, 1), spec.DateStart)
	assert.Equal(t, day(2026, 3, 15), spec.DateEnd)
	assert.True(t, spec.OnlyActiveSellers, "bootstrap considera só vendedores ativos")
}

func TestCurrentMonth_PrimeiroDiaDoMes(t *testing.T) {
	// No dia 1 o intervalo degenera para (hoje, hoje); não recua ao mês anterior.
	spec := filter.CurrentMonth(day(2026, 4, 1))
	assert.Equal(t, day(2026, 4, 1), spec.DateStart)
	assert.Equal(t, day(2026, 4, 1), spec.DateEnd)
	assert.NoError(t, spec.Validate(true, day(2026, 4, 1)))
}
