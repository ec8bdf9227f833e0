package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashmelo/painel-gestao/internal/application/report"
	"github.com/lucashmelo/painel-gestao/internal/domain"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
)

type row struct{ ID string }

func fixedClock() time.Time {
	return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
}

func spec(start, end time.Time) filter.Spec {
	return filter.Spec{DateStart: start, DateEnd: end}
}

func marchSpec() filter.Spec {
	return spec(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	)
}

// fetchRows devolve um FetchFunc fixo e um contador de chamadas.
func fetchRows(rows []row) (report.FetchFunc[row], *int) {
	calls := 0
	return func(ctx context.Context, s filter.Spec) ([]row, error) {
		calls++
		return rows, nil
	}, &calls
}

// ---------------------------------------------------------------------------
// Bootstrap e Refresh
// ---------------------------------------------------------------------------

func TestBootstrap_PrimeiraEntradaUsaMesCorrente(t *testing.T) {
	var got filter.Spec
	fetch := func(ctx context.Context, s filter.Spec) ([]row, error) {
		got = s
		return []row{{ID: "1"}}, nil
	}
	e := report.NewEngine([]string{"ID"}, fetch, report.WithClock[row](fixedClock))

	r, err := e.Bootstrap(context.Background(), "ana")
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.LoadCounter)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got.DateStart)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got.DateEnd)
	assert.True(t, got.OnlyActiveSellers)
}

func TestBootstrap_SegundaEntradaNaoRefaz(t *testing.T) {
	fetch, calls := fetchRows([]row{{ID: "1"}})
	e := report.NewEngine([]string{"ID"}, fetch, report.WithClock[row](fixedClock))

	_, err := e.Bootstrap(context.Background(), "ana")
	require.NoError(t, err)
	_, err = e.Bootstrap(context.Background(), "ana")
	require.NoError(t, err)
	assert.Equal(t, 1, *calls, "bootstrap repetido reaproveita o Result corrente")
}

func TestRefresh_IncrementaContadorDeCarga(t *testing.T) {
	fetch, _ := fetchRows([]row{{ID: "1"}})
	e := report.NewEngine([]string{"ID"}, fetch, report.WithClock[row](fixedClock))

	r1, err := e.Refresh(context.Background(), "ana", marchSpec())
	require.NoError(t, err)
	r2, err := e.Refresh(context.Background(), "ana", marchSpec())
	require.NoError(t, err)
	assert.Greater(t, r2.LoadCounter, r1.LoadCounter)
}

func TestRefresh_SessoesIsoladasPorUsuario(t *testing.T) {
	fetch, _ := fetchRows([]row{{ID: "1"}})
	e := report.NewEngine([]string{"ID"}, fetch, report.WithClock[row](fixedClock))

	_, err := e.Refresh(context.Background(), "ana", marchSpec())
	require.NoError(t, err)

	_, ok := e.Current("bruno")
	assert.False(t, ok, "refresh de um usuário não pode vazar para outro")
}

func TestRefresh_ErroDeBuscaPreservaResultAnterior(t *testing.T) {
	boom := errors.New("conexão caiu")
	fail := false
	fetch := func(ctx context.Context, s filter.Spec) ([]row, error) {
		if fail {
			return nil, boom
		}
		return []row{{ID: "1"}}, nil
	}
	e := report.NewEngine([]string{"ID"}, fetch, report.WithClock[row](fixedClock))

	r1, err := e.Refresh(context.Background(), "ana", marchSpec())
	require.NoError(t, err)

	fail = true
	_, err = e.Refresh(context.Background(), "ana", marchSpec())
	require.Error(t, err)

	cur, ok := e.Current("ana")
	require.True(t, ok)
	assert.Same(t, r1, cur, "em erro, o Result anterior fica intacto")
}

func TestRefresh_SpecInvalidoNaoBusca(t *testing.T) {
	fetch, calls := fetchRows(nil)
	e := report.NewEngine([]string{"ID"}, fetch, report.WithClock[row](fixedClock))

	_, err := e.Refresh(context.Background(), "ana", filter.Spec{})
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Zero(t, *calls, "spec inválido não pode chegar ao banco")
}

func TestRefresh_JanelaLongaAvisaMasExecuta(t *testing.T) {
	fetch, _ := fetchRows([]row{{ID: "1"}})
	e := report.NewEngine([]string{"ID"}, fetch, report.WithClock[row](fixedClock))

	long := spec(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	r, err := e.Refresh(context.Background(), "ana", long)
	require.NoError(t, err)
	assert.Contains(t, r.Warning, "365")
	assert.Len(t, r.Rows, 1)
}

func TestRefresh_AvisoDeResultadoVazio(t *testing.T) {
	fetch, _ := fetchRows(nil)
	e := report.NewEngine([]string{"ID"}, fetch,
		report.WithClock[row](fixedClock),
		report.WithEmptyWarning[row]("nenhum título a receber no período"))

	r, err := e.Refresh(context.Background(), "ana", marchSpec())
	require.NoError(t, err)
	assert.Equal(t, "nenhum título a receber no período", r.Warning)
}

func TestRefresh_HistoricoRejeitaInicioFuturo(t *testing.T) {
	fetch, _ := fetchRows(nil)
	e := report.NewEngine([]string{"ID"}, fetch,
		report.WithClock[row](fixedClock),
		report.WithHistorical[row]())

	future := spec(
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
	)
	_, err := e.Refresh(context.Background(), "ana", future)
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// Memo de agregação
// ---------------------------------------------------------------------------

func TestMemoized_CacheiaPorChaveEContador(t *testing.T) {
	fetch, _ := fetchRows([]row{{ID: "1"}, {ID: "2"}})
	e := report.NewEngine([]string{"ID"}, fetch, report.WithClock[row](fixedClock))

	_, err := e.Refresh(context.Background(), "ana", marchSpec())
	require.NoError(t, err)

	computes := 0
	count := func(r *report.Result[row]) (int, error) {
		computes++
		return len(r.Rows), nil
	}

	n, err := report.Memoized(e, "ana", "count", count)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = report.Memoized(e, "ana", "count", count)
	require.NoError(t, err)
	assert.Equal(t, 1, computes, "segunda leitura sai do memo")

	// Chave diferente recalcula.
	_, err = report.Memoized(e, "ana", "other", count)
	require.NoError(t, err)
	assert.Equal(t, 2, computes)
}

func TestMemoized_RefreshInvalida(t *testing.T) {
	fetch, _ := fetchRows([]row{{ID: "1"}})
	e := report.NewEngine([]string{"ID"}, fetch, report.WithClock[row](fixedClock))

	_, err := e.Refresh(context.Background(), "ana", marchSpec())
	require.NoError(t, err)

	computes := 0
	count := func(r *report.Result[row]) (int, error) {
		computes++
		return len(r.Rows), nil
	}
	_, err = report.Memoized(e, "ana", "count", count)
	require.NoError(t, err)

	_, err = e.Refresh(context.Background(), "ana", marchSpec())
	require.NoError(t, err)

	_, err = report.Memoized(e, "ana", "count", count)
	require.NoError(t, err)
	assert.Equal(t, 2, computes, "refresh invalida o memo")
}

func TestMemoized_SemResultCorrente(t *testing.T) {
	fetch, _ := fetchRows(nil)
	e := report.NewEngine([]string{"ID"}, fetch, report.WithClock[row](fixedClock))

	_, err := report.Memoized(e, "ana", "count", func(r *report.Result[row]) (int, error) {
		return 0, nil
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Seleção de drill-down
// ---------------------------------------------------------------------------

func TestSelected_RefreshLimpaSelecao(t *testing.T) {
	fetch, _ := fetchRows([]row{{ID: "1"}})
	e := report.NewEngine([]string{"ID"}, fetch, report.WithClock[row](fixedClock))

	_, err := e.Refresh(context.Background(), "ana", marchSpec())
	require.NoError(t, err)

	e.SetSelected("ana", []string{"OS-1", "OS-2"})
	assert.Equal(t, []string{"OS-1", "OS-2"}, e.Selected("ana"))

	_, err = e.Refresh(context.Background(), "ana", marchSpec())
	require.NoError(t, err)
	assert.Empty(t, e.Selected("ana"), "refresh descarta a seleção anterior")
}

// ---------------------------------------------------------------------------
// Tradução de erros do driver
// ---------------------------------------------------------------------------

type driverErr struct {
	code    string
	timeout bool
}

func (e *driverErr) Error() string        { return "driver: " + e.code }
func (e *driverErr) SQLStateCode() string { return e.code }
func (e *driverErr) TimedOut() bool       { return e.timeout }

func TestRefresh_TraduzErroDoDriver(t *testing.T) {
	fetch := func(ctx context.Context, s filter.Spec) ([]row, error) {
		return nil, &driverErr{code: "57014", timeout: true}
	}
	e := report.NewEngine([]string{"ID"}, fetch, report.WithClock[row](fixedClock))

	_, err := e.Refresh(context.Background(), "ana", marchSpec())
	require.Error(t, err)

	var dbErr *domain.DatabaseError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, "57014", dbErr.SQLState)
	assert.True(t, dbErr.Timeout)
}
