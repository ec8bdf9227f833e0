// Package report implementa o pipeline de relatório que todos os módulos do
// painel instanciam com pequenas variações: filtro -> repositório ->
// normalizador -> agregador, com memória de sessão por usuário e um contador
// de carga que invalida o grid do cliente a cada Result novo.
package report

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lucashmelo/painel-gestao/internal/domain"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
)

// Result conjunto de linhas normalizadas de um módulo, com a lista de colunas
// do grid e o contador de carga. Substituído atomicamente a cada refresh; o
// Result anterior fica inalcançável.
type Result[T any] struct {
	Rows        []T
	Columns     []string
	LoadCounter int64
	Spec        filter.Spec
	// Warning aviso não bloqueante (ex.: janela acima de 365 dias).
	Warning string
}

// FetchFunc busca e normaliza as linhas de um spec. Não pode mutar estado
// compartilhado: o engine só publica o Result quando a busca inteira deu certo.
type FetchFunc[T any] func(ctx context.Context, spec filter.Spec) ([]T, error)

// state memória de sessão de um usuário num módulo (C10): último spec,
// último Result, memo de agregação e seleção de linhas para drill-down.
type state[T any] struct {
	result   *Result[T]
	memos    map[string]memoEntry
	selected []string
}

type memoEntry struct {
	load  int64
	value any
}

// Engine esqueleto comum dos serviços de relatório. Uma instância por módulo,
// compartilhada entre usuários; as sessões são isoladas pela chave de usuário.
type Engine[T any] struct {
	mu       sync.Mutex
	counter  int64
	columns  []string
	fetch    FetchFunc[T]
	sessions map[string]*state[T]

	// requireHistorical proíbe data inicial no futuro (módulos de histórico).
	requireHistorical bool
	emptyWarning      string
	clock             func() time.Time
}

// Option configura o Engine.
type Option[T any] func(*Engine[T])

// WithHistorical exige que a data inicial não esteja no futuro.
func WithHistorical[T any]() Option[T] {
	return func(e *Engine[T]) { e.requireHistorical = true }
}

// WithEmptyWarning define o aviso não bloqueante emitido quando a consulta
// devolve zero linhas (regra de negócio, não erro).
func WithEmptyWarning[T any](msg string) Option[T] {
	return func(e *Engine[T]) { e.emptyWarning = msg }
}

// WithClock injeta o relógio (testes).
func WithClock[T any](clock func() time.Time) Option[T] {
	return func(e *Engine[T]) { e.clock = clock }
}

// NewEngine cria o esqueleto com a lista fixa de colunas do módulo e a
// função de busca+normalização.
func NewEngine[T any](columns []string, fetch FetchFunc[T], opts ...Option[T]) *Engine[T] {
	e := &Engine[T]{
		columns:  columns,
		fetch:    fetch,
		sessions: make(map[string]*state[T]),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Bootstrap devolve o Result corrente do usuário ou, na primeira entrada,
// executa refresh com o mês corrente (primeiro dia do mês até hoje; no dia 1
// o intervalo é de um dia só).
func (e *Engine[T]) Bootstrap(ctx context.Context, user string) (*Result[T], error) {
	if r, ok := e.Current(user); ok {
		return r, nil
	}
	return e.Refresh(ctx, user, filter.CurrentMonth(e.clock()))
}

// Refresh valida o spec, busca as linhas e substitui o Result do usuário com
// um contador de carga novo. Em erro (validação ou banco) o Result anterior
// permanece intacto e visível.
func (e *Engine[T]) Refresh(ctx context.Context, user string, spec filter.Spec) (*Result[T], error) {
	return e.RefreshWith(ctx, user, spec, e.fetch)
}

// RefreshWith como Refresh, com uma função de busca específica da chamada
// (usado por módulos com variações de consulta, ex.: busca por termo).
func (e *Engine[T]) RefreshWith(ctx context.Context, user string, spec filter.Spec, fetch FetchFunc[T]) (*Result[T], error) {
	if err := spec.Validate(e.requireHistorical, e.clock()); err != nil {
		return nil, err
	}

	rows, err := fetch(ctx, spec)
	if err != nil {
		return nil, translateErr(err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.counter++
	result := &Result[T]{
		Rows:        rows,
		Columns:     e.columns,
		LoadCounter: e.counter,
		Spec:        spec,
	}
	if spec.LongWindow() {
		result.Warning = "período maior que 365 dias; a consulta pode demorar"
	}
	if len(rows) == 0 && e.emptyWarning != "" {
		result.Warning = e.emptyWarning
	}
	st := e.session(user)
	// Result e contador publicados juntos; memo de agregação e seleção de
	// drill-down são limpos antes de qualquer releitura.
	st.result = result
	st.memos = nil
	st.selected = nil
	return result, nil
}

// Current devolve o Result corrente do usuário, se houver.
func (e *Engine[T]) Current(user string) (*Result[T], bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.sessions[user]
	if !ok || st.result == nil {
		return nil, false
	}
	return st.result, true
}

// SetSelected registra os identificadores de linha selecionados no grid
// (parametriza a consulta filha de OS).
func (e *Engine[T]) SetSelected(user string, ids []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.session(user)
	st.selected = append([]string(nil), ids...)
}

// Selected devolve a seleção corrente do usuário.
func (e *Engine[T]) Selected(user string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.sessions[user]
	if !ok {
		return nil
	}
	return append([]string(nil), st.selected...)
}

// Clock devolve o relógio do engine (os serviços injetam "now" no agregador).
func (e *Engine[T]) Clock() time.Time { return e.clock() }

func (e *Engine[T]) session(user string) *state[T] {
	st, ok := e.sessions[user]
	if !ok {
		st = &state[T]{}
		e.sessions[user] = st
	}
	return st
}

// Memoized calcula (ou devolve do memo) a agregação key do Result corrente do
// usuário. O memo é chaveado por (key, contador de carga): um refresh invalida
// todas as agregações do usuário de uma vez.
func Memoized[T, A any](e *Engine[T], user, key string, compute func(*Result[T]) (A, error)) (A, error) {
	var zero A

	e.mu.Lock()
	st, ok := e.sessions[user]
	if !ok || st.result == nil {
		e.mu.Unlock()
		return zero, domain.ErrNotFound
	}
	result := st.result
	if entry, ok := st.memos[key]; ok && entry.load == result.LoadCounter {
		agg, ok := entry.value.(A)
		e.mu.Unlock()
		if ok {
			return agg, nil
		}
	} else {
		e.mu.Unlock()
	}

	agg, err := compute(result)
	if err != nil {
		return zero, translateErr(err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	// Publica o memo só se o Result ainda for o mesmo.
	if st.result == result {
		if st.memos == nil {
			st.memos = make(map[string]memoEntry)
		}
		st.memos[key] = memoEntry{load: result.LoadCounter, value: agg}
	}
	return agg, nil
}

// queryFailure contrato mínimo do erro do driver (ver postgres.QueryError).
type queryFailure interface {
	SQLStateCode() string
	TimedOut() bool
}

// translateErr converte falhas do driver na taxonomia de domínio; erros de
// validação e regra de negócio passam como estão.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	var qf queryFailure
	if errors.As(err, &qf) {
		return &domain.DatabaseError{SQLState: qf.SQLStateCode(), Timeout: qf.TimedOut(), Err: err}
	}
	return err
}
