package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
	"github.com/lucashmelo/painel-gestao/internal/domain/normalize"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

// StatementsService módulo de extratos bancários, com totais separados por
// lado do lançamento (D/C) e saldo do período.
type StatementsService struct {
	engine     *Engine[entity.StatementLine]
	statements repository.StatementsRepository
	updates    repository.UpdateLogRepository
}

// NewStatementsService constrói o serviço de extratos.
func NewStatementsService(
	statements repository.StatementsRepository,
	updates repository.UpdateLogRepository,
	opts ...Option[entity.StatementLine],
) *StatementsService {
	s := &StatementsService{statements: statements, updates: updates}
	s.engine = NewEngine(headers(statementGridColumns), s.fetch, opts...)
	return s
}

func (s *StatementsService) fetch(ctx context.Context, spec filter.Spec) ([]entity.StatementLine, error) {
	records, err := s.statements.Filtered(ctx, spec)
	if err != nil {
		return nil, err
	}
	return normalize.StatementRows(records), nil
}

// Bootstrap primeira entrada do usuário no módulo (mês corrente).
func (s *StatementsService) Bootstrap(ctx context.Context, user string) (*Result[entity.StatementLine], error) {
	return s.engine.Bootstrap(ctx, user)
}

// Refresh recarrega os lançamentos do período.
func (s *StatementsService) Refresh(ctx context.Context, user string, spec filter.Spec) (*Result[entity.StatementLine], error) {
	return s.engine.Refresh(ctx, user, spec)
}

// Current devolve o Result corrente do usuário.
func (s *StatementsService) Current(user string) (*Result[entity.StatementLine], bool) {
	return s.engine.Current(user)
}

// StatementsTotals totais dos cards: débitos, créditos e saldo do período.
type StatementsTotals struct {
	Count   int
	Debits  decimal.Decimal
	Credits decimal.Decimal
	Net     decimal.Decimal
}

// Totals soma os lançamentos do Result corrente por lado (memoizado).
// Saldo = créditos - débitos.
func (s *StatementsService) Totals(user string) (StatementsTotals, error) {
	return Memoized(s.engine, user, "totals", func(r *Result[entity.StatementLine]) (StatementsTotals, error) {
		t := StatementsTotals{Count: len(r.Rows)}
		for _, line := range r.Rows {
			switch line.DebitCredit {
			case entity.StatementDebit:
				t.Debits = t.Debits.Add(line.Amount)
			case entity.StatementCredit:
				t.Credits = t.Credits.Add(line.Amount)
			}
		}
		t.Net = t.Credits.Sub(t.Debits)
		return t, nil
	})
}

// UpdateInfo frescor da fonte de extratos.
func (s *StatementsService) UpdateInfo(ctx context.Context) (entity.UpdateLog, error) {
	return updateInfo(ctx, s.updates, SourceStatements)
}

// Table monta a tabela apresentável do Result corrente do usuário.
func (s *StatementsService) Table(user string) (grid.Table, error) {
	r, ok := s.engine.Current(user)
	if !ok {
		return grid.Table{}, domainNotLoaded()
	}
	return grid.Build("Extratos Bancários", statementGridColumns, r.Rows), nil
}

var statementGridColumns = []grid.Column[entity.StatementLine]{
	{Header: "Data", Width: 1, Align: grid.AlignCenter, Kind: grid.KindDate, Value: func(l entity.StatementLine) any { return l.Date }},
	{Header: "Banco", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(l entity.StatementLine) any { return l.Bank }},
	{Header: "Conta", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(l entity.StatementLine) any { return l.Account }},
	{Header: "Documento", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(l entity.StatementLine) any { return l.Document }},
	{Header: "Descrição", Width: 5, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(l entity.StatementLine) any { return l.Description }},
	{Header: "D/C", Width: 1, Align: grid.AlignCenter, Kind: grid.KindText, Value: func(l entity.StatementLine) any { return l.DebitCredit }},
	{Header: "Valor", Width: 2, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(l entity.StatementLine) any { return l.Amount }},
}
