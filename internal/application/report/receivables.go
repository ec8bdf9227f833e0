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

// ReceivablesService módulo de contas a receber: parcelas de vendas com forma
// de pagamento presente na lista branca, filtradas por vencimento.
type ReceivablesService struct {
	engine      *Engine[entity.Receivable]
	receivables repository.ReceivablesRepository
	updates     repository.UpdateLogRepository
}

// NewReceivablesService constrói o serviço de contas a receber.
func NewReceivablesService(
	receivables repository.ReceivablesRepository,
	updates repository.UpdateLogRepository,
	opts ...Option[entity.Receivable],
) *ReceivablesService {
	s := &ReceivablesService{receivables: receivables, updates: updates}
	opts = append([]Option[entity.Receivable]{
		WithEmptyWarning[entity.Receivable]("nenhum título a receber no período"),
	}, opts...)
	s.engine = NewEngine(headers(receivableGridColumns), s.fetch, opts...)
	return s
}

func (s *ReceivablesService) fetch(ctx context.Context, spec filter.Spec) ([]entity.Receivable, error) {
	records, err := s.receivables.Filtered(ctx, spec)
	if err != nil {
		return nil, err
	}
	return normalize.ReceivableRows(records), nil
}

// Bootstrap primeira entrada do usuário no módulo (mês corrente).
func (s *ReceivablesService) Bootstrap(ctx context.Context, user string) (*Result[entity.Receivable], error) {
	return s.engine.Bootstrap(ctx, user)
}

// Refresh recarrega os títulos do usuário; o spec pode restringir as formas
// de pagamento dentro da lista branca.
func (s *ReceivablesService) Refresh(ctx context.Context, user string, spec filter.Spec) (*Result[entity.Receivable], error) {
	return s.engine.Refresh(ctx, user, spec)
}

// Current devolve o Result corrente do usuário.
func (s *ReceivablesService) Current(user string) (*Result[entity.Receivable], bool) {
	return s.engine.Current(user)
}

// ReceivablesTotals totais dos cards: quantidade de títulos e soma a receber.
type ReceivablesTotals struct {
	Count  int
	Amount decimal.Decimal
}

// Totals contagem e soma dos títulos do Result corrente (memoizado).
func (s *ReceivablesService) Totals(user string) (ReceivablesTotals, error) {
	return Memoized(s.engine, user, "totals", func(r *Result[entity.Receivable]) (ReceivablesTotals, error) {
		t := ReceivablesTotals{Count: len(r.Rows)}
		for _, row := range r.Rows {
			t.Amount = t.Amount.Add(row.Amount)
		}
		return t, nil
	})
}

// UpdateInfo frescor da fonte de parcelas.
func (s *ReceivablesService) UpdateInfo(ctx context.Context) (entity.UpdateLog, error) {
	return updateInfo(ctx, s.updates, SourceSalesPayments)
}

// Table monta a tabela apresentável do Result corrente do usuário.
func (s *ReceivablesService) Table(user string) (grid.Table, error) {
	r, ok := s.engine.Current(user)
	if !ok {
		return grid.Table{}, domainNotLoaded()
	}
	return grid.Build("Contas a Receber", receivableGridColumns, r.Rows), nil
}

var receivableGridColumns = []grid.Column[entity.Receivable]{
	{Header: "Vencimento", Width: 1, Align: grid.AlignCenter, Kind: grid.KindDate, Value: func(r entity.Receivable) any { return r.DueDate }},
	{Header: "Cliente", Width: 5, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(r entity.Receivable) any { return r.CustomerName }},
	{Header: "Forma de Pagamento", Width: 4, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(r entity.Receivable) any { return r.PaymentMethod }},
	{Header: "Valor", Width: 2, Align: grid.AlignRight, Kind: grid.KindMoney, Value: func(r entity.Receivable) any { return r.Amount }},
}
