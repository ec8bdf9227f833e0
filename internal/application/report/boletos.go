package report

import (
	"context"
	"time"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
	"github.com/lucashmelo/painel-gestao/internal/domain/normalize"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

// BoletosService módulo de boletos: o período do formulário vira um intervalo
// de timestamps sobre o envio (dia final inclusivo até 23:59:59).
type BoletosService struct {
	engine  *Engine[entity.Boleto]
	boletos repository.BoletosRepository
	updates repository.UpdateLogRepository
}

// NewBoletosService constrói o serviço de boletos.
func NewBoletosService(
	boletos repository.BoletosRepository,
	updates repository.UpdateLogRepository,
	opts ...Option[entity.Boleto],
) *BoletosService {
	s := &BoletosService{boletos: boletos, updates: updates}
	s.engine = NewEngine(headers(boletoGridColumns), s.fetch, opts...)
	return s
}

func (s *BoletosService) fetch(ctx context.Context, spec filter.Spec) ([]entity.Boleto, error) {
	from := spec.DateStart
	to := spec.DateEnd.Add(24*time.Hour - time.Second)
	records, err := s.boletos.BetweenTimestamps(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return normalize.BoletoRows(records), nil
}

// Bootstrap primeira entrada do usuário no módulo (mês corrente).
func (s *BoletosService) Bootstrap(ctx context.Context, user string) (*Result[entity.Boleto], error) {
	return s.engine.Bootstrap(ctx, user)
}

// Refresh recarrega os boletos enviados no período.
func (s *BoletosService) Refresh(ctx context.Context, user string, spec filter.Spec) (*Result[entity.Boleto], error) {
	return s.engine.Refresh(ctx, user, spec)
}

// Current devolve o Result corrente do usuário.
func (s *BoletosService) Current(user string) (*Result[entity.Boleto], bool) {
	return s.engine.Current(user)
}

// BoletosTotals contagem por status do fluxo de cobrança.
type BoletosTotals struct {
	Count     int
	Sent      int
	Wrong     int
	NoContact int
}

// Totals contagens do Result corrente por status (memoizado).
func (s *BoletosService) Totals(user string) (BoletosTotals, error) {
	return Memoized(s.engine, user, "totals", func(r *Result[entity.Boleto]) (BoletosTotals, error) {
		t := BoletosTotals{Count: len(r.Rows)}
		for _, b := range r.Rows {
			switch b.Status {
			case entity.BoletoSent:
				t.Sent++
			case entity.BoletoWrong:
				t.Wrong++
			case entity.BoletoNoContact:
				t.NoContact++
			}
		}
		return t, nil
	})
}

// UpdateInfo frescor da fonte de boletos.
func (s *BoletosService) UpdateInfo(ctx context.Context) (entity.UpdateLog, error) {
	return updateInfo(ctx, s.updates, SourceBoletos)
}

// Table monta a tabela apresentável do Result corrente do usuário.
func (s *BoletosService) Table(user string) (grid.Table, error) {
	r, ok := s.engine.Current(user)
	if !ok {
		return grid.Table{}, domainNotLoaded()
	}
	return grid.Build("Boletos", boletoGridColumns, r.Rows), nil
}

var boletoGridColumns = []grid.Column[entity.Boleto]{
	{Header: "Cliente", Width: 5, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(b entity.Boleto) any { return b.Name }},
	{Header: "Boleto", Width: 1, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(b entity.Boleto) any { return b.BoletoID }},
	{Header: "Vencimento", Width: 1, Align: grid.AlignCenter, Kind: grid.KindDate, Value: func(b entity.Boleto) any { return b.DueDate }},
	{Header: "Importado em", Width: 1, Align: grid.AlignCenter, Kind: grid.KindDate, Value: func(b entity.Boleto) any { return b.ImportDate }},
	{Header: "Enviado em", Width: 2, Align: grid.AlignCenter, Kind: grid.KindDateTime, Value: func(b entity.Boleto) any { return b.SendTimestamp }},
	{Header: "Status", Width: 2, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(b entity.Boleto) any { return b.Status }},
}
