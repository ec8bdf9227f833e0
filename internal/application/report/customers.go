package report

import (
	"context"
	"strings"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/internal/domain"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
	"github.com/lucashmelo/painel-gestao/internal/domain/normalize"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

// CustomersService módulo de clientes. É a consulta mais simples do painel:
// sem filtro de período, listagem completa ou busca por termo. O engine ainda
// é usado pelo estado de sessão e pelo contador de carga do grid.
type CustomersService struct {
	engine    *Engine[entity.Customer]
	customers repository.CustomersRepository
	updates   repository.UpdateLogRepository
}

// NewCustomersService constrói o serviço de clientes.
func NewCustomersService(
	customers repository.CustomersRepository,
	updates repository.UpdateLogRepository,
	opts ...Option[entity.Customer],
) *CustomersService {
	s := &CustomersService{customers: customers, updates: updates}
	s.engine = NewEngine(headers(customerGridColumns), s.fetchAll, opts...)
	return s
}

// fetchAll ignora o período do spec: clientes não têm recorte temporal.
func (s *CustomersService) fetchAll(ctx context.Context, _ filter.Spec) ([]entity.Customer, error) {
	records, err := s.customers.All(ctx)
	if err != nil {
		return nil, err
	}
	return normalize.CustomerRows(records), nil
}

// Bootstrap primeira entrada do usuário no módulo (listagem completa).
func (s *CustomersService) Bootstrap(ctx context.Context, user string) (*Result[entity.Customer], error) {
	return s.engine.Bootstrap(ctx, user)
}

// Refresh recarrega a listagem completa.
func (s *CustomersService) Refresh(ctx context.Context, user string) (*Result[entity.Customer], error) {
	return s.engine.Refresh(ctx, user, filter.CurrentMonth(s.engine.Clock()))
}

// Search recarrega o Result com a busca por nome, razão social, CPF/CNPJ ou
// email. Termo em branco equivale a Refresh.
func (s *CustomersService) Search(ctx context.Context, user, term string) (*Result[entity.Customer], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.Refresh(ctx, user)
	}
	fetch := func(ctx context.Context, _ filter.Spec) ([]entity.Customer, error) {
		records, err := s.customers.Search(ctx, term)
		if err != nil {
			return nil, err
		}
		return normalize.CustomerRows(records), nil
	}
	return s.engine.RefreshWith(ctx, user, filter.CurrentMonth(s.engine.Clock()), fetch)
}

// ByID devolve o cliente normalizado pela chave de negócio.
func (s *CustomersService) ByID(ctx context.Context, id string) (*entity.Customer, error) {
	record, err := s.customers.ByID(ctx, id)
	if err != nil {
		return nil, translateErr(err)
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	rows := normalize.CustomerRows([]entity.CustomerRecord{*record})
	return &rows[0], nil
}

// Current devolve o Result corrente do usuário.
func (s *CustomersService) Current(user string) (*Result[entity.Customer], bool) {
	return s.engine.Current(user)
}

// CustomersTotals totais dos cards: clientes ativos e por tipo de pessoa.
type CustomersTotals struct {
	Count      int
	Active     int
	Individual int
	Business   int
}

// Totals contagens do Result corrente (memoizado).
func (s *CustomersService) Totals(user string) (CustomersTotals, error) {
	return Memoized(s.engine, user, "totals", func(r *Result[entity.Customer]) (CustomersTotals, error) {
		t := CustomersTotals{Count: len(r.Rows)}
		for _, c := range r.Rows {
			if c.Active {
				t.Active++
			}
			switch c.TypeOfPerson {
			case entity.PersonIndividual:
				t.Individual++
			case entity.PersonBusiness:
				t.Business++
			}
		}
		return t, nil
	})
}

// UpdateInfo frescor da fonte de clientes.
func (s *CustomersService) UpdateInfo(ctx context.Context) (entity.UpdateLog, error) {
	return updateInfo(ctx, s.updates, SourceCustomers)
}

// Table monta a tabela apresentável do Result corrente do usuário.
func (s *CustomersService) Table(user string) (grid.Table, error) {
	r, ok := s.engine.Current(user)
	if !ok {
		return grid.Table{}, domainNotLoaded()
	}
	return grid.Build("Clientes", customerGridColumns, r.Rows), nil
}

var customerGridColumns = []grid.Column[entity.Customer]{
	{Header: "Nome", Width: 3, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(c entity.Customer) any { return c.Name }},
	{Header: "Razão Social", Width: 3, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(c entity.Customer) any { return c.LegalName }},
	{Header: "CPF/CNPJ", Width: 2, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(c entity.Customer) any { return taxID(c) }},
	{Header: "Email", Width: 2, Align: grid.AlignLeft, Kind: grid.KindText, Value: func(c entity.Customer) any { return c.Email }},
	{Header: "Cadastro", Width: 1, Align: grid.AlignCenter, Kind: grid.KindDate, Value: func(c entity.Customer) any { return c.RegisterDate }},
	{Header: "Ativo", Width: 1, Align: grid.AlignCenter, Kind: grid.KindText, Value: func(c entity.Customer) any { return activeLabel(c.Active) }},
}

// taxID devolve o documento conforme o tipo de pessoa.
func taxID(c entity.Customer) string {
	if c.TypeOfPerson == entity.PersonBusiness {
		return c.TaxIDBusiness
	}
	return c.TaxIDIndividual
}

func activeLabel(active bool) string {
	if active {
		return "Sim"
	}
	return "Não"
}
