package report

import (
	"context"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/internal/domain"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

// Identificadores das fontes do ETL na tabela "UpdateLog".
const (
	SourceSales         = "sales"
	SourceSalesPayments = "sales_payments"
	SourceBoletos       = "boletos"
	SourceStatements    = "bank_statements"
	SourceCustomers     = "customers"
	SourceProducts      = "products"
	SourceServiceOrders = "service_orders"
)

// updateInfo devolve o frescor da fonte ou o placeholder "N/A" quando a fonte
// nunca foi carregada.
func updateInfo(ctx context.Context, repo repository.UpdateLogRepository, sourceID string) (entity.UpdateLog, error) {
	latest, err := repo.Latest(ctx, sourceID)
	if err != nil {
		return entity.UpdateLog{}, translateErr(err)
	}
	if latest == nil {
		return entity.UpdateLogNA(sourceID), nil
	}
	return *latest, nil
}

// updateHistory devolve até limit registros de frescor da fonte.
func updateHistory(ctx context.Context, repo repository.UpdateLogRepository, sourceID string, limit int) ([]entity.UpdateLog, error) {
	logs, err := repo.History(ctx, sourceID, limit)
	if err != nil {
		return nil, translateErr(err)
	}
	return logs, nil
}

// domainNotLoaded erro padrão quando o usuário ainda não carregou o módulo.
func domainNotLoaded() error {
	return &domain.BusinessRuleError{Message: "módulo ainda não carregado; execute a consulta"}
}

// headers extrai os cabeçalhos das colunas do grid, na ordem de exibição.
func headers[T any](cols []grid.Column[T]) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

// saleIDs extrai as chaves de negócio das vendas, na ordem do Result.
func saleIDs(rows []entity.Sale) []string {
	ids := make([]string, 0, len(rows))
	for _, s := range rows {
		ids = append(ids, s.GestionID)
	}
	return ids
}
