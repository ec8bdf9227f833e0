package repository

import (
	"context"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
)

// SalesRepository consultas de leitura sobre a tabela "Sales".
// As implementações são read-only e devolvem linhas cruas (colunas TEXT);
// a tipagem acontece no normalizador.
type SalesRepository interface {
	// Filtered devolve vendas com "Date"::DATE dentro do período do spec e os
	// predicados obrigatórios do módulo:
	//   - TRIM("SellerName") IN (SELECT "Name" FROM "ActiveSellers"),
	//     a menos que spec.OnlyActiveSellers = false;
	//   - "Status" = 'Em andamento', somente quando o usuário não definiu
	//     Statuses/Status; ExcludeStatuses não limpa o gate.
	// Ordenação: "Date" DESC com desempate por "GestionId" ASC.
	Filtered(ctx context.Context, spec filter.Spec) ([]entity.SaleRecord, error)

	Healthcheck(ctx context.Context) error
}

// SalePaymentsRepository parcelas das vendas ("SalesPayments").
type SalePaymentsRepository interface {
	// ForSaleIDs devolve as parcelas de "SaleId" IN (ids), ordenadas por
	// "DueDate". Entrada vazia devolve vazio sem I/O.
	ForSaleIDs(ctx context.Context, ids []string) ([]entity.SalePaymentRecord, error)

	Healthcheck(ctx context.Context) error
}

// SaleProductsRepository itens das vendas ("SalesProducts"), enriquecidos com
// LEFT JOIN em "Products" pelo nome (ExpeditionCode, GroupName, WarehouseStock).
// Sem filtro de vendedor ativo: a seleção de vendas já aconteceu.
type SaleProductsRepository interface {
	ForSaleIDs(ctx context.Context, ids []string) ([]entity.SaleProductRecord, error)

	Healthcheck(ctx context.Context) error
}
