package repository

import (
	"context"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
)

// ServiceOrdersRepository ordens de serviço ("ServiceOrders").
type ServiceOrdersRepository interface {
	// Filtered aplica o período sobre "Date"::DATE e, quando presente,
	// spec.Status. Ordenação: "Date" DESC, "OSCode" ASC.
	Filtered(ctx context.Context, spec filter.Spec) ([]entity.ServiceOrderRecord, error)
	All(ctx context.Context) ([]entity.ServiceOrderRecord, error)

	Healthcheck(ctx context.Context) error
}

// ServiceOrderProductsRepository itens de OS ("ServiceOrderProducts").
type ServiceOrderProductsRepository interface {
	// ForOSIDs devolve os itens de "OS" IN (ids), ordenados por ("OS", "Name").
	// Entrada vazia devolve vazio sem I/O.
	ForOSIDs(ctx context.Context, ids []string) ([]entity.ServiceOrderProductRecord, error)

	Healthcheck(ctx context.Context) error
}
