package repository

import (
	"context"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
)

// CustomersRepository clientes ("Customers").
type CustomersRepository interface {
	All(ctx context.Context) ([]entity.CustomerRecord, error)
	// Search busca por nome, razão social, CPF/CNPJ ou email (ILIKE).
	Search(ctx context.Context, term string) ([]entity.CustomerRecord, error)
	ByID(ctx context.Context, id string) (*entity.CustomerRecord, error)

	Healthcheck(ctx context.Context) error
}
