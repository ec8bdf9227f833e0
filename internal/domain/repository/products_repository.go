package repository

import (
	"context"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
)

// ProductsRepository catálogo de produtos ("Products").
type ProductsRepository interface {
	All(ctx context.Context) ([]entity.ProductRecord, error)
	// Search busca por nome, código interno ou código de barras (ILIKE).
	Search(ctx context.Context, term string) ([]entity.ProductRecord, error)
	// LowStock devolve produtos com estoque de depósito até o limiar.
	LowStock(ctx context.Context, threshold int64) ([]entity.ProductRecord, error)

	Healthcheck(ctx context.Context) error
}
