package repository

import (
	"context"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
)

// UserRepository porta de leitura da tabela de usuários ("Users") e das
// permissões por módulo ("UserPermissions").
type UserRepository interface {
	// ByUsername devolve o usuário ou nil quando não existe.
	ByUsername(ctx context.Context, username string) (*entity.User, error)
	// Permissions devolve os tokens de módulo liberados para o usuário.
	// O admin recebe capacidade total na camada de serviço, não aqui.
	Permissions(ctx context.Context, userID string) ([]string, error)

	Healthcheck(ctx context.Context) error
}
