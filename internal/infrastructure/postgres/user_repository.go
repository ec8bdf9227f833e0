package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuários do painel ("Users") e permissões por módulo
// ("UserPermissions"). Diferente das tabelas do ETL, estas são tipadas.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository constrói o adaptador de usuários.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// ByUsername devolve o usuário ou nil quando não existe.
func (r *UserRepo) ByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `
	SELECT "Id", "Username", COALESCE("Name", ''), "PasswordHash", "Active"
	FROM "Users"
	WHERE "Username" = $1`

	var u entity.User
	err := r.pool.QueryRow(ctx, query, username).
		Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapQueryErr("users.ByUsername", err)
	}
	return &u, nil
}

// Permissions devolve os tokens de módulo do usuário, em ordem estável.
func (r *UserRepo) Permissions(ctx context.Context, userID string) ([]string, error) {
	const query = `
	SELECT "Module"
	FROM "UserPermissions"
	WHERE "UserId" = $1
	ORDER BY "Module"`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapQueryErr("users.Permissions", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var module string
		if err := rows.Scan(&module); err != nil {
			return nil, wrapQueryErr("users.Permissions scan", err)
		}
		out = append(out, module)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("users.Permissions rows", err)
	}
	return out, nil
}

// Healthcheck executa SELECT 1.
func (r *UserRepo) Healthcheck(ctx context.Context) error {
	return Healthcheck(ctx, r.pool)
}
