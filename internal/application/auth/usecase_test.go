package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashmelo/painel-gestao/internal/application/auth"
	"github.com/lucashmelo/painel-gestao/internal/application/dto"
	"github.com/lucashmelo/painel-gestao/internal/domain"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/pkg/password"
)

type fakeUserRepo struct {
	users       map[string]*entity.User
	permissions map[string][]string
	permCalls   int
}

func (f *fakeUserRepo) ByUsername(ctx context.Context, username string) (*entity.User, error) {
	return f.users[username], nil
}

func (f *fakeUserRepo) Permissions(ctx context.Context, userID string) ([]string, error) {
	f.permCalls++
	return f.permissions[userID], nil
}

func (f *fakeUserRepo) Healthcheck(ctx context.Context) error { return nil }

func newUseCase(t *testing.T, repo *fakeUserRepo) *auth.AuthUseCase {
	t.Helper()
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "segredo-de-teste",
		ExpMinutes: 60,
		Issuer:     "painel-gestao",
	})
}

func userWithPassword(t *testing.T, username, plain string, active bool) *entity.User {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)
	return &entity.User{ID: "u-" + username, Username: username, Name: username, PasswordHash: hash, Active: active}
}

func TestLogin_Sucesso(t *testing.T) {
	repo := &fakeUserRepo{
		users:       map[string]*entity.User{"ana": userWithPassword(t, "ana", "senha123", true)},
		permissions: map[string][]string{"u-ana": {auth.ModuleSales, auth.ModuleOrders}},
	}
	uc := newUseCase(t, repo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "senha123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana", out.User.Username)
	assert.Equal(t, []string{auth.ModuleSales, auth.ModuleOrders}, out.User.Permissions)
}

func TestLogin_UsuarioInexistenteESenhaErradaRespondemIgual(t *testing.T) {
	repo := &fakeUserRepo{
		users: map[string]*entity.User{"ana": userWithPassword(t, "ana", "senha123", true)},
	}
	uc := newUseCase(t, repo)

	_, errNoUser := uc.Login(context.Background(), dto.LoginRequest{Username: "fantasma", Password: "x"})
	_, errBadPass := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "errada"})

	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized,
		"as duas falhas respondem igual para não enumerar usuários")
}

func TestLogin_UsuarioInativo(t *testing.T) {
	repo := &fakeUserRepo{
		users: map[string]*entity.User{"ana": userWithPassword(t, "ana", "senha123", false)},
	}
	uc := newUseCase(t, repo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "senha123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPermissions_AdminRecebeTodosOsModulos(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := newUseCase(t, repo)

	perms, err := uc.Permissions(context.Background(), &entity.User{ID: "u-1", Username: entity.AdminUsername})
	require.NoError(t, err)
	assert.Equal(t, auth.AllModules, perms)
	assert.Zero(t, repo.permCalls, "o admin não consulta a tabela de permissões")

	// A fatia devolvida é uma cópia: mutá-la não pode afetar AllModules.
	perms[0] = "alterado"
	assert.Equal(t, "sales", auth.AllModules[0])
}
