// Package auth implementa o login do painel: verificação de senha compatível
// com os esquemas já presentes no banco e emissão do JWT com as capacidades
// por módulo.
package auth

import (
	"context"

	"github.com/lucashmelo/painel-gestao/internal/application/dto"
	"github.com/lucashmelo/painel-gestao/internal/domain"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
	"github.com/lucashmelo/painel-gestao/pkg/jwt"
	"github.com/lucashmelo/painel-gestao/pkg/password"
)

// Tokens de capacidade por módulo, consumidos pela UI para habilitar telas.
const (
	ModuleSales         = "sales"
	ModuleOrders        = "orders"
	ModuleOrderProducts = "order_products"
	ModuleReceivables   = "receivables"
	ModuleBoletos       = "boletos"
	ModuleStatements    = "statements"
	ModuleServiceOrders = "service_orders"
	ModuleCustomers     = "customers"
	ModuleProducts      = "products"
)

// AllModules capacidade total, atribuída implicitamente ao admin.
var AllModules = []string{
	ModuleSales, ModuleOrders, ModuleOrderProducts, ModuleReceivables,
	ModuleBoletos, ModuleStatements, ModuleServiceOrders, ModuleCustomers,
	ModuleProducts,
}

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticação: login e resolução de permissões.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica usuário/senha, resolve as permissões e emite o JWT.
// Usuário inexistente e senha errada respondem igual (ErrUnauthorized) para
// não vazar quais usuários existem.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.ByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !password.Verify(user.PasswordHash, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}

	permissions, err := uc.Permissions(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, permissions, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			Username:    user.Username,
			Name:        user.Name,
			Permissions: permissions,
		},
	}, nil
}

// Permissions devolve os tokens de módulo do usuário. O admin recebe
// capacidade total sem consultar a tabela de permissões.
func (uc *AuthUseCase) Permissions(ctx context.Context, user *entity.User) ([]string, error) {
	if user.Username == entity.AdminUsername {
		return append([]string(nil), AllModules...), nil
	}
	return uc.userRepo.Permissions(ctx, user.ID)
}
