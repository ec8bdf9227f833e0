package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais os campos próprios da aplicação.
// Permissions carrega os módulos liberados para que o middleware decida
// sem consultar a DB a cada request.
type Claims struct {
	jwt.RegisteredClaims
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"` // tokens de capacidade por módulo: "vendas", "boletos", ...
}

// Generate gera um token JWT assinado contendo username e permissões.
func Generate(secret, username string, permissions []string, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Username:    username,
		Permissions: permissions,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve username e permissões.
// Retorna erro se o token for inválido, expirado ou com assinatura incorreta.
func Parse(secret, tokenString string) (username string, permissions []string, err error) {
	if secret == "" {
		return "", nil, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", nil, fmt.Errorf("claims inválidos")
	}
	return claims.Username, claims.Permissions, nil
}
