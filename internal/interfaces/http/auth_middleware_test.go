package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/lucashmelo/painel-gestao/internal/interfaces/http"
	pkgjwt "github.com/lucashmelo/painel-gestao/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUsername  = "ana"
	testIssuer    = "painel-gestao-test"
	testExpMin    = 60
)

// buildTestApp constrói uma aplicação Fiber mínima com:
//   - AuthMiddleware para interpretar o JWT e carregar os locals
//   - RequirePermission para autorizar o acesso ao módulo
//   - Um handler que devolve 200 se passar pelos middlewares
func buildTestApp(module string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar erros internos nos testes
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Rota protegida: JWT + capacidade de módulo
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(module),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":       true,
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

// tokenWithPermissions gera um JWT com as capacidades indicadas.
func tokenWithPermissions(t *testing.T, permissions ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUsername, permissions, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara um GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: o token carrega a capacidade do módulo → HTTP 200.
func TestRequirePermission_ComCapacidadeAcessa(t *testing.T) {
	app := buildTestApp("sales")
	resp := doRequest(t, app, tokenWithPermissions(t, "sales", "orders"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"token com a capacidade do módulo deve acessar a rota")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "a resposta deve incluir ok:true")
	assert.Equal(t, testUsername, body["username"], "o username deve vir do token")
}

// Caso 2: o token não carrega a capacidade → HTTP 403 MODULE_FORBIDDEN.
func TestRequirePermission_SemCapacidadeRecebe403(t *testing.T) {
	app := buildTestApp("boletos")
	resp := doRequest(t, app, tokenWithPermissions(t, "sales"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"token sem a capacidade do módulo não pode acessar")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MODULE_FORBIDDEN",
		"a resposta de erro deve incluir o código MODULE_FORBIDDEN")
}

// Caso 3: token sem nenhuma capacidade → HTTP 403.
func TestRequirePermission_TokenSemCapacidades(t *testing.T) {
	app := buildTestApp("sales")
	resp := doRequest(t, app, tokenWithPermissions(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 4: sem header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequirePermission_SemAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("sales")
	resp := doRequest(t, app, "") // sem header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 5: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequirePermission_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("sales")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extração dos claims do token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username":    apphttp.GetUsername(c),
			"permissions": apphttp.GetPermissions(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenWithPermissions(t, "sales", "customers"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Username    string   `json:"username"`
		Permissions []string `json:"permissions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUsername, body.Username)
	assert.Equal(t, []string{"sales", "customers"}, body.Permissions)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridade do generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUsername, []string{"sales"}, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	username, permissions, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUsername, username)
	assert.Equal(t, []string{"sales"}, permissions)
}

func TestJWT_TokenExpirado_RetornaErro(t *testing.T) {
	// Token com expiração -1 minuto (já expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUsername, []string{"sales"}, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestJWT_SecretIncorreto_RetornaErro(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUsername, []string{"sales"}, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("outro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}
