package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/lucashmelo/painel-gestao/internal/interfaces/http"
	"github.com/lucashmelo/painel-gestao/pkg/logger"
)

func loggedApp(t *testing.T) (*fiber.App, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Writer: &buf})

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(apphttp.RequestLogger(log.WithModule("http")))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.ErrInternalServerError })
	return app, &buf
}

func TestRequestLogger_RegistraCamposDaRequest(t *testing.T) {
	app, buf := loggedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/ok"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"module":"http"`)
	assert.Contains(t, out, `"request_id":"`, "o request-id do middleware deve sair no log")
	assert.Contains(t, out, `"level":"info"`)
}

func TestRequestLogger_ErroInternoSobeParaError(t *testing.T) {
	app, buf := loggedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := buf.String()
	assert.Contains(t, out, `"status":500`)
	assert.Contains(t, out, `"level":"error"`)
}
