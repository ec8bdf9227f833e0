package export_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lucashmelo/painel-gestao/internal/infrastructure/export"
)

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "vendas_20260831_153000.xlsx", export.Filename("vendas", "xlsx", now))
	assert.Equal(t, "boletos_20260831_153000.csv", export.Filename("boletos", "csv", now))
}
