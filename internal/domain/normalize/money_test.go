package normalize_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lucashmelo/painel-gestao/internal/domain/normalize"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestMoney_FormatoBrasileiro(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"10,50", "10.5"},
		{"R$ 1.234,56", "1234.56"},
		{"1.234.567,89", "1234567.89"},
		{"-1.234,56", "-1234.56"},
	}
	for _, c := range cases {
		got := normalize.Money(c.in)
		assert.True(t, got.Equal(dec(c.want)), "Money(%q) = %s, esperado %s", c.in, got, c.want)
	}
}

func TestMoney_FormatoAmericano(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"1,234,567.89", "1234567.89"},
		// pontos extras são milhar quando o último separador é ponto
		{"1.234.567.89", "1234567.89"},
	}
	for _, c := range cases {
		got := normalize.Money(c.in)
		assert.True(t, got.Equal(dec(c.want)), "Money(%q) = %s, esperado %s", c.in, got, c.want)
	}
}

func TestMoney_LiteralDeTupla(t *testing.T) {
	// Resíduo de ETL quebrado: "('10.00',)" precisa virar 10.00.
	got := normalize.Money("('10.00',)")
	assert.True(t, got.Equal(dec("10")), "literal de tupla deve ser desembrulhado, veio %s", got)
}

func TestMoney_EntradaInvalidaViraZero(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "()", "R$", "--", "..."} {
		got := normalize.Money(in)
		assert.True(t, got.IsZero(), "Money(%q) deve ser zero, veio %s", in, got)
	}
}

func TestMoney_SemSeparadorEhInteiro(t *testing.T) {
	assert.True(t, normalize.Money("1234").Equal(dec("1234")))
}

func TestMoney_Idempotente(t *testing.T) {
	// Normalizar a saída normalizada não pode mudar o valor.
	for _, in := range []string{"1.234,56", "('10.00',)", "R$ 99,90", "-5,25"} {
		once := normalize.Money(in)
		twice := normalize.Money(once.String())
		assert.True(t, once.Equal(twice), "Money não é idempotente para %q: %s != %s", in, once, twice)
	}
}

func TestInteger(t *testing.T) {
	assert.Equal(t, int64(10), normalize.Integer("10"))
	assert.Equal(t, int64(11), normalize.Integer("10,5"), "arredonda para o inteiro mais próximo")
	assert.Equal(t, int64(0), normalize.Integer("abc"))
	assert.Equal(t, int64(-3), normalize.Integer("-3,00"))
}

func TestBlank(t *testing.T) {
	assert.True(t, normalize.Blank(""))
	assert.True(t, normalize.Blank("   "))
	assert.False(t, normalize.Blank("0"))
}
