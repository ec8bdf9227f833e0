// Package brl formata valores para exibição no padrão brasileiro:
// moeda "R$ 1.234,56", inteiros com ponto de milhar e datas DD/MM/AAAA.
package brl

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Money formata um decimal como moeda brasileira: "R$ 1.234,56".
// Negativos saem como "-R$ 1.234,56".
func Money(v decimal.Decimal) string {
	neg := v.IsNegative()
	s := v.Abs().StringFixed(2) // "1234.56"
	intPart, decPart, _ := strings.Cut(s, ".")
	out := "R$ " + groupThousands(intPart) + "," + decPart
	if neg {
		return "-" + out
	}
	return out
}

// Int formata um inteiro com separador de milhar: 1234567 -> "1.234.567".
func Int(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := groupThousands(decimal.NewFromInt(v).String())
	if neg {
		return "-" + s
	}
	return s
}

// Date formata uma data como DD/MM/AAAA. Zero value vira string vazia.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// DateTime formata data e hora como DD/MM/AAAA HH:MM.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006 15:04")
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
