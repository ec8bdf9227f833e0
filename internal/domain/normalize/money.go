// Package normalize coage os valores textuais heterogêneos do banco
// ("10,50", "('10.00',)", "", null) em tipos próprios. Todas as funções são
// puras e totais: entrada malformada vira zero (dinheiro/inteiro) ou data
// ausente, nunca erro.
package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money converte um valor monetário textual em decimal. Aceita formato
// brasileiro ("1.234,56"), americano ("1234.56", "1,234.56"), literais de
// tupla vindos de ETL quebrado ("('10.00',)") e marcadores de moeda ("R$").
// Qualquer falha devolve zero.
//
// Desempate entre "." e ",": o separador que aparece por último é o decimal.
// Só vírgula é brasileiro; só ponto é americano; nenhum dos dois é inteiro.
func Money(v string) decimal.Decimal {
	s := strings.TrimSpace(v)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	// Literais de tupla e aspas: "('10.00',)" -> "10.00"
	s = strings.Trim(s, "()'\",")
	if s == "" {
		return decimal.Zero
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimPrefix(s, "-")
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastComma > lastDot:
		// brasileiro: "." milhar, "," decimal
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case lastDot > lastComma:
		// americano: "," milhar; pontos extras também são milhar
		s = strings.ReplaceAll(s, ",", "")
		if strings.Count(s, ".") > 1 {
			parts := strings.Split(s, ".")
			s = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
		}
	}

	// Restaram apenas dígitos e no máximo um ponto; qualquer outra coisa é lixo.
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" || s == "." {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if neg {
		return d.Neg()
	}
	return d
}

// Integer como Money, arredondando para inteiro. Falha devolve 0.
func Integer(v string) int64 {
	return Money(v).Round(0).IntPart()
}

// Blank indica se o valor textual está em branco (gate de obrigatoriedade:
// aplicado a exatamente uma coluna por entidade, ex. "TotalValue" de Sales).
func Blank(v string) bool {
	return strings.TrimSpace(v) == ""
}
