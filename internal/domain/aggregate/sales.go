package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
)

// SellerSummary vendas consolidadas de um vendedor.
type SellerSummary struct {
	SellerName string
	TotalValue decimal.Decimal
	Count      int
	Mean       decimal.Decimal
}

// SalesByPerson agrupa vendas por vendedor, ordena por total decrescente
// (desempate por nome) e trunca em topN quando topN > 0.
func SalesByPerson(rows []entity.Sale, topN int) []SellerSummary {
	totals := make(map[string]*SellerSummary)
	for _, s := range rows {
		g, ok := totals[s.SellerName]
		if !ok {
			g = &SellerSummary{SellerName: s.SellerName}
			totals[s.SellerName] = g
		}
		g.TotalValue = g.TotalValue.Add(s.TotalValue)
		g.Count++
	}

	out := make([]SellerSummary, 0, len(totals))
	for _, g := range totals {
		g.Mean = g.TotalValue.Div(decimal.NewFromInt(int64(g.Count))).Round(2)
		out = append(out, *g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].TotalValue.Equal(out[j].TotalValue) {
			return out[i].TotalValue.GreaterThan(out[j].TotalValue)
		}
		return out[i].SellerName < out[j].SellerName
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// TrendBucket granularidade da série temporal de vendas.
type TrendBucket string

const (
	BucketDay   TrendBucket = "day"
	BucketWeek  TrendBucket = "week"
	BucketMonth TrendBucket = "month"
)

// TrendPoint um ponto da série: período, total, contagem e ticket médio.
type TrendPoint struct {
	Period     string
	TotalValue decimal.Decimal
	Count      int
	Mean       decimal.Decimal
}

// SalesTrend agrupa vendas pelo período do bucket e devolve a série ordenada
// cronologicamente. Vendas sem data (zero) ficam fora da série.
func SalesTrend(rows []entity.Sale, bucket TrendBucket) []TrendPoint {
	points := make(map[string]*TrendPoint)
	for _, s := range rows {
		if s.Date.IsZero() {
			continue
		}
		p := bucketKey(s.Date, bucket)
		g, ok := points[p]
		if !ok {
			g = &TrendPoint{Period: p}
			points[p] = g
		}
		g.TotalValue = g.TotalValue.Add(s.TotalValue)
		g.Count++
	}

	out := make([]TrendPoint, 0, len(points))
	for _, g := range points {
		g.Mean = g.TotalValue.Div(decimal.NewFromInt(int64(g.Count))).Round(2)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

func bucketKey(t time.Time, bucket TrendBucket) string {
	switch bucket {
	case BucketWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-S%02d", year, week)
	case BucketMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// SalesMetrics métricas escalares de um conjunto de vendas e suas parcelas.
type SalesMetrics struct {
	Count         int
	TotalValue    decimal.Decimal
	AverageTicket decimal.Decimal
	// Entradas: parcelas com vencimento até o instante de referência.
	// Parcelado: parcelas com vencimento estritamente posterior.
	Entradas   decimal.Decimal
	Parcelado  decimal.Decimal
	MarginMean decimal.Decimal // percentual; 0 quando não há custo
}

// ComputeSalesMetrics calcula as métricas do módulo de vendas. now é
// injetado para que entradas×parcelado seja determinístico em teste.
func ComputeSalesMetrics(sales []entity.Sale, payments []entity.SalePayment, now time.Time) SalesMetrics {
	m := SalesMetrics{Count: len(sales)}

	var totalCost decimal.Decimal
	for _, s := range sales {
		m.TotalValue = m.TotalValue.Add(s.TotalValue)
		totalCost = totalCost.Add(s.CostValue)
	}
	if m.Count > 0 {
		m.AverageTicket = m.TotalValue.Div(decimal.NewFromInt(int64(m.Count))).Round(2)
	}

	for _, p := range payments {
		if p.DueDate.After(now) {
			m.Parcelado = m.Parcelado.Add(p.Amount)
		} else {
			m.Entradas = m.Entradas.Add(p.Amount)
		}
	}

	if totalCost.IsPositive() && m.TotalValue.IsPositive() {
		m.MarginMean = m.TotalValue.Sub(totalCost).
			Div(m.TotalValue).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return m
}
