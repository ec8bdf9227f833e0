// Package grid define o contrato declarativo de colunas que os módulos usam
// para virar um Result em tabela apresentável. A mesma Table alimenta o grid
// JSON (valores formatados em pt-BR) e os exportadores CSV/XLSX/PDF.
package grid

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucashmelo/painel-gestao/pkg/brl"
)

// Align alinhamento horizontal da coluna.
type Align string

const (
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
)

// Kind tipo lógico da célula; decide formatação e totalização.
type Kind string

const (
	KindText     Kind = "text"
	KindMoney    Kind = "money"
	KindNumber   Kind = "number" // decimal sem prefixo monetário (quantidades)
	KindInt      Kind = "int"
	KindDate     Kind = "date"
	KindDateTime Kind = "datetime"
)

// Column descreve uma coluna de um módulo: cabeçalho, largura sugerida (em
// unidades do grid do maroto, 1..12 somadas), alinhamento, tipo e a função que
// extrai o valor da linha tipada.
type Column[T any] struct {
	Header string
	Width  float64
	Align  Align
	Kind   Kind
	Value  func(T) any
}

// ColumnMeta metadados de coluna sem o extrator (serializável).
type ColumnMeta struct {
	Header string  `json:"header"`
	Width  float64 `json:"width"`
	Align  Align   `json:"align"`
	Kind   Kind    `json:"kind"`
}

// Cell valor tipado de uma célula. Um único campo é significativo conforme
// Kind; Valid marca datas ausentes (coluna TEXT vazia no banco).
type Cell struct {
	Kind   Kind
	Text   string
	Number decimal.Decimal
	Int    int64
	Time   time.Time
	Valid  bool
}

// Display devolve o valor formatado para exibição (pt-BR).
func (c Cell) Display() string {
	switch c.Kind {
	case KindMoney:
		return brl.Money(c.Number)
	case KindNumber:
		return strings.Replace(c.Number.String(), ".", ",", 1)
	case KindInt:
		return brl.Int(c.Int)
	case KindDate:
		if !c.Valid {
			return ""
		}
		return brl.Date(c.Time)
	case KindDateTime:
		if !c.Valid {
			return ""
		}
		return brl.DateTime(c.Time)
	default:
		return c.Text
	}
}

// Raw devolve o valor para CSV: número com ponto decimal, data ISO.
func (c Cell) Raw() string {
	switch c.Kind {
	case KindMoney:
		return c.Number.StringFixed(2)
	case KindNumber:
		return c.Number.String()
	case KindInt:
		return decimal.NewFromInt(c.Int).String()
	case KindDate:
		if !c.Valid {
			return ""
		}
		return c.Time.Format("2006-01-02")
	case KindDateTime:
		if !c.Valid {
			return ""
		}
		return c.Time.Format("2006-01-02 15:04:05")
	default:
		return c.Text
	}
}

// Table resultado do Build: título, metadados de coluna e células por linha.
type Table struct {
	Title   string
	Columns []ColumnMeta
	Rows    [][]Cell
}

// Build aplica as colunas sobre as linhas tipadas. Valores aceitos pelos
// extratores: string, decimal.Decimal, int/int64, time.Time e *time.Time.
func Build[T any](title string, cols []Column[T], rows []T) Table {
	t := Table{Title: title, Columns: make([]ColumnMeta, len(cols))}
	for i, c := range cols {
		t.Columns[i] = ColumnMeta{Header: c.Header, Width: c.Width, Align: c.Align, Kind: c.Kind}
	}
	t.Rows = make([][]Cell, 0, len(rows))
	for _, row := range rows {
		cells := make([]Cell, len(cols))
		for i, c := range cols {
			cells[i] = makeCell(c.Kind, c.Value(row))
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// TotalRow devolve a linha de totais: colunas monetárias somadas, a primeira
// coluna de texto rotulada TOTAL e as demais em branco. Falso quando a tabela
// não tem coluna monetária.
func (t Table) TotalRow() ([]Cell, bool) {
	hasMoney := false
	cells := make([]Cell, len(t.Columns))
	for i, meta := range t.Columns {
		cells[i] = Cell{Kind: KindText}
		if meta.Kind == KindMoney {
			hasMoney = true
			sum := decimal.Zero
			for _, row := range t.Rows {
				sum = sum.Add(row[i].Number)
			}
			cells[i] = Cell{Kind: KindMoney, Number: sum}
		}
	}
	if !hasMoney {
		return nil, false
	}
	for i, meta := range t.Columns {
		if meta.Kind == KindText {
			cells[i].Text = "TOTAL"
			break
		}
	}
	return cells, true
}

func makeCell(kind Kind, v any) Cell {
	c := Cell{Kind: kind}
	switch val := v.(type) {
	case nil:
	case string:
		c.Text = val
	case decimal.Decimal:
		c.Number = val
	case int:
		c.Int = int64(val)
	case int64:
		c.Int = val
	case time.Time:
		c.Time = val
		c.Valid = !val.IsZero()
	case *time.Time:
		if val != nil {
			c.Time = *val
			c.Valid = !val.IsZero()
		}
	}
	return c
}
