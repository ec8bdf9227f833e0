package export

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/pkg/brl"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	pdfPrimary = &props.Color{Red: 21, Green: 101, Blue: 192}
	pdfGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	pdfZebra   = &props.Color{Red: 245, Green: 245, Blue: 245}
	pdfTotal   = &props.Color{Red: 227, Green: 242, Blue: 253}
)

// PDF serializa a tabela num A4 paisagem: título, carimbo de geração, tabela
// zebrada e linha de TOTAL destacada.
func PDF(t grid.Table, now time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(t.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(t.Title, now))
	m.AddRows(line.NewRow(2, props.Line{Color: pdfPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(t.Columns))
	for i, cells := range t.Rows {
		m.AddRows(dataRow(t.Columns, cells, i%2 == 1))
	}
	if totalRow, ok := t.TotalRow(); ok {
		m.AddRows(line.NewRow(1, props.Line{Color: pdfPrimary, Thickness: 0.3}))
		m.AddRows(totalsRow(t.Columns, totalRow))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("export.PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRow título do relatório e carimbo de geração.
func titleRow(title string, now time.Time) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: pdfPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+brl.DateTime(now), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: pdfGray,
			}),
		),
	)
}

func tableHeaderRow(columns []grid.ColumnMeta) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(colSize(c.Width)).Add(
			text.New(c.Header, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: pdfAlign(c.Align),
				Color: pdfPrimary, Top: 1,
			}),
		))
	}
	return row.New(7).Add(cols...)
}

func dataRow(columns []grid.ColumnMeta, cells []grid.Cell, zebra bool) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, cell := range cells {
		cols = append(cols, col.New(colSize(columns[i].Width)).Add(
			text.New(cell.Display(), props.Text{
				Size: 7, Align: pdfAlign(columns[i].Align), Top: 1,
			}),
		))
	}
	r := row.New(5).Add(cols...)
	if zebra {
		r.WithStyle(&props.Cell{BackgroundColor: pdfZebra})
	}
	return r
}

func totalsRow(columns []grid.ColumnMeta, cells []grid.Cell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, cell := range cells {
		cols = append(cols, col.New(colSize(columns[i].Width)).Add(
			text.New(cell.Display(), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: pdfAlign(columns[i].Align), Top: 1,
			}),
		))
	}
	r := row.New(7).Add(cols...)
	r.WithStyle(&props.Cell{BackgroundColor: pdfTotal})
	return r
}

// colSize converte o peso da coluna em frações do grid de 12 do maroto.
func colSize(width float64) int {
	size := int(width)
	if size < 1 {
		size = 1
	}
	if size > 12 {
		size = 12
	}
	return size
}

func pdfAlign(a grid.Align) align.Type {
	switch a {
	case grid.AlignRight:
		return align.Right
	case grid.AlignCenter:
		return align.Center
	default:
		return align.Left
	}
}
