package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
)

const xlsxSheet = "Relatório"

// moneyFormat formato monetário pt-BR aplicado às colunas de valor.
const moneyFormat = `"R$ "#,##0.00`

// XLSX serializa a tabela numa planilha estilizada: cabeçalho azul com fonte
// branca, zebra nas linhas alternadas, formato monetário nas colunas de valor
// e linha de TOTAL destacada ao final.
func XLSX(t grid.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", xlsxSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1565C0"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}
	zebraStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F5F5F5"}},
	})
	if err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: ptr(moneyFormat),
	})
	if err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}
	moneyZebraStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: ptr(moneyFormat),
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F5F5F5"}},
	})
	if err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E3F2FD"}},
	})
	if err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}
	totalMoneyStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E3F2FD"}},
		CustomNumFmt: ptr(moneyFormat),
	})
	if err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}

	// Cabeçalho
	for i, col := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(xlsxSheet, cell, col.Header); err != nil {
			return nil, fmt.Errorf("export.XLSX: %w", err)
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		// Largura da coluna proporcional ao peso declarado no grid.
		if err := f.SetColWidth(xlsxSheet, name, name, 10+col.Width*6); err != nil {
			return nil, fmt.Errorf("export.XLSX: %w", err)
		}
	}
	if len(t.Columns) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if err := f.SetCellStyle(xlsxSheet, first, last, headerStyle); err != nil {
			return nil, fmt.Errorf("export.XLSX: %w", err)
		}
	}

	// Linhas de dados; zebra nas linhas pares.
	for r, row := range t.Rows {
		excelRow := r + 2
		zebra := r%2 == 1
		for c, cell := range row {
			name, _ := excelize.CoordinatesToCellName(c+1, excelRow)
			if err := setCellValue(f, name, cell); err != nil {
				return nil, err
			}
			style := 0
			switch {
			case cell.Kind == grid.KindMoney && zebra:
				style = moneyZebraStyle
			case cell.Kind == grid.KindMoney:
				style = moneyStyle
			case zebra:
				style = zebraStyle
			}
			if style != 0 {
				if err := f.SetCellStyle(xlsxSheet, name, name, style); err != nil {
					return nil, fmt.Errorf("export.XLSX: %w", err)
				}
			}
		}
	}

	// Linha de TOTAL
	if totalRow, ok := t.TotalRow(); ok {
		excelRow := len(t.Rows) + 2
		for c, cell := range totalRow {
			name, _ := excelize.CoordinatesToCellName(c+1, excelRow)
			if err := setCellValue(f, name, cell); err != nil {
				return nil, err
			}
			style := totalStyle
			if cell.Kind == grid.KindMoney {
				style = totalMoneyStyle
			}
			if err := f.SetCellStyle(xlsxSheet, name, name, style); err != nil {
				return nil, fmt.Errorf("export.XLSX: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

func setCellValue(f *excelize.File, name string, cell grid.Cell) error {
	var err error
	switch cell.Kind {
	case grid.KindMoney, grid.KindNumber:
		v, _ := cell.Number.Float64()
		err = f.SetCellValue(xlsxSheet, name, v)
	case grid.KindInt:
		err = f.SetCellValue(xlsxSheet, name, cell.Int)
	default:
		err = f.SetCellValue(xlsxSheet, name, cell.Display())
	}
	if err != nil {
		return fmt.Errorf("export.XLSX: %w", err)
	}
	return nil
}

func ptr(s string) *string { return &s }
