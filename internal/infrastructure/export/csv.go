package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
)

// CSV serializa a tabela em UTF-8 com vírgula. Os valores saem crus: números
// com ponto decimal e datas ISO, para reimportação em outras ferramentas.
func CSV(t grid.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Header
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("export.CSV: %w", err)
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, cell := range row {
			record[i] = cell.Raw()
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export.CSV: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export.CSV: %w", err)
	}
	return buf.Bytes(), nil
}
