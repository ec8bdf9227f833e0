// Package export serializa a tabela de um módulo para os três formatos de
// download do painel: CSV (dados crus), XLSX (planilha estilizada) e PDF
// (tabela paginada em paisagem).
package export

import (
	"fmt"
	"time"
)

// Filename devolve o nome do arquivo de download: prefixo + carimbo de data e
// hora da geração, ex.: vendas_20260831_153000.xlsx.
func Filename(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("20060102_150405"), ext)
}
