package normalize

import (
	"strings"
	"time"
)

// Layouts aceitos, na ordem de tentativa. ISO primeiro (é o que o ETL grava
// na maioria das fontes), depois dia-primeiro e as variantes com hora.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	time.RFC3339,
}

// Date interpreta uma data textual e devolve só a parte de data.
// ok=false quando o valor está vazio ou não casa com nenhum layout.
func Date(v string) (time.Time, bool) {
	t, ok := DateTime(v)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), true
}

// DateTime como Date, preservando a parte de hora quando presente.
func DateTime(v string) (time.Time, bool) {
	s := strings.TrimSpace(v)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
