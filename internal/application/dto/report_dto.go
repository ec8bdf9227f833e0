package dto

import (
	"time"

	"github.com/lucashmelo/painel-gestao/internal/application/grid"
	"github.com/lucashmelo/painel-gestao/internal/domain"
	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
)

const dateLayout = "2006-01-02"

// FilterRequest formulário de filtro submetido por um módulo. As datas viajam
// em ISO (yyyy-mm-dd); a conversão para o Spec de domínio acontece em ToSpec.
type FilterRequest struct {
	DateStart         string   `json:"date_start" validate:"required"`
	DateEnd           string   `json:"date_end" validate:"required"`
	DeadlineStart     string   `json:"deadline_start"`
	DeadlineEnd       string   `json:"deadline_end"`
	Sellers           []string `json:"sellers"`
	Statuses          []string `json:"statuses"`
	Status            string   `json:"status"`
	PaymentMethods    []string `json:"payment_methods"`
	ExcludeStatuses   []string `json:"exclude_statuses"`
	OnlyActiveSellers *bool    `json:"only_active_sellers"`
}

// ToSpec converte o formulário no Spec de domínio. Datas malformadas viram
// ValidationError; OnlyActiveSellers omitido assume true.
func (f FilterRequest) ToSpec() (filter.Spec, error) {
	spec := filter.Spec{
		Sellers:           f.Sellers,
		Statuses:          f.Statuses,
		Status:            f.Status,
		PaymentMethods:    f.PaymentMethods,
		ExcludeStatuses:   f.ExcludeStatuses,
		OnlyActiveSellers: true,
	}
	if f.OnlyActiveSellers != nil {
		spec.OnlyActiveSellers = *f.OnlyActiveSellers
	}

	var err error
	if spec.DateStart, err = parseDate("data inicial", f.DateStart); err != nil {
		return filter.Spec{}, err
	}
	if spec.DateEnd, err = parseDate("data final", f.DateEnd); err != nil {
		return filter.Spec{}, err
	}
	if f.DeadlineStart != "" {
		if spec.DeadlineStart, err = parseDate("prazo inicial", f.DeadlineStart); err != nil {
			return filter.Spec{}, err
		}
	}
	if f.DeadlineEnd != "" {
		if spec.DeadlineEnd, err = parseDate("prazo final", f.DeadlineEnd); err != nil {
			return filter.Spec{}, err
		}
	}
	return spec, nil
}

func parseDate(field, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Field: field, Message: "data inválida, use aaaa-mm-dd"}
	}
	return t, nil
}

// SelectionRequest linhas selecionadas no grid (drill-down de OS).
type SelectionRequest struct {
	IDs []string `json:"ids"`
}

// GridResponse tabela formatada de um módulo. Rows traz os valores de
// exibição (pt-BR); a identidade do grid no cliente é (módulo, load_counter).
type GridResponse struct {
	Title       string            `json:"title"`
	LoadCounter int64             `json:"load_counter"`
	Warning     string            `json:"warning,omitempty"`
	Columns     []grid.ColumnMeta `json:"columns"`
	Rows        [][]string        `json:"rows"`
	Total       []string          `json:"total,omitempty"`
	Page        PageResponse      `json:"page"`
}

// RefreshResponse resultado de um refresh: contagem e aviso não bloqueante.
type RefreshResponse struct {
	LoadCounter int64  `json:"load_counter"`
	RowCount    int    `json:"row_count"`
	Warning     string `json:"warning,omitempty"`
}

// UpdateInfoResponse frescor da fonte do módulo (cabeçalho).
type UpdateInfoResponse struct {
	SourceID string `json:"source_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Period   string `json:"period"`
	Inserted int64  `json:"inserted"`
	Updated  int64  `json:"updated"`
}

// FromUpdateLog converte o registro de domínio.
func FromUpdateLog(u entity.UpdateLog) UpdateInfoResponse {
	return UpdateInfoResponse{
		SourceID: u.SourceID,
		Date:     u.Date,
		Time:     u.Time,
		Period:   u.Period,
		Inserted: u.Inserted,
		Updated:  u.Updated,
	}
}

// FromTable monta o GridResponse paginado a partir da tabela do módulo.
func FromTable(t grid.Table, loadCounter int64, warning string, page PageRequest) GridResponse {
	page.DefaultPage()
	total := len(t.Rows)
	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	resp := GridResponse{
		Title:       t.Title,
		LoadCounter: loadCounter,
		Warning:     warning,
		Columns:     t.Columns,
		Rows:        make([][]string, 0, end-start),
		Page:        PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, row := range t.Rows[start:end] {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = c.Display()
		}
		resp.Rows = append(resp.Rows, cells)
	}
	if totalRow, ok := t.TotalRow(); ok {
		cells := make([]string, len(totalRow))
		for i, c := range totalRow {
			cells[i] = c.Display()
		}
		resp.Total = cells
	}
	return resp
}
