// Package filter define o objeto de valor com os filtros selecionados pelo
// usuário num formulário de módulo. O Spec é criado a cada submissão e vive
// até a próxima; o planner só aceita os campos nomeados aqui.
package filter

import (
	"time"

	"github.com/lucashmelo/painel-gestao/internal/domain"
)

// Spec filtros de um relatório. Datas zero significam "não informado" nos
// campos opcionais; DateStart e DateEnd são obrigatórios.
type Spec struct {
	DateStart time.Time
	DateEnd   time.Time

	// Período opcional sobre o prazo de entrega ("DeliveryDeadline", coluna
	// TEXT com vazios tratados como NULL).
	DeadlineStart time.Time
	DeadlineEnd   time.Time

	Sellers        []string
	Statuses       []string
	Status         string
	PaymentMethods []string

	// OnlyActiveSellers liga o predicado TRIM("SellerName") IN "ActiveSellers".
	OnlyActiveSellers bool

	ExcludeStatuses []string
}

// LongWindowDays janelas maiores que isso geram aviso (não bloqueiam).
const LongWindowDays = 365

// Validate confere as restrições documentadas do formulário. Com
// requireHistorical, DateStart não pode estar no futuro.
func (s Spec) Validate(requireHistorical bool, now time.Time) error {
	if s.DateStart.IsZero() || s.DateEnd.IsZero() {
		return &domain.ValidationError{Field: "período", Message: "datas inicial e final são obrigatórias"}
	}
	if s.DateEnd.Before(s.DateStart) {
		return &domain.ValidationError{Field: "período", Message: "data inicial maior que a final"}
	}
	if requireHistorical && s.DateStart.After(dateOnly(now)) {
		return &domain.ValidationError{Field: "período", Message: "data inicial no futuro"}
	}
	if !s.DeadlineStart.IsZero() && !s.DeadlineEnd.IsZero() && s.DeadlineEnd.Before(s.DeadlineStart) {
		return &domain.ValidationError{Field: "prazo de entrega", Message: "prazo inicial maior que o final"}
	}
	return nil
}

// HasStatusOverride indica que o usuário escolheu status explicitamente e o
// gate padrão "Em andamento" deve ser limpo. ExcludeStatuses não limpa o gate.
func (s Spec) HasStatusOverride() bool {
	return len(s.Statuses) > 0 || s.Status != ""
}

// HasDeadlineRange indica se o período de prazo de entrega foi informado.
func (s Spec) HasDeadlineRange() bool {
	return !s.DeadlineStart.IsZero() && !s.DeadlineEnd.IsZero()
}

// LongWindow janela acima de LongWindowDays; o serviço avisa mas executa.
func (s Spec) LongWindow() bool {
	if s.DateStart.IsZero() || s.DateEnd.IsZero() {
		return false
	}
	return s.DateEnd.Sub(s.DateStart) > LongWindowDays*24*time.Hour
}

// CurrentMonth devolve o Spec de bootstrap: primeiro dia do mês corrente até
// hoje. No dia 1 o intervalo é (hoje, hoje); não há recuo ao mês anterior.
func CurrentMonth(now time.Time) Spec {
	today := dateOnly(now)
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	return Spec{
		DateStart:         first,
		DateEnd:           today,
		OnlyActiveSellers: true,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
