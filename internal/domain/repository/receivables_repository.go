package repository

import (
	"context"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
)

// ReceivablesRepository contas a receber: join de "SalesPayments" com "Sales"
// por "Sales"."GestionId" = "SalesPayments"."SaleId", limitado às formas de
// pagamento presentes em "ReceivablePaymentMethods".
type ReceivablesRepository interface {
	// Filtered aplica DATE("DueDate") BETWEEN spec.DateStart AND spec.DateEnd
	// e, se spec.PaymentMethods não estiver vazio, restringe a essas formas.
	// Ordenação: ("DueDate", "CustomerName").
	Filtered(ctx context.Context, spec filter.Spec) ([]entity.ReceivableRecord, error)

	Healthcheck(ctx context.Context) error
}
