package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivableRecord linha crua do join "SalesPayments" × "Sales" limitado às
// formas de pagamento da whitelist "ReceivablePaymentMethods".
type ReceivableRecord struct {
	DueDate       string
	Amount        string
	PaymentMethod string
	CustomerName  string
}

// Receivable conta a receber normalizada.
type Receivable struct {
	DueDate       time.Time
	Amount        decimal.Decimal
	PaymentMethod string
	CustomerName  string
}
