package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusEmAndamento é o status de venda filtrado por padrão nos relatórios
// quando o usuário não escolhe um status explícito.
const StatusEmAndamento = "Em andamento"

// SaleRecord linha crua da tabela "Sales": as colunas numéricas e de data são
// TEXT no banco (herança do ETL) e só viram tipos após o normalizador.
type SaleRecord struct {
	GestionID        string // chave de negócio que liga pagamentos e produtos
	Code             string
	CustomerName     string
	SellerName       string
	Date             string
	DeliveryDeadline string
	Status           string
	SalesChannel     string
	PaymentTerm      string
	CostValue        string
	ProductsValue    string
	DiscountValue    string
	TotalValue       string
}

// Sale venda normalizada. TotalValue é garantidamente presente: linhas com
// "TotalValue" em branco são descartadas pelo normalizador.
type Sale struct {
	GestionID        string
	Code             string
	CustomerName     string
	SellerName       string
	Date             time.Time
	DeliveryDeadline *time.Time // nil quando a coluna veio vazia
	Status           string
	SalesChannel     string
	PaymentTerm      string
	CostValue        decimal.Decimal
	ProductsValue    decimal.Decimal
	DiscountValue    decimal.Decimal
	TotalValue       decimal.Decimal
}

// SalePaymentRecord linha crua de "SalesPayments".
type SalePaymentRecord struct {
	SaleID            string // -> Sale.GestionID
	DueDate           string
	Amount            string
	PaymentMethodName string
	Note              string
}

// SalePayment parcela normalizada de uma venda.
type SalePayment struct {
	SaleID            string
	DueDate           time.Time
	Amount            decimal.Decimal
	PaymentMethodName string
	Note              string
}

// SaleProductRecord linha crua de "SalesProducts", enriquecida pelo LEFT JOIN
// com "Products" (ExpeditionCode, GroupName, WarehouseStock).
type SaleProductRecord struct {
	SaleID         string
	Name           string
	Details        string
	Quantity       string
	CostValue      string
	SaleValue      string
	DiscountValue  string
	TotalValue     string
	ExpeditionCode string
	GroupName      string
	WarehouseStock string
}

// SaleProduct item de venda normalizado.
type SaleProduct struct {
	SaleID         string
	Name           string
	Details        string
	Quantity       decimal.Decimal
	CostValue      decimal.Decimal
	SaleValue      decimal.Decimal
	DiscountValue  decimal.Decimal
	TotalValue     decimal.Decimal
	ExpeditionCode string
	GroupName      string
	WarehouseStock int64
}
