package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOrderRecord linha crua da tabela "ServiceOrders".
type ServiceOrderRecord struct {
	GestionID    string
	OSCode       string
	Date         string
	CustomerName string
	Status       string
}

// ServiceOrder ordem de serviço normalizada.
type ServiceOrder struct {
	GestionID    string
	OSCode       string
	Date         time.Time
	CustomerName string
	Status       string
}

// ServiceOrderProductRecord linha crua de "ServiceOrderProducts".
type ServiceOrderProductRecord struct {
	OS              string // -> ServiceOrder.OSCode
	Name            string
	UnitSymbol      string
	Quantity        string
	UnitSaleValue   string
	DiscountType    string
	DiscountAmount  string
	DiscountPercent string
	TotalValue      string
}

// ServiceOrderProduct item de OS normalizado.
type ServiceOrderProduct struct {
	OS              string
	Name            string
	UnitSymbol      string
	Quantity        decimal.Decimal
	UnitSaleValue   decimal.Decimal
	DiscountType    string
	DiscountAmount  decimal.Decimal
	DiscountPercent decimal.Decimal
	TotalValue      decimal.Decimal
}
