package entity

import "github.com/shopspring/decimal"

// ProductRecord linha crua da tabela "Products" (colunas de estoque e valor em TEXT).
type ProductRecord struct {
	GestionID       string
	Name            string
	Description     string
	InternalCode    string
	BarCode         string
	GroupName       string
	WarehouseStock  string
	SeparatedStock  string
	DispatchedStock string
	CostValue       string
	SaleValue       string
	Location        string
	ExpeditionCode  string
}

// Product produto normalizado do catálogo.
type Product struct {
	GestionID       string
	Name            string
	Description     string
	InternalCode    string
	BarCode         string
	GroupName       string
	WarehouseStock  int64
	SeparatedStock  int64
	DispatchedStock int64
	// AvailableStock = max(0, WarehouseStock - (SeparatedStock + DispatchedStock)),
	// derivado pelo normalizador.
	AvailableStock int64
	CostValue      decimal.Decimal
	SaleValue      decimal.Decimal
	Location       string
	ExpeditionCode string
}
