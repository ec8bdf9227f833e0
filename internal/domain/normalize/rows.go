package normalize

import (
	"time"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
)

// SaleRows normaliza linhas cruas de vendas. Única coluna com gate de
// obrigatoriedade: "TotalValue" em branco descarta a linha. As demais colunas
// monetárias em branco viram zero e a data segue as regras de Date.
func SaleRows(records []entity.SaleRecord) []entity.Sale {
	out := make([]entity.Sale, 0, len(records))
	for _, r := range records {
		if Blank(r.TotalValue) {
			continue
		}
		date, _ := Date(r.Date)
		var deadline *time.Time
		if d, ok := Date(r.DeliveryDeadline); ok {
			deadline = &d
		}
		out = append(out, entity.Sale{
			GestionID:        r.GestionID,
			Code:             r.Code,
			CustomerName:     r.CustomerName,
			SellerName:       r.SellerName,
			Date:             date,
			DeliveryDeadline: deadline,
			Status:           r.Status,
			SalesChannel:     r.SalesChannel,
			PaymentTerm:      r.PaymentTerm,
			CostValue:        Money(r.CostValue),
			ProductsValue:    Money(r.ProductsValue),
			DiscountValue:    Money(r.DiscountValue),
			TotalValue:       Money(r.TotalValue),
		})
	}
	return out
}

// SalePaymentRows normaliza parcelas. Gate em "Amount"; "DueDate" segue Date.
func SalePaymentRows(records []entity.SalePaymentRecord) []entity.SalePayment {
	out := make([]entity.SalePayment, 0, len(records))
	for _, r := range records {
		if Blank(r.Amount) {
			continue
		}
		due, _ := Date(r.DueDate)
		out = append(out, entity.SalePayment{
			SaleID:            r.SaleID,
			DueDate:           due,
			Amount:            Money(r.Amount),
			PaymentMethodName: r.PaymentMethodName,
			Note:              r.Note,
		})
	}
	return out
}

// SaleProductRows normaliza itens de venda (já enriquecidos pelo join com produtos).
func SaleProductRows(records []entity.SaleProductRecord) []entity.SaleProduct {
	out := make([]entity.SaleProduct, 0, len(records))
	for _, r := range records {
		out = append(out, entity.SaleProduct{
			SaleID:         r.SaleID,
			Name:           r.Name,
			Details:        r.Details,
			Quantity:       Money(r.Quantity),
			CostValue:      Money(r.CostValue),
			SaleValue:      Money(r.SaleValue),
			DiscountValue:  Money(r.DiscountValue),
			TotalValue:     Money(r.TotalValue),
			ExpeditionCode: r.ExpeditionCode,
			GroupName:      r.GroupName,
			WarehouseStock: Integer(r.WarehouseStock),
		})
	}
	return out
}

// ProductRows normaliza o catálogo e deriva o estoque disponível:
// max(0, WarehouseStock - (SeparatedStock + DispatchedStock)).
func ProductRows(records []entity.ProductRecord) []entity.Product {
	out := make([]entity.Product, 0, len(records))
	for _, r := range records {
		warehouse := Integer(r.WarehouseStock)
		separated := Integer(r.SeparatedStock)
		dispatched := Integer(r.DispatchedStock)
		available := warehouse - (separated + dispatched)
		if available < 0 {
			available = 0
		}
		out = append(out, entity.Product{
			GestionID:       r.GestionID,
			Name:            r.Name,
			Description:     r.Description,
			InternalCode:    r.InternalCode,
			BarCode:         r.BarCode,
			GroupName:       r.GroupName,
			WarehouseStock:  warehouse,
			SeparatedStock:  separated,
			DispatchedStock: dispatched,
			AvailableStock:  available,
			CostValue:       Money(r.CostValue),
			SaleValue:       Money(r.SaleValue),
			Location:        r.Location,
			ExpeditionCode:  r.ExpeditionCode,
		})
	}
	return out
}

// ReceivableRows normaliza contas a receber. Gate em "Amount".
func ReceivableRows(records []entity.ReceivableRecord) []entity.Receivable {
	out := make([]entity.Receivable, 0, len(records))
	for _, r := range records {
		if Blank(r.Amount) {
			continue
		}
		due, _ := Date(r.DueDate)
		out = append(out, entity.Receivable{
			DueDate:       due,
			Amount:        Money(r.Amount),
			PaymentMethod: r.PaymentMethod,
			CustomerName:  r.CustomerName,
		})
	}
	return out
}

// StatementRows normaliza lançamentos de extrato. Gate em "Amount".
func StatementRows(records []entity.StatementRecord) []entity.StatementLine {
	out := make([]entity.StatementLine, 0, len(records))
	for _, r := range records {
		if Blank(r.Amount) {
			continue
		}
		date, _ := Date(r.Date)
		out = append(out, entity.StatementLine{
			Bank:        r.Bank,
			Branch:      r.Branch,
			Account:     r.Account,
			Date:        date,
			Document:    r.Document,
			Description: r.Description,
			Amount:      Money(r.Amount),
			DebitCredit: r.DebitCredit,
			Company:     r.Company,
			CostCenter:  r.CostCenter,
		})
	}
	return out
}

// BoletoRows normaliza boletos; SendTimestamp preserva a hora.
func BoletoRows(records []entity.BoletoRecord) []entity.Boleto {
	out := make([]entity.Boleto, 0, len(records))
	for _, r := range records {
		due, _ := Date(r.DueDate)
		imported, _ := Date(r.ImportDate)
		sent, _ := DateTime(r.SendTimestamp)
		out = append(out, entity.Boleto{
			Name:          r.Name,
			BoletoID:      r.BoletoID,
			DueDate:       due,
			ImportDate:    imported,
			SendTimestamp: sent,
			Status:        r.Status,
		})
	}
	return out
}

// CustomerRows normaliza clientes. Active aceita as variantes do ETL.
func CustomerRows(records []entity.CustomerRecord) []entity.Customer {
	out := make([]entity.Customer, 0, len(records))
	for _, r := range records {
		registered, _ := Date(r.RegisterDate)
		out = append(out, entity.Customer{
			GestionID:       r.GestionID,
			TypeOfPerson:    r.TypeOfPerson,
			LegalName:       r.LegalName,
			Name:            r.Name,
			TaxIDBusiness:   r.TaxIDBusiness,
			TaxIDIndividual: r.TaxIDIndividual,
			Email:           r.Email,
			RegisterDate:    registered,
			Active:          isTruthy(r.Active),
		})
	}
	return out
}

// ServiceOrderRows normaliza ordens de serviço.
func ServiceOrderRows(records []entity.ServiceOrderRecord) []entity.ServiceOrder {
	out := make([]entity.ServiceOrder, 0, len(records))
	for _, r := range records {
		date, _ := Date(r.Date)
		out = append(out, entity.ServiceOrder{
			GestionID:    r.GestionID,
			OSCode:       r.OSCode,
			Date:         date,
			CustomerName: r.CustomerName,
			Status:       r.Status,
		})
	}
	return out
}

// ServiceOrderProductRows normaliza itens de OS. Gate em "TotalValue".
func ServiceOrderProductRows(records []entity.ServiceOrderProductRecord) []entity.ServiceOrderProduct {
	out := make([]entity.ServiceOrderProduct, 0, len(records))
	for _, r := range records {
		if Blank(r.TotalValue) {
			continue
		}
		out = append(out, entity.ServiceOrderProduct{
			OS:              r.OS,
			Name:            r.Name,
			UnitSymbol:      r.UnitSymbol,
			Quantity:        Money(r.Quantity),
			UnitSaleValue:   Money(r.UnitSaleValue),
			DiscountType:    r.DiscountType,
			DiscountAmount:  Money(r.DiscountAmount),
			DiscountPercent: Money(r.DiscountPercent),
			TotalValue:      Money(r.TotalValue),
		})
	}
	return out
}

func isTruthy(v string) bool {
	switch v {
	case "1", "t", "true", "True", "S", "Sim", "sim", "A", "Ativo":
		return true
	}
	return false
}
