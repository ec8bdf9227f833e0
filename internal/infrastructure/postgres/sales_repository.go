package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo leitura da tabela denormalizada "Sales" (colunas TEXT do ETL).
type SalesRepo struct {
	pool    *pgxpool.Pool
	planner Planner
}

// NewSalesRepository constrói o adaptador de vendas.
func NewSalesRepository(pool *pgxpool.Pool) *SalesRepo {
	return &SalesRepo{pool: pool, planner: NewPlanner()}
}

var salesColumns = []string{
	`"GestionId"`, `"Code"`, `"CustomerName"`, `"SellerName"`, `"Date"`,
	`"DeliveryDeadline"`, `"Status"`, `"SalesChannel"`, `"PaymentTerm"`,
	`"CostValue"`, `"ProductsValue"`, `"DiscountValue"`, `"TotalValue"`,
}

// filteredQuery monta o SELECT do módulo de vendas. O gate padrão
// "Status" = 'Em andamento' só é limpo por escolha explícita de status
// (HasStatusOverride); exclusões de status não limpam o gate.
func (r *SalesRepo) filteredQuery(spec filter.Spec) (string, []interface{}, error) {
	qb := r.planner.Select(`"Sales"`, salesColumns...)

	if !spec.HasStatusOverride() {
		qb = qb.Where(squirrel.Eq{`"Status"`: entity.StatusEmAndamento})
	}

	qb, err := r.planner.Apply(qb, spec, FilterColumns{
		Date:     `"Date"`,
		Seller:   `"SellerName"`,
		Status:   `"Status"`,
		Deadline: `"DeliveryDeadline"`,
	})
	if err != nil {
		return "", nil, err
	}
	qb = qb.OrderBy(`"Date"::DATE DESC`, `"GestionId" ASC`)
	return qb.ToSql()
}

// Filtered devolve vendas do período com os predicados padrão do módulo:
// vendedores ativos (a menos que o spec desligue) e o gate de status padrão.
func (r *SalesRepo) Filtered(ctx context.Context, spec filter.Spec) ([]entity.SaleRecord, error) {
	sql, args, err := r.filteredQuery(spec)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryErr("sales.Filtered", err)
	}
	defer rows.Close()

	var out []entity.SaleRecord
	for rows.Next() {
		var rec entity.SaleRecord
		if err := rows.Scan(
			&rec.GestionID, &rec.Code, &rec.CustomerName, &rec.SellerName,
			&rec.Date, &rec.DeliveryDeadline, &rec.Status, &rec.SalesChannel,
			&rec.PaymentTerm, &rec.CostValue, &rec.ProductsValue,
			&rec.DiscountValue, &rec.TotalValue,
		); err != nil {
			return nil, wrapQueryErr("sales.Filtered scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("sales.Filtered rows", err)
	}
	return out, nil
}

// Healthcheck executa SELECT 1.
func (r *SalesRepo) Healthcheck(ctx context.Context) error {
	return Healthcheck(ctx, r.pool)
}

var _ repository.SalePaymentsRepository = (*SalePaymentsRepo)(nil)

// SalePaymentsRepo parcelas das vendas ("SalesPayments").
type SalePaymentsRepo struct {
	pool    *pgxpool.Pool
	planner Planner
}

// NewSalePaymentsRepository constrói o adaptador de parcelas.
func NewSalePaymentsRepository(pool *pgxpool.Pool) *SalePaymentsRepo {
	return &SalePaymentsRepo{pool: pool, planner: NewPlanner()}
}

// ForSaleIDs devolve parcelas das vendas dadas, ordenadas por vencimento.
// Lista vazia devolve vazio sem tocar o banco.
func (r *SalePaymentsRepo) ForSaleIDs(ctx context.Context, ids []string) ([]entity.SalePaymentRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	qb := r.planner.Select(`"SalesPayments"`,
		`"SaleId"`, `"DueDate"`, `"Amount"`, `"PaymentMethodName"`, `"Note"`,
	).
		Where(squirrel.Eq{`"SaleId"`: ids}).
		OrderBy(`"DueDate"::DATE ASC`, `"SaleId" ASC`)

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryErr("salePayments.ForSaleIDs", err)
	}
	defer rows.Close()

	var out []entity.SalePaymentRecord
	for rows.Next() {
		var rec entity.SalePaymentRecord
		if err := rows.Scan(&rec.SaleID, &rec.DueDate, &rec.Amount, &rec.PaymentMethodName, &rec.Note); err != nil {
			return nil, wrapQueryErr("salePayments.ForSaleIDs scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("salePayments.ForSaleIDs rows", err)
	}
	return out, nil
}

// Healthcheck executa SELECT 1.
func (r *SalePaymentsRepo) Healthcheck(ctx context.Context) error {
	return Healthcheck(ctx, r.pool)
}

var _ repository.SaleProductsRepository = (*SaleProductsRepo)(nil)

// SaleProductsRepo itens das vendas, enriquecidos com o catálogo de produtos.
type SaleProductsRepo struct {
	pool    *pgxpool.Pool
	planner Planner
}

// NewSaleProductsRepository constrói o adaptador de itens de venda.
func NewSaleProductsRepository(pool *pgxpool.Pool) *SaleProductsRepo {
	return &SaleProductsRepo{pool: pool, planner: NewPlanner()}
}

// ForSaleIDs devolve itens das vendas dadas com LEFT JOIN em "Products" pelo
// nome (TRIM dos dois lados: o ETL deixa espaços). Sem filtro de vendedor
// ativo — a seleção de vendas já foi feita pelo chamador.
func (r *SaleProductsRepo) ForSaleIDs(ctx context.Context, ids []string) ([]entity.SaleProductRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	qb := r.planner.Raw(`"SalesProducts" sp`,
		`COALESCE(sp."SaleId", '')`,
		`COALESCE(sp."Name", '')`,
		`COALESCE(sp."Details", '')`,
		`COALESCE(sp."Quantity", '')`,
		`COALESCE(sp."CostValue", '')`,
		`COALESCE(sp."SaleValue", '')`,
		`COALESCE(sp."DiscountValue", '')`,
		`COALESCE(sp."TotalValue", '')`,
		`COALESCE(p."ExpeditionCode", '')`,
		`COALESCE(p."GroupName", '')`,
		`COALESCE(p."WarehouseStock", '')`,
	).
		LeftJoin(`"Products" p ON TRIM(p."Name") = TRIM(sp."Name")`).
		Where(squirrel.Eq{`sp."SaleId"`: ids}).
		OrderBy(`sp."SaleId" ASC`, `sp."Name" ASC`)

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryErr("saleProducts.ForSaleIDs", err)
	}
	defer rows.Close()

	var out []entity.SaleProductRecord
	for rows.Next() {
		var rec entity.SaleProductRecord
		if err := rows.Scan(
			&rec.SaleID, &rec.Name, &rec.Details, &rec.Quantity,
			&rec.CostValue, &rec.SaleValue, &rec.DiscountValue, &rec.TotalValue,
			&rec.ExpeditionCode, &rec.GroupName, &rec.WarehouseStock,
		); err != nil {
			return nil, wrapQueryErr("saleProducts.ForSaleIDs scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("saleProducts.ForSaleIDs rows", err)
	}
	return out, nil
}

// Healthcheck executa SELECT 1.
func (r *SaleProductsRepo) Healthcheck(ctx context.Context) error {
	return Healthcheck(ctx, r.pool)
}
