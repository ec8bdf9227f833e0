package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

var _ repository.ServiceOrdersRepository = (*ServiceOrdersRepo)(nil)

// ServiceOrdersRepo ordens de serviço ("ServiceOrders").
type ServiceOrdersRepo struct {
	pool    *pgxpool.Pool
	planner Planner
}

// NewServiceOrdersRepository constrói o adaptador de OS.
func NewServiceOrdersRepository(pool *pgxpool.Pool) *ServiceOrdersRepo {
	return &ServiceOrdersRepo{pool: pool, planner: NewPlanner()}
}

var serviceOrderColumns = []string{
	`"GestionId"`, `"OSCode"`, `"Date"`, `"CustomerName"`, `"Status"`,
}

// Filtered devolve OS do período, com filtro opcional de status.
func (r *ServiceOrdersRepo) Filtered(ctx context.Context, spec filter.Spec) ([]entity.ServiceOrderRecord, error) {
	qb := r.planner.Select(`"ServiceOrders"`, serviceOrderColumns...)

	qb, err := r.planner.Apply(qb, spec, FilterColumns{
		Date:   `"Date"`,
		Status: `"Status"`,
	})
	if err != nil {
		return nil, err
	}
	qb = qb.OrderBy(`"Date"::DATE DESC`, `"OSCode" ASC`)
	return r.query(ctx, "serviceOrders.Filtered", qb)
}

// All devolve todas as OS, mais recentes primeiro.
func (r *ServiceOrdersRepo) All(ctx context.Context) ([]entity.ServiceOrderRecord, error) {
	qb := r.planner.Select(`"ServiceOrders"`, serviceOrderColumns...).
		OrderBy(`"Date"::DATE DESC`, `"OSCode" ASC`)
	return r.query(ctx, "serviceOrders.All", qb)
}

func (r *ServiceOrdersRepo) query(ctx context.Context, op string, qb squirrel.SelectBuilder) ([]entity.ServiceOrderRecord, error) {
	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryErr(op, err)
	}
	defer rows.Close()

	var out []entity.ServiceOrderRecord
	for rows.Next() {
		var rec entity.ServiceOrderRecord
		if err := rows.Scan(&rec.GestionID, &rec.OSCode, &rec.Date, &rec.CustomerName, &rec.Status); err != nil {
			return nil, wrapQueryErr(op+" scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(op+" rows", err)
	}
	return out, nil
}

// Healthcheck executa SELECT 1.
func (r *ServiceOrdersRepo) Healthcheck(ctx context.Context) error {
	return Healthcheck(ctx, r.pool)
}

var _ repository.ServiceOrderProductsRepository = (*ServiceOrderProductsRepo)(nil)

// ServiceOrderProductsRepo itens de OS ("ServiceOrderProducts").
type ServiceOrderProductsRepo struct {
	pool    *pgxpool.Pool
	planner Planner
}

// NewServiceOrderProductsRepository constrói o adaptador de itens de OS.
func NewServiceOrderProductsRepository(pool *pgxpool.Pool) *ServiceOrderProductsRepo {
	return &ServiceOrderProductsRepo{pool: pool, planner: NewPlanner()}
}

// ForOSIDs devolve itens das OS dadas. Lista vazia devolve vazio sem I/O.
func (r *ServiceOrderProductsRepo) ForOSIDs(ctx context.Context, ids []string) ([]entity.ServiceOrderProductRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	qb := r.planner.Select(`"ServiceOrderProducts"`,
		`"OS"`, `"Name"`, `"UnitSymbol"`, `"Quantity"`, `"UnitSaleValue"`,
		`"DiscountType"`, `"DiscountAmount"`, `"DiscountPercent"`, `"TotalValue"`,
	).
		Where(squirrel.Eq{`"OS"`: ids}).
		OrderBy(`"OS" ASC`, `"Name" ASC`)

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryErr("serviceOrderProducts.ForOSIDs", err)
	}
	defer rows.Close()

	var out []entity.ServiceOrderProductRecord
	for rows.Next() {
		var rec entity.ServiceOrderProductRecord
		if err := rows.Scan(
			&rec.OS, &rec.Name, &rec.UnitSymbol, &rec.Quantity, &rec.UnitSaleValue,
			&rec.DiscountType, &rec.DiscountAmount, &rec.DiscountPercent, &rec.TotalValue,
		); err != nil {
			return nil, wrapQueryErr("serviceOrderProducts.ForOSIDs scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("serviceOrderProducts.ForOSIDs rows", err)
	}
	return out, nil
}

// Healthcheck executa SELECT 1.
func (r *ServiceOrderProductsRepo) Healthcheck(ctx context.Context) error {
	return Healthcheck(ctx, r.pool)
}
