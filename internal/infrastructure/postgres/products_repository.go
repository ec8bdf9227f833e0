package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

var _ repository.ProductsRepository = (*ProductsRepo)(nil)

// ProductsRepo catálogo de produtos ("Products").
type ProductsRepo struct {
	pool    *pgxpool.Pool
	planner Planner
}

// NewProductsRepository constrói o adaptador do catálogo.
func NewProductsRepository(pool *pgxpool.Pool) *ProductsRepo {
	return &ProductsRepo{pool: pool, planner: NewPlanner()}
}

var productColumns = []string{
	`"GestionId"`, `"Name"`, `"Description"`, `"InternalCode"`, `"BarCode"`,
	`"GroupName"`, `"WarehouseStock"`, `"SeparatedStock"`, `"DispatchedStock"`,
	`"CostValue"`, `"SaleValue"`, `"Location"`, `"ExpeditionCode"`,
}

// All devolve o catálogo completo, ordenado por nome.
func (r *ProductsRepo) All(ctx context.Context) ([]entity.ProductRecord, error) {
	qb := r.planner.Select(`"Products"`, productColumns...).
		OrderBy(`"Name" ASC`, `"GestionId" ASC`)
	return r.query(ctx, "products.All", qb)
}

// Search busca por nome, código interno ou código de barras.
func (r *ProductsRepo) Search(ctx context.Context, term string) ([]entity.ProductRecord, error) {
	pattern := "%" + term + "%"
	qb := r.planner.Select(`"Products"`, productColumns...).
		Where(squirrel.Or{
			squirrel.ILike{`"Name"`: pattern},
			squirrel.ILike{`"InternalCode"`: pattern},
			squirrel.ILike{`"BarCode"`: pattern},
		}).
		OrderBy(`"Name" ASC`, `"GestionId" ASC`)
	return r.query(ctx, "products.Search", qb)
}

// LowStock devolve produtos com estoque de depósito até o limiar. A coluna é
// TEXT; vazios contam como zero.
func (r *ProductsRepo) LowStock(ctx context.Context, threshold int64) ([]entity.ProductRecord, error) {
	qb := r.planner.Select(`"Products"`, productColumns...).
		Where(squirrel.Expr(
			`COALESCE(NULLIF(TRIM("WarehouseStock"), '')::NUMERIC, 0) <= ?`,
			threshold,
		)).
		OrderBy(`"Name" ASC`, `"GestionId" ASC`)
	return r.query(ctx, "products.LowStock", qb)
}

func (r *ProductsRepo) query(ctx context.Context, op string, qb squirrel.SelectBuilder) ([]entity.ProductRecord, error) {
	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryErr(op, err)
	}
	defer rows.Close()

	var out []entity.ProductRecord
	for rows.Next() {
		var rec entity.ProductRecord
		if err := rows.Scan(
			&rec.GestionID, &rec.Name, &rec.Description, &rec.InternalCode,
			&rec.BarCode, &rec.GroupName, &rec.WarehouseStock, &rec.SeparatedStock,
			&rec.DispatchedStock, &rec.CostValue, &rec.SaleValue, &rec.Location,
			&rec.ExpeditionCode,
		); err != nil {
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
func (r *ProductsRepo) Healthcheck(ctx context.Context) error {
	return Healthcheck(ctx, r.pool)
}
