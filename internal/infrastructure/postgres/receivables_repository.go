package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

var _ repository.ReceivablesRepository = (*ReceivablesRepo)(nil)

// ReceivablesRepo contas a receber: parcelas de venda cuja forma de pagamento
// está na whitelist "ReceivablePaymentMethods".
type ReceivablesRepo struct {
	pool    *pgxpool.Pool
	planner Planner
}

// NewReceivablesRepository constrói o adaptador de recebíveis.
func NewReceivablesRepository(pool *pgxpool.Pool) *ReceivablesRepo {
	return &ReceivablesRepo{pool: pool, planner: NewPlanner()}
}

// Filtered join de "SalesPayments" com "Sales" pela chave de negócio,
// período sobre DATE("DueDate") e whitelist de formas de pagamento.
func (r *ReceivablesRepo) Filtered(ctx context.Context, spec filter.Spec) ([]entity.ReceivableRecord, error) {
	qb := r.planner.Raw(`"SalesPayments" p`,
		`COALESCE(p."DueDate", '')`,
		`COALESCE(p."Amount", '')`,
		`COALESCE(p."PaymentMethodName", '')`,
		`COALESCE(s."CustomerName", '')`,
	).
		Join(`"Sales" s ON s."GestionId" = p."SaleId"`).
		Where(`p."PaymentMethodName" IN (SELECT "Name" FROM "ReceivablePaymentMethods")`)

	qb, err := r.planner.Apply(qb, spec, FilterColumns{
		Date:          `p."DueDate"`,
		PaymentMethod: `p."PaymentMethodName"`,
	})
	if err != nil {
		return nil, err
	}
	qb = qb.OrderBy(`p."DueDate"::DATE ASC`, `s."CustomerName" ASC`, `p."SaleId" ASC`)

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryErr("receivables.Filtered", err)
	}
	defer rows.Close()

	var out []entity.ReceivableRecord
	for rows.Next() {
		var rec entity.ReceivableRecord
		if err := rows.Scan(&rec.DueDate, &rec.Amount, &rec.PaymentMethod, &rec.CustomerName); err != nil {
			return nil, wrapQueryErr("receivables.Filtered scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("receivables.Filtered rows", err)
	}
	return out, nil
}

// Healthcheck executa SELECT 1.
func (r *ReceivablesRepo) Healthcheck(ctx context.Context) error {
	return Healthcheck(ctx, r.pool)
}
