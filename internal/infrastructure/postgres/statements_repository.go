package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

var _ repository.StatementsRepository = (*StatementsRepo)(nil)

// StatementsRepo extratos bancários ("BankStatements").
type StatementsRepo struct {
	pool    *pgxpool.Pool
	planner Planner
}

// NewStatementsRepository constrói o adaptador de extratos.
func NewStatementsRepository(pool *pgxpool.Pool) *StatementsRepo {
	return &StatementsRepo{pool: pool, planner: NewPlanner()}
}

// Filtered devolve lançamentos do período, mais recentes primeiro.
func (r *StatementsRepo) Filtered(ctx context.Context, spec filter.Spec) ([]entity.StatementRecord, error) {
	qb := r.planner.Select(`"BankStatements"`,
		`"Bank"`, `"Branch"`, `"Account"`, `"Date"`, `"Document"`,
		`"Description"`, `"Amount"`, `"DebitCredit"`, `"Company"`, `"CostCenter"`,
	)

	qb, err := r.planner.Apply(qb, spec, FilterColumns{Date: `"Date"`})
	if err != nil {
		return nil, err
	}
	qb = qb.OrderBy(`"Date"::DATE DESC`, `"Bank" ASC`, `"Account" ASC`, `"Document" ASC`)

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryErr("statements.Filtered", err)
	}
	defer rows.Close()

	var out []entity.StatementRecord
	for rows.Next() {
		var rec entity.StatementRecord
		if err := rows.Scan(
			&rec.Bank, &rec.Branch, &rec.Account, &rec.Date, &rec.Document,
			&rec.Description, &rec.Amount, &rec.DebitCredit, &rec.Company, &rec.CostCenter,
		); err != nil {
			return nil, wrapQueryErr("statements.Filtered scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("statements.Filtered rows", err)
	}
	return out, nil
}

// Healthcheck executa SELECT 1.
func (r *StatementsRepo) Healthcheck(ctx context.Context) error {
	return Healthcheck(ctx, r.pool)
}
