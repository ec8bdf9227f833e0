package postgres

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

var _ repository.BoletosRepository = (*BoletosRepo)(nil)

// BoletosRepo boletos importados da cobrança ("Boletos").
type BoletosRepo struct {
	pool    *pgxpool.Pool
	planner Planner
}

// NewBoletosRepository constrói o adaptador de boletos.
func NewBoletosRepository(pool *pgxpool.Pool) *BoletosRepo {
	return &BoletosRepo{pool: pool, planner: NewPlanner()}
}

// BetweenTimestamps devolve boletos enviados dentro do intervalo. A coluna
// "SendTimestamp" é TEXT com vazios; o NULLIF evita erro de cast.
func (r *BoletosRepo) BetweenTimestamps(ctx context.Context, from, to time.Time) ([]entity.BoletoRecord, error) {
	qb := r.planner.Select(`"Boletos"`,
		`"Name"`, `"BoletoId"`, `"DueDate"`, `"ImportDate"`, `"SendTimestamp"`, `"Status"`,
	).
		Where(squirrel.Expr(
			`NULLIF(TRIM("SendTimestamp"), '')::TIMESTAMP BETWEEN ? AND ?`,
			from, to,
		)).
		OrderBy(`NULLIF(TRIM("SendTimestamp"), '')::TIMESTAMP DESC`, `"BoletoId" ASC`)

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryErr("boletos.BetweenTimestamps", err)
	}
	defer rows.Close()

	var out []entity.BoletoRecord
	for rows.Next() {
		var rec entity.BoletoRecord
		if err := rows.Scan(&rec.Name, &rec.BoletoID, &rec.DueDate, &rec.ImportDate, &rec.SendTimestamp, &rec.Status); err != nil {
			return nil, wrapQueryErr("boletos.BetweenTimestamps scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("boletos.BetweenTimestamps rows", err)
	}
	return out, nil
}

// Healthcheck executa SELECT 1.
func (r *BoletosRepo) Healthcheck(ctx context.Context) error {
	return Healthcheck(ctx, r.pool)
}
