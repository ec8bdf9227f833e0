package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/normalize"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

var _ repository.UpdateLogRepository = (*UpdateLogRepo)(nil)

// UpdateLogRepo registros de frescor do ETL ("UpdateLog").
type UpdateLogRepo struct {
	pool    *pgxpool.Pool
	planner Planner
}

// NewUpdateLogRepository constrói o adaptador do log de cargas.
func NewUpdateLogRepository(pool *pgxpool.Pool) *UpdateLogRepo {
	return &UpdateLogRepo{pool: pool, planner: NewPlanner()}
}

var updateLogColumns = []string{
	`"SourceId"`, `"Date"`, `"Time"`, `"Period"`, `"Inserted"`, `"Updated"`,
}

// Latest devolve o registro mais recente da fonte, ou nil se nunca carregou.
func (r *UpdateLogRepo) Latest(ctx context.Context, sourceID string) (*entity.UpdateLog, error) {
	logs, err := r.History(ctx, sourceID, 1)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}
	return &logs[0], nil
}

// History devolve até limit registros da fonte, do mais recente ao mais antigo.
func (r *UpdateLogRepo) History(ctx context.Context, sourceID string, limit int) ([]entity.UpdateLog, error) {
	if limit <= 0 {
		limit = 10
	}
	qb := r.planner.Select(`"UpdateLog"`, updateLogColumns...).
		Where(squirrel.Eq{`"SourceId"`: sourceID}).
		OrderBy(`"Date"::DATE DESC`, `"Time" DESC`).
		Limit(uint64(limit))

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryErr("updateLog.History", err)
	}
	defer rows.Close()

	var out []entity.UpdateLog
	for rows.Next() {
		var rec entity.UpdateLog
		var inserted, updated string
		if err := rows.Scan(&rec.SourceID, &rec.Date, &rec.Time, &rec.Period, &inserted, &updated); err != nil {
			return nil, wrapQueryErr("updateLog.History scan", err)
		}
		rec.Inserted = normalize.Integer(inserted)
		rec.Updated = normalize.Integer(updated)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("updateLog.History rows", err)
	}
	return out, nil
}

// Healthcheck executa SELECT 1.
func (r *UpdateLogRepo) Healthcheck(ctx context.Context) error {
	return Healthcheck(ctx, r.pool)
}
