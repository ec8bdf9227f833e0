package postgres

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/repository"
)

var _ repository.CustomersRepository = (*CustomersRepo)(nil)

// CustomersRepo clientes ("Customers").
type CustomersRepo struct {
	pool    *pgxpool.Pool
	planner Planner
}

// NewCustomersRepository constrói o adaptador de clientes.
func NewCustomersRepository(pool *pgxpool.Pool) *CustomersRepo {
	return &CustomersRepo{pool: pool, planner: NewPlanner()}
}

var customerColumns = []string{
	`"GestionId"`, `"TypeOfPerson"`, `"LegalName"`, `"Name"`,
	`"TaxIdBusiness"`, `"TaxIdIndividual"`, `"Email"`, `"RegisterDate"`, `"Active"`,
}

// All devolve todos os clientes, ordenados por nome.
func (r *CustomersRepo) All(ctx context.Context) ([]entity.CustomerRecord, error) {
	qb := r.planner.Select(`"Customers"`, customerColumns...).
		OrderBy(`"Name" ASC`, `"GestionId" ASC`)
	return r.query(ctx, "customers.All", qb)
}

// Search busca por nome, razão social, CPF/CNPJ ou email.
func (r *CustomersRepo) Search(ctx context.Context, term string) ([]entity.CustomerRecord, error) {
	pattern := "%" + term + "%"
	qb := r.planner.Select(`"Customers"`, customerColumns...).
		Where(squirrel.Or{
			squirrel.ILike{`"Name"`: pattern},
			squirrel.ILike{`"LegalName"`: pattern},
			squirrel.ILike{`"TaxIdBusiness"`: pattern},
			squirrel.ILike{`"TaxIdIndividual"`: pattern},
			squirrel.ILike{`"Email"`: pattern},
		}).
		OrderBy(`"Name" ASC`, `"GestionId" ASC`)
	return r.query(ctx, "customers.Search", qb)
}

// ByID devolve o cliente pela chave de negócio, ou nil quando não existe.
func (r *CustomersRepo) ByID(ctx context.Context, id string) (*entity.CustomerRecord, error) {
	qb := r.planner.Select(`"Customers"`, customerColumns...).
		Where(squirrel.Eq{`"GestionId"`: id})

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	var rec entity.CustomerRecord
	err = r.pool.QueryRow(ctx, sql, args...).Scan(
		&rec.GestionID, &rec.TypeOfPerson, &rec.LegalName, &rec.Name,
		&rec.TaxIDBusiness, &rec.TaxIDIndividual, &rec.Email, &rec.RegisterDate, &rec.Active,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapQueryErr("customers.ByID", err)
	}
	return &rec, nil
}

func (r *CustomersRepo) query(ctx context.Context, op string, qb squirrel.SelectBuilder) ([]entity.CustomerRecord, error) {
	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryErr(op, err)
	}
	defer rows.Close()

	var out []entity.CustomerRecord
	for rows.Next() {
		var rec entity.CustomerRecord
		if err := rows.Scan(
			&rec.GestionID, &rec.TypeOfPerson, &rec.LegalName, &rec.Name,
			&rec.TaxIDBusiness, &rec.TaxIDIndividual, &rec.Email, &rec.RegisterDate, &rec.Active,
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
func (r *CustomersRepo) Healthcheck(ctx context.Context) error {
	return Healthcheck(ctx, r.pool)
}
