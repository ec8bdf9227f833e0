package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// QueryError falha do driver numa consulta. SQLState carrega o código
// PostgreSQL quando disponível; Timeout marca estouro de prazo do contexto.
// A camada de serviço traduz para domain.DatabaseError.
type QueryError struct {
	Op       string
	SQLState string
	Message  string
	Timeout  bool
	Err      error
}

func (e *QueryError) Error() string {
	if e.SQLState != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Op, e.Message, e.SQLState)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *QueryError) Unwrap() error { return e.Err }

// SQLStateCode devolve o SQLSTATE ("" quando o driver não informou).
func (e *QueryError) SQLStateCode() string { return e.SQLState }

// TimedOut indica estouro de prazo.
func (e *QueryError) TimedOut() bool { return e.Timeout }

// wrapQueryErr converte um erro do pgx em QueryError com SQLSTATE e timeout.
func wrapQueryErr(op string, err error) error {
	qe := &QueryError{Op: op, Message: err.Error(), Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		qe.SQLState = pgErr.Code
		qe.Message = pgErr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		qe.Timeout = true
	}
	return qe
}
