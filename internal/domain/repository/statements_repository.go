package repository

import (
	"context"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
)

// StatementsRepository extratos bancários ("BankStatements").
type StatementsRepository interface {
	// Filtered aplica o período do spec sobre "Date"::DATE.
	// Ordenação: "Date" DESC, banco/conta e documento como desempate.
	Filtered(ctx context.Context, spec filter.Spec) ([]entity.StatementRecord, error)

	Healthcheck(ctx context.Context) error
}
