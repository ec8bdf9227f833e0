package repository

import (
	"context"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
)

// UpdateLogRepository registros de frescor do ETL ("UpdateLog"), por fonte.
type UpdateLogRepository interface {
	// Latest devolve o registro mais recente da fonte, ou nil se nunca carregou.
	Latest(ctx context.Context, sourceID string) (*entity.UpdateLog, error)
	// History devolve até limit registros, do mais recente ao mais antigo.
	History(ctx context.Context, sourceID string, limit int) ([]entity.UpdateLog, error)

	Healthcheck(ctx context.Context) error
}
