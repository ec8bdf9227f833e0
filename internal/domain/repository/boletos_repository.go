package repository

import (
	"context"
	"time"

	"github.com/lucashmelo/painel-gestao/internal/domain/entity"
)

// BoletosRepository boletos importados ("Boletos").
type BoletosRepository interface {
	// BetweenTimestamps devolve boletos com "SendTimestamp" dentro do
	// intervalo, ordenados por envio decrescente com desempate por "BoletoId".
	BetweenTimestamps(ctx context.Context, from, to time.Time) ([]entity.BoletoRecord, error)

	Healthcheck(ctx context.Context) error
}
