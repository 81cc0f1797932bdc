package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConcurrencyConflict indica que uma escrita concorrente sobre o mesmo
// agregado impediu a operação mesmo após as tentativas de repetição
var ErrConcurrencyConflict = errors.New("conflito de concorrência, tente novamente")

// maxRetries é o número de repetições internas em caso de falha de
// serialização antes de devolver ErrConcurrencyConflict ao chamador
const maxRetries = 3

// isSerializationFailure verifica se o erro é uma falha de serialização
// ou deadlock do PostgreSQL (códigos 40001 e 40P01)
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

// withRetry executa fn repetindo em falhas de serialização. Esgotadas as
// tentativas, devolve ErrConcurrencyConflict.
func withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = fn(ctx)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return ErrConcurrencyConflict
}
