// Package memory implementa los repositorios sobre maps en memoria.
// Se usa en desarrollo y en los tests end-to-end; el comportamiento
// observable (orden, errores, unicidad) replica al adaptador postgres.
package memory

import (
	"context"
	"sync"

	"veterinaria-backend/internal/platform/pagination"
)

// TxRunner serializa las mutaciones multi-escritura bajo un mutex
// global. No hay rollback: la atomicidad real la da el adaptador
// postgres; aquí alcanza con que dos pivotes no se intercalen.
type TxRunner struct {
	mu sync.Mutex
}

func NewTxRunner() *TxRunner {
	return &TxRunner{}
}

func (t *TxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}

// paginate corta la página pedida de un slice ya ordenado.
func paginate[T any](items []T, p pagination.Params) ([]T, int) {
	total := len(items)
	start := p.Offset()
	if start >= total {
		return []T{}, total
	}
	end := start + p.Limit()
	if end > total {
		end = total
	}
	return items[start:end], total
}
