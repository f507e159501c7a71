package tx

import "context"

// Runner ejecuta fn dentro de una unidad atómica de trabajo. La
// implementación postgres abre una transacción y la propaga por el
// contexto; la in-memory serializa bajo el lock del store.
type Runner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Nop ejecuta fn sin ninguna garantía transaccional. Útil en tests de
// services que no ejercitan los flujos multi-escritura.
type Nop struct{}

func (Nop) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
