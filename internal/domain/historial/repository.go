package historial

import "context"

type Repository interface {
	Append(ctx context.Context, e Evento) error

	// ListByMascota devuelve los eventos ordenados por fecha_evento desc.
	ListByMascota(ctx context.Context, mascotaID string) ([]Evento, error)
	ListByConsulta(ctx context.Context, consultaID string) ([]Evento, error)
}
