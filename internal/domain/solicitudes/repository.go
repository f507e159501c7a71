package solicitudes

import (
	"context"

	"veterinaria-backend/internal/platform/pagination"
)

type ListFilter struct {
	Estado Estado
}

type Repository interface {
	Create(ctx context.Context, s Solicitud) error
	GetByID(ctx context.Context, id string) (Solicitud, error)
	Update(ctx context.Context, s Solicitud) error

	// List ordena por fecha_hora_solicitud desc.
	List(ctx context.Context, f ListFilter, p pagination.Params) ([]Solicitud, int, error)
}
