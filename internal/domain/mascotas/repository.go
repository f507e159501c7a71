package mascotas

import (
	"context"

	"veterinaria-backend/internal/platform/pagination"
)

type Repository interface {
	Create(ctx context.Context, m Mascota) error
	GetByID(ctx context.Context, id string) (Mascota, error)
	Update(ctx context.Context, m Mascota) error
	List(ctx context.Context, p pagination.Params) ([]Mascota, int, error)
	ListByCliente(ctx context.Context, clienteID string) ([]Mascota, error)
}
