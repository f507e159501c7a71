package clientes

import (
	"context"

	"veterinaria-backend/internal/platform/pagination"
)

type Repository interface {
	Create(ctx context.Context, c Cliente) error
	GetByID(ctx context.Context, id string) (Cliente, error)
	GetByDNI(ctx context.Context, dni string) (Cliente, error)
	GetByEmail(ctx context.Context, email string) (Cliente, error)
	Update(ctx context.Context, c Cliente) error

	// List devuelve clientes ordenados por fecha_registro desc.
	List(ctx context.Context, p pagination.Params) ([]Cliente, int, error)
}
