package recepcionistas

import (
	"context"

	"veterinaria-backend/internal/platform/pagination"
)

type Repository interface {
	Create(ctx context.Context, rec Recepcionista) error
	GetByID(ctx context.Context, id string) (Recepcionista, error)
	GetByDNI(ctx context.Context, dni string) (Recepcionista, error)
	GetByEmail(ctx context.Context, email string) (Recepcionista, error)
	Update(ctx context.Context, rec Recepcionista) error
	List(ctx context.Context, p pagination.Params) ([]Recepcionista, int, error)
}
