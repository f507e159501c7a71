package veterinarios

import (
	"context"

	"veterinaria-backend/internal/platform/pagination"
)

type ListFilter struct {
	Disposicion    Disposicion
	EspecialidadID string
}

type Repository interface {
	Create(ctx context.Context, v Veterinario) error
	GetByID(ctx context.Context, id string) (Veterinario, error)
	GetByDNI(ctx context.Context, dni string) (Veterinario, error)
	GetByEmail(ctx context.Context, email string) (Veterinario, error)
	GetByCodigoCMVP(ctx context.Context, codigo string) (Veterinario, error)
	Update(ctx context.Context, v Veterinario) error
	List(ctx context.Context, f ListFilter, p pagination.Params) ([]Veterinario, int, error)
}
