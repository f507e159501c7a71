package triaje

import (
	"context"

	"veterinaria-backend/internal/platform/pagination"
)

type Repository interface {
	Create(ctx context.Context, t Triaje) error
	GetByID(ctx context.Context, id string) (Triaje, error)
	GetBySolicitud(ctx context.Context, solicitudID string) (Triaje, error)
	Update(ctx context.Context, t Triaje) error

	// List ordena por fecha_hora_triaje desc.
	List(ctx context.Context, p pagination.Params) ([]Triaje, int, error)
}

// ConsultaLookup lo implementa el repositorio de consultas. El triaje
// lo usa para congelarse cuando ya existe una consulta encima.
type ConsultaLookup interface {
	ExistsByTriaje(ctx context.Context, triajeID string) (bool, error)
}
