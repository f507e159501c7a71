package consultas

import (
	"context"

	"veterinaria-backend/internal/platform/pagination"
)

type ListFilter struct {
	VeterinarioID string
	EsSeguimiento *bool
}

type Repository interface {
	Create(ctx context.Context, c Consulta) error
	GetByID(ctx context.Context, id string) (Consulta, error)
	GetByTriaje(ctx context.Context, triajeID string) (Consulta, error)
	ExistsByTriaje(ctx context.Context, triajeID string) (bool, error)

	// List ordena por fecha_consulta desc.
	List(ctx context.Context, f ListFilter, p pagination.Params) ([]Consulta, int, error)

	CreateDiagnostico(ctx context.Context, d Diagnostico) error
	ListDiagnosticos(ctx context.Context, consultaID string) ([]Diagnostico, error)

	CreateTratamiento(ctx context.Context, t Tratamiento) error
	ListTratamientos(ctx context.Context, consultaID string) ([]Tratamiento, error)
}
