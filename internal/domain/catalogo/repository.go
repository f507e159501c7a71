package catalogo

import "context"

type Repository interface {
	CreateRaza(ctx context.Context, r Raza) error
	GetRaza(ctx context.Context, id string) (Raza, error)
	ListRazas(ctx context.Context) ([]Raza, error)

	CreateEspecialidad(ctx context.Context, e Especialidad) error
	GetEspecialidad(ctx context.Context, id string) (Especialidad, error)
	ListEspecialidades(ctx context.Context) ([]Especialidad, error)

	CreateTipoServicio(ctx context.Context, t TipoServicio) error
	GetTipoServicio(ctx context.Context, id string) (TipoServicio, error)
	ListTiposServicio(ctx context.Context) ([]TipoServicio, error)

	CreateServicio(ctx context.Context, s Servicio) error
	GetServicio(ctx context.Context, id string) (Servicio, error)
	ListServicios(ctx context.Context) ([]Servicio, error)
	UpdateServicio(ctx context.Context, s Servicio) error

	CreatePatologia(ctx context.Context, p Patologia) error
	GetPatologia(ctx context.Context, id string) (Patologia, error)
	GetPatologiaByNombre(ctx context.Context, nombre string) (Patologia, error)
	ListPatologias(ctx context.Context) ([]Patologia, error)
}
