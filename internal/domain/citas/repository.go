package citas

import (
	"context"

	"veterinaria-backend/internal/platform/pagination"
)

type ServicioFilter struct {
	Estado     EstadoExamen
	ConsultaID string
}

type CitaFilter struct {
	Estado    EstadoCita
	MascotaID string
}

type Repository interface {
	CreateServicioSolicitado(ctx context.Context, s ServicioSolicitado) error
	GetServicioSolicitado(ctx context.Context, id string) (ServicioSolicitado, error)
	UpdateServicioSolicitado(ctx context.Context, s ServicioSolicitado) error
	ListServiciosSolicitados(ctx context.Context, f ServicioFilter, p pagination.Params) ([]ServicioSolicitado, int, error)

	CreateCita(ctx context.Context, c Cita) error
	GetCita(ctx context.Context, id string) (Cita, error)
	UpdateCita(ctx context.Context, c Cita) error
	ListCitas(ctx context.Context, f CitaFilter, p pagination.Params) ([]Cita, int, error)

	CreateResultado(ctx context.Context, r ResultadoServicio) error
	GetResultadoByCita(ctx context.Context, citaID string) (ResultadoServicio, error)
}
