package solicitudes

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/mascotas"
	"veterinaria-backend/internal/domain/recepcionistas"
	"veterinaria-backend/internal/platform/pagination"
)

type Service struct {
	repo            Repository
	mascotasSvc     *mascotas.Service
	recepcionistSvc *recepcionistas.Service
	now             func() time.Time
}

func NewService(repo Repository, mascotasSvc *mascotas.Service, recepcionistSvc *recepcionistas.Service) *Service {
	return &Service{
		repo:            repo,
		mascotasSvc:     mascotasSvc,
		recepcionistSvc: recepcionistSvc,
		now:             time.Now,
	}
}

type CreateInput struct {
	MascotaID       string
	RecepcionistaID string
	Tipo            Tipo
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Solicitud, error) {
	if !ValidTipo(in.Tipo) {
		return Solicitud{}, apperr.Validation("tipo_solicitud debe ser Emergency, Routine o ScheduledService")
	}

	if _, err := s.mascotasSvc.GetByID(ctx, in.MascotaID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Solicitud{}, apperr.NotFound("mascota no encontrada")
		}
		return Solicitud{}, err
	}
	if _, err := s.recepcionistSvc.GetByID(ctx, in.RecepcionistaID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Solicitud{}, apperr.NotFound("recepcionista no encontrada")
		}
		return Solicitud{}, err
	}

	sol := Solicitud{
		ID:                 uuid.NewString(),
		MascotaID:          in.MascotaID,
		RecepcionistaID:    in.RecepcionistaID,
		FechaHoraSolicitud: s.now(),
		Tipo:               in.Tipo,
		Estado:             EstadoPendiente,
	}
	if err := s.repo.Create(ctx, sol); err != nil {
		return Solicitud{}, err
	}
	return sol, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Solicitud, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter, p pagination.Params) ([]Solicitud, int, error) {
	if f.Estado != "" && !ValidEstado(f.Estado) {
		return nil, 0, apperr.Validation("estado de solicitud invalido")
	}
	return s.repo.List(ctx, f, p)
}

// CambiarEstado aplica una transición de la máquina de estados. La
// transición al estado actual es un no-op aceptado.
func (s *Service) CambiarEstado(ctx context.Context, id string, nuevo Estado) (Solicitud, error) {
	if !ValidEstado(nuevo) {
		return Solicitud{}, apperr.Validation("estado de solicitud invalido")
	}

	sol, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Solicitud{}, err
	}
	if !sol.Estado.CanTransition(nuevo) {
		return Solicitud{}, apperr.BadState("transicion de estado invalida: %s -> %s", sol.Estado, nuevo)
	}
	if sol.Estado == nuevo {
		return sol, nil
	}

	sol.Estado = nuevo
	if err := s.repo.Update(ctx, sol); err != nil {
		return Solicitud{}, err
	}
	return sol, nil
}

// Cancelar cierra la solicitud; las filas nunca se borran.
func (s *Service) Cancelar(ctx context.Context, id string) (Solicitud, error) {
	return s.CambiarEstado(ctx, id, EstadoCancelada)
}
