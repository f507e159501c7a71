package recepcionistas

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/platform/pagination"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	DNI             string
	Telefono        string
	Email           string
	FechaIngreso    *time.Time
	Turno           Turno
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Recepcionista, error) {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.ApellidoPaterno) == "" {
		return Recepcionista{}, apperr.Validation("nombre y apellido_paterno requeridos")
	}
	dni := strings.TrimSpace(in.DNI)
	if len(dni) != 8 {
		return Recepcionista{}, apperr.Validation("dni debe tener 8 digitos")
	}
	telefono := strings.TrimSpace(in.Telefono)
	if len(telefono) != 9 {
		return Recepcionista{}, apperr.Validation("telefono debe tener 9 digitos")
	}
	email := strings.TrimSpace(in.Email)
	if !strings.Contains(email, "@") {
		return Recepcionista{}, apperr.Validation("email invalido")
	}
	if !ValidTurno(in.Turno) {
		return Recepcionista{}, apperr.Validation("turno debe ser Morning, Afternoon o Night")
	}

	if _, err := s.repo.GetByDNI(ctx, dni); err == nil {
		return Recepcionista{}, apperr.Conflict("ya existe una recepcionista con DNI %s", dni)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return Recepcionista{}, err
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Recepcionista{}, apperr.Conflict("ya existe una recepcionista con email %s", email)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return Recepcionista{}, err
	}

	ingreso := s.now()
	if in.FechaIngreso != nil {
		ingreso = *in.FechaIngreso
	}

	rec := Recepcionista{
		ID:              uuid.NewString(),
		Nombre:          strings.TrimSpace(in.Nombre),
		ApellidoPaterno: strings.TrimSpace(in.ApellidoPaterno),
		ApellidoMaterno: strings.TrimSpace(in.ApellidoMaterno),
		DNI:             dni,
		Telefono:        telefono,
		Email:           email,
		FechaIngreso:    ingreso,
		Turno:           in.Turno,
		Estado:          EstadoActivo,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return Recepcionista{}, err
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Recepcionista, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, p pagination.Params) ([]Recepcionista, int, error) {
	return s.repo.List(ctx, p)
}

type UpdateInput struct {
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	Telefono        string
	Turno           Turno
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Recepcionista, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Recepcionista{}, err
	}

	if strings.TrimSpace(in.Nombre) != "" {
		rec.Nombre = strings.TrimSpace(in.Nombre)
	}
	if strings.TrimSpace(in.ApellidoPaterno) != "" {
		rec.ApellidoPaterno = strings.TrimSpace(in.ApellidoPaterno)
	}
	if strings.TrimSpace(in.ApellidoMaterno) != "" {
		rec.ApellidoMaterno = strings.TrimSpace(in.ApellidoMaterno)
	}
	if strings.TrimSpace(in.Telefono) != "" {
		rec.Telefono = strings.TrimSpace(in.Telefono)
	}
	if in.Turno != "" {
		if !ValidTurno(in.Turno) {
			return Recepcionista{}, apperr.Validation("turno debe ser Morning, Afternoon o Night")
		}
		rec.Turno = in.Turno
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		return Recepcionista{}, err
	}
	return rec, nil
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	rec.Estado = EstadoInactivo
	return s.repo.Update(ctx, rec)
}
