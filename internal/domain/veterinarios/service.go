package veterinarios

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
	EspecialidadID  string
	CodigoCMVP      string
	Tipo            Tipo
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	DNI             string
	Telefono        string
	Email           string
	FechaIngreso    *time.Time
	Turno           Turno
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Veterinario, error) {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.ApellidoPaterno) == "" {
		return Veterinario{}, apperr.Validation("nombre y apellido_paterno requeridos")
	}
	codigo := strings.TrimSpace(in.CodigoCMVP)
	if codigo == "" {
		return Veterinario{}, apperr.Validation("codigo_cmvp requerido")
	}
	if !ValidTipo(in.Tipo) {
		return Veterinario{}, apperr.Validation("tipo_veterinario debe ser GeneralMedicine o Specialist")
	}
	if !ValidTurno(in.Turno) {
		return Veterinario{}, apperr.Validation("turno debe ser Morning, Afternoon o Night")
	}
	dni := strings.TrimSpace(in.DNI)
	if len(dni) != 8 {
		return Veterinario{}, apperr.Validation("dni debe tener 8 digitos")
	}
	telefono := strings.TrimSpace(in.Telefono)
	if len(telefono) != 9 {
		return Veterinario{}, apperr.Validation("telefono debe tener 9 digitos")
	}
	email := strings.TrimSpace(in.Email)
	if !strings.Contains(email, "@") {
		return Veterinario{}, apperr.Validation("email invalido")
	}

	if _, err := s.repo.GetByDNI(ctx, dni); err == nil {
		return Veterinario{}, apperr.Conflict("ya existe un veterinario con DNI %s", dni)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return Veterinario{}, err
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Veterinario{}, apperr.Conflict("ya existe un veterinario con email %s", email)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return Veterinario{}, err
	}
	if _, err := s.repo.GetByCodigoCMVP(ctx, codigo); err == nil {
		return Veterinario{}, apperr.Conflict("ya existe un veterinario con codigo CMVP %s", codigo)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return Veterinario{}, err
	}

	ingreso := s.now()
	if in.FechaIngreso != nil {
		ingreso = *in.FechaIngreso
	}

	v := Veterinario{
		ID:              uuid.NewString(),
		EspecialidadID:  strings.TrimSpace(in.EspecialidadID),
		CodigoCMVP:      codigo,
		Tipo:            in.Tipo,
		Nombre:          strings.TrimSpace(in.Nombre),
		ApellidoPaterno: strings.TrimSpace(in.ApellidoPaterno),
		ApellidoMaterno: strings.TrimSpace(in.ApellidoMaterno),
		DNI:             dni,
		Telefono:        telefono,
		Email:           email,
		FechaIngreso:    ingreso,
		Turno:           in.Turno,
		Estado:          EstadoActivo,
		Disposicion:     DisposicionLibre,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return Veterinario{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Veterinario, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter, p pagination.Params) ([]Veterinario, int, error) {
	return s.repo.List(ctx, f, p)
}

// CambiarDisposicion la invocan los flujos de consulta (crear => Busy,
// finalizar => Free). Es idempotente: re-aplicar el mismo valor no falla.
func (s *Service) CambiarDisposicion(ctx context.Context, id string, d Disposicion) error {
	if d != DisposicionLibre && d != DisposicionOcupado {
		return apperr.Validation("disposicion debe ser Free o Busy")
	}
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	v.Disposicion = d
	return s.repo.Update(ctx, v)
}

type UpdateInput struct {
	EspecialidadID  string
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	Telefono        string
	Turno           Turno
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Veterinario, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Veterinario{}, err
	}

	if strings.TrimSpace(in.EspecialidadID) != "" {
		v.EspecialidadID = strings.TrimSpace(in.EspecialidadID)
	}
	if strings.TrimSpace(in.Nombre) != "" {
		v.Nombre = strings.TrimSpace(in.Nombre)
	}
	if strings.TrimSpace(in.ApellidoPaterno) != "" {
		v.ApellidoPaterno = strings.TrimSpace(in.ApellidoPaterno)
	}
	if strings.TrimSpace(in.ApellidoMaterno) != "" {
		v.ApellidoMaterno = strings.TrimSpace(in.ApellidoMaterno)
	}
	if strings.TrimSpace(in.Telefono) != "" {
		v.Telefono = strings.TrimSpace(in.Telefono)
	}
	if in.Turno != "" {
		if !ValidTurno(in.Turno) {
			return Veterinario{}, apperr.Validation("turno debe ser Morning, Afternoon o Night")
		}
		v.Turno = in.Turno
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return Veterinario{}, err
	}
	return v, nil
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	v.Estado = EstadoInactivo
	return s.repo.Update(ctx, v)
}
