package clientes

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
	Direccion       string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Cliente, error) {
	if err := validateParty(in.Nombre, in.ApellidoPaterno, in.DNI, in.Telefono, in.Email); err != nil {
		return Cliente{}, err
	}
	if err := s.checkUnique(ctx, in.DNI, in.Email); err != nil {
		return Cliente{}, err
	}

	c := Cliente{
		ID:              uuid.NewString(),
		Nombre:          strings.TrimSpace(in.Nombre),
		ApellidoPaterno: strings.TrimSpace(in.ApellidoPaterno),
		ApellidoMaterno: strings.TrimSpace(in.ApellidoMaterno),
		DNI:             strings.TrimSpace(in.DNI),
		Telefono:        strings.TrimSpace(in.Telefono),
		Email:           strings.TrimSpace(in.Email),
		Direccion:       strings.TrimSpace(in.Direccion),
		Estado:          EstadoActivo,
		FechaRegistro:   s.now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Cliente{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Cliente, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, p pagination.Params) ([]Cliente, int, error) {
	return s.repo.List(ctx, p)
}

type UpdateInput struct {
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	Telefono        string
	Direccion       string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Cliente, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Cliente{}, err
	}

	if strings.TrimSpace(in.Nombre) != "" {
		c.Nombre = strings.TrimSpace(in.Nombre)
	}
	if strings.TrimSpace(in.ApellidoPaterno) != "" {
		c.ApellidoPaterno = strings.TrimSpace(in.ApellidoPaterno)
	}
	if strings.TrimSpace(in.ApellidoMaterno) != "" {
		c.ApellidoMaterno = strings.TrimSpace(in.ApellidoMaterno)
	}
	if strings.TrimSpace(in.Telefono) != "" {
		if !allDigits(in.Telefono) || len(strings.TrimSpace(in.Telefono)) != 9 {
			return Cliente{}, apperr.Validation("telefono debe tener 9 digitos")
		}
		c.Telefono = strings.TrimSpace(in.Telefono)
	}
	if strings.TrimSpace(in.Direccion) != "" {
		c.Direccion = strings.TrimSpace(in.Direccion)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return Cliente{}, err
	}
	return c, nil
}

// Deactivate marca al cliente como Inactivo (soft delete; la fila no se
// borra porque sus mascotas e historial la referencian).
func (s *Service) Deactivate(ctx context.Context, id string) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.Estado = EstadoInactivo
	return s.repo.Update(ctx, c)
}

func (s *Service) checkUnique(ctx context.Context, dni, email string) error {
	if _, err := s.repo.GetByDNI(ctx, strings.TrimSpace(dni)); err == nil {
		return apperr.Conflict("ya existe un cliente con DNI %s", dni)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}
	if _, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email)); err == nil {
		return apperr.Conflict("ya existe un cliente con email %s", email)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}
	return nil
}

func validateParty(nombre, apellidoPaterno, dni, telefono, email string) error {
	if strings.TrimSpace(nombre) == "" {
		return apperr.Validation("nombre requerido")
	}
	if strings.TrimSpace(apellidoPaterno) == "" {
		return apperr.Validation("apellido_paterno requerido")
	}
	dni = strings.TrimSpace(dni)
	if len(dni) != 8 || !allDigits(dni) {
		return apperr.Validation("dni debe tener 8 digitos")
	}
	telefono = strings.TrimSpace(telefono)
	if len(telefono) != 9 || !allDigits(telefono) {
		return apperr.Validation("telefono debe tener 9 digitos")
	}
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return apperr.Validation("email invalido")
	}
	return nil
}

func allDigits(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
