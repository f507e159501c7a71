package mascotas

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/catalogo"
	"veterinaria-backend/internal/domain/clientes"
	"veterinaria-backend/internal/platform/pagination"
)

type Service struct {
	repo        Repository
	clientesSvc *clientes.Service
	catalogoSvc *catalogo.Service
	now         func() time.Time
}

func NewService(repo Repository, clientesSvc *clientes.Service, catalogoSvc *catalogo.Service) *Service {
	return &Service{
		repo:        repo,
		clientesSvc: clientesSvc,
		catalogoSvc: catalogoSvc,
		now:         time.Now,
	}
}

type CreateInput struct {
	ClienteID    string
	RazaID       string
	Nombre       string
	Sexo         Sexo
	Color        string
	EdadAnios    int
	EdadMeses    int
	Esterilizado bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Mascota, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return Mascota{}, apperr.Validation("nombre de mascota requerido")
	}
	if in.Sexo != SexoMacho && in.Sexo != SexoHembra {
		return Mascota{}, apperr.Validation("sexo debe ser Male o Female")
	}
	if in.EdadAnios < 0 || in.EdadMeses < 0 || in.EdadMeses > 11 {
		return Mascota{}, apperr.Validation("edad invalida")
	}

	if _, err := s.clientesSvc.GetByID(ctx, in.ClienteID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Mascota{}, apperr.NotFound("cliente no encontrado")
		}
		return Mascota{}, err
	}
	if _, err := s.catalogoSvc.GetRaza(ctx, in.RazaID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Mascota{}, apperr.NotFound("raza no encontrada")
		}
		return Mascota{}, err
	}

	m := Mascota{
		ID:           uuid.NewString(),
		ClienteID:    in.ClienteID,
		RazaID:       in.RazaID,
		Nombre:       strings.TrimSpace(in.Nombre),
		Sexo:         in.Sexo,
		Color:        strings.TrimSpace(in.Color),
		EdadAnios:    in.EdadAnios,
		EdadMeses:    in.EdadMeses,
		Esterilizado: in.Esterilizado,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return Mascota{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Mascota, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, p pagination.Params) ([]Mascota, int, error) {
	return s.repo.List(ctx, p)
}

func (s *Service) ListByCliente(ctx context.Context, clienteID string) ([]Mascota, error) {
	if _, err := s.clientesSvc.GetByID(ctx, clienteID); err != nil {
		return nil, err
	}
	return s.repo.ListByCliente(ctx, clienteID)
}

type UpdateInput struct {
	Nombre       string
	Color        string
	EdadAnios    *int
	EdadMeses    *int
	Esterilizado *bool
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Mascota, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Mascota{}, err
	}

	if strings.TrimSpace(in.Nombre) != "" {
		m.Nombre = strings.TrimSpace(in.Nombre)
	}
	if strings.TrimSpace(in.Color) != "" {
		m.Color = strings.TrimSpace(in.Color)
	}
	if in.EdadAnios != nil {
		if *in.EdadAnios < 0 {
			return Mascota{}, apperr.Validation("edad invalida")
		}
		m.EdadAnios = *in.EdadAnios
	}
	if in.EdadMeses != nil {
		if *in.EdadMeses < 0 || *in.EdadMeses > 11 {
			return Mascota{}, apperr.Validation("edad invalida")
		}
		m.EdadMeses = *in.EdadMeses
	}
	if in.Esterilizado != nil {
		m.Esterilizado = *in.Esterilizado
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return Mascota{}, err
	}
	return m, nil
}
