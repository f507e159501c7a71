package catalogo

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"veterinaria-backend/internal/domain/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateRaza(ctx context.Context, nombre string) (Raza, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return Raza{}, apperr.Validation("nombre de raza requerido")
	}

	r := Raza{ID: uuid.NewString(), Nombre: nombre}
	if err := s.repo.CreateRaza(ctx, r); err != nil {
		return Raza{}, err
	}
	return r, nil
}

func (s *Service) GetRaza(ctx context.Context, id string) (Raza, error) {
	return s.repo.GetRaza(ctx, id)
}

func (s *Service) ListRazas(ctx context.Context) ([]Raza, error) {
	return s.repo.ListRazas(ctx)
}

func (s *Service) CreateEspecialidad(ctx context.Context, descripcion string) (Especialidad, error) {
	descripcion = strings.TrimSpace(descripcion)
	if descripcion == "" {
		return Especialidad{}, apperr.Validation("descripcion de especialidad requerida")
	}

	e := Especialidad{ID: uuid.NewString(), Descripcion: descripcion}
	if err := s.repo.CreateEspecialidad(ctx, e); err != nil {
		return Especialidad{}, err
	}
	return e, nil
}

func (s *Service) GetEspecialidad(ctx context.Context, id string) (Especialidad, error) {
	return s.repo.GetEspecialidad(ctx, id)
}

func (s *Service) ListEspecialidades(ctx context.Context) ([]Especialidad, error) {
	return s.repo.ListEspecialidades(ctx)
}

func (s *Service) CreateTipoServicio(ctx context.Context, descripcion string) (TipoServicio, error) {
	descripcion = strings.TrimSpace(descripcion)
	if descripcion == "" {
		return TipoServicio{}, apperr.Validation("descripcion de tipo de servicio requerida")
	}

	t := TipoServicio{ID: uuid.NewString(), Descripcion: descripcion}
	if err := s.repo.CreateTipoServicio(ctx, t); err != nil {
		return TipoServicio{}, err
	}
	return t, nil
}

func (s *Service) ListTiposServicio(ctx context.Context) ([]TipoServicio, error) {
	return s.repo.ListTiposServicio(ctx)
}

type CreateServicioInput struct {
	TipoServicioID string
	Nombre         string
	Precio         float64
}

func (s *Service) CreateServicio(ctx context.Context, in CreateServicioInput) (Servicio, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return Servicio{}, apperr.Validation("nombre de servicio requerido")
	}
	if in.Precio <= 0 {
		return Servicio{}, apperr.Validation("precio debe ser mayor a 0")
	}
	if _, err := s.repo.GetTipoServicio(ctx, in.TipoServicioID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Servicio{}, apperr.NotFound("tipo de servicio no encontrado")
		}
		return Servicio{}, err
	}

	sv := Servicio{
		ID:             uuid.NewString(),
		TipoServicioID: in.TipoServicioID,
		Nombre:         strings.TrimSpace(in.Nombre),
		Precio:         in.Precio,
		Activo:         true,
	}
	if err := s.repo.CreateServicio(ctx, sv); err != nil {
		return Servicio{}, err
	}
	return sv, nil
}

func (s *Service) GetServicio(ctx context.Context, id string) (Servicio, error) {
	return s.repo.GetServicio(ctx, id)
}

func (s *Service) ListServicios(ctx context.Context) ([]Servicio, error) {
	return s.repo.ListServicios(ctx)
}

// SetServicioActivo activa o desactiva un servicio del catálogo. Los
// servicios inactivos no pueden solicitarse desde una consulta.
func (s *Service) SetServicioActivo(ctx context.Context, id string, activo bool) (Servicio, error) {
	sv, err := s.repo.GetServicio(ctx, id)
	if err != nil {
		return Servicio{}, err
	}
	sv.Activo = activo
	if err := s.repo.UpdateServicio(ctx, sv); err != nil {
		return Servicio{}, err
	}
	return sv, nil
}

type CreatePatologiaInput struct {
	Nombre        string
	EspecieAfecta EspecieAfecta
	Gravedad      Gravedad
	EsCronica     bool
	EsContagiosa  bool
}

func (s *Service) CreatePatologia(ctx context.Context, in CreatePatologiaInput) (Patologia, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return Patologia{}, apperr.Validation("nombre de patologia requerido")
	}
	if !validEspecie(in.EspecieAfecta) {
		return Patologia{}, apperr.Validation("especie_afecta debe ser Dog, Cat o Both")
	}
	gravedad := in.Gravedad
	if gravedad == "" {
		gravedad = GravedadModerada
	}
	if !validGravedad(gravedad) {
		return Patologia{}, apperr.Validation("gravedad invalida")
	}

	// Nombre único; el esquema también lo fuerza con un unique index.
	if _, err := s.repo.GetPatologiaByNombre(ctx, nombre); err == nil {
		return Patologia{}, apperr.Conflict("ya existe una patologia con nombre %q", nombre)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return Patologia{}, err
	}

	p := Patologia{
		ID:            uuid.NewString(),
		Nombre:        nombre,
		EspecieAfecta: in.EspecieAfecta,
		Gravedad:      gravedad,
		EsCronica:     in.EsCronica,
		EsContagiosa:  in.EsContagiosa,
	}
	if err := s.repo.CreatePatologia(ctx, p); err != nil {
		return Patologia{}, err
	}
	return p, nil
}

func (s *Service) GetPatologia(ctx context.Context, id string) (Patologia, error) {
	return s.repo.GetPatologia(ctx, id)
}

func (s *Service) ListPatologias(ctx context.Context) ([]Patologia, error) {
	return s.repo.ListPatologias(ctx)
}
