package triaje

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/solicitudes"
	"veterinaria-backend/internal/domain/veterinarios"
	"veterinaria-backend/internal/platform/pagination"
)

type Service struct {
	repo           Repository
	solicitudesSvc *solicitudes.Service
	vetsSvc        *veterinarios.Service
	consultas      ConsultaLookup
	now            func() time.Time
}

func NewService(repo Repository, solicitudesSvc *solicitudes.Service, vetsSvc *veterinarios.Service) *Service {
	return &Service{
		repo:           repo,
		solicitudesSvc: solicitudesSvc,
		vetsSvc:        vetsSvc,
		now:            time.Now,
	}
}

// BindConsultas se llama al armar el router; rompe el ciclo de
// dependencia entre triaje y consultas.
func (s *Service) BindConsultas(lookup ConsultaLookup) {
	s.consultas = lookup
}

type Vitals struct {
	PesoMascota            float64
	LatidoPorMinuto        int
	FrecuenciaRespiratoria int
	Temperatura            float64
	Talla                  *float64
	TiempoCapilar          string
	ColorMucosas           string
	FrecuenciaPulso        int
	PorceDeshidratacion    *float64
}

// validateVitals aplica los rangos fisiológicos aceptados; los valores
// de borde son válidos.
func validateVitals(v Vitals) error {
	if v.PesoMascota <= 0 || v.PesoMascota > 100 {
		return apperr.Validation("peso_mascota debe estar entre 0.01 y 100 kg")
	}
	if v.LatidoPorMinuto < 40 || v.LatidoPorMinuto > 300 {
		return apperr.Validation("latido_por_minuto debe estar entre 40 y 300")
	}
	if v.FrecuenciaRespiratoria < 10 || v.FrecuenciaRespiratoria > 150 {
		return apperr.Validation("frecuencia_respiratoria_rpm debe estar entre 10 y 150")
	}
	if v.Temperatura < 35.0 || v.Temperatura > 42.0 {
		return apperr.Validation("temperatura debe estar entre 35.0 y 42.0 grados")
	}
	if v.Talla != nil && (*v.Talla <= 0 || *v.Talla > 200) {
		return apperr.Validation("talla debe estar entre 0.01 y 200 cm")
	}
	if v.FrecuenciaPulso < 30 || v.FrecuenciaPulso > 250 {
		return apperr.Validation("frecuencia_pulso debe estar entre 30 y 250")
	}
	if v.PorceDeshidratacion != nil && (*v.PorceDeshidratacion < 0 || *v.PorceDeshidratacion > 100) {
		return apperr.Validation("porce_deshidratacion debe estar entre 0 y 100")
	}
	return nil
}

type CreateInput struct {
	SolicitudID   string
	VeterinarioID string
	Vitals        Vitals

	CondicionCorporal     CondicionCorporal
	ClasificacionUrgencia ClasificacionUrgencia
}

// Create registra el triaje y avanza la solicitud de Pending a
// InTriage. Solo puede existir un triaje por solicitud.
func (s *Service) Create(ctx context.Context, in CreateInput) (Triaje, error) {
	if err := validateVitals(in.Vitals); err != nil {
		return Triaje{}, err
	}
	if in.CondicionCorporal == "" {
		in.CondicionCorporal = CondicionIdeal
	}
	if !ValidCondicionCorporal(in.CondicionCorporal) {
		return Triaje{}, apperr.Validation("condicion_corporal invalida")
	}
	if !ValidClasificacionUrgencia(in.ClasificacionUrgencia) {
		return Triaje{}, apperr.Validation("clasificacion_urgencia invalida")
	}

	sol, err := s.solicitudesSvc.GetByID(ctx, in.SolicitudID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Triaje{}, apperr.NotFound("solicitud no encontrada")
		}
		return Triaje{}, err
	}
	if sol.Estado != solicitudes.EstadoPendiente {
		return Triaje{}, apperr.BadState("la solicitud no esta pendiente (estado actual: %s)", sol.Estado)
	}
	if _, err := s.vetsSvc.GetByID(ctx, in.VeterinarioID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Triaje{}, apperr.NotFound("veterinario no encontrado")
		}
		return Triaje{}, err
	}

	if _, err := s.repo.GetBySolicitud(ctx, in.SolicitudID); err == nil {
		return Triaje{}, apperr.Conflict("la solicitud ya tiene un triaje registrado")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return Triaje{}, err
	}

	t := Triaje{
		ID:                     uuid.NewString(),
		SolicitudID:            in.SolicitudID,
		VeterinarioID:          in.VeterinarioID,
		FechaHoraTriaje:        s.now(),
		PesoMascota:            in.Vitals.PesoMascota,
		LatidoPorMinuto:        in.Vitals.LatidoPorMinuto,
		FrecuenciaRespiratoria: in.Vitals.FrecuenciaRespiratoria,
		Temperatura:            in.Vitals.Temperatura,
		Talla:                  in.Vitals.Talla,
		TiempoCapilar:          in.Vitals.TiempoCapilar,
		ColorMucosas:           in.Vitals.ColorMucosas,
		FrecuenciaPulso:        in.Vitals.FrecuenciaPulso,
		PorceDeshidratacion:    in.Vitals.PorceDeshidratacion,
		CondicionCorporal:      in.CondicionCorporal,
		ClasificacionUrgencia:  in.ClasificacionUrgencia,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Triaje{}, err
	}

	if _, err := s.solicitudesSvc.CambiarEstado(ctx, in.SolicitudID, solicitudes.EstadoEnTriaje); err != nil {
		return Triaje{}, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Triaje, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySolicitud(ctx context.Context, solicitudID string) (Triaje, error) {
	return s.repo.GetBySolicitud(ctx, solicitudID)
}

func (s *Service) List(ctx context.Context, p pagination.Params) ([]Triaje, int, error) {
	return s.repo.List(ctx, p)
}

type UpdateInput struct {
	Vitals                *Vitals
	CondicionCorporal     CondicionCorporal
	ClasificacionUrgencia ClasificacionUrgencia
}

// Update corrige un triaje que todavía no tiene consulta encima. Una
// vez que existe la consulta, el registro queda congelado.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Triaje, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Triaje{}, err
	}

	if s.consultas != nil {
		exists, err := s.consultas.ExistsByTriaje(ctx, id)
		if err != nil {
			return Triaje{}, err
		}
		if exists {
			return Triaje{}, apperr.Conflict("el triaje ya tiene una consulta asociada y no puede modificarse")
		}
	}

	if in.Vitals != nil {
		if err := validateVitals(*in.Vitals); err != nil {
			return Triaje{}, err
		}
		t.PesoMascota = in.Vitals.PesoMascota
		t.LatidoPorMinuto = in.Vitals.LatidoPorMinuto
		t.FrecuenciaRespiratoria = in.Vitals.FrecuenciaRespiratoria
		t.Temperatura = in.Vitals.Temperatura
		t.Talla = in.Vitals.Talla
		t.TiempoCapilar = in.Vitals.TiempoCapilar
		t.ColorMucosas = in.Vitals.ColorMucosas
		t.FrecuenciaPulso = in.Vitals.FrecuenciaPulso
		t.PorceDeshidratacion = in.Vitals.PorceDeshidratacion
	}
	if in.CondicionCorporal != "" {
		if !ValidCondicionCorporal(in.CondicionCorporal) {
			return Triaje{}, apperr.Validation("condicion_corporal invalida")
		}
		t.CondicionCorporal = in.CondicionCorporal
	}
	if in.ClasificacionUrgencia != "" {
		if !ValidClasificacionUrgencia(in.ClasificacionUrgencia) {
			return Triaje{}, apperr.Validation("clasificacion_urgencia invalida")
		}
		t.ClasificacionUrgencia = in.ClasificacionUrgencia
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return Triaje{}, err
	}
	return t, nil
}
