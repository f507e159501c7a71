package consultas

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/catalogo"
	"veterinaria-backend/internal/domain/historial"
	"veterinaria-backend/internal/domain/mascotas"
	"veterinaria-backend/internal/domain/solicitudes"
	"veterinaria-backend/internal/domain/triaje"
	"veterinaria-backend/internal/domain/veterinarios"
	"veterinaria-backend/internal/platform/pagination"
	"veterinaria-backend/internal/ports/tx"
)

type Service struct {
	repo           Repository
	triajeSvc      *triaje.Service
	solicitudesSvc *solicitudes.Service
	mascotasSvc    *mascotas.Service
	vetsSvc        *veterinarios.Service
	historialSvc   *historial.Service
	catalogoSvc    *catalogo.Service
	txRunner       tx.Runner
	now            func() time.Time
}

type ServiceDeps struct {
	Repo           Repository
	TriajeSvc      *triaje.Service
	SolicitudesSvc *solicitudes.Service
	MascotasSvc    *mascotas.Service
	VetsSvc        *veterinarios.Service
	HistorialSvc   *historial.Service
	CatalogoSvc    *catalogo.Service
	TxRunner       tx.Runner
}

func NewService(d ServiceDeps) *Service {
	return &Service{
		repo:           d.Repo,
		triajeSvc:      d.TriajeSvc,
		solicitudesSvc: d.SolicitudesSvc,
		mascotasSvc:    d.MascotasSvc,
		vetsSvc:        d.VetsSvc,
		historialSvc:   d.HistorialSvc,
		catalogoSvc:    d.CatalogoSvc,
		txRunner:       d.TxRunner,
		now:            time.Now,
	}
}

type CreateInput struct {
	TriajeID      string
	VeterinarioID string

	TipoConsulta          string
	MotivoConsulta        string
	SintomasObservados    string
	DiagnosticoPreliminar string
	Observaciones         string

	CondicionGeneral CondicionGeneral
	EsSeguimiento    bool
}

// Crear es el pivote del ciclo de atención. Dentro de una sola
// transacción: inserta la consulta, pone al veterinario en Busy, pasa
// la solicitud a InCare y registra el evento de historial con el peso
// tomado en el triaje. O se aplican los cuatro efectos o ninguno.
func (s *Service) Crear(ctx context.Context, in CreateInput) (Consulta, error) {
	if len(strings.TrimSpace(in.TipoConsulta)) < 5 {
		return Consulta{}, apperr.Validation("tipo_consulta debe tener al menos 5 caracteres")
	}
	if !ValidCondicionGeneral(in.CondicionGeneral) {
		return Consulta{}, apperr.Validation("condicion_general debe ser Excellent, Good, Regular, Poor o Critical")
	}

	tri, err := s.triajeSvc.GetByID(ctx, in.TriajeID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Consulta{}, apperr.NotFound("triaje no encontrado")
		}
		return Consulta{}, err
	}
	if _, err := s.vetsSvc.GetByID(ctx, in.VeterinarioID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Consulta{}, apperr.NotFound("veterinario no encontrado")
		}
		return Consulta{}, err
	}

	exists, err := s.repo.ExistsByTriaje(ctx, in.TriajeID)
	if err != nil {
		return Consulta{}, err
	}
	if exists {
		return Consulta{}, apperr.Conflict("el triaje ya tiene una consulta registrada")
	}

	sol, err := s.solicitudesSvc.GetByID(ctx, tri.SolicitudID)
	if err != nil {
		return Consulta{}, err
	}
	masc, err := s.mascotasSvc.GetByID(ctx, sol.MascotaID)
	if err != nil {
		return Consulta{}, err
	}

	c := Consulta{
		ID:                    uuid.NewString(),
		TriajeID:              in.TriajeID,
		VeterinarioID:         in.VeterinarioID,
		TipoConsulta:          strings.TrimSpace(in.TipoConsulta),
		FechaConsulta:         s.now(),
		MotivoConsulta:        strings.TrimSpace(in.MotivoConsulta),
		SintomasObservados:    strings.TrimSpace(in.SintomasObservados),
		DiagnosticoPreliminar: strings.TrimSpace(in.DiagnosticoPreliminar),
		Observaciones:         strings.TrimSpace(in.Observaciones),
		CondicionGeneral:      in.CondicionGeneral,
		EsSeguimiento:         in.EsSeguimiento,
	}

	peso := tri.PesoMascota
	edad := masc.EdadTotalMeses()

	err = s.txRunner.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, c); err != nil {
			return err
		}
		if err := s.vetsSvc.CambiarDisposicion(ctx, in.VeterinarioID, veterinarios.DisposicionOcupado); err != nil {
			return err
		}
		if _, err := s.solicitudesSvc.CambiarEstado(ctx, sol.ID, solicitudes.EstadoEnAtencion); err != nil {
			return err
		}
		descripcion := fmt.Sprintf("Consulta %s", c.TipoConsulta)
		if c.MotivoConsulta != "" {
			descripcion += ": " + c.MotivoConsulta
		}
		_, err := s.historialSvc.Append(ctx, historial.AppendInput{
			MascotaID:     masc.ID,
			ConsultaID:    c.ID,
			VeterinarioID: in.VeterinarioID,
			TipoEvento:    historial.TipoConsulta,
			Descripcion:   descripcion,
			PesoMomento:   &peso,
			EdadMeses:     &edad,
			Observaciones: c.Observaciones,
		})
		return err
	})
	if err != nil {
		return Consulta{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Consulta, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter, p pagination.Params) ([]Consulta, int, error) {
	return s.repo.List(ctx, f, p)
}

// ResolverMascota navega consulta -> triaje -> solicitud -> mascota.
// Todo acceso a la mascota de una consulta pasa por aquí.
func (s *Service) ResolverMascota(ctx context.Context, consultaID string) (mascotas.Mascota, error) {
	c, err := s.repo.GetByID(ctx, consultaID)
	if err != nil {
		return mascotas.Mascota{}, err
	}
	tri, err := s.triajeSvc.GetByID(ctx, c.TriajeID)
	if err != nil {
		return mascotas.Mascota{}, apperr.NotFound("mascota no resolvible para la consulta %s: triaje ausente", consultaID)
	}
	sol, err := s.solicitudesSvc.GetByID(ctx, tri.SolicitudID)
	if err != nil {
		return mascotas.Mascota{}, apperr.NotFound("mascota no resolvible para la consulta %s: solicitud ausente", consultaID)
	}
	masc, err := s.mascotasSvc.GetByID(ctx, sol.MascotaID)
	if err != nil {
		return mascotas.Mascota{}, apperr.NotFound("mascota no resolvible para la consulta %s", consultaID)
	}
	return masc, nil
}

// Finalizar libera al veterinario y completa la solicitud. Es
// idempotente: finalizar dos veces re-aplica las mismas asignaciones.
func (s *Service) Finalizar(ctx context.Context, id string) (Consulta, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Consulta{}, err
	}
	tri, err := s.triajeSvc.GetByID(ctx, c.TriajeID)
	if err != nil {
		return Consulta{}, err
	}

	err = s.txRunner.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.vetsSvc.CambiarDisposicion(ctx, c.VeterinarioID, veterinarios.DisposicionLibre); err != nil {
			return err
		}
		_, err := s.solicitudesSvc.CambiarEstado(ctx, tri.SolicitudID, solicitudes.EstadoCompletada)
		return err
	})
	if err != nil {
		return Consulta{}, err
	}
	return c, nil
}

type CreateDiagnosticoInput struct {
	PatologiaID     string
	Diagnostico     string
	TipoDiagnostico TipoDiagnostico
	EstadoPatologia EstadoPatologia
}

func (s *Service) CrearDiagnostico(ctx context.Context, consultaID string, in CreateDiagnosticoInput) (Diagnostico, error) {
	if len(strings.TrimSpace(in.Diagnostico)) < 5 {
		return Diagnostico{}, apperr.Validation("diagnostico debe tener al menos 5 caracteres")
	}
	if in.TipoDiagnostico == "" {
		in.TipoDiagnostico = DiagnosticoPresuntivo
	}
	if !ValidTipoDiagnostico(in.TipoDiagnostico) {
		return Diagnostico{}, apperr.Validation("tipo_diagnostico debe ser Presumptive, Confirmed o RuledOut")
	}
	if in.EstadoPatologia == "" {
		in.EstadoPatologia = PatologiaActiva
	}
	if !ValidEstadoPatologia(in.EstadoPatologia) {
		return Diagnostico{}, apperr.Validation("estado_patologia debe ser Active, Controlled, Cured o Monitoring")
	}

	c, err := s.repo.GetByID(ctx, consultaID)
	if err != nil {
		return Diagnostico{}, err
	}
	pat, err := s.catalogoSvc.GetPatologia(ctx, in.PatologiaID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Diagnostico{}, apperr.NotFound("patologia no encontrada")
		}
		return Diagnostico{}, err
	}
	masc, err := s.ResolverMascota(ctx, consultaID)
	if err != nil {
		return Diagnostico{}, err
	}

	d := Diagnostico{
		ID:               uuid.NewString(),
		ConsultaID:       c.ID,
		PatologiaID:      pat.ID,
		Diagnostico:      strings.TrimSpace(in.Diagnostico),
		TipoDiagnostico:  in.TipoDiagnostico,
		EstadoPatologia:  in.EstadoPatologia,
		FechaDiagnostico: s.now(),
	}

	err = s.txRunner.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateDiagnostico(ctx, d); err != nil {
			return err
		}
		_, err := s.historialSvc.Append(ctx, historial.AppendInput{
			MascotaID:     masc.ID,
			ConsultaID:    c.ID,
			DiagnosticoID: d.ID,
			VeterinarioID: c.VeterinarioID,
			TipoEvento:    historial.TipoDiagnostico,
			Descripcion:   fmt.Sprintf("Diagnostico %s de %s: %s", d.TipoDiagnostico, pat.Nombre, d.Diagnostico),
		})
		return err
	})
	if err != nil {
		return Diagnostico{}, err
	}
	return d, nil
}

func (s *Service) ListDiagnosticos(ctx context.Context, consultaID string) ([]Diagnostico, error) {
	if _, err := s.repo.GetByID(ctx, consultaID); err != nil {
		return nil, err
	}
	return s.repo.ListDiagnosticos(ctx, consultaID)
}

type CreateTratamientoInput struct {
	PatologiaID         string
	TipoTratamiento     TipoTratamiento
	FechaInicio         time.Time
	EficaciaTratamiento EficaciaTratamiento
}

func (s *Service) CrearTratamiento(ctx context.Context, consultaID string, in CreateTratamientoInput) (Tratamiento, error) {
	if !ValidTipoTratamiento(in.TipoTratamiento) {
		return Tratamiento{}, apperr.Validation("tipo_tratamiento debe ser Medication, Surgical, Therapeutic o Preventive")
	}
	if in.EficaciaTratamiento != "" && !ValidEficaciaTratamiento(in.EficaciaTratamiento) {
		return Tratamiento{}, apperr.Validation("eficacia_tratamiento debe ser VeryGood, Good, Regular o Poor")
	}

	c, err := s.repo.GetByID(ctx, consultaID)
	if err != nil {
		return Tratamiento{}, err
	}
	pat, err := s.catalogoSvc.GetPatologia(ctx, in.PatologiaID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Tratamiento{}, apperr.NotFound("patologia no encontrada")
		}
		return Tratamiento{}, err
	}
	masc, err := s.ResolverMascota(ctx, consultaID)
	if err != nil {
		return Tratamiento{}, err
	}

	inicio := in.FechaInicio
	if inicio.IsZero() {
		inicio = s.now()
	}

	t := Tratamiento{
		ID:                  uuid.NewString(),
		ConsultaID:          c.ID,
		PatologiaID:         pat.ID,
		TipoTratamiento:     in.TipoTratamiento,
		FechaInicio:         inicio,
		EficaciaTratamiento: in.EficaciaTratamiento,
	}

	err = s.txRunner.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateTratamiento(ctx, t); err != nil {
			return err
		}
		_, err := s.historialSvc.Append(ctx, historial.AppendInput{
			MascotaID:     masc.ID,
			ConsultaID:    c.ID,
			TratamientoID: t.ID,
			VeterinarioID: c.VeterinarioID,
			TipoEvento:    historial.TipoTratamiento,
			Descripcion:   fmt.Sprintf("Tratamiento %s para %s", t.TipoTratamiento, pat.Nombre),
		})
		return err
	})
	if err != nil {
		return Tratamiento{}, err
	}
	return t, nil
}

func (s *Service) ListTratamientos(ctx context.Context, consultaID string) ([]Tratamiento, error) {
	if _, err := s.repo.GetByID(ctx, consultaID); err != nil {
		return nil, err
	}
	return s.repo.ListTratamientos(ctx, consultaID)
}

// Completa es la vista agregada de la consulta. Los lados que no se
// puedan resolver van en nil en lugar de tumbar la respuesta.
type Completa struct {
	Consulta     Consulta
	Triaje       *triaje.Triaje
	Solicitud    *solicitudes.Solicitud
	Mascota      *mascotas.Mascota
	Veterinario  *veterinarios.Veterinario
	Diagnosticos []Diagnostico
	Tratamientos []Tratamiento
	Eventos      []historial.Evento
}

func (s *Service) GetCompleta(ctx context.Context, id string) (Completa, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Completa{}, err
	}

	out := Completa{Consulta: c}

	if tri, err := s.triajeSvc.GetByID(ctx, c.TriajeID); err == nil {
		out.Triaje = &tri
		if sol, err := s.solicitudesSvc.GetByID(ctx, tri.SolicitudID); err == nil {
			out.Solicitud = &sol
			if masc, err := s.mascotasSvc.GetByID(ctx, sol.MascotaID); err == nil {
				out.Mascota = &masc
			}
		}
	}
	if vet, err := s.vetsSvc.GetByID(ctx, c.VeterinarioID); err == nil {
		out.Veterinario = &vet
	}

	if out.Diagnosticos, err = s.repo.ListDiagnosticos(ctx, id); err != nil {
		return Completa{}, err
	}
	if out.Tratamientos, err = s.repo.ListTratamientos(ctx, id); err != nil {
		return Completa{}, err
	}
	if out.Eventos, err = s.historialSvc.ListByConsulta(ctx, id); err != nil {
		return Completa{}, err
	}
	return out, nil
}
