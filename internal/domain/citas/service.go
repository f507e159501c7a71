package citas

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/catalogo"
	"veterinaria-backend/internal/domain/consultas"
	"veterinaria-backend/internal/domain/historial"
	"veterinaria-backend/internal/domain/veterinarios"
	"veterinaria-backend/internal/platform/pagination"
	"veterinaria-backend/internal/ports/tx"
)

type Service struct {
	repo         Repository
	consultasSvc *consultas.Service
	catalogoSvc  *catalogo.Service
	vetsSvc      *veterinarios.Service
	historialSvc *historial.Service
	txRunner     tx.Runner
	now          func() time.Time
}

type ServiceDeps struct {
	Repo         Repository
	ConsultasSvc *consultas.Service
	CatalogoSvc  *catalogo.Service
	VetsSvc      *veterinarios.Service
	HistorialSvc *historial.Service
	TxRunner     tx.Runner
}

func NewService(d ServiceDeps) *Service {
	return &Service{
		repo:         d.Repo,
		consultasSvc: d.ConsultasSvc,
		catalogoSvc:  d.CatalogoSvc,
		vetsSvc:      d.VetsSvc,
		historialSvc: d.HistorialSvc,
		txRunner:     d.TxRunner,
		now:          time.Now,
	}
}

type ServicioCitaInput struct {
	ServicioID         string
	VeterinarioID      string
	Prioridad          Prioridad
	ComentarioOpcional string

	FechaHoraProgramada time.Time
	RequiereAyuno       bool
	Observaciones       string
}

// CrearServicioCita ordena un servicio auxiliar desde una consulta y
// agenda su cita. El par servicio_solicitado + cita se inserta en una
// sola transacción: o nacen los dos o ninguno. La mascota de la cita se
// resuelve caminando consulta -> triaje -> solicitud -> mascota.
func (s *Service) CrearServicioCita(ctx context.Context, consultaID string, in ServicioCitaInput) (ServicioSolicitado, Cita, error) {
	if in.Prioridad == "" {
		in.Prioridad = PrioridadNormal
	}
	if !ValidPrioridad(in.Prioridad) {
		return ServicioSolicitado{}, Cita{}, apperr.Validation("prioridad debe ser Urgent, Normal o Schedulable")
	}
	if in.FechaHoraProgramada.IsZero() {
		return ServicioSolicitado{}, Cita{}, apperr.Validation("fecha_hora_programada requerida")
	}

	if _, err := s.consultasSvc.GetByID(ctx, consultaID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ServicioSolicitado{}, Cita{}, apperr.NotFound("consulta no encontrada")
		}
		return ServicioSolicitado{}, Cita{}, err
	}
	servicio, err := s.catalogoSvc.GetServicio(ctx, in.ServicioID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ServicioSolicitado{}, Cita{}, apperr.NotFound("servicio no encontrado")
		}
		return ServicioSolicitado{}, Cita{}, err
	}
	if !servicio.Activo {
		return ServicioSolicitado{}, Cita{}, apperr.Conflict("el servicio %q esta inactivo", servicio.Nombre)
	}
	if _, err := s.vetsSvc.GetByID(ctx, in.VeterinarioID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ServicioSolicitado{}, Cita{}, apperr.NotFound("veterinario no encontrado")
		}
		return ServicioSolicitado{}, Cita{}, err
	}

	masc, err := s.consultasSvc.ResolverMascota(ctx, consultaID)
	if err != nil {
		return ServicioSolicitado{}, Cita{}, err
	}

	ss := ServicioSolicitado{
		ID:                 uuid.NewString(),
		ConsultaID:         consultaID,
		ServicioID:         in.ServicioID,
		VeterinarioID:      in.VeterinarioID,
		FechaSolicitado:    s.now(),
		Prioridad:          in.Prioridad,
		Estado:             ExamenSolicitado,
		ComentarioOpcional: strings.TrimSpace(in.ComentarioOpcional),
	}
	cita := Cita{
		ID:                   uuid.NewString(),
		MascotaID:            masc.ID,
		ServicioSolicitadoID: ss.ID,
		FechaHoraProgramada:  in.FechaHoraProgramada,
		Estado:               CitaProgramada,
		RequiereAyuno:        in.RequiereAyuno,
		Observaciones:        strings.TrimSpace(in.Observaciones),
	}

	err = s.txRunner.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateServicioSolicitado(ctx, ss); err != nil {
			return err
		}
		return s.repo.CreateCita(ctx, cita)
	})
	if err != nil {
		return ServicioSolicitado{}, Cita{}, err
	}
	return ss, cita, nil
}

func (s *Service) GetCita(ctx context.Context, id string) (Cita, error) {
	return s.repo.GetCita(ctx, id)
}

func (s *Service) ListCitas(ctx context.Context, f CitaFilter, p pagination.Params) ([]Cita, int, error) {
	return s.repo.ListCitas(ctx, f, p)
}

func (s *Service) ListServiciosSolicitados(ctx context.Context, f ServicioFilter, p pagination.Params) ([]ServicioSolicitado, int, error) {
	return s.repo.ListServiciosSolicitados(ctx, f, p)
}

// CancelarCita cancela la cita y su servicio solicitado.
func (s *Service) CancelarCita(ctx context.Context, id string) (Cita, error) {
	cita, err := s.repo.GetCita(ctx, id)
	if err != nil {
		return Cita{}, err
	}
	if !cita.Estado.CanTransition(CitaCancelada) {
		return Cita{}, apperr.BadState("la cita no puede cancelarse (estado actual: %s)", cita.Estado)
	}
	if cita.Estado == CitaCancelada {
		return cita, nil
	}

	err = s.txRunner.WithinTx(ctx, func(ctx context.Context) error {
		cita.Estado = CitaCancelada
		if err := s.repo.UpdateCita(ctx, cita); err != nil {
			return err
		}
		ss, err := s.repo.GetServicioSolicitado(ctx, cita.ServicioSolicitadoID)
		if err != nil {
			return err
		}
		ss.Estado = ExamenCancelado
		return s.repo.UpdateServicioSolicitado(ctx, ss)
	})
	if err != nil {
		return Cita{}, err
	}
	return cita, nil
}

type ResultadoInput struct {
	VeterinarioID  string
	Resultado      string
	Interpretacion string
	ArchivoAdjunto string
}

// RegistrarResultado asienta el resultado del servicio, completa la
// cita y marca el servicio solicitado como completado, todo en una
// transacción. La cita destino se valida antes de escribir.
func (s *Service) RegistrarResultado(ctx context.Context, citaID string, in ResultadoInput) (ResultadoServicio, error) {
	if len(strings.TrimSpace(in.Resultado)) < 5 {
		return ResultadoServicio{}, apperr.Validation("resultado debe tener al menos 5 caracteres")
	}

	cita, err := s.repo.GetCita(ctx, citaID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ResultadoServicio{}, apperr.NotFound("cita no encontrada")
		}
		return ResultadoServicio{}, err
	}
	if !cita.Estado.CanTransition(CitaAtendida) {
		return ResultadoServicio{}, apperr.BadState("la cita no admite resultado (estado actual: %s)", cita.Estado)
	}
	if _, err := s.vetsSvc.GetByID(ctx, in.VeterinarioID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ResultadoServicio{}, apperr.NotFound("veterinario no encontrado")
		}
		return ResultadoServicio{}, err
	}
	if _, err := s.repo.GetResultadoByCita(ctx, citaID); err == nil {
		return ResultadoServicio{}, apperr.Conflict("la cita ya tiene un resultado registrado")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return ResultadoServicio{}, err
	}

	res := ResultadoServicio{
		ID:               uuid.NewString(),
		CitaID:           citaID,
		VeterinarioID:    in.VeterinarioID,
		Resultado:        strings.TrimSpace(in.Resultado),
		Interpretacion:   strings.TrimSpace(in.Interpretacion),
		ArchivoAdjunto:   strings.TrimSpace(in.ArchivoAdjunto),
		FechaRealizacion: s.now(),
	}

	err = s.txRunner.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateResultado(ctx, res); err != nil {
			return err
		}
		cita.Estado = CitaAtendida
		if err := s.repo.UpdateCita(ctx, cita); err != nil {
			return err
		}
		ss, err := s.repo.GetServicioSolicitado(ctx, cita.ServicioSolicitadoID)
		if err != nil {
			return err
		}
		ss.Estado = ExamenCompletado
		if err := s.repo.UpdateServicioSolicitado(ctx, ss); err != nil {
			return err
		}
		_, err = s.historialSvc.Append(ctx, historial.AppendInput{
			MascotaID:     cita.MascotaID,
			ConsultaID:    ss.ConsultaID,
			VeterinarioID: in.VeterinarioID,
			TipoEvento:    historial.TipoServicio,
			Descripcion:   fmt.Sprintf("Resultado de servicio registrado: %s", res.Resultado),
			Observaciones: res.Interpretacion,
		})
		return err
	})
	if err != nil {
		return ResultadoServicio{}, err
	}
	return res, nil
}

func (s *Service) GetResultado(ctx context.Context, citaID string) (ResultadoServicio, error) {
	if _, err := s.repo.GetCita(ctx, citaID); err != nil {
		return ResultadoServicio{}, err
	}
	return s.repo.GetResultadoByCita(ctx, citaID)
}
