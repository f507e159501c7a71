package historial

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"veterinaria-backend/internal/domain/apperr"
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

type AppendInput struct {
	MascotaID     string
	ConsultaID    string
	DiagnosticoID string
	TratamientoID string
	VeterinarioID string
	TipoEvento    TipoEvento
	Descripcion   string
	PesoMomento   *float64
	EdadMeses     *int
	Observaciones string
}

// Append registra un evento. No existe operación de update ni delete
// sobre el historial.
func (s *Service) Append(ctx context.Context, in AppendInput) (Evento, error) {
	if strings.TrimSpace(in.MascotaID) == "" {
		return Evento{}, apperr.Validation("id_mascota requerido")
	}
	if in.TipoEvento == "" {
		return Evento{}, apperr.Validation("tipo_evento requerido")
	}
	if strings.TrimSpace(in.Descripcion) == "" {
		return Evento{}, apperr.Validation("descripcion_evento requerida")
	}

	e := Evento{
		ID:            uuid.NewString(),
		MascotaID:     in.MascotaID,
		ConsultaID:    in.ConsultaID,
		DiagnosticoID: in.DiagnosticoID,
		TratamientoID: in.TratamientoID,
		VeterinarioID: in.VeterinarioID,
		FechaEvento:   s.now(),
		TipoEvento:    in.TipoEvento,
		Descripcion:   strings.TrimSpace(in.Descripcion),
		PesoMomento:   in.PesoMomento,
		EdadMeses:     in.EdadMeses,
		Observaciones: strings.TrimSpace(in.Observaciones),
	}
	if err := s.repo.Append(ctx, e); err != nil {
		return Evento{}, err
	}
	return e, nil
}

func (s *Service) ListByMascota(ctx context.Context, mascotaID string) ([]Evento, error) {
	return s.repo.ListByMascota(ctx, mascotaID)
}

func (s *Service) ListByConsulta(ctx context.Context, consultaID string) ([]Evento, error) {
	return s.repo.ListByConsulta(ctx, consultaID)
}
