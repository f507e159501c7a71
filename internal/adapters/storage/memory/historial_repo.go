package memory

import (
	"context"
	"sort"
	"sync"

	"veterinaria-backend/internal/domain/historial"
)

type historialRepo struct {
	mu      sync.RWMutex
	eventos []historial.Evento
}

func NewHistorialRepo() historial.Repository {
	return &historialRepo{}
}

func (r *historialRepo) Append(ctx context.Context, e historial.Evento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.eventos = append(r.eventos, e)
	return nil
}

func (r *historialRepo) ListByMascota(ctx context.Context, mascotaID string) ([]historial.Evento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]historial.Evento, 0)
	for _, e := range r.eventos {
		if e.MascotaID == mascotaID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FechaEvento.After(out[j].FechaEvento)
	})
	return out, nil
}

func (r *historialRepo) ListByConsulta(ctx context.Context, consultaID string) ([]historial.Evento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]historial.Evento, 0)
	for _, e := range r.eventos {
		if e.ConsultaID == consultaID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FechaEvento.Before(out[j].FechaEvento)
	})
	return out, nil
}
