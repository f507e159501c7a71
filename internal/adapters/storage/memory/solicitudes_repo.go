package memory

import (
	"context"
	"sort"
	"sync"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/solicitudes"
	"veterinaria-backend/internal/platform/pagination"
)

type solicitudesRepo struct {
	mu   sync.RWMutex
	byID map[string]solicitudes.Solicitud
}

func NewSolicitudesRepo() solicitudes.Repository {
	return &solicitudesRepo{byID: make(map[string]solicitudes.Solicitud)}
}

func (r *solicitudesRepo) Create(ctx context.Context, s solicitudes.Solicitud) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; exists {
		return apperr.Conflict("solicitud %s ya existe", s.ID)
	}
	r.byID[s.ID] = s
	return nil
}

func (r *solicitudesRepo) GetByID(ctx context.Context, id string) (solicitudes.Solicitud, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return solicitudes.Solicitud{}, apperr.NotFound("solicitud no encontrada")
	}
	return s, nil
}

func (r *solicitudesRepo) Update(ctx context.Context, s solicitudes.Solicitud) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return apperr.NotFound("solicitud no encontrada")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *solicitudesRepo) List(ctx context.Context, f solicitudes.ListFilter, p pagination.Params) ([]solicitudes.Solicitud, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]solicitudes.Solicitud, 0, len(r.byID))
	for _, s := range r.byID {
		if f.Estado != "" && s.Estado != f.Estado {
			continue
		}
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].FechaHoraSolicitud.After(all[j].FechaHoraSolicitud)
	})

	page, total := paginate(all, p)
	return page, total, nil
}
