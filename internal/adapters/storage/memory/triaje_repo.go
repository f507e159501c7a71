package memory

import (
	"context"
	"sort"
	"sync"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/triaje"
	"veterinaria-backend/internal/platform/pagination"
)

type triajeRepo struct {
	mu          sync.RWMutex
	byID        map[string]triaje.Triaje
	bySolicitud map[string]string
}

func NewTriajeRepo() triaje.Repository {
	return &triajeRepo{
		byID:        make(map[string]triaje.Triaje),
		bySolicitud: make(map[string]string),
	}
}

func (r *triajeRepo) Create(ctx context.Context, t triaje.Triaje) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Unicidad por solicitud, el equivalente del unique index del
	// esquema postgres.
	if _, exists := r.bySolicitud[t.SolicitudID]; exists {
		return apperr.Conflict("la solicitud ya tiene un triaje registrado")
	}
	r.byID[t.ID] = t
	r.bySolicitud[t.SolicitudID] = t.ID
	return nil
}

func (r *triajeRepo) GetByID(ctx context.Context, id string) (triaje.Triaje, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return triaje.Triaje{}, apperr.NotFound("triaje no encontrado")
	}
	return t, nil
}

func (r *triajeRepo) GetBySolicitud(ctx context.Context, solicitudID string) (triaje.Triaje, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySolicitud[solicitudID]
	if !ok {
		return triaje.Triaje{}, apperr.NotFound("la solicitud no tiene triaje")
	}
	return r.byID[id], nil
}

func (r *triajeRepo) Update(ctx context.Context, t triaje.Triaje) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.ID]; !exists {
		return apperr.NotFound("triaje no encontrado")
	}
	r.byID[t.ID] = t
	return nil
}

func (r *triajeRepo) List(ctx context.Context, p pagination.Params) ([]triaje.Triaje, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]triaje.Triaje, 0, len(r.byID))
	for _, t := range r.byID {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].FechaHoraTriaje.After(all[j].FechaHoraTriaje)
	})

	page, total := paginate(all, p)
	return page, total, nil
}
