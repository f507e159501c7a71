package memory

import (
	"context"
	"sort"
	"sync"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/recepcionistas"
	"veterinaria-backend/internal/platform/pagination"
)

type recepcionistasRepo struct {
	mu   sync.RWMutex
	byID map[string]recepcionistas.Recepcionista
}

func NewRecepcionistasRepo() recepcionistas.Repository {
	return &recepcionistasRepo{byID: make(map[string]recepcionistas.Recepcionista)}
}

func (r *recepcionistasRepo) Create(ctx context.Context, rec recepcionistas.Recepcionista) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; exists {
		return apperr.Conflict("recepcionista %s ya existe", rec.ID)
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *recepcionistasRepo) GetByID(ctx context.Context, id string) (recepcionistas.Recepcionista, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return recepcionistas.Recepcionista{}, apperr.NotFound("recepcionista no encontrada")
	}
	return rec, nil
}

func (r *recepcionistasRepo) GetByDNI(ctx context.Context, dni string) (recepcionistas.Recepcionista, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.byID {
		if rec.DNI == dni {
			return rec, nil
		}
	}
	return recepcionistas.Recepcionista{}, apperr.NotFound("recepcionista no encontrada")
}

func (r *recepcionistasRepo) GetByEmail(ctx context.Context, email string) (recepcionistas.Recepcionista, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.byID {
		if rec.Email == email {
			return rec, nil
		}
	}
	return recepcionistas.Recepcionista{}, apperr.NotFound("recepcionista no encontrada")
}

func (r *recepcionistasRepo) Update(ctx context.Context, rec recepcionistas.Recepcionista) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; !exists {
		return apperr.NotFound("recepcionista no encontrada")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *recepcionistasRepo) List(ctx context.Context, p pagination.Params) ([]recepcionistas.Recepcionista, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]recepcionistas.Recepcionista, 0, len(r.byID))
	for _, rec := range r.byID {
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].FechaIngreso.After(all[j].FechaIngreso)
	})

	page, total := paginate(all, p)
	return page, total, nil
}
