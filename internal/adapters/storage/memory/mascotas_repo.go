package memory

import (
	"context"
	"sort"
	"sync"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/mascotas"
	"veterinaria-backend/internal/platform/pagination"
)

type mascotasRepo struct {
	mu   sync.RWMutex
	byID map[string]mascotas.Mascota
}

func NewMascotasRepo() mascotas.Repository {
	return &mascotasRepo{byID: make(map[string]mascotas.Mascota)}
}

func (r *mascotasRepo) Create(ctx context.Context, m mascotas.Mascota) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; exists {
		return apperr.Conflict("mascota %s ya existe", m.ID)
	}
	r.byID[m.ID] = m
	return nil
}

func (r *mascotasRepo) GetByID(ctx context.Context, id string) (mascotas.Mascota, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return mascotas.Mascota{}, apperr.NotFound("mascota no encontrada")
	}
	return m, nil
}

func (r *mascotasRepo) Update(ctx context.Context, m mascotas.Mascota) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; !exists {
		return apperr.NotFound("mascota no encontrada")
	}
	r.byID[m.ID] = m
	return nil
}

func (r *mascotasRepo) List(ctx context.Context, p pagination.Params) ([]mascotas.Mascota, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]mascotas.Mascota, 0, len(r.byID))
	for _, m := range r.byID {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	page, total := paginate(all, p)
	return page, total, nil
}

func (r *mascotasRepo) ListByCliente(ctx context.Context, clienteID string) ([]mascotas.Mascota, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]mascotas.Mascota, 0)
	for _, m := range r.byID {
		if m.ClienteID == clienteID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
