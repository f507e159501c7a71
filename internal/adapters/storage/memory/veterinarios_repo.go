package memory

import (
	"context"
	"sort"
	"sync"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/veterinarios"
	"veterinaria-backend/internal/platform/pagination"
)

type veterinariosRepo struct {
	mu   sync.RWMutex
	byID map[string]veterinarios.Veterinario
}

func NewVeterinariosRepo() veterinarios.Repository {
	return &veterinariosRepo{byID: make(map[string]veterinarios.Veterinario)}
}

func (r *veterinariosRepo) Create(ctx context.Context, v veterinarios.Veterinario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; exists {
		return apperr.Conflict("veterinario %s ya existe", v.ID)
	}
	r.byID[v.ID] = v
	return nil
}

func (r *veterinariosRepo) GetByID(ctx context.Context, id string) (veterinarios.Veterinario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return veterinarios.Veterinario{}, apperr.NotFound("veterinario no encontrado")
	}
	return v, nil
}

func (r *veterinariosRepo) GetByDNI(ctx context.Context, dni string) (veterinarios.Veterinario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.byID {
		if v.DNI == dni {
			return v, nil
		}
	}
	return veterinarios.Veterinario{}, apperr.NotFound("veterinario no encontrado")
}

func (r *veterinariosRepo) GetByEmail(ctx context.Context, email string) (veterinarios.Veterinario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.byID {
		if v.Email == email {
			return v, nil
		}
	}
	return veterinarios.Veterinario{}, apperr.NotFound("veterinario no encontrado")
}

func (r *veterinariosRepo) GetByCodigoCMVP(ctx context.Context, codigo string) (veterinarios.Veterinario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.byID {
		if v.CodigoCMVP == codigo {
			return v, nil
		}
	}
	return veterinarios.Veterinario{}, apperr.NotFound("veterinario no encontrado")
}

func (r *veterinariosRepo) Update(ctx context.Context, v veterinarios.Veterinario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return apperr.NotFound("veterinario no encontrado")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *veterinariosRepo) List(ctx context.Context, f veterinarios.ListFilter, p pagination.Params) ([]veterinarios.Veterinario, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]veterinarios.Veterinario, 0, len(r.byID))
	for _, v := range r.byID {
		if f.Disposicion != "" && v.Disposicion != f.Disposicion {
			continue
		}
		if f.EspecialidadID != "" && v.EspecialidadID != f.EspecialidadID {
			continue
		}
		all = append(all, v)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ApellidoPaterno < all[j].ApellidoPaterno
	})

	page, total := paginate(all, p)
	return page, total, nil
}
