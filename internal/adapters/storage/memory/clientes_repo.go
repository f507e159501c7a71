package memory

import (
	"context"
	"sort"
	"sync"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/clientes"
	"veterinaria-backend/internal/platform/pagination"
)

type clientesRepo struct {
	mu   sync.RWMutex
	byID map[string]clientes.Cliente
}

func NewClientesRepo() clientes.Repository {
	return &clientesRepo{byID: make(map[string]clientes.Cliente)}
}

func (r *clientesRepo) Create(ctx context.Context, c clientes.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; exists {
		return apperr.Conflict("cliente %s ya existe", c.ID)
	}
	r.byID[c.ID] = c
	return nil
}

func (r *clientesRepo) GetByID(ctx context.Context, id string) (clientes.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return clientes.Cliente{}, apperr.NotFound("cliente no encontrado")
	}
	return c, nil
}

func (r *clientesRepo) GetByDNI(ctx context.Context, dni string) (clientes.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		if c.DNI == dni {
			return c, nil
		}
	}
	return clientes.Cliente{}, apperr.NotFound("cliente no encontrado")
}

func (r *clientesRepo) GetByEmail(ctx context.Context, email string) (clientes.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		if c.Email == email {
			return c, nil
		}
	}
	return clientes.Cliente{}, apperr.NotFound("cliente no encontrado")
}

func (r *clientesRepo) Update(ctx context.Context, c clientes.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return apperr.NotFound("cliente no encontrado")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *clientesRepo) List(ctx context.Context, p pagination.Params) ([]clientes.Cliente, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]clientes.Cliente, 0, len(r.byID))
	for _, c := range r.byID {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].FechaRegistro.After(all[j].FechaRegistro)
	})

	page, total := paginate(all, p)
	return page, total, nil
}
