package memory

import (
	"context"
	"sort"
	"sync"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/catalogo"
)

type catalogoRepo struct {
	mu             sync.RWMutex
	razas          map[string]catalogo.Raza
	especialidades map[string]catalogo.Especialidad
	tiposServicio  map[string]catalogo.TipoServicio
	servicios      map[string]catalogo.Servicio
	patologias     map[string]catalogo.Patologia
}

func NewCatalogoRepo() catalogo.Repository {
	return &catalogoRepo{
		razas:          make(map[string]catalogo.Raza),
		especialidades: make(map[string]catalogo.Especialidad),
		tiposServicio:  make(map[string]catalogo.TipoServicio),
		servicios:      make(map[string]catalogo.Servicio),
		patologias:     make(map[string]catalogo.Patologia),
	}
}

func (r *catalogoRepo) CreateRaza(ctx context.Context, raza catalogo.Raza) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.razas[raza.ID] = raza
	return nil
}

func (r *catalogoRepo) GetRaza(ctx context.Context, id string) (catalogo.Raza, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	raza, ok := r.razas[id]
	if !ok {
		return catalogo.Raza{}, apperr.NotFound("raza no encontrada")
	}
	return raza, nil
}

func (r *catalogoRepo) ListRazas(ctx context.Context) ([]catalogo.Raza, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalogo.Raza, 0, len(r.razas))
	for _, raza := range r.razas {
		out = append(out, raza)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *catalogoRepo) CreateEspecialidad(ctx context.Context, e catalogo.Especialidad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.especialidades[e.ID] = e
	return nil
}

func (r *catalogoRepo) GetEspecialidad(ctx context.Context, id string) (catalogo.Especialidad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.especialidades[id]
	if !ok {
		return catalogo.Especialidad{}, apperr.NotFound("especialidad no encontrada")
	}
	return e, nil
}

func (r *catalogoRepo) ListEspecialidades(ctx context.Context) ([]catalogo.Especialidad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalogo.Especialidad, 0, len(r.especialidades))
	for _, e := range r.especialidades {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Descripcion < out[j].Descripcion })
	return out, nil
}

func (r *catalogoRepo) CreateTipoServicio(ctx context.Context, t catalogo.TipoServicio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tiposServicio[t.ID] = t
	return nil
}

func (r *catalogoRepo) GetTipoServicio(ctx context.Context, id string) (catalogo.TipoServicio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tiposServicio[id]
	if !ok {
		return catalogo.TipoServicio{}, apperr.NotFound("tipo de servicio no encontrado")
	}
	return t, nil
}

func (r *catalogoRepo) ListTiposServicio(ctx context.Context) ([]catalogo.TipoServicio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalogo.TipoServicio, 0, len(r.tiposServicio))
	for _, t := range r.tiposServicio {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Descripcion < out[j].Descripcion })
	return out, nil
}

func (r *catalogoRepo) CreateServicio(ctx context.Context, s catalogo.Servicio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.servicios[s.ID] = s
	return nil
}

func (r *catalogoRepo) GetServicio(ctx context.Context, id string) (catalogo.Servicio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.servicios[id]
	if !ok {
		return catalogo.Servicio{}, apperr.NotFound("servicio no encontrado")
	}
	return s, nil
}

func (r *catalogoRepo) ListServicios(ctx context.Context) ([]catalogo.Servicio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalogo.Servicio, 0, len(r.servicios))
	for _, s := range r.servicios {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *catalogoRepo) UpdateServicio(ctx context.Context, s catalogo.Servicio) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.servicios[s.ID]; !exists {
		return apperr.NotFound("servicio no encontrado")
	}
	r.servicios[s.ID] = s
	return nil
}

func (r *catalogoRepo) CreatePatologia(ctx context.Context, p catalogo.Patologia) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.patologias {
		if existing.Nombre == p.Nombre {
			return apperr.Conflict("ya existe una patologia con nombre %q", p.Nombre)
		}
	}
	r.patologias[p.ID] = p
	return nil
}

func (r *catalogoRepo) GetPatologia(ctx context.Context, id string) (catalogo.Patologia, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patologias[id]
	if !ok {
		return catalogo.Patologia{}, apperr.NotFound("patologia no encontrada")
	}
	return p, nil
}

func (r *catalogoRepo) GetPatologiaByNombre(ctx context.Context, nombre string) (catalogo.Patologia, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.patologias {
		if p.Nombre == nombre {
			return p, nil
		}
	}
	return catalogo.Patologia{}, apperr.NotFound("patologia no encontrada")
}

func (r *catalogoRepo) ListPatologias(ctx context.Context) ([]catalogo.Patologia, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalogo.Patologia, 0, len(r.patologias))
	for _, p := range r.patologias {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}
