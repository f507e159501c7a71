package memory

import (
	"context"
	"sort"
	"sync"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/consultas"
	"veterinaria-backend/internal/platform/pagination"
)

// ConsultasRepo implementa consultas.Repository y, vía ExistsByTriaje,
// también triaje.ConsultaLookup (para congelar triajes con consulta).
type ConsultasRepo struct {
	mu           sync.RWMutex
	byID         map[string]consultas.Consulta
	byTriaje     map[string]string
	diagnosticos map[string][]consultas.Diagnostico
	tratamientos map[string][]consultas.Tratamiento
}

func NewConsultasRepo() *ConsultasRepo {
	return &ConsultasRepo{
		byID:         make(map[string]consultas.Consulta),
		byTriaje:     make(map[string]string),
		diagnosticos: make(map[string][]consultas.Diagnostico),
		tratamientos: make(map[string][]consultas.Tratamiento),
	}
}

func (r *ConsultasRepo) Create(ctx context.Context, c consultas.Consulta) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Unicidad por triaje, espejo del unique index en postgres.
	if _, exists := r.byTriaje[c.TriajeID]; exists {
		return apperr.Conflict("el triaje ya tiene una consulta registrada")
	}
	r.byID[c.ID] = c
	r.byTriaje[c.TriajeID] = c.ID
	return nil
}

func (r *ConsultasRepo) GetByID(ctx context.Context, id string) (consultas.Consulta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return consultas.Consulta{}, apperr.NotFound("consulta no encontrada")
	}
	return c, nil
}

func (r *ConsultasRepo) GetByTriaje(ctx context.Context, triajeID string) (consultas.Consulta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byTriaje[triajeID]
	if !ok {
		return consultas.Consulta{}, apperr.NotFound("el triaje no tiene consulta")
	}
	return r.byID[id], nil
}

func (r *ConsultasRepo) ExistsByTriaje(ctx context.Context, triajeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byTriaje[triajeID]
	return ok, nil
}

func (r *ConsultasRepo) List(ctx context.Context, f consultas.ListFilter, p pagination.Params) ([]consultas.Consulta, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]consultas.Consulta, 0, len(r.byID))
	for _, c := range r.byID {
		if f.VeterinarioID != "" && c.VeterinarioID != f.VeterinarioID {
			continue
		}
		if f.EsSeguimiento != nil && c.EsSeguimiento != *f.EsSeguimiento {
			continue
		}
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].FechaConsulta.After(all[j].FechaConsulta)
	})

	page, total := paginate(all, p)
	return page, total, nil
}

func (r *ConsultasRepo) CreateDiagnostico(ctx context.Context, d consultas.Diagnostico) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnosticos[d.ConsultaID] = append(r.diagnosticos[d.ConsultaID], d)
	return nil
}

func (r *ConsultasRepo) ListDiagnosticos(ctx context.Context, consultaID string) ([]consultas.Diagnostico, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]consultas.Diagnostico, len(r.diagnosticos[consultaID]))
	copy(out, r.diagnosticos[consultaID])
	return out, nil
}

func (r *ConsultasRepo) CreateTratamiento(ctx context.Context, t consultas.Tratamiento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tratamientos[t.ConsultaID] = append(r.tratamientos[t.ConsultaID], t)
	return nil
}

func (r *ConsultasRepo) ListTratamientos(ctx context.Context, consultaID string) ([]consultas.Tratamiento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]consultas.Tratamiento, len(r.tratamientos[consultaID]))
	copy(out, r.tratamientos[consultaID])
	return out, nil
}
