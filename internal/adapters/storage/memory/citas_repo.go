package memory

import (
	"context"
	"sort"
	"sync"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/citas"
	"veterinaria-backend/internal/platform/pagination"
)

type citasRepo struct {
	mu         sync.RWMutex
	servicios  map[string]citas.ServicioSolicitado
	citasByID  map[string]citas.Cita
	resultados map[string]citas.ResultadoServicio // key: cita id
}

func NewCitasRepo() citas.Repository {
	return &citasRepo{
		servicios:  make(map[string]citas.ServicioSolicitado),
		citasByID:  make(map[string]citas.Cita),
		resultados: make(map[string]citas.ResultadoServicio),
	}
}

func (r *citasRepo) CreateServicioSolicitado(ctx context.Context, s citas.ServicioSolicitado) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.servicios[s.ID] = s
	return nil
}

func (r *citasRepo) GetServicioSolicitado(ctx context.Context, id string) (citas.ServicioSolicitado, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.servicios[id]
	if !ok {
		return citas.ServicioSolicitado{}, apperr.NotFound("servicio solicitado no encontrado")
	}
	return s, nil
}

func (r *citasRepo) UpdateServicioSolicitado(ctx context.Context, s citas.ServicioSolicitado) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.servicios[s.ID]; !exists {
		return apperr.NotFound("servicio solicitado no encontrado")
	}
	r.servicios[s.ID] = s
	return nil
}

func (r *citasRepo) ListServiciosSolicitados(ctx context.Context, f citas.ServicioFilter, p pagination.Params) ([]citas.ServicioSolicitado, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]citas.ServicioSolicitado, 0, len(r.servicios))
	for _, s := range r.servicios {
		if f.Estado != "" && s.Estado != f.Estado {
			continue
		}
		if f.ConsultaID != "" && s.ConsultaID != f.ConsultaID {
			continue
		}
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].FechaSolicitado.After(all[j].FechaSolicitado)
	})

	page, total := paginate(all, p)
	return page, total, nil
}

func (r *citasRepo) CreateCita(ctx context.Context, c citas.Cita) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.citasByID[c.ID] = c
	return nil
}

func (r *citasRepo) GetCita(ctx context.Context, id string) (citas.Cita, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.citasByID[id]
	if !ok {
		return citas.Cita{}, apperr.NotFound("cita no encontrada")
	}
	return c, nil
}

func (r *citasRepo) UpdateCita(ctx context.Context, c citas.Cita) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.citasByID[c.ID]; !exists {
		return apperr.NotFound("cita no encontrada")
	}
	r.citasByID[c.ID] = c
	return nil
}

func (r *citasRepo) ListCitas(ctx context.Context, f citas.CitaFilter, p pagination.Params) ([]citas.Cita, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]citas.Cita, 0, len(r.citasByID))
	for _, c := range r.citasByID {
		if f.Estado != "" && c.Estado != f.Estado {
			continue
		}
		if f.MascotaID != "" && c.MascotaID != f.MascotaID {
			continue
		}
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].FechaHoraProgramada.Before(all[j].FechaHoraProgramada)
	})

	page, total := paginate(all, p)
	return page, total, nil
}

func (r *citasRepo) CreateResultado(ctx context.Context, res citas.ResultadoServicio) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.resultados[res.CitaID]; exists {
		return apperr.Conflict("la cita ya tiene un resultado registrado")
	}
	r.resultados[res.CitaID] = res
	return nil
}

func (r *citasRepo) GetResultadoByCita(ctx context.Context, citaID string) (citas.ResultadoServicio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.resultados[citaID]
	if !ok {
		return citas.ResultadoServicio{}, apperr.NotFound("la cita no tiene resultado")
	}
	return res, nil
}
