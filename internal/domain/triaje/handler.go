package triaje

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"veterinaria-backend/internal/platform/httpx"
	"veterinaria-backend/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/triajes", func(tr chi.Router) {
		tr.Post("/", createHandler(svc))
		tr.Get("/", listHandler(svc))
		tr.Get("/{triajeID}", getHandler(svc))
		tr.Put("/{triajeID}", updateHandler(svc))
		tr.Get("/solicitud/{solicitudID}", getBySolicitudHandler(svc))
	})
}

type triajeResponse struct {
	ID                     string                `json:"id_triaje"`
	SolicitudID            string                `json:"id_solicitud"`
	VeterinarioID          string                `json:"id_veterinario"`
	FechaHoraTriaje        time.Time             `json:"fecha_hora_triaje"`
	PesoMascota            float64               `json:"peso_mascota"`
	LatidoPorMinuto        int                   `json:"latido_por_minuto"`
	FrecuenciaRespiratoria int                   `json:"frecuencia_respiratoria_rpm"`
	Temperatura            float64               `json:"temperatura"`
	Talla                  *float64              `json:"talla,omitempty"`
	TiempoCapilar          string                `json:"tiempo_capilar,omitempty"`
	ColorMucosas           string                `json:"color_mucosas,omitempty"`
	FrecuenciaPulso        int                   `json:"frecuencia_pulso"`
	PorceDeshidratacion    *float64              `json:"porce_deshidratacion,omitempty"`
	CondicionCorporal      CondicionCorporal     `json:"condicion_corporal"`
	ClasificacionUrgencia  ClasificacionUrgencia `json:"clasificacion_urgencia"`
}

type vitalsRequest struct {
	PesoMascota            float64  `json:"peso_mascota"`
	LatidoPorMinuto        int      `json:"latido_por_minuto"`
	FrecuenciaRespiratoria int      `json:"frecuencia_respiratoria_rpm"`
	Temperatura            float64  `json:"temperatura"`
	Talla                  *float64 `json:"talla"`
	TiempoCapilar          string   `json:"tiempo_capilar"`
	ColorMucosas           string   `json:"color_mucosas"`
	FrecuenciaPulso        int      `json:"frecuencia_pulso"`
	PorceDeshidratacion    *float64 `json:"porce_deshidratacion"`
}

func (v vitalsRequest) toVitals() Vitals {
	return Vitals{
		PesoMascota:            v.PesoMascota,
		LatidoPorMinuto:        v.LatidoPorMinuto,
		FrecuenciaRespiratoria: v.FrecuenciaRespiratoria,
		Temperatura:            v.Temperatura,
		Talla:                  v.Talla,
		TiempoCapilar:          v.TiempoCapilar,
		ColorMucosas:           v.ColorMucosas,
		FrecuenciaPulso:        v.FrecuenciaPulso,
		PorceDeshidratacion:    v.PorceDeshidratacion,
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			vitalsRequest
			SolicitudID           string                `json:"id_solicitud"`
			VeterinarioID         string                `json:"id_veterinario"`
			CondicionCorporal     CondicionCorporal     `json:"condicion_corporal"`
			ClasificacionUrgencia ClasificacionUrgencia `json:"clasificacion_urgencia"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		t, err := svc.Create(r.Context(), CreateInput{
			SolicitudID:           req.SolicitudID,
			VeterinarioID:         req.VeterinarioID,
			Vitals:                req.toVitals(),
			CondicionCorporal:     req.CondicionCorporal,
			ClasificacionUrgencia: req.ClasificacionUrgencia,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(t))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := pagination.FromRequest(r)
		items, total, err := svc.List(r.Context(), p)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		out := make([]triajeResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toResponse(t))
		}
		httpx.WriteJSON(w, http.StatusOK, pagination.NewResponse(out, total, p))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "triajeID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(t))
	}
}

func getBySolicitudHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.GetBySolicitud(r.Context(), chi.URLParam(r, "solicitudID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(t))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Vitals                *vitalsRequest        `json:"vitales"`
			CondicionCorporal     CondicionCorporal     `json:"condicion_corporal"`
			ClasificacionUrgencia ClasificacionUrgencia `json:"clasificacion_urgencia"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		in := UpdateInput{
			CondicionCorporal:     req.CondicionCorporal,
			ClasificacionUrgencia: req.ClasificacionUrgencia,
		}
		if req.Vitals != nil {
			v := req.Vitals.toVitals()
			in.Vitals = &v
		}

		t, err := svc.Update(r.Context(), chi.URLParam(r, "triajeID"), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(t))
	}
}

func toResponse(t Triaje) triajeResponse {
	return triajeResponse{
		ID:                     t.ID,
		SolicitudID:            t.SolicitudID,
		VeterinarioID:          t.VeterinarioID,
		FechaHoraTriaje:        t.FechaHoraTriaje,
		PesoMascota:            t.PesoMascota,
		LatidoPorMinuto:        t.LatidoPorMinuto,
		FrecuenciaRespiratoria: t.FrecuenciaRespiratoria,
		Temperatura:            t.Temperatura,
		Talla:                  t.Talla,
		TiempoCapilar:          t.TiempoCapilar,
		ColorMucosas:           t.ColorMucosas,
		FrecuenciaPulso:        t.FrecuenciaPulso,
		PorceDeshidratacion:    t.PorceDeshidratacion,
		CondicionCorporal:      t.CondicionCorporal,
		ClasificacionUrgencia:  t.ClasificacionUrgencia,
	}
}
