package solicitudes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"veterinaria-backend/internal/platform/httpx"
	"veterinaria-backend/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/solicitudes", func(sr chi.Router) {
		sr.Post("/", createHandler(svc))
		sr.Get("/", listHandler(svc))
		sr.Get("/{solicitudID}", getHandler(svc))
		sr.Delete("/{solicitudID}", cancelHandler(svc))
	})
}

type solicitudResponse struct {
	ID                 string    `json:"id"`
	MascotaID          string    `json:"id_mascota"`
	RecepcionistaID    string    `json:"id_recepcionista"`
	FechaHoraSolicitud time.Time `json:"fecha_hora_solicitud"`
	Tipo               Tipo      `json:"tipo_solicitud"`
	Estado             Estado    `json:"estado"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			MascotaID       string `json:"id_mascota"`
			RecepcionistaID string `json:"id_recepcionista"`
			Tipo            Tipo   `json:"tipo_solicitud"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		sol, err := svc.Create(r.Context(), CreateInput{
			MascotaID:       req.MascotaID,
			RecepcionistaID: req.RecepcionistaID,
			Tipo:            req.Tipo,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(sol))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := pagination.FromRequest(r)
		f := ListFilter{Estado: Estado(r.URL.Query().Get("estado"))}

		items, total, err := svc.List(r.Context(), f, p)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		out := make([]solicitudResponse, 0, len(items))
		for _, sol := range items {
			out = append(out, toResponse(sol))
		}
		httpx.WriteJSON(w, http.StatusOK, pagination.NewResponse(out, total, p))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sol, err := svc.GetByID(r.Context(), chi.URLParam(r, "solicitudID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(sol))
	}
}

func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sol, err := svc.Cancelar(r.Context(), chi.URLParam(r, "solicitudID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "solicitud cancelada",
			"success": true,
			"estado":  sol.Estado,
		})
	}
}

func toResponse(s Solicitud) solicitudResponse {
	return solicitudResponse{
		ID:                 s.ID,
		MascotaID:          s.MascotaID,
		RecepcionistaID:    s.RecepcionistaID,
		FechaHoraSolicitud: s.FechaHoraSolicitud,
		Tipo:               s.Tipo,
		Estado:             s.Estado,
	}
}
