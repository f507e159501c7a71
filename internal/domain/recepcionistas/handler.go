package recepcionistas

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/platform/httpx"
	"veterinaria-backend/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/recepcionistas", func(rr chi.Router) {
		rr.Post("/", createHandler(svc))
		rr.Get("/", listHandler(svc))
		rr.Get("/{recepcionistaID}", getHandler(svc))
		rr.Put("/{recepcionistaID}", updateHandler(svc))
		rr.Delete("/{recepcionistaID}", deactivateHandler(svc))
	})
}

type recepcionistaRequest struct {
	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
	DNI             string `json:"dni"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	FechaIngreso    string `json:"fecha_ingreso"` // YYYY-MM-DD opcional
	Turno           Turno  `json:"turno"`
}

type recepcionistaResponse struct {
	ID              string    `json:"id"`
	Nombre          string    `json:"nombre"`
	ApellidoPaterno string    `json:"apellido_paterno"`
	ApellidoMaterno string    `json:"apellido_materno"`
	DNI             string    `json:"dni"`
	Telefono        string    `json:"telefono"`
	Email           string    `json:"email"`
	FechaIngreso    time.Time `json:"fecha_ingreso"`
	Turno           Turno     `json:"turno"`
	Estado          Estado    `json:"estado"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recepcionistaRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		var ingreso *time.Time
		if req.FechaIngreso != "" {
			t, err := time.Parse("2006-01-02", req.FechaIngreso)
			if err != nil {
				httpx.WriteError(w, apperr.Validation("fecha_ingreso debe ser YYYY-MM-DD"))
				return
			}
			ingreso = &t
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			Nombre:          req.Nombre,
			ApellidoPaterno: req.ApellidoPaterno,
			ApellidoMaterno: req.ApellidoMaterno,
			DNI:             req.DNI,
			Telefono:        req.Telefono,
			Email:           req.Email,
			FechaIngreso:    ingreso,
			Turno:           req.Turno,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(rec))
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

		out := make([]recepcionistaResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toResponse(rec))
		}
		httpx.WriteJSON(w, http.StatusOK, pagination.NewResponse(out, total, p))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recepcionistaID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(rec))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recepcionistaRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		rec, err := svc.Update(r.Context(), chi.URLParam(r, "recepcionistaID"), UpdateInput{
			Nombre:          req.Nombre,
			ApellidoPaterno: req.ApellidoPaterno,
			ApellidoMaterno: req.ApellidoMaterno,
			Telefono:        req.Telefono,
			Turno:           req.Turno,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(rec))
	}
}

func deactivateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Deactivate(r.Context(), chi.URLParam(r, "recepcionistaID")); err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "recepcionista desactivada",
			"success": true,
		})
	}
}

func toResponse(rec Recepcionista) recepcionistaResponse {
	return recepcionistaResponse{
		ID:              rec.ID,
		Nombre:          rec.Nombre,
		ApellidoPaterno: rec.ApellidoPaterno,
		ApellidoMaterno: rec.ApellidoMaterno,
		DNI:             rec.DNI,
		Telefono:        rec.Telefono,
		Email:           rec.Email,
		FechaIngreso:    rec.FechaIngreso,
		Turno:           rec.Turno,
		Estado:          rec.Estado,
	}
}
