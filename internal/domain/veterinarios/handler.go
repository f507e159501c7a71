package veterinarios

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/platform/httpx"
	"veterinaria-backend/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/veterinarios", func(vr chi.Router) {
		vr.Post("/", createHandler(svc))
		vr.Get("/", listHandler(svc))
		vr.Get("/{veterinarioID}", getHandler(svc))
		vr.Put("/{veterinarioID}", updateHandler(svc))
		vr.Delete("/{veterinarioID}", deactivateHandler(svc))
	})
}

type veterinarioRequest struct {
	EspecialidadID  string `json:"id_especialidad"`
	CodigoCMVP      string `json:"codigo_cmvp"`
	Tipo            Tipo   `json:"tipo_veterinario"`
	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
	DNI             string `json:"dni"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	FechaIngreso    string `json:"fecha_ingreso"` // YYYY-MM-DD opcional
	Turno           Turno  `json:"turno"`
}

type veterinarioResponse struct {
	ID              string      `json:"id"`
	EspecialidadID  string      `json:"id_especialidad"`
	CodigoCMVP      string      `json:"codigo_cmvp"`
	Tipo            Tipo        `json:"tipo_veterinario"`
	Nombre          string      `json:"nombre"`
	ApellidoPaterno string      `json:"apellido_paterno"`
	ApellidoMaterno string      `json:"apellido_materno"`
	DNI             string      `json:"dni"`
	Telefono        string      `json:"telefono"`
	Email           string      `json:"email"`
	FechaIngreso    time.Time   `json:"fecha_ingreso"`
	Turno           Turno       `json:"turno"`
	Estado          Estado      `json:"estado"`
	Disposicion     Disposicion `json:"disposicion"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req veterinarioRequest
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

		v, err := svc.Create(r.Context(), CreateInput{
			EspecialidadID:  req.EspecialidadID,
			CodigoCMVP:      req.CodigoCMVP,
			Tipo:            req.Tipo,
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
		httpx.WriteJSON(w, http.StatusCreated, toResponse(v))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := pagination.FromRequest(r)
		f := ListFilter{
			Disposicion:    Disposicion(r.URL.Query().Get("disposicion")),
			EspecialidadID: r.URL.Query().Get("id_especialidad"),
		}

		items, total, err := svc.List(r.Context(), f, p)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		out := make([]veterinarioResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toResponse(v))
		}
		httpx.WriteJSON(w, http.StatusOK, pagination.NewResponse(out, total, p))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "veterinarioID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(v))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req veterinarioRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		v, err := svc.Update(r.Context(), chi.URLParam(r, "veterinarioID"), UpdateInput{
			EspecialidadID:  req.EspecialidadID,
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
		httpx.WriteJSON(w, http.StatusOK, toResponse(v))
	}
}

func deactivateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Deactivate(r.Context(), chi.URLParam(r, "veterinarioID")); err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "veterinario desactivado",
			"success": true,
		})
	}
}

func toResponse(v Veterinario) veterinarioResponse {
	return veterinarioResponse{
		ID:              v.ID,
		EspecialidadID:  v.EspecialidadID,
		CodigoCMVP:      v.CodigoCMVP,
		Tipo:            v.Tipo,
		Nombre:          v.Nombre,
		ApellidoPaterno: v.ApellidoPaterno,
		ApellidoMaterno: v.ApellidoMaterno,
		DNI:             v.DNI,
		Telefono:        v.Telefono,
		Email:           v.Email,
		FechaIngreso:    v.FechaIngreso,
		Turno:           v.Turno,
		Estado:          v.Estado,
		Disposicion:     v.Disposicion,
	}
}
