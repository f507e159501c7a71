package clientes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"veterinaria-backend/internal/platform/httpx"
	"veterinaria-backend/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clientes", func(cr chi.Router) {
		cr.Post("/", createClienteHandler(svc))
		cr.Get("/", listClientesHandler(svc))
		cr.Get("/{clienteID}", getClienteHandler(svc))
		cr.Put("/{clienteID}", updateClienteHandler(svc))
		cr.Delete("/{clienteID}", deactivateClienteHandler(svc))
	})
}

type clienteRequest struct {
	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
	DNI             string `json:"dni"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Direccion       string `json:"direccion"`
}

type clienteResponse struct {
	ID              string    `json:"id"`
	Nombre          string    `json:"nombre"`
	ApellidoPaterno string    `json:"apellido_paterno"`
	ApellidoMaterno string    `json:"apellido_materno"`
	DNI             string    `json:"dni"`
	Telefono        string    `json:"telefono"`
	Email           string    `json:"email"`
	Direccion       string    `json:"direccion"`
	Estado          Estado    `json:"estado"`
	FechaRegistro   time.Time `json:"fecha_registro"`
}

func createClienteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clienteRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			Nombre:          req.Nombre,
			ApellidoPaterno: req.ApellidoPaterno,
			ApellidoMaterno: req.ApellidoMaterno,
			DNI:             req.DNI,
			Telefono:        req.Telefono,
			Email:           req.Email,
			Direccion:       req.Direccion,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toClienteResponse(c))
	}
}

func listClientesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := pagination.FromRequest(r)
		items, total, err := svc.List(r.Context(), p)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		out := make([]clienteResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClienteResponse(c))
		}
		httpx.WriteJSON(w, http.StatusOK, pagination.NewResponse(out, total, p))
	}
}

func getClienteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "clienteID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toClienteResponse(c))
	}
}

func updateClienteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clienteRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "clienteID"), UpdateInput{
			Nombre:          req.Nombre,
			ApellidoPaterno: req.ApellidoPaterno,
			ApellidoMaterno: req.ApellidoMaterno,
			Telefono:        req.Telefono,
			Direccion:       req.Direccion,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toClienteResponse(c))
	}
}

func deactivateClienteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Deactivate(r.Context(), chi.URLParam(r, "clienteID")); err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "cliente desactivado",
			"success": true,
		})
	}
}

func toClienteResponse(c Cliente) clienteResponse {
	return clienteResponse{
		ID:              c.ID,
		Nombre:          c.Nombre,
		ApellidoPaterno: c.ApellidoPaterno,
		ApellidoMaterno: c.ApellidoMaterno,
		DNI:             c.DNI,
		Telefono:        c.Telefono,
		Email:           c.Email,
		Direccion:       c.Direccion,
		Estado:          c.Estado,
		FechaRegistro:   c.FechaRegistro,
	}
}
