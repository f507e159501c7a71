package mascotas

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"veterinaria-backend/internal/domain/historial"
	"veterinaria-backend/internal/platform/httpx"
	"veterinaria-backend/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service, historialSvc *historial.Service) {
	r.Route("/mascotas", func(mr chi.Router) {
		mr.Post("/", createHandler(svc))
		mr.Get("/", listHandler(svc))
		mr.Get("/{mascotaID}", getHandler(svc))
		mr.Put("/{mascotaID}", updateHandler(svc))

		// Historial clínico completo de la mascota (append-only).
		mr.Get("/{mascotaID}/historial", historialHandler(svc, historialSvc))
	})

	// Mascotas de un cliente; vive aquí para no acoplar el módulo clientes.
	r.Get("/clientes/{clienteID}/mascotas", listByClienteHandler(svc))
}

type mascotaRequest struct {
	ClienteID    string `json:"id_cliente"`
	RazaID       string `json:"id_raza"`
	Nombre       string `json:"nombre"`
	Sexo         Sexo   `json:"sexo"`
	Color        string `json:"color"`
	EdadAnios    *int   `json:"edad_anios"`
	EdadMeses    *int   `json:"edad_meses"`
	Esterilizado *bool  `json:"esterilizado"`
}

type mascotaResponse struct {
	ID           string    `json:"id"`
	ClienteID    string    `json:"id_cliente"`
	RazaID       string    `json:"id_raza"`
	Nombre       string    `json:"nombre"`
	Sexo         Sexo      `json:"sexo"`
	Color        string    `json:"color"`
	EdadAnios    int       `json:"edad_anios"`
	EdadMeses    int       `json:"edad_meses"`
	Esterilizado bool      `json:"esterilizado"`
	CreatedAt    time.Time `json:"created_at"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mascotaRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		in := CreateInput{
			ClienteID: req.ClienteID,
			RazaID:    req.RazaID,
			Nombre:    req.Nombre,
			Sexo:      req.Sexo,
			Color:     req.Color,
		}
		if req.EdadAnios != nil {
			in.EdadAnios = *req.EdadAnios
		}
		if req.EdadMeses != nil {
			in.EdadMeses = *req.EdadMeses
		}
		if req.Esterilizado != nil {
			in.Esterilizado = *req.Esterilizado
		}

		m, err := svc.Create(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(m))
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

		out := make([]mascotaResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toResponse(m))
		}
		httpx.WriteJSON(w, http.StatusOK, pagination.NewResponse(out, total, p))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "mascotaID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(m))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mascotaRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		m, err := svc.Update(r.Context(), chi.URLParam(r, "mascotaID"), UpdateInput{
			Nombre:       req.Nombre,
			Color:        req.Color,
			EdadAnios:    req.EdadAnios,
			EdadMeses:    req.EdadMeses,
			Esterilizado: req.Esterilizado,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(m))
	}
}

func historialHandler(svc *Service, historialSvc *historial.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mascotaID := chi.URLParam(r, "mascotaID")
		if _, err := svc.GetByID(r.Context(), mascotaID); err != nil {
			httpx.WriteError(w, err)
			return
		}

		eventos, err := historialSvc.ListByMascota(r.Context(), mascotaID)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, historial.ToEventoResponses(eventos))
	}
}

func listByClienteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByCliente(r.Context(), chi.URLParam(r, "clienteID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		out := make([]mascotaResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toResponse(m))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func toResponse(m Mascota) mascotaResponse {
	return mascotaResponse{
		ID:           m.ID,
		ClienteID:    m.ClienteID,
		RazaID:       m.RazaID,
		Nombre:       m.Nombre,
		Sexo:         m.Sexo,
		Color:        m.Color,
		EdadAnios:    m.EdadAnios,
		EdadMeses:    m.EdadMeses,
		Esterilizado: m.Esterilizado,
		CreatedAt:    m.CreatedAt,
	}
}
