package catalogo

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"veterinaria-backend/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/catalogos", func(cr chi.Router) {
		cr.Post("/razas", createRazaHandler(svc))
		cr.Get("/razas", listRazasHandler(svc))

		cr.Post("/especialidades", createEspecialidadHandler(svc))
		cr.Get("/especialidades", listEspecialidadesHandler(svc))

		cr.Post("/tipos-servicio", createTipoServicioHandler(svc))
		cr.Get("/tipos-servicio", listTiposServicioHandler(svc))

		cr.Post("/servicios", createServicioHandler(svc))
		cr.Get("/servicios", listServiciosHandler(svc))
		cr.Get("/servicios/{servicioID}", getServicioHandler(svc))
		cr.Patch("/servicios/{servicioID}/activo", setServicioActivoHandler(svc))

		cr.Post("/patologias", createPatologiaHandler(svc))
		cr.Get("/patologias", listPatologiasHandler(svc))
	})
}

type razaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre_raza"`
}

type descripcionResponse struct {
	ID          string `json:"id"`
	Descripcion string `json:"descripcion"`
}

type servicioResponse struct {
	ID             string  `json:"id"`
	TipoServicioID string  `json:"id_tipo_servicio"`
	Nombre         string  `json:"nombre_servicio"`
	Precio         float64 `json:"precio"`
	Activo         bool    `json:"activo"`
}

type patologiaResponse struct {
	ID            string        `json:"id"`
	Nombre        string        `json:"nombre_patologia"`
	EspecieAfecta EspecieAfecta `json:"especie_afecta"`
	Gravedad      Gravedad      `json:"gravedad"`
	EsCronica     bool          `json:"es_cronica"`
	EsContagiosa  bool          `json:"es_contagiosa"`
}

func createRazaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Nombre string `json:"nombre_raza"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		raza, err := svc.CreateRaza(r.Context(), req.Nombre)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, razaResponse{ID: raza.ID, Nombre: raza.Nombre})
	}
}

func listRazasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		razas, err := svc.ListRazas(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		out := make([]razaResponse, 0, len(razas))
		for _, rz := range razas {
			out = append(out, razaResponse{ID: rz.ID, Nombre: rz.Nombre})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createEspecialidadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Descripcion string `json:"descripcion"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		e, err := svc.CreateEspecialidad(r.Context(), req.Descripcion)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, descripcionResponse{ID: e.ID, Descripcion: e.Descripcion})
	}
}

func listEspecialidadesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListEspecialidades(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		out := make([]descripcionResponse, 0, len(items))
		for _, e := range items {
			out = append(out, descripcionResponse{ID: e.ID, Descripcion: e.Descripcion})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createTipoServicioHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Descripcion string `json:"descripcion"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		t, err := svc.CreateTipoServicio(r.Context(), req.Descripcion)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, descripcionResponse{ID: t.ID, Descripcion: t.Descripcion})
	}
}

func listTiposServicioHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListTiposServicio(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		out := make([]descripcionResponse, 0, len(items))
		for _, t := range items {
			out = append(out, descripcionResponse{ID: t.ID, Descripcion: t.Descripcion})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createServicioHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TipoServicioID string  `json:"id_tipo_servicio"`
			Nombre         string  `json:"nombre_servicio"`
			Precio         float64 `json:"precio"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		sv, err := svc.CreateServicio(r.Context(), CreateServicioInput{
			TipoServicioID: req.TipoServicioID,
			Nombre:         req.Nombre,
			Precio:         req.Precio,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toServicioResponse(sv))
	}
}

func listServiciosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListServicios(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		out := make([]servicioResponse, 0, len(items))
		for _, sv := range items {
			out = append(out, toServicioResponse(sv))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getServicioHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sv, err := svc.GetServicio(r.Context(), chi.URLParam(r, "servicioID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toServicioResponse(sv))
	}
}

func setServicioActivoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Activo bool `json:"activo"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		sv, err := svc.SetServicioActivo(r.Context(), chi.URLParam(r, "servicioID"), req.Activo)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toServicioResponse(sv))
	}
}

func createPatologiaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Nombre        string        `json:"nombre_patologia"`
			EspecieAfecta EspecieAfecta `json:"especie_afecta"`
			Gravedad      Gravedad      `json:"gravedad"`
			EsCronica     bool          `json:"es_cronica"`
			EsContagiosa  bool          `json:"es_contagiosa"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		p, err := svc.CreatePatologia(r.Context(), CreatePatologiaInput{
			Nombre:        req.Nombre,
			EspecieAfecta: req.EspecieAfecta,
			Gravedad:      req.Gravedad,
			EsCronica:     req.EsCronica,
			EsContagiosa:  req.EsContagiosa,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toPatologiaResponse(p))
	}
}

func listPatologiasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListPatologias(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		out := make([]patologiaResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatologiaResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func toServicioResponse(s Servicio) servicioResponse {
	return servicioResponse{
		ID:             s.ID,
		TipoServicioID: s.TipoServicioID,
		Nombre:         s.Nombre,
		Precio:         s.Precio,
		Activo:         s.Activo,
	}
}

func toPatologiaResponse(p Patologia) patologiaResponse {
	return patologiaResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		EspecieAfecta: p.EspecieAfecta,
		Gravedad:      p.Gravedad,
		EsCronica:     p.EsCronica,
		EsContagiosa:  p.EsContagiosa,
	}
}
