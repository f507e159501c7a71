package citas

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"veterinaria-backend/internal/platform/httpx"
	"veterinaria-backend/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/consultas/{consultaID}/servicio-cita", servicioCitaHandler(svc))
	r.Get("/servicios-solicitados", listServiciosHandler(svc))

	r.Route("/citas", func(cr chi.Router) {
		cr.Get("/", listCitasHandler(svc))
		cr.Get("/{citaID}", getCitaHandler(svc))
		cr.Delete("/{citaID}", cancelCitaHandler(svc))
		cr.Put("/{citaID}/resultado", resultadoHandler(svc))
		cr.Get("/{citaID}/resultado", getResultadoHandler(svc))
	})
}

type servicioSolicitadoResponse struct {
	ID                 string       `json:"id_servicio_solicitado"`
	ConsultaID         string       `json:"id_consulta"`
	ServicioID         string       `json:"id_servicio"`
	VeterinarioID      string       `json:"id_veterinario"`
	FechaSolicitado    time.Time    `json:"fecha_solicitado"`
	Prioridad          Prioridad    `json:"prioridad"`
	Estado             EstadoExamen `json:"estado_examen"`
	ComentarioOpcional string       `json:"comentario_opcional,omitempty"`
}

type citaResponse struct {
	ID                   string     `json:"id_cita"`
	MascotaID            string     `json:"id_mascota"`
	ServicioSolicitadoID string     `json:"id_servicio_solicitado"`
	FechaHoraProgramada  time.Time  `json:"fecha_hora_programada"`
	Estado               EstadoCita `json:"estado_cita"`
	RequiereAyuno        bool       `json:"requiere_ayuno"`
	Observaciones        string     `json:"observaciones,omitempty"`
}

type resultadoResponse struct {
	ID               string    `json:"id_resultado"`
	CitaID           string    `json:"id_cita"`
	VeterinarioID    string    `json:"id_veterinario"`
	Resultado        string    `json:"resultado"`
	Interpretacion   string    `json:"interpretacion,omitempty"`
	ArchivoAdjunto   string    `json:"archivo_adjunto,omitempty"`
	FechaRealizacion time.Time `json:"fecha_realizacion"`
}

func servicioCitaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ServicioID          string    `json:"id_servicio"`
			VeterinarioID       string    `json:"id_veterinario"`
			Prioridad           Prioridad `json:"prioridad"`
			ComentarioOpcional  string    `json:"comentario_opcional"`
			FechaHoraProgramada time.Time `json:"fecha_hora_programada"`
			RequiereAyuno       bool      `json:"requiere_ayuno"`
			Observaciones       string    `json:"observaciones"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		ss, cita, err := svc.CrearServicioCita(r.Context(), chi.URLParam(r, "consultaID"), ServicioCitaInput{
			ServicioID:          req.ServicioID,
			VeterinarioID:       req.VeterinarioID,
			Prioridad:           req.Prioridad,
			ComentarioOpcional:  req.ComentarioOpcional,
			FechaHoraProgramada: req.FechaHoraProgramada,
			RequiereAyuno:       req.RequiereAyuno,
			Observaciones:       req.Observaciones,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{
			"servicio_solicitado": toServicioResponse(ss),
			"cita":                toCitaResponse(cita),
		})
	}
}

func listServiciosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := pagination.FromRequest(r)
		f := ServicioFilter{
			Estado:     EstadoExamen(r.URL.Query().Get("estado_examen")),
			ConsultaID: r.URL.Query().Get("id_consulta"),
		}

		items, total, err := svc.ListServiciosSolicitados(r.Context(), f, p)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		out := make([]servicioSolicitadoResponse, 0, len(items))
		for _, ss := range items {
			out = append(out, toServicioResponse(ss))
		}
		httpx.WriteJSON(w, http.StatusOK, pagination.NewResponse(out, total, p))
	}
}

func listCitasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := pagination.FromRequest(r)
		f := CitaFilter{
			Estado:    EstadoCita(r.URL.Query().Get("estado_cita")),
			MascotaID: r.URL.Query().Get("id_mascota"),
		}

		items, total, err := svc.ListCitas(r.Context(), f, p)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		out := make([]citaResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCitaResponse(c))
		}
		httpx.WriteJSON(w, http.StatusOK, pagination.NewResponse(out, total, p))
	}
}

func getCitaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetCita(r.Context(), chi.URLParam(r, "citaID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCitaResponse(c))
	}
}

func cancelCitaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.CancelarCita(r.Context(), chi.URLParam(r, "citaID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message":     "cita cancelada",
			"success":     true,
			"estado_cita": c.Estado,
		})
	}
}

func resultadoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			VeterinarioID  string `json:"id_veterinario"`
			Resultado      string `json:"resultado"`
			Interpretacion string `json:"interpretacion"`
			ArchivoAdjunto string `json:"archivo_adjunto"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		res, err := svc.RegistrarResultado(r.Context(), chi.URLParam(r, "citaID"), ResultadoInput{
			VeterinarioID:  req.VeterinarioID,
			Resultado:      req.Resultado,
			Interpretacion: req.Interpretacion,
			ArchivoAdjunto: req.ArchivoAdjunto,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResultadoResponse(res))
	}
}

func getResultadoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.GetResultado(r.Context(), chi.URLParam(r, "citaID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResultadoResponse(res))
	}
}

func toServicioResponse(s ServicioSolicitado) servicioSolicitadoResponse {
	return servicioSolicitadoResponse{
		ID:                 s.ID,
		ConsultaID:         s.ConsultaID,
		ServicioID:         s.ServicioID,
		VeterinarioID:      s.VeterinarioID,
		FechaSolicitado:    s.FechaSolicitado,
		Prioridad:          s.Prioridad,
		Estado:             s.Estado,
		ComentarioOpcional: s.ComentarioOpcional,
	}
}

func toCitaResponse(c Cita) citaResponse {
	return citaResponse{
		ID:                   c.ID,
		MascotaID:            c.MascotaID,
		ServicioSolicitadoID: c.ServicioSolicitadoID,
		FechaHoraProgramada:  c.FechaHoraProgramada,
		Estado:               c.Estado,
		RequiereAyuno:        c.RequiereAyuno,
		Observaciones:        c.Observaciones,
	}
}

func toResultadoResponse(r ResultadoServicio) resultadoResponse {
	return resultadoResponse{
		ID:               r.ID,
		CitaID:           r.CitaID,
		VeterinarioID:    r.VeterinarioID,
		Resultado:        r.Resultado,
		Interpretacion:   r.Interpretacion,
		ArchivoAdjunto:   r.ArchivoAdjunto,
		FechaRealizacion: r.FechaRealizacion,
	}
}
