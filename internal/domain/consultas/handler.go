package consultas

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/historial"
	"veterinaria-backend/internal/domain/mascotas"
	"veterinaria-backend/internal/domain/solicitudes"
	"veterinaria-backend/internal/domain/triaje"
	"veterinaria-backend/internal/domain/veterinarios"
	"veterinaria-backend/internal/platform/httpx"
	"veterinaria-backend/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/consultas", func(cr chi.Router) {
		cr.Post("/", createHandler(svc))
		cr.Get("/", listHandler(svc))
		cr.Get("/{consultaID}", getHandler(svc))
		cr.Get("/{consultaID}/completa", completaHandler(svc))
		cr.Get("/{consultaID}/mascota", mascotaHandler(svc))
		cr.Patch("/{consultaID}/finalizar", finalizarHandler(svc))

		cr.Post("/{consultaID}/diagnosticos", createDiagnosticoHandler(svc))
		cr.Get("/{consultaID}/diagnosticos", listDiagnosticosHandler(svc))
		cr.Post("/{consultaID}/tratamientos", createTratamientoHandler(svc))
		cr.Get("/{consultaID}/tratamientos", listTratamientosHandler(svc))
	})
}

type consultaResponse struct {
	ID                    string           `json:"id_consulta"`
	TriajeID              string           `json:"id_triaje"`
	VeterinarioID         string           `json:"id_veterinario"`
	TipoConsulta          string           `json:"tipo_consulta"`
	FechaConsulta         time.Time        `json:"fecha_consulta"`
	MotivoConsulta        string           `json:"motivo_consulta,omitempty"`
	SintomasObservados    string           `json:"sintomas_observados,omitempty"`
	DiagnosticoPreliminar string           `json:"diagnostico_preliminar,omitempty"`
	Observaciones         string           `json:"observaciones,omitempty"`
	CondicionGeneral      CondicionGeneral `json:"condicion_general"`
	EsSeguimiento         bool             `json:"es_seguimiento"`
}

type diagnosticoResponse struct {
	ID               string          `json:"id_diagnostico"`
	ConsultaID       string          `json:"id_consulta"`
	PatologiaID      string          `json:"id_patologia"`
	Diagnostico      string          `json:"diagnostico"`
	TipoDiagnostico  TipoDiagnostico `json:"tipo_diagnostico"`
	EstadoPatologia  EstadoPatologia `json:"estado_patologia"`
	FechaDiagnostico time.Time       `json:"fecha_diagnostico"`
}

type tratamientoResponse struct {
	ID                  string              `json:"id_tratamiento"`
	ConsultaID          string              `json:"id_consulta"`
	PatologiaID         string              `json:"id_patologia"`
	TipoTratamiento     TipoTratamiento     `json:"tipo_tratamiento"`
	FechaInicio         time.Time           `json:"fecha_inicio"`
	EficaciaTratamiento EficaciaTratamiento `json:"eficacia_tratamiento,omitempty"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TriajeID              string           `json:"id_triaje"`
			VeterinarioID         string           `json:"id_veterinario"`
			TipoConsulta          string           `json:"tipo_consulta"`
			MotivoConsulta        string           `json:"motivo_consulta"`
			SintomasObservados    string           `json:"sintomas_observados"`
			DiagnosticoPreliminar string           `json:"diagnostico_preliminar"`
			Observaciones         string           `json:"observaciones"`
			CondicionGeneral      CondicionGeneral `json:"condicion_general"`
			EsSeguimiento         bool             `json:"es_seguimiento"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		c, err := svc.Crear(r.Context(), CreateInput{
			TriajeID:              req.TriajeID,
			VeterinarioID:         req.VeterinarioID,
			TipoConsulta:          req.TipoConsulta,
			MotivoConsulta:        req.MotivoConsulta,
			SintomasObservados:    req.SintomasObservados,
			DiagnosticoPreliminar: req.DiagnosticoPreliminar,
			Observaciones:         req.Observaciones,
			CondicionGeneral:      req.CondicionGeneral,
			EsSeguimiento:         req.EsSeguimiento,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(c))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := pagination.FromRequest(r)
		f := ListFilter{VeterinarioID: r.URL.Query().Get("id_veterinario")}
		if v := r.URL.Query().Get("es_seguimiento"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				httpx.WriteError(w, apperr.Validation("es_seguimiento debe ser true o false"))
				return
			}
			f.EsSeguimiento = &b
		}

		items, total, err := svc.List(r.Context(), f, p)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		out := make([]consultaResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toResponse(c))
		}
		httpx.WriteJSON(w, http.StatusOK, pagination.NewResponse(out, total, p))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "consultaID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(c))
	}
}

func mascotaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.ResolverMascota(r.Context(), chi.URLParam(r, "consultaID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMascotaSummary(m))
	}
}

func finalizarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Finalizar(r.Context(), chi.URLParam(r, "consultaID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message":     "consulta finalizada",
			"success":     true,
			"id_consulta": c.ID,
		})
	}
}

func createDiagnosticoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PatologiaID     string          `json:"id_patologia"`
			Diagnostico     string          `json:"diagnostico"`
			TipoDiagnostico TipoDiagnostico `json:"tipo_diagnostico"`
			EstadoPatologia EstadoPatologia `json:"estado_patologia"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		d, err := svc.CrearDiagnostico(r.Context(), chi.URLParam(r, "consultaID"), CreateDiagnosticoInput{
			PatologiaID:     req.PatologiaID,
			Diagnostico:     req.Diagnostico,
			TipoDiagnostico: req.TipoDiagnostico,
			EstadoPatologia: req.EstadoPatologia,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toDiagnosticoResponse(d))
	}
}

func listDiagnosticosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListDiagnosticos(r.Context(), chi.URLParam(r, "consultaID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		out := make([]diagnosticoResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDiagnosticoResponse(d))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createTratamientoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PatologiaID         string              `json:"id_patologia"`
			TipoTratamiento     TipoTratamiento     `json:"tipo_tratamiento"`
			FechaInicio         string              `json:"fecha_inicio"` // YYYY-MM-DD opcional
			EficaciaTratamiento EficaciaTratamiento `json:"eficacia_tratamiento"`
		}
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		var inicio time.Time
		if req.FechaInicio != "" {
			t, err := time.Parse("2006-01-02", req.FechaInicio)
			if err != nil {
				httpx.WriteError(w, apperr.Validation("fecha_inicio debe ser YYYY-MM-DD"))
				return
			}
			inicio = t
		}

		t, err := svc.CrearTratamiento(r.Context(), chi.URLParam(r, "consultaID"), CreateTratamientoInput{
			PatologiaID:         req.PatologiaID,
			TipoTratamiento:     req.TipoTratamiento,
			FechaInicio:         inicio,
			EficaciaTratamiento: req.EficaciaTratamiento,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toTratamientoResponse(t))
	}
}

func listTratamientosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListTratamientos(r.Context(), chi.URLParam(r, "consultaID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		out := make([]tratamientoResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTratamientoResponse(t))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// ---- vista completa ----

type triajeSummary struct {
	ID                    string    `json:"id_triaje"`
	SolicitudID           string    `json:"id_solicitud"`
	VeterinarioID         string    `json:"id_veterinario"`
	FechaHoraTriaje       time.Time `json:"fecha_hora_triaje"`
	PesoMascota           float64   `json:"peso_mascota"`
	Temperatura           float64   `json:"temperatura"`
	ClasificacionUrgencia string    `json:"clasificacion_urgencia"`
}

type solicitudSummary struct {
	ID                 string    `json:"id"`
	MascotaID          string    `json:"id_mascota"`
	RecepcionistaID    string    `json:"id_recepcionista"`
	FechaHoraSolicitud time.Time `json:"fecha_hora_solicitud"`
	Tipo               string    `json:"tipo_solicitud"`
	Estado             string    `json:"estado"`
}

type mascotaSummary struct {
	ID        string `json:"id"`
	ClienteID string `json:"id_cliente"`
	RazaID    string `json:"id_raza"`
	Nombre    string `json:"nombre"`
	Sexo      string `json:"sexo"`
	EdadMeses int    `json:"edad_total_meses"`
}

type veterinarioSummary struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido_paterno"`
	CodigoCMVP  string `json:"codigo_cmvp"`
	Disposicion string `json:"disposicion"`
}

type completaResponse struct {
	Consulta     consultaResponse           `json:"consulta"`
	Triaje       *triajeSummary             `json:"triaje"`
	Solicitud    *solicitudSummary          `json:"solicitud"`
	Mascota      *mascotaSummary            `json:"mascota"`
	Veterinario  *veterinarioSummary        `json:"veterinario"`
	Diagnosticos []diagnosticoResponse      `json:"diagnosticos"`
	Tratamientos []tratamientoResponse      `json:"tratamientos"`
	Eventos      []historial.EventoResponse `json:"eventos_historial"`
}

func completaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		full, err := svc.GetCompleta(r.Context(), chi.URLParam(r, "consultaID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		resp := completaResponse{
			Consulta:     toResponse(full.Consulta),
			Diagnosticos: make([]diagnosticoResponse, 0, len(full.Diagnosticos)),
			Tratamientos: make([]tratamientoResponse, 0, len(full.Tratamientos)),
			Eventos:      historial.ToEventoResponses(full.Eventos),
		}
		for _, d := range full.Diagnosticos {
			resp.Diagnosticos = append(resp.Diagnosticos, toDiagnosticoResponse(d))
		}
		for _, t := range full.Tratamientos {
			resp.Tratamientos = append(resp.Tratamientos, toTratamientoResponse(t))
		}
		if full.Triaje != nil {
			resp.Triaje = toTriajeSummary(*full.Triaje)
		}
		if full.Solicitud != nil {
			resp.Solicitud = toSolicitudSummary(*full.Solicitud)
		}
		if full.Mascota != nil {
			m := toMascotaSummary(*full.Mascota)
			resp.Mascota = &m
		}
		if full.Veterinario != nil {
			resp.Veterinario = toVeterinarioSummary(*full.Veterinario)
		}
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}

func toResponse(c Consulta) consultaResponse {
	return consultaResponse{
		ID:                    c.ID,
		TriajeID:              c.TriajeID,
		VeterinarioID:         c.VeterinarioID,
		TipoConsulta:          c.TipoConsulta,
		FechaConsulta:         c.FechaConsulta,
		MotivoConsulta:        c.MotivoConsulta,
		SintomasObservados:    c.SintomasObservados,
		DiagnosticoPreliminar: c.DiagnosticoPreliminar,
		Observaciones:         c.Observaciones,
		CondicionGeneral:      c.CondicionGeneral,
		EsSeguimiento:         c.EsSeguimiento,
	}
}

func toDiagnosticoResponse(d Diagnostico) diagnosticoResponse {
	return diagnosticoResponse{
		ID:               d.ID,
		ConsultaID:       d.ConsultaID,
		PatologiaID:      d.PatologiaID,
		Diagnostico:      d.Diagnostico,
		TipoDiagnostico:  d.TipoDiagnostico,
		EstadoPatologia:  d.EstadoPatologia,
		FechaDiagnostico: d.FechaDiagnostico,
	}
}

func toTratamientoResponse(t Tratamiento) tratamientoResponse {
	return tratamientoResponse{
		ID:                  t.ID,
		ConsultaID:          t.ConsultaID,
		PatologiaID:         t.PatologiaID,
		TipoTratamiento:     t.TipoTratamiento,
		FechaInicio:         t.FechaInicio,
		EficaciaTratamiento: t.EficaciaTratamiento,
	}
}

func toTriajeSummary(t triaje.Triaje) *triajeSummary {
	return &triajeSummary{
		ID:                    t.ID,
		SolicitudID:           t.SolicitudID,
		VeterinarioID:         t.VeterinarioID,
		FechaHoraTriaje:       t.FechaHoraTriaje,
		PesoMascota:           t.PesoMascota,
		Temperatura:           t.Temperatura,
		ClasificacionUrgencia: string(t.ClasificacionUrgencia),
	}
}

func toSolicitudSummary(s solicitudes.Solicitud) *solicitudSummary {
	return &solicitudSummary{
		ID:                 s.ID,
		MascotaID:          s.MascotaID,
		RecepcionistaID:    s.RecepcionistaID,
		FechaHoraSolicitud: s.FechaHoraSolicitud,
		Tipo:               string(s.Tipo),
		Estado:             string(s.Estado),
	}
}

func toMascotaSummary(m mascotas.Mascota) mascotaSummary {
	return mascotaSummary{
		ID:        m.ID,
		ClienteID: m.ClienteID,
		RazaID:    m.RazaID,
		Nombre:    m.Nombre,
		Sexo:      string(m.Sexo),
		EdadMeses: m.EdadTotalMeses(),
	}
}

func toVeterinarioSummary(v veterinarios.Veterinario) *veterinarioSummary {
	return &veterinarioSummary{
		ID:          v.ID,
		Nombre:      v.Nombre,
		Apellido:    v.ApellidoPaterno,
		CodigoCMVP:  v.CodigoCMVP,
		Disposicion: string(v.Disposicion),
	}
}
