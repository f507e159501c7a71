package historial

import "time"

// EventoResponse se comparte entre los handlers de mascotas (historial de
// la mascota) y consultas (eventos de la consulta completa).
type EventoResponse struct {
	ID            string     `json:"id"`
	MascotaID     string     `json:"id_mascota"`
	ConsultaID    string     `json:"id_consulta,omitempty"`
	DiagnosticoID string     `json:"id_diagnostico,omitempty"`
	TratamientoID string     `json:"id_tratamiento,omitempty"`
	VeterinarioID string     `json:"id_veterinario,omitempty"`
	FechaEvento   time.Time  `json:"fecha_evento"`
	TipoEvento    TipoEvento `json:"tipo_evento"`
	Descripcion   string     `json:"descripcion_evento"`
	PesoMomento   *float64   `json:"peso_momento,omitempty"`
	EdadMeses     *int       `json:"edad_meses,omitempty"`
	Observaciones string     `json:"observaciones,omitempty"`
}

func ToEventoResponse(e Evento) EventoResponse {
	return EventoResponse{
		ID:            e.ID,
		MascotaID:     e.MascotaID,
		ConsultaID:    e.ConsultaID,
		DiagnosticoID: e.DiagnosticoID,
		TratamientoID: e.TratamientoID,
		VeterinarioID: e.VeterinarioID,
		FechaEvento:   e.FechaEvento,
		TipoEvento:    e.TipoEvento,
		Descripcion:   e.Descripcion,
		PesoMomento:   e.PesoMomento,
		EdadMeses:     e.EdadMeses,
		Observaciones: e.Observaciones,
	}
}

func ToEventoResponses(items []Evento) []EventoResponse {
	out := make([]EventoResponse, 0, len(items))
	for _, e := range items {
		out = append(out, ToEventoResponse(e))
	}
	return out
}
