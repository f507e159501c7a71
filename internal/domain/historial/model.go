package historial

import "time"

type TipoEvento string

const (
	TipoConsulta    TipoEvento = "Consultation"
	TipoDiagnostico TipoEvento = "Diagnosis"
	TipoTratamiento TipoEvento = "Treatment"
	TipoServicio    TipoEvento = "Service"
)

// Evento es una fila append-only del historial clínico de una mascota.
// Nunca se actualiza ni se borra: es la bitácora de la vida del animal.
type Evento struct {
	ID        string
	MascotaID string

	// Referencias cruzadas opcionales.
	ConsultaID    string
	DiagnosticoID string
	TratamientoID string
	VeterinarioID string

	FechaEvento time.Time
	TipoEvento  TipoEvento
	Descripcion string

	// Snapshot al momento del evento.
	PesoMomento *float64
	EdadMeses   *int

	Observaciones string
}
