package citas

import "time"

type Prioridad string

const (
	PrioridadUrgente     Prioridad = "Urgent"
	PrioridadNormal      Prioridad = "Normal"
	PrioridadProgramable Prioridad = "Schedulable"
)

func ValidPrioridad(p Prioridad) bool {
	switch p {
	case PrioridadUrgente, PrioridadNormal, PrioridadProgramable:
		return true
	}
	return false
}

// EstadoExamen es el estado del servicio solicitado (examen auxiliar).
type EstadoExamen string

const (
	ExamenSolicitado EstadoExamen = "Requested"
	ExamenCompletado EstadoExamen = "Completed"
	ExamenCancelado  EstadoExamen = "Cancelled"
)

// EstadoCita sigue su propia máquina: Scheduled puede pasar a Completed
// o Cancelled; ambos son terminales. Mismo estado es no-op aceptado.
type EstadoCita string

const (
	CitaProgramada EstadoCita = "Scheduled"
	CitaCancelada  EstadoCita = "Cancelled"
	CitaAtendida   EstadoCita = "Completed"
)

func (e EstadoCita) CanTransition(to EstadoCita) bool {
	if e == to {
		return true
	}
	return e == CitaProgramada && (to == CitaCancelada || to == CitaAtendida)
}

// ServicioSolicitado es un examen auxiliar (laboratorio, imagen)
// ordenado durante una consulta. Nace junto con su cita.
type ServicioSolicitado struct {
	ID            string
	ConsultaID    string
	ServicioID    string
	VeterinarioID string

	FechaSolicitado    time.Time
	Prioridad          Prioridad
	Estado             EstadoExamen
	ComentarioOpcional string
}

type Cita struct {
	ID                   string
	MascotaID            string
	ServicioSolicitadoID string

	FechaHoraProgramada time.Time
	Estado              EstadoCita
	RequiereAyuno       bool
	Observaciones       string
}

// ResultadoServicio se registra una sola vez por cita, al realizarse el
// servicio.
type ResultadoServicio struct {
	ID            string
	CitaID        string
	VeterinarioID string

	Resultado        string
	Interpretacion   string
	ArchivoAdjunto   string
	FechaRealizacion time.Time
}
