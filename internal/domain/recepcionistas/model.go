package recepcionistas

import "time"

type Estado string

const (
	EstadoActivo   Estado = "Activo"
	EstadoInactivo Estado = "Inactivo"
)

type Turno string

const (
	TurnoManana Turno = "Morning"
	TurnoTarde  Turno = "Afternoon"
	TurnoNoche  Turno = "Night"
)

func ValidTurno(t Turno) bool {
	switch t {
	case TurnoManana, TurnoTarde, TurnoNoche:
		return true
	}
	return false
}

// Recepcionista registra las solicitudes de atención en mostrador.
type Recepcionista struct {
	ID              string
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	DNI             string
	Telefono        string
	Email           string
	FechaIngreso    time.Time
	Turno           Turno
	Estado          Estado
}
