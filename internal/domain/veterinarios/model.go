package veterinarios

import "time"

type Estado string

const (
	EstadoActivo   Estado = "Activo"
	EstadoInactivo Estado = "Inactivo"
)

// Disposicion es la disponibilidad del veterinario. Se muta como efecto
// de crear/finalizar una consulta, nunca directamente desde un PUT.
type Disposicion string

const (
	DisposicionLibre   Disposicion = "Free"
	DisposicionOcupado Disposicion = "Busy"
)

type Tipo string

const (
	TipoMedicoGeneral Tipo = "GeneralMedicine"
	TipoEspecializado Tipo = "Specialist"
)

type Turno string

const (
	TurnoManana Turno = "Morning"
	TurnoTarde  Turno = "Afternoon"
	TurnoNoche  Turno = "Night"
)

// Veterinario realiza triajes, consultas y servicios. El código CMVP
// (colegiatura) es único, igual que DNI y email.
type Veterinario struct {
	ID             string
	EspecialidadID string
	CodigoCMVP     string
	Tipo           Tipo

	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	DNI             string
	Telefono        string
	Email           string
	FechaIngreso    time.Time
	Turno           Turno
	Estado          Estado
	Disposicion     Disposicion
}

func ValidTipo(t Tipo) bool {
	return t == TipoMedicoGeneral || t == TipoEspecializado
}

func ValidTurno(t Turno) bool {
	switch t {
	case TurnoManana, TurnoTarde, TurnoNoche:
		return true
	}
	return false
}
