package clientes

import "time"

type Estado string

const (
	EstadoActivo   Estado = "Activo"
	EstadoInactivo Estado = "Inactivo"
)

// Cliente es el dueño de una o más mascotas. DNI y email son únicos.
type Cliente struct {
	ID              string
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	DNI             string // 8 dígitos
	Telefono        string // 9 dígitos
	Email           string
	Direccion       string
	Estado          Estado
	FechaRegistro   time.Time
}
