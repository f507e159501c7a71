package solicitudes

import "time"

// Solicitud es el registro de mostrador que abre el ciclo de atención
// (solicitud -> triaje -> consulta).
type Solicitud struct {
	ID              string
	MascotaID       string
	RecepcionistaID string

	FechaHoraSolicitud time.Time
	Tipo               Tipo
	Estado             Estado
}
