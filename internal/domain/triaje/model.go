package triaje

import "time"

// CondicionCorporal es la escala de condición física de la mascota al
// momento del triaje.
type CondicionCorporal string

const (
	CondicionMuyDelgado CondicionCorporal = "VeryThin"
	CondicionDelgado    CondicionCorporal = "Thin"
	CondicionIdeal      CondicionCorporal = "Ideal"
	CondicionSobrepeso  CondicionCorporal = "Overweight"
	CondicionObeso      CondicionCorporal = "Obese"
)

func ValidCondicionCorporal(c CondicionCorporal) bool {
	switch c {
	case CondicionMuyDelgado, CondicionDelgado, CondicionIdeal, CondicionSobrepeso, CondicionObeso:
		return true
	}
	return false
}

type ClasificacionUrgencia string

const (
	UrgenciaNoUrgente   ClasificacionUrgencia = "NotUrgent"
	UrgenciaPocoUrgente ClasificacionUrgencia = "SlightlyUrgent"
	UrgenciaUrgente     ClasificacionUrgencia = "Urgent"
	UrgenciaMuyUrgente  ClasificacionUrgencia = "VeryUrgent"
	UrgenciaCritico     ClasificacionUrgencia = "Critical"
)

func ValidClasificacionUrgencia(c ClasificacionUrgencia) bool {
	switch c {
	case UrgenciaNoUrgente, UrgenciaPocoUrgente, UrgenciaUrgente, UrgenciaMuyUrgente, UrgenciaCritico:
		return true
	}
	return false
}

// Triaje registra los signos vitales tomados al ingreso. Hay exactamente
// uno por solicitud; una vez que una consulta lo referencia queda
// congelado.
type Triaje struct {
	ID            string
	SolicitudID   string
	VeterinarioID string

	FechaHoraTriaje time.Time

	PesoMascota            float64
	LatidoPorMinuto        int
	FrecuenciaRespiratoria int
	Temperatura            float64
	Talla                  *float64
	TiempoCapilar          string
	ColorMucosas           string
	FrecuenciaPulso        int
	PorceDeshidratacion    *float64

	CondicionCorporal     CondicionCorporal
	ClasificacionUrgencia ClasificacionUrgencia
}
