package mascotas

import "time"

type Sexo string

const (
	SexoMacho  Sexo = "Male"
	SexoHembra Sexo = "Female"
)

// Mascota pertenece a un cliente y referencia una raza del catálogo.
type Mascota struct {
	ID        string
	ClienteID string
	RazaID    string

	Nombre       string
	Sexo         Sexo
	Color        string
	EdadAnios    int
	EdadMeses    int
	Esterilizado bool

	CreatedAt time.Time
}

// EdadTotalMeses se copia a los eventos de historial como edad-al-momento.
func (m Mascota) EdadTotalMeses() int {
	return m.EdadAnios*12 + m.EdadMeses
}
