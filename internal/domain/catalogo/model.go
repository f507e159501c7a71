package catalogo

// Raza es una raza registrada en el catálogo (labrador, siamés, etc.).
type Raza struct {
	ID     string
	Nombre string
}

// Especialidad veterinaria (cirugía, dermatología, etc.).
type Especialidad struct {
	ID          string
	Descripcion string
}

// TipoServicio agrupa servicios (laboratorio, imagen, estética).
type TipoServicio struct {
	ID          string
	Descripcion string
}

// Servicio es un servicio facturable de la clínica. Solo los servicios
// activos pueden solicitarse desde una consulta.
type Servicio struct {
	ID             string
	TipoServicioID string
	Nombre         string
	Precio         float64
	Activo         bool
}

// EspecieAfecta indica a qué especies aplica una patología.
type EspecieAfecta string

const (
	EspecieDog  EspecieAfecta = "Dog"
	EspecieCat  EspecieAfecta = "Cat"
	EspecieBoth EspecieAfecta = "Both"
)

type Gravedad string

const (
	GravedadLeve     Gravedad = "Mild"
	GravedadModerada Gravedad = "Moderate"
	GravedadGrave    Gravedad = "Severe"
	GravedadCritica  Gravedad = "Critical"
)

// Patologia es una entrada del catálogo de patologías diagnosticables.
type Patologia struct {
	ID            string
	Nombre        string // único
	EspecieAfecta EspecieAfecta
	Gravedad      Gravedad
	EsCronica     bool
	EsContagiosa  bool
}

func validEspecie(e EspecieAfecta) bool {
	switch e {
	case EspecieDog, EspecieCat, EspecieBoth:
		return true
	}
	return false
}

func validGravedad(g Gravedad) bool {
	switch g {
	case GravedadLeve, GravedadModerada, GravedadGrave, GravedadCritica:
		return true
	}
	return false
}
