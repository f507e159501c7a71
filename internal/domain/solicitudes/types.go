package solicitudes

// Tipo es el motivo por el que se trae la mascota.
type Tipo string

const (
	TipoEmergencia         Tipo = "Emergency"
	TipoConsultaNormal     Tipo = "Routine"
	TipoServicioProgramado Tipo = "ScheduledService"
)

func ValidTipo(t Tipo) bool {
	switch t {
	case TipoEmergencia, TipoConsultaNormal, TipoServicioProgramado:
		return true
	}
	return false
}

// Estado del ciclo de atención. Las transiciones pasan todas por
// CanTransition; ningún handler asigna el estado directamente.
type Estado string

const (
	EstadoPendiente  Estado = "Pending"
	EstadoEnTriaje   Estado = "InTriage"
	EstadoEnAtencion Estado = "InCare"
	EstadoCompletada Estado = "Completed"
	EstadoCancelada  Estado = "Cancelled"
)

func ValidEstado(e Estado) bool {
	switch e {
	case EstadoPendiente, EstadoEnTriaje, EstadoEnAtencion, EstadoCompletada, EstadoCancelada:
		return true
	}
	return false
}

// CanTransition define la máquina de estados de la solicitud:
//
//	Pending  -> InTriage | InCare | Cancelled
//	InTriage -> InCare | Cancelled
//	InCare   -> Completed | Cancelled
//
// Completed y Cancelled son terminales. La transición al mismo estado se
// acepta como no-op, lo que hace idempotente finalizar una consulta.
func (e Estado) CanTransition(to Estado) bool {
	if e == to {
		return true
	}
	switch e {
	case EstadoPendiente:
		return to == EstadoEnTriaje || to == EstadoEnAtencion || to == EstadoCancelada
	case EstadoEnTriaje:
		return to == EstadoEnAtencion || to == EstadoCancelada
	case EstadoEnAtencion:
		return to == EstadoCompletada || to == EstadoCancelada
	default:
		return false
	}
}
