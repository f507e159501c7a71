package consultas

import "time"

// CondicionGeneral es la apreciación clínica general de la mascota
// durante la consulta.
type CondicionGeneral string

const (
	CondicionExcelente CondicionGeneral = "Excellent"
	CondicionBuena     CondicionGeneral = "Good"
	CondicionRegular   CondicionGeneral = "Regular"
	CondicionMala      CondicionGeneral = "Poor"
	CondicionCritica   CondicionGeneral = "Critical"
)

func ValidCondicionGeneral(c CondicionGeneral) bool {
	switch c {
	case CondicionExcelente, CondicionBuena, CondicionRegular, CondicionMala, CondicionCritica:
		return true
	}
	return false
}

type TipoDiagnostico string

const (
	DiagnosticoPresuntivo TipoDiagnostico = "Presumptive"
	DiagnosticoConfirmado TipoDiagnostico = "Confirmed"
	DiagnosticoDescartado TipoDiagnostico = "RuledOut"
)

func ValidTipoDiagnostico(t TipoDiagnostico) bool {
	switch t {
	case DiagnosticoPresuntivo, DiagnosticoConfirmado, DiagnosticoDescartado:
		return true
	}
	return false
}

type EstadoPatologia string

const (
	PatologiaActiva      EstadoPatologia = "Active"
	PatologiaControlada  EstadoPatologia = "Controlled"
	PatologiaCurada      EstadoPatologia = "Cured"
	PatologiaEnMonitoreo EstadoPatologia = "Monitoring"
)

func ValidEstadoPatologia(e EstadoPatologia) bool {
	switch e {
	case PatologiaActiva, PatologiaControlada, PatologiaCurada, PatologiaEnMonitoreo:
		return true
	}
	return false
}

type TipoTratamiento string

const (
	TratamientoMedicamentoso TipoTratamiento = "Medication"
	TratamientoQuirurgico    TipoTratamiento = "Surgical"
	TratamientoTerapeutico   TipoTratamiento = "Therapeutic"
	TratamientoPreventivo    TipoTratamiento = "Preventive"
)

func ValidTipoTratamiento(t TipoTratamiento) bool {
	switch t {
	case TratamientoMedicamentoso, TratamientoQuirurgico, TratamientoTerapeutico, TratamientoPreventivo:
		return true
	}
	return false
}

type EficaciaTratamiento string

const (
	EficaciaMuyBuena EficaciaTratamiento = "VeryGood"
	EficaciaBuena    EficaciaTratamiento = "Good"
	EficaciaRegular  EficaciaTratamiento = "Regular"
	EficaciaMala     EficaciaTratamiento = "Poor"
)

func ValidEficaciaTratamiento(e EficaciaTratamiento) bool {
	switch e {
	case EficaciaMuyBuena, EficaciaBuena, EficaciaRegular, EficaciaMala:
		return true
	}
	return false
}

// Consulta es la atención médica propiamente dicha. Hay exactamente una
// por triaje; crearla es el evento pivote del ciclo (ocupa al
// veterinario, pasa la solicitud a InCare y abre el historial).
type Consulta struct {
	ID            string
	TriajeID      string
	VeterinarioID string

	TipoConsulta  string
	FechaConsulta time.Time

	MotivoConsulta        string
	SintomasObservados    string
	DiagnosticoPreliminar string
	Observaciones         string

	CondicionGeneral CondicionGeneral
	EsSeguimiento    bool
}

type Diagnostico struct {
	ID          string
	ConsultaID  string
	PatologiaID string

	Diagnostico      string
	TipoDiagnostico  TipoDiagnostico
	EstadoPatologia  EstadoPatologia
	FechaDiagnostico time.Time
}

type Tratamiento struct {
	ID          string
	ConsultaID  string
	PatologiaID string

	TipoTratamiento     TipoTratamiento
	FechaInicio         time.Time
	EficaciaTratamiento EficaciaTratamiento
}
