package solicitudes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"veterinaria-backend/internal/domain/solicitudes"
)

func TestEstado_CanTransition(t *testing.T) {
	cases := []struct {
		from, to solicitudes.Estado
		ok       bool
	}{
		{solicitudes.EstadoPendiente, solicitudes.EstadoEnTriaje, true},
		{solicitudes.EstadoPendiente, solicitudes.EstadoEnAtencion, true},
		{solicitudes.EstadoPendiente, solicitudes.EstadoCancelada, true},
		{solicitudes.EstadoPendiente, solicitudes.EstadoCompletada, false},

		{solicitudes.EstadoEnTriaje, solicitudes.EstadoEnAtencion, true},
		{solicitudes.EstadoEnTriaje, solicitudes.EstadoCancelada, true},
		{solicitudes.EstadoEnTriaje, solicitudes.EstadoPendiente, false},
		{solicitudes.EstadoEnTriaje, solicitudes.EstadoCompletada, false},

		{solicitudes.EstadoEnAtencion, solicitudes.EstadoCompletada, true},
		{solicitudes.EstadoEnAtencion, solicitudes.EstadoCancelada, true},
		{solicitudes.EstadoEnAtencion, solicitudes.EstadoEnTriaje, false},

		// Terminales: solo el no-op al mismo estado.
		{solicitudes.EstadoCompletada, solicitudes.EstadoCompletada, true},
		{solicitudes.EstadoCompletada, solicitudes.EstadoCancelada, false},
		{solicitudes.EstadoCancelada, solicitudes.EstadoCancelada, true},
		{solicitudes.EstadoCancelada, solicitudes.EstadoPendiente, false},

		// Same-state no-op en estados vivos.
		{solicitudes.EstadoPendiente, solicitudes.EstadoPendiente, true},
		{solicitudes.EstadoEnAtencion, solicitudes.EstadoEnAtencion, true},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.ok, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
